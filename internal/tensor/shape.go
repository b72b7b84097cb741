package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1 // A rank-0 shape describes a single element.
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that no dimension is negative and that the element
// count fits in an int.
// Zero-sized dimensions are allowed and describe empty tensors.
func (s Shape) Validate() error {
	empty := false
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("dimension %d is %d (must be >= 0): %w", i, dim, ErrInvalidShape)
		}
		if dim == 0 {
			empty = true
		}
	}
	if empty {
		return nil
	}

	n := 1
	for _, dim := range s {
		if n > math.MaxInt/dim {
			return fmt.Errorf("shape %v has more than %d elements: %w", s, math.MaxInt, ErrInvalidShape)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String formats the shape as a tuple, e.g. "(2, 3)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprint(dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// reversed returns the shape with its axis order reversed.
func (s Shape) reversed() Shape {
	out := make(Shape, len(s))
	for i, dim := range s {
		out[len(s)-1-i] = dim
	}
	return out
}

// Offset converts a multi-index into a flat row-major offset.
//
// It fails with ErrRankMismatch when the number of indices (or strides) does
// not match the rank of shape, and with ErrIndexOutOfRange when any index is
// negative or not smaller than its axis extent.
//
// Example:
//
//	shape := Shape{2, 3, 4}
//	off, _ := Offset([]int{1, 2, 3}, shape, shape.ComputeStrides()) // 23
func Offset(indices []int, shape Shape, strides []int) (int, error) {
	return flatOffset("offset", indices, shape, strides)
}

func flatOffset(op string, indices []int, shape Shape, strides []int) (int, error) {
	if len(strides) != len(shape) {
		return 0, opError(op, ErrRankMismatch, "%d strides for shape %v", len(strides), shape)
	}
	if len(indices) != len(shape) {
		return 0, opError(op, ErrRankMismatch, "expected %d indices, got %d", len(shape), len(indices))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			return 0, opError(op, ErrIndexOutOfRange,
				"index %d out of bounds for axis %d (size %d)", idx, i, shape[i])
		}
		offset += idx * strides[i]
	}
	return offset, nil
}

// nextIndex advances idx to the next multi-index in row-major order.
// The last axis moves first and carries into the axes on its left.
// It returns false once every index has been visited.
func nextIndex(idx []int, shape Shape) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < shape[i] {
			return true
		}
		idx[i] = 0
	}
	return false
}
