// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: every built-in integer and floating point type.
type DType = tensor.DType

// DataType represents the element type of a tensor at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Unknown DataType = tensor.Unknown
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int     DataType = tensor.Int
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint    DataType = tensor.Uint
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a generic, dense, row-major n-dimensional array.
//
// T is the element type (see DType). Every operation that returns a Tensor
// allocates a new one; inputs are never modified.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
//	y := x.MulScalar(2)   // [[2, 4], [6, 8]]
//	z, err := x.MatMul(y) // Matrix product
type Tensor[T DType] = tensor.Tensor[T]

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func Zeros[T DType](shape Shape, b Backend) (*Tensor[T], error) {
	return tensor.Zeros[T](shape, b)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
func Ones[T DType](shape Shape, b Backend) (*Tensor[T], error) {
	return tensor.Ones[T](shape, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.Full[float32](tensor.Shape{2, 3}, 3.14, backend)
func Full[T DType](shape Shape, value T, b Backend) (*Tensor[T], error) {
	return tensor.Full[T](shape, value, b)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.Arange[float32](0, 10, backend)  // [0, 1, 2, ..., 9]
func Arange[T DType](start, end T, b Backend) (*Tensor[T], error) {
	return tensor.Arange[T](start, end, b)
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	backend := cpu.New()
//	identity, err := tensor.Eye[float32](3, backend)  // 3x3 identity matrix
func Eye[T DType](n int, b Backend) (*Tensor[T], error) {
	return tensor.Eye[T](n, b)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
//
// Example:
//
//	backend := cpu.New()
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType](data []T, shape Shape, b Backend) (*Tensor[T], error) {
	return tensor.FromSlice[T](data, shape, b)
}

// Must returns t or panics if err is non-nil.
//
// Example:
//
//	x := tensor.Must(tensor.FromSlice([]int32{1, 2, 3}, tensor.Shape{3}, backend))
func Must[T DType](t *Tensor[T], err error) *Tensor[T] {
	return tensor.Must(t, err)
}

// Utility functions

// Offset converts a multi-index into a flat row-major offset using the
// given strides.
//
// Example:
//
//	shape := tensor.Shape{2, 3, 4}
//	off, err := tensor.Offset([]int{1, 2, 3}, shape, shape.ComputeStrides()) // 23
func Offset(indices []int, shape Shape, strides []int) (int, error) {
	return tensor.Offset(indices, shape, strides)
}
