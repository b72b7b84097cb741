package tensor

import "fmt"

// Tensor is a dense, row-major n-dimensional array of T.
//
// A Tensor exclusively owns its flat buffer. Constructors copy caller data,
// Data returns a copy, and every operation that returns a Tensor allocates a
// new one, leaving its inputs untouched.
//
// Type Parameters:
//   - T: Element type (must satisfy DType constraint)
//
// Example:
//
//	backend := cpu.New()
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
//	v, _ := a.At([]int{1, 2}) // 6
type Tensor[T DType] struct {
	shape   Shape
	strides []int
	data    []T
	backend Backend
}

// newOwned wraps data without copying. len(data) must equal
// shape.NumElements(); the caller must not retain data or shape.
func newOwned[T DType](data []T, shape Shape, b Backend) *Tensor[T] {
	return &Tensor[T]{
		shape:   shape,
		strides: shape.ComputeStrides(),
		data:    data,
		backend: b,
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
//
// It fails with ErrInvalidShape for negative dimensions and with
// ErrShapeMismatch when len(data) differs from the shape's element count.
func FromSlice[T DType](data []T, shape Shape, b Backend) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, &OpError{Op: "from_slice", Err: err}
	}
	if shape.NumElements() != len(data) {
		return nil, opError("from_slice", ErrShapeMismatch,
			"shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	buf := make([]T, len(data))
	copy(buf, data)
	return newOwned(buf, shape.Clone(), b), nil
}

// Must returns t or panics with err. It is meant for literals in examples
// and tests, where the shape is known to be valid.
//
// Example:
//
//	a := tensor.Must(tensor.FromSlice([]int32{1, 2, 3, 4}, Shape{2, 2}, backend))
func Must[T DType](t *Tensor[T], err error) *Tensor[T] {
	if err != nil {
		panic(err)
	}
	return t
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Strides returns a copy of the tensor's row-major strides.
func (t *Tensor[T]) Strides() []int {
	return append([]int(nil), t.strides...)
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return inferDataType[T]()
}

// ByteSize returns the total memory size of the elements in bytes.
func (t *Tensor[T]) ByteSize() int {
	return len(t.data) * t.DType().Size()
}

// Backend returns the backend the tensor's operations run under.
func (t *Tensor[T]) Backend() Backend {
	return t.backend
}

// Data returns a copy of the elements in row-major order.
func (t *Tensor[T]) Data() []T {
	return append([]T(nil), t.data...)
}

// At returns the element at the given multi-index.
//
// It fails with ErrRankMismatch if len(indices) differs from the rank and
// with ErrIndexOutOfRange if any index falls outside its axis.
//
// Example:
//
//	t := tensor.Must(tensor.Zeros[float32](Shape{3, 4}, backend))
//	value, err := t.At([]int{1, 2}) // Row 1, column 2
func (t *Tensor[T]) At(indices []int) (T, error) {
	offset, err := flatOffset("at", indices, t.shape, t.strides)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.data[offset], nil
}

// Set stores value at the given multi-index.
// It is the only method that mutates a tensor in place.
func (t *Tensor[T]) Set(indices []int, value T) error {
	offset, err := flatOffset("set", indices, t.shape, t.strides)
	if err != nil {
		return err
	}
	t.data[offset] = value
	return nil
}

// Equal reports whether both tensors have the same shape and elements.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return newOwned(t.Data(), t.shape.Clone(), t.backend)
}

// String returns a short summary such as "Tensor[float64](2, 3)".
// Use the printer package to render the elements.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.DType(), t.shape)
}
