package tensor

// Transpose reverses the order of the axes.
//
// The element at multi-index idx moves to reverse(idx). Works for any rank;
// for 2D this is the usual matrix transpose. The result is a copy.
//
// Example:
//
//	t := tensor.Must(tensor.Zeros[float32](Shape{2, 3, 4}, backend))
//	transposed := t.Transpose() // Shape: [4, 3, 2]
func (t *Tensor[T]) Transpose() *Tensor[T] {
	outShape := t.shape.reversed()
	out := newOwned(make([]T, len(t.data)), outShape, t.backend)
	if len(t.data) == 0 {
		return out
	}

	rank := len(t.shape)
	idx := make([]int, rank)

	// The source is visited in row-major order, so its flat offset is i.
	for i := 0; ; i++ {
		dst := 0
		for axis := 0; axis < rank; axis++ {
			dst += idx[rank-1-axis] * out.strides[axis]
		}
		out.data[dst] = t.data[i]

		if !nextIndex(idx, t.shape) {
			break
		}
	}
	return out
}

// Reshape returns a tensor with the same elements in the same row-major
// order but a different shape. The new shape must have the same number of
// elements; otherwise it fails with ErrShapeMismatch.
//
// Example:
//
//	t := tensor.Must(tensor.Arange[int32](0, 12, backend)) // Shape: [12]
//	reshaped, err := t.Reshape(Shape{3, 4})                 // Shape: [3, 4]
func (t *Tensor[T]) Reshape(newShape Shape) (*Tensor[T], error) {
	if err := newShape.Validate(); err != nil {
		return nil, &OpError{Op: "reshape", Err: err}
	}
	if newShape.NumElements() != len(t.data) {
		return nil, opError("reshape", ErrShapeMismatch,
			"cannot reshape %v (%d elements) to %v (%d elements)",
			t.shape, len(t.data), newShape, newShape.NumElements())
	}
	return newOwned(t.Data(), newShape.Clone(), t.backend), nil
}

// Flatten returns a 1D copy holding the elements in row-major order.
func (t *Tensor[T]) Flatten() *Tensor[T] {
	return newOwned(t.Data(), Shape{len(t.data)}, t.backend)
}
