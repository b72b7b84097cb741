package tensor

// Add performs element-wise addition.
// Both tensors must have exactly the same shape; there is no broadcasting.
//
// Example:
//
//	a := tensor.Must(tensor.Ones[float32](Shape{3, 5}, backend))
//	b := tensor.Must(tensor.Ones[float32](Shape{3, 5}, backend))
//	c, err := a.Add(b) // Shape: [3, 5], all twos
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	if err := t.checkSameShape("add", other); err != nil {
		return nil, err
	}
	return t.zipWith(other, func(x, y T) T { return x + y }), nil
}

// Sub performs element-wise subtraction.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	if err := t.checkSameShape("sub", other); err != nil {
		return nil, err
	}
	return t.zipWith(other, func(x, y T) T { return x - y }), nil
}

// Mul performs element-wise (Hadamard) multiplication.
// For the matrix product use MatMul.
func (t *Tensor[T]) Mul(other *Tensor[T]) (*Tensor[T], error) {
	if err := t.checkSameShape("mul", other); err != nil {
		return nil, err
	}
	return t.zipWith(other, func(x, y T) T { return x * y }), nil
}

// Div performs element-wise division.
// Fails with ErrDivisionByZero if any element of other equals zero.
func (t *Tensor[T]) Div(other *Tensor[T]) (*Tensor[T], error) {
	if err := t.checkSameShape("div", other); err != nil {
		return nil, err
	}
	for i, v := range other.data {
		if v == 0 {
			return nil, opError("div", ErrDivisionByZero, "divisor element %d is zero", i)
		}
	}
	return t.zipWith(other, func(x, y T) T { return x / y }), nil
}

// AddScalar adds a scalar value to each element.
func (t *Tensor[T]) AddScalar(scalar T) *Tensor[T] {
	return t.mapElems(func(x T) T { return x + scalar })
}

// SubScalar subtracts a scalar value from each element.
func (t *Tensor[T]) SubScalar(scalar T) *Tensor[T] {
	return t.mapElems(func(x T) T { return x - scalar })
}

// MulScalar multiplies each element by a scalar value.
func (t *Tensor[T]) MulScalar(scalar T) *Tensor[T] {
	return t.mapElems(func(x T) T { return x * scalar })
}

// DivScalar divides each element by a scalar value.
// Fails with ErrDivisionByZero when scalar is zero.
func (t *Tensor[T]) DivScalar(scalar T) (*Tensor[T], error) {
	if scalar == 0 {
		return nil, opError("div_scalar", ErrDivisionByZero, "scalar divisor is zero")
	}
	return t.mapElems(func(x T) T { return x / scalar }), nil
}

func (t *Tensor[T]) checkSameShape(op string, other *Tensor[T]) error {
	if !t.shape.Equal(other.shape) {
		return opError(op, ErrShapeMismatch, "shapes %v and %v differ", t.shape, other.shape)
	}
	return nil
}

// zipWith combines corresponding elements of two equally shaped tensors.
func (t *Tensor[T]) zipWith(other *Tensor[T], fn func(x, y T) T) *Tensor[T] {
	out := make([]T, len(t.data))
	for i := range out {
		out[i] = fn(t.data[i], other.data[i])
	}
	return newOwned(out, t.shape.Clone(), t.backend)
}

// mapElems applies fn to every element.
func (t *Tensor[T]) mapElems(fn func(x T) T) *Tensor[T] {
	out := make([]T, len(t.data))
	for i, v := range t.data {
		out[i] = fn(v)
	}
	return newOwned(out, t.shape.Clone(), t.backend)
}
