package tensor

// Zeros creates a tensor filled with zeros.
// Fails with ErrInvalidShape when any dimension is negative or the element
// count overflows int.
//
// Example:
//
//	backend := cpu.New()
//	t, err := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType](shape Shape, b Backend) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, &OpError{Op: "zeros", Err: err}
	}
	return newOwned(make([]T, shape.NumElements()), shape.Clone(), b), nil
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t, err := tensor.Ones[float64](Shape{2, 3}, backend)
func Ones[T DType](shape Shape, b Backend) (*Tensor[T], error) {
	return Full[T](shape, 1, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType](shape Shape, value T, b Backend) (*Tensor[T], error) {
	t, err := Zeros[T](shape, b)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// Arange creates a 1D tensor with values from start to end (exclusive), step 1.
// Fails with ErrInvalidShape when end < start.
//
// Example:
//
//	t, err := tensor.Arange[int32](0, 10, backend) // [0, 1, 2, ..., 9]
func Arange[T DType](start, end T, b Backend) (*Tensor[T], error) {
	if end < start {
		return nil, opError("arange", ErrInvalidShape, "end %v is before start %v", end, start)
	}

	n := 0
	for v := start; v < end; v++ {
		n++
	}

	data := make([]T, n)
	for i := range data {
		data[i] = start + T(i)
	}
	return newOwned(data, Shape{n}, b), nil
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	t, err := tensor.Eye[float32](3, backend) // 3x3 identity matrix
func Eye[T DType](n int, b Backend) (*Tensor[T], error) {
	t, err := Zeros[T](Shape{n, n}, b)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1
	}
	return t, nil
}
