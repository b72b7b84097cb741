package tensor

// Sum returns the sum of all elements (zero for an empty tensor).
func (t *Tensor[T]) Sum() T {
	var sum T
	for _, v := range t.data {
		sum += v
	}
	return sum
}

// Mean returns the sum of the elements divided by their count.
// Integer element types use integer division, truncated toward zero.
// Fails with ErrEmptyArray when the tensor has no elements.
//
// The sum is accumulated in int64, uint64 or float64 and divided by the
// exact count, so neither the sum nor the count wraps in narrow types
// such as int8 or uint16.
func (t *Tensor[T]) Mean() (T, error) {
	n := len(t.data)
	if n == 0 {
		var zero T
		return zero, opError("mean", ErrEmptyArray, "tensor %v has no elements", t.shape)
	}

	switch t.DType() {
	case Float32, Float64:
		var sum float64
		for _, v := range t.data {
			sum += float64(v)
		}
		return T(sum / float64(n)), nil
	case Uint, Uint8, Uint16, Uint32, Uint64:
		var sum uint64
		for _, v := range t.data {
			sum += uint64(v)
		}
		return T(sum / uint64(n)), nil
	default:
		var sum int64
		for _, v := range t.data {
			sum += int64(v)
		}
		return T(sum / int64(n)), nil
	}
}

// Max returns the largest element.
// Fails with ErrEmptyArray when the tensor has no elements.
func (t *Tensor[T]) Max() (T, error) {
	return t.extreme("max", func(candidate, best T) bool { return candidate > best })
}

// Min returns the smallest element.
// Fails with ErrEmptyArray when the tensor has no elements.
func (t *Tensor[T]) Min() (T, error) {
	return t.extreme("min", func(candidate, best T) bool { return candidate < best })
}

// extreme scans once, keeping the first element for which better never holds.
func (t *Tensor[T]) extreme(op string, better func(candidate, best T) bool) (T, error) {
	if len(t.data) == 0 {
		var zero T
		return zero, opError(op, ErrEmptyArray, "tensor %v has no elements", t.shape)
	}
	best := t.data[0]
	for _, v := range t.data[1:] {
		if better(v, best) {
			best = v
		}
	}
	return best, nil
}
