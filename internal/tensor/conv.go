package tensor

import "github.com/born-ml/ndarray/internal/parallel"

// Conv1D performs a valid 1D convolution (no padding, stride 1) of t with kernel.
//
// Both tensors must be 1D (ErrRankMismatch otherwise). The kernel must be
// non-empty and no longer than the input (ErrShapeMismatch otherwise).
// The output has length len(t) - len(kernel) + 1 and
//
//	out[i] = sum_j t[i+j] * kernel[j]
//
// The kernel is not flipped (cross-correlation, as in most ML frameworks).
//
// Example:
//
//	x := tensor.Must(tensor.FromSlice([]float64{1, 2, 3, 4, 5}, Shape{5}, backend))
//	k := tensor.Must(tensor.FromSlice([]float64{0.5, 0.5}, Shape{2}, backend))
//	y, err := x.Conv1D(k) // [1.5, 2.5, 3.5, 4.5]
func (t *Tensor[T]) Conv1D(kernel *Tensor[T]) (*Tensor[T], error) {
	if len(t.shape) != 1 || len(kernel.shape) != 1 {
		return nil, opError("conv1d", ErrRankMismatch,
			"input and kernel must be 1D, got %dD and %dD", len(t.shape), len(kernel.shape))
	}

	length, kSize := t.shape[0], kernel.shape[0]
	if kSize == 0 {
		return nil, opError("conv1d", ErrShapeMismatch, "kernel is empty")
	}
	if kSize > length {
		return nil, opError("conv1d", ErrShapeMismatch,
			"kernel length %d exceeds input length %d", kSize, length)
	}

	outLen := length - kSize + 1
	out := make([]T, outLen)
	conv1DKernel(out, t.data, kernel.data, parallelism(t.backend))
	return newOwned(out, Shape{outLen}, t.backend), nil
}

// conv1DKernel fills out[i] with the dot product of kernel and the window at i.
func conv1DKernel[T DType](out, input, kernel []T, cfg parallel.Config) {
	kSize := len(kernel)
	parallel.For(len(out), func(i int) {
		var sum T
		window := input[i : i+kSize]
		for j, w := range kernel {
			sum += window[j] * w
		}
		out[i] = sum
	}, cfg)
}
