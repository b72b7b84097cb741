package tensor

import "github.com/born-ml/ndarray/internal/parallel"

// MatMul performs matrix multiplication.
//
// Requirements:
//   - Both tensors are 2D (ErrRankMismatch otherwise)
//   - (M, K) @ (K, N) → (M, N) (ErrShapeMismatch when the K's differ)
//
// Sums accumulate in T without widening. Output elements are independent
// and may be computed in parallel, depending on the backend.
//
// Example:
//
//	a := tensor.Must(tensor.Ones[float32](Shape{3, 4}, backend))
//	b := tensor.Must(tensor.Ones[float32](Shape{4, 5}, backend))
//	c, err := a.MatMul(b) // Shape: [3, 5]
func (t *Tensor[T]) MatMul(other *Tensor[T]) (*Tensor[T], error) {
	if len(t.shape) != 2 || len(other.shape) != 2 {
		return nil, opError("matmul", ErrRankMismatch,
			"only 2D tensors supported, got %dD and %dD", len(t.shape), len(other.shape))
	}

	m, k := t.shape[0], t.shape[1]
	kAlt, n := other.shape[0], other.shape[1]
	if k != kAlt {
		return nil, opError("matmul", ErrShapeMismatch,
			"inner dimensions differ %v @ %v", t.shape, other.shape)
	}

	out := make([]T, m*n)
	matmulKernel(out, t.data, other.data, m, k, n, parallelism(t.backend))
	return newOwned(out, Shape{m, n}, t.backend), nil
}

// matmulKernel computes C[i,j] = sum_k A[i,k] * B[k,j] for row-major buffers.
// Naive O(m*k*n); each (i, j) is written by exactly one goroutine.
func matmulKernel[T DType](c, a, b []T, m, k, n int, cfg parallel.Config) {
	parallel.For2D(m, n, func(i, j int) {
		var sum T
		for kIdx := 0; kIdx < k; kIdx++ {
			sum += a[i*k+kIdx] * b[kIdx*n+j]
		}
		c[i*n+j] = sum
	}, cfg)
}
