package tensor

import "github.com/born-ml/ndarray/internal/parallel"

// Backend defines the execution policy tensor operations run under.
//
// Kernels are pure Go and shared by every backend; a backend decides how
// much of the independent per-element work may fan out across goroutines.
// Results never depend on the backend.
//
// Implementations:
//   - cpu.CPUBackend: parallel kernels sized to the host's CPUs
//   - MockBackend: sequential execution for tests
type Backend interface {
	// Name returns a short human-readable backend name.
	Name() string

	// Parallelism returns the parallel loop configuration for kernels.
	Parallelism() parallel.Config
}

// parallelism returns the loop configuration of b, sequential when b is nil.
func parallelism(b Backend) parallel.Config {
	if b == nil {
		return parallel.Sequential()
	}
	return b.Parallelism()
}
