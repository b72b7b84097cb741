// Package cpu implements the CPU backend: pure Go kernels with goroutine fan-out.
package cpu

import (
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Verify that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend runs tensor kernels on the host CPU.
// Independent output elements (matmul cells, conv1d windows) are spread
// across goroutines according to its parallel configuration.
type CPUBackend struct {
	cfg parallel.Config
}

// New creates a new CPU backend sized to the host's CPU count.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with explicit parallel settings.
// Zero NumWorkers or MinChunkSize are replaced with defaults.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{cfg: cfg.Normalize()}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Parallelism returns the parallel loop configuration.
func (cpu *CPUBackend) Parallelism() parallel.Config {
	return cpu.cfg
}
