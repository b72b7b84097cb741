package tensor

import (
	"sync/atomic"

	"github.com/born-ml/ndarray/internal/parallel"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It runs every kernel sequentially and counts how often kernels asked it
// for their loop configuration.
type MockBackend struct {
	cfg   parallel.Config
	calls atomic.Int64
}

// NewMockBackend creates a new sequential MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{cfg: parallel.Sequential()}
}

// NewParallelMockBackend creates a MockBackend that fans out even tiny loops.
// Useful for checking that parallel and sequential kernels agree.
func NewParallelMockBackend(workers int) *MockBackend {
	return &MockBackend{cfg: parallel.Config{Enabled: true, NumWorkers: workers, MinChunkSize: 1}}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Parallelism returns the configured loop settings and records the call.
func (m *MockBackend) Parallelism() parallel.Config {
	m.calls.Add(1)
	return m.cfg
}

// Calls returns how many times Parallelism was consulted.
func (m *MockBackend) Calls() int64 {
	return m.calls.Load()
}
