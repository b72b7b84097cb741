// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend runs pure Go kernels and spreads independent output
// elements of matmul and conv1d across goroutines.
type Backend = internalcpu.CPUBackend

// Config controls how far kernels fan out across goroutines.
type Config = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend sized to the host's CPU count.
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndarray/backend/cpu"
//	    "github.com/born-ml/ndarray/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit parallel settings.
// Zero NumWorkers or MinChunkSize fields are replaced with defaults.
//
// Example:
//
//	backend := cpu.NewWithConfig(cpu.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 32})
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns parallel settings sized to the host's CPU count.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential returns settings that run every kernel on the calling goroutine.
func Sequential() Config {
	return parallel.Sequential()
}
