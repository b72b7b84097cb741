// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Goroutine fan-out for matmul and conv1d, bounded by NumWorkers
//   - Sequential fallback for small inputs
//   - Identical results whether or not kernels run in parallel
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ndarray/backend/cpu"
//	    "github.com/born-ml/ndarray/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := tensor.Arange[float64](0, 6, backend)
//	    a, _ = a.Reshape(tensor.Shape{2, 3})
//	    gram, _ := a.MatMul(a.Transpose()) // Shape: [2, 2]
//	}
//
// # Tuning
//
// Use NewWithConfig to bound the number of goroutines or to disable fan-out:
//
//	backend := cpu.NewWithConfig(cpu.Sequential())
package cpu
