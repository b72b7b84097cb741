// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides generic n-dimensional arrays.
//
// # Overview
//
// A Tensor[T] is a dense, row-major array of numeric elements. This package provides:
//   - Generic type-safe tensors (Tensor[T])
//   - Shape, stride and flat offset helpers
//   - Element-wise and scalar arithmetic
//   - Transpose, reshape and flatten
//   - 2D matrix multiplication and valid 1D convolution
//   - Sum, mean, max and min reductions
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ndarray/tensor"
//	    "github.com/born-ml/ndarray/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
//	    b, _ := tensor.FromSlice([]float64{7, 8, 9, 10, 11, 12}, tensor.Shape{2, 3}, backend)
//
//	    sum, err := a.Add(b)              // [[8, 10, 12], [14, 16, 18]]
//	    gram, err := a.MatMul(a.Transpose()) // [[14, 32], [32, 77]]
//	}
//
// # Supported Data Types
//
// The DType constraint admits every built-in integer and floating point type,
// and named types derived from them:
//   - float32, float64
//   - int, int8, int16, int32, int64
//   - uint, uint8, uint16, uint32, uint64
//
// # Shapes
//
// Shape{} is a rank-0 tensor holding a single element. Axes of extent zero
// are allowed and give tensors with no elements.
//
// # Memory Model
//
// Every tensor owns its buffer. FromSlice copies its input, Data returns a
// copy, and every operation returns a new tensor. Set is the only method that
// modifies a tensor in place.
//
// # Errors
//
// Operations that can fail return an *OpError wrapping one of the sentinel
// errors, so callers can branch with errors.Is:
//
//	c, err := a.MatMul(b)
//	if errors.Is(err, tensor.ErrShapeMismatch) {
//	    // inner dimensions differ
//	}
//
// There is no broadcasting: element-wise operations require identical shapes.
package tensor
