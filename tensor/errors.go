// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/ndarray/internal/tensor"

// Sentinel errors. Every failing operation returns an *OpError that wraps
// exactly one of them.
var (
	// ErrShapeMismatch: shapes or element counts are incompatible.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrRankMismatch: wrong number of indices or axes for the operation.
	ErrRankMismatch = tensor.ErrRankMismatch

	// ErrIndexOutOfRange: an index falls outside its axis.
	ErrIndexOutOfRange = tensor.ErrIndexOutOfRange

	// ErrDivisionByZero: a divisor element or scalar is zero.
	ErrDivisionByZero = tensor.ErrDivisionByZero

	// ErrEmptyArray: a reduction without identity was applied to no elements.
	ErrEmptyArray = tensor.ErrEmptyArray

	// ErrInvalidShape: a dimension is negative.
	ErrInvalidShape = tensor.ErrInvalidShape
)

// OpError reports the failing operation, its context and the sentinel cause.
type OpError = tensor.OpError
