package tensor

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in *OpError) by tensor operations.
// Test for them with errors.Is.
var (
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrRankMismatch    = errors.New("rank mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrEmptyArray      = errors.New("empty array")
	ErrInvalidShape    = errors.New("invalid shape")
)

// OpError reports which operation failed and why.
type OpError struct {
	Op     string // Operation name (e.g. "matmul", "reshape")
	Err    error  // One of the sentinel errors above
	Detail string // Human-readable context (shapes, indices)
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("tensor: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("tensor: %s: %s: %v", e.Op, e.Detail, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(op string, err error, format string, args ...any) error {
	return &OpError{Op: op, Err: err, Detail: fmt.Sprintf(format, args...)}
}
