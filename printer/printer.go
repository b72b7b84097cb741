// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package printer renders tensors as nested, bracketed text.
//
// Example:
//
//	backend := cpu.New()
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
//	_ = printer.Print(os.Stdout, "a", a, printer.DefaultOptions())
//
// Output:
//
//	a = Tensor(shape=(2, 3)):
//	[
//	    [     1,      2,      3],
//	    [     4,      5,      6]
//	]
package printer

import (
	"io"

	internalprinter "github.com/born-ml/ndarray/internal/printer"
	"github.com/born-ml/ndarray/tensor"
)

// Options controls element width and float precision.
type Options = internalprinter.Options

// DefaultOptions returns six-column elements with shortest float formatting.
func DefaultOptions() Options {
	return internalprinter.DefaultOptions()
}

// Print writes a labeled rendering of t to w.
func Print[T tensor.DType](w io.Writer, label string, t *tensor.Tensor[T], opts Options) error {
	return internalprinter.FprintTensor(w, label, t, opts)
}

// Fprint renders a raw shape and flat row-major data.
// It fails with tensor.ErrShapeMismatch when len(data) differs from the
// shape's element count.
func Fprint[T tensor.DType](w io.Writer, label string, shape []int, data []T, opts Options) error {
	return internalprinter.Fprint(w, label, shape, data, opts)
}

// Sprint is like Print but returns a string.
func Sprint[T tensor.DType](label string, t *tensor.Tensor[T], opts Options) (string, error) {
	return internalprinter.Sprint(label, t.Shape(), t.Data(), opts)
}
