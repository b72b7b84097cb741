// Package printer renders tensors as nested, bracketed text.
package printer

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/internal/tensor"
)

// indentStep is the number of spaces added per nesting level.
const indentStep = 4

// Options controls element formatting.
type Options struct {
	// Width right-aligns every element to at least this many columns.
	// Zero or negative disables padding.
	Width int `mapstructure:"width"`

	// Precision is the number of digits after the decimal point for
	// floating point elements. -1 selects the shortest exact representation.
	Precision int `mapstructure:"precision"`
}

// DefaultOptions returns the default options: six columns, shortest floats.
func DefaultOptions() Options {
	return Options{
		Width:     6,
		Precision: -1,
	}
}

// Fprint writes a header line and the nested rendering of data to w:
//
//	label = Tensor(shape=(2, 3)):
//	[
//	    [     1,      2,      3],
//	    [     4,      5,      6]
//	]
//
// The label prefix is omitted when label is empty. The innermost axis is
// printed on a single line; every outer axis opens a bracket indented by
// four spaces per level. A rank-0 shape prints its single value and a shape
// with no elements prints "[]".
//
// It fails with tensor.ErrShapeMismatch when len(data) differs from the
// shape's element count, and with tensor.ErrInvalidShape for negative
// dimensions.
func Fprint[T tensor.DType](w io.Writer, label string, shape []int, data []T, opts Options) error {
	s := tensor.Shape(shape)
	if err := s.Validate(); err != nil {
		return &tensor.OpError{Op: "print", Err: err}
	}
	if s.NumElements() != len(data) {
		return &tensor.OpError{
			Op:     "print",
			Err:    tensor.ErrShapeMismatch,
			Detail: fmt.Sprintf("shape %v requires %d elements, but got %d", s, s.NumElements(), len(data)),
		}
	}

	bw := bufio.NewWriter(w)
	if label != "" {
		bw.WriteString(label)
		bw.WriteString(" = ")
	}
	fmt.Fprintf(bw, "Tensor(shape=%v):\n", s)

	p := &printer[T]{
		w:       bw,
		shape:   s,
		strides: s.ComputeStrides(),
		data:    data,
		format:  formatter[T](opts),
	}
	switch {
	case len(data) == 0:
		bw.WriteString("[]")
	case len(s) == 0:
		bw.WriteString(p.format(data[0]))
	default:
		p.render(0, 0, 0)
	}
	bw.WriteByte('\n')

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("printer: write: %w", err)
	}
	return nil
}

// Sprint is like Fprint but returns the rendering as a string.
func Sprint[T tensor.DType](label string, shape []int, data []T, opts Options) (string, error) {
	var sb strings.Builder
	if err := Fprint(&sb, label, shape, data, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FprintTensor renders t with Fprint.
func FprintTensor[T tensor.DType](w io.Writer, label string, t *tensor.Tensor[T], opts Options) error {
	return Fprint(w, label, t.Shape(), t.Data(), opts)
}

type printer[T tensor.DType] struct {
	w       *bufio.Writer
	shape   tensor.Shape
	strides []int
	data    []T
	format  func(T) string
}

// render writes the sub-array starting at offset along axis.
func (p *printer[T]) render(axis, offset, indent int) {
	extent := p.shape[axis]

	if axis == len(p.shape)-1 {
		p.w.WriteByte('[')
		for i := 0; i < extent; i++ {
			if i > 0 {
				p.w.WriteString(", ")
			}
			p.w.WriteString(p.format(p.data[offset+i]))
		}
		p.w.WriteByte(']')
		return
	}

	p.w.WriteString("[\n")
	inner := indent + indentStep
	for i := 0; i < extent; i++ {
		p.w.WriteString(strings.Repeat(" ", inner))
		p.render(axis+1, offset+i*p.strides[axis], inner)
		if i != extent-1 {
			p.w.WriteByte(',')
		}
		p.w.WriteByte('\n')
	}
	p.w.WriteString(strings.Repeat(" ", indent))
	p.w.WriteByte(']')
}

// formatter returns the element formatter for T under opts.
func formatter[T tensor.DType](opts Options) func(T) string {
	var toString func(T) string

	switch kind := reflect.TypeFor[T]().Kind(); kind {
	case reflect.Float32, reflect.Float64:
		bits := 64
		if kind == reflect.Float32 {
			bits = 32
		}
		prec := opts.Precision
		if prec < 0 {
			prec = -1
		}
		toString = func(v T) string {
			return strconv.FormatFloat(float64(v), 'f', prec, bits)
		}
	default:
		toString = func(v T) string {
			return fmt.Sprint(v)
		}
	}

	if opts.Width <= 0 {
		return toString
	}
	return func(v T) string {
		return fmt.Sprintf("%*s", opts.Width, toString(v))
	}
}
