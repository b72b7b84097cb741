package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/born-ml/ndarray/printer"
	"github.com/born-ml/ndarray/tensor"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every tensor operation on small float64 examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), newBackend(cfg), cfg.PrintOptions())
		},
	}
}

// demoPrinter prints labeled tensors and remembers the first error.
type demoPrinter struct {
	w    io.Writer
	opts printer.Options
	err  error
}

func (p *demoPrinter) print(label string, t *tensor.Tensor[float64]) {
	if p.err != nil {
		return
	}
	p.err = printer.Print(p.w, label, t, p.opts)
}

func runDemo(w io.Writer, backend tensor.Backend, opts printer.Options) error {
	mat1, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	if err != nil {
		return err
	}
	mat2, err := tensor.FromSlice([]float64{7, 8, 9, 10, 11, 12}, tensor.Shape{2, 3}, backend)
	if err != nil {
		return err
	}

	p := &demoPrinter{w: w, opts: opts}
	p.print("mat1", mat1)
	p.print("mat2", mat2)

	// Element-wise
	slog.Debug("demo step", "step", "element-wise")
	sum, err := mat1.Add(mat2)
	if err != nil {
		return err
	}
	diff, err := mat2.Sub(mat1)
	if err != nil {
		return err
	}
	prod, err := mat1.Mul(mat2)
	if err != nil {
		return err
	}
	quot, err := mat2.Div(mat1)
	if err != nil {
		return err
	}
	p.print("mat1 + mat2", sum)
	p.print("mat2 - mat1", diff)
	p.print("mat1 * mat2 (element-wise)", prod)
	p.print("mat2 / mat1 (element-wise)", quot)

	// Scalars
	slog.Debug("demo step", "step", "scalar")
	p.print("mat1 * 2.5", mat1.MulScalar(2.5))
	p.print("mat1 + 10.0", mat1.AddScalar(10))

	// Linear algebra
	slog.Debug("demo step", "step", "matmul")
	trans := mat1.Transpose()
	gram, err := mat1.MatMul(trans)
	if err != nil {
		return err
	}
	p.print("mat1 transposed", trans)
	p.print("mat1 x mat1^T (matrix product)", gram)

	// Reshape
	slog.Debug("demo step", "step", "reshape")
	reshaped, err := mat1.Reshape(tensor.Shape{3, 2})
	if err != nil {
		return err
	}
	p.print("mat1 reshaped to 3x2", reshaped)

	// Convolution
	slog.Debug("demo step", "step", "conv1d")
	vec, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5}, tensor.Shape{5}, backend)
	if err != nil {
		return err
	}
	kernel, err := tensor.FromSlice([]float64{0.5, 0.5}, tensor.Shape{2}, backend)
	if err != nil {
		return err
	}
	conv, err := vec.Conv1D(kernel)
	if err != nil {
		return err
	}
	p.print("vector", vec)
	p.print("kernel", kernel)
	p.print("convolution", conv)
	if p.err != nil {
		return p.err
	}

	// Statistics
	slog.Debug("demo step", "step", "statistics")
	_, err = fmt.Fprintln(w, "\nmat1 statistics:")
	if err != nil {
		return err
	}
	return writeStats(w, mat1)
}

// writeStats prints sum, mean, max and min of t, one per line.
func writeStats[T tensor.DType](w io.Writer, t *tensor.Tensor[T]) error {
	mean, err := t.Mean()
	if err != nil {
		return err
	}
	maxVal, err := t.Max()
	if err != nil {
		return err
	}
	minVal, err := t.Min()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "  sum:  %v\n  mean: %v\n  max:  %v\n  min:  %v\n",
		t.Sum(), mean, maxVal, minVal)
	return err
}
