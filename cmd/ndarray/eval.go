package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/born-ml/ndarray/printer"
	"github.com/born-ml/ndarray/tensor"
	"github.com/spf13/cobra"
)

// evalOps lists the operations eval understands, in help order.
var evalOps = []string{
	"add", "sub", "mul", "div",
	"add-scalar", "sub-scalar", "mul-scalar", "div-scalar",
	"matmul", "transpose", "reshape", "flatten", "conv1d", "stats",
}

type evalOptions struct {
	Op       string
	DType    string
	Shape    []int
	Data     []float64
	RHSShape []int
	RHSData  []float64
	Scalar   float64
	To       []int
}

func newEvalCmd() *cobra.Command {
	var opts evalOptions

	cmd := &cobra.Command{
		Use:   "eval <op>",
		Short: "Apply one tensor operation to literal data and print the result",
		Long: "Apply one tensor operation to literal data and print the result.\n\n" +
			"Operations: " + strings.Join(evalOps, ", "),
		Example: "  ndarray eval add --shape 2,3 --data 1,2,3,4,5,6 --rhs-shape 2,3 --rhs-data 7,8,9,10,11,12\n" +
			"  ndarray eval reshape --shape 2,3 --data 1,2,3,4,5,6 --to 3,2\n" +
			"  ndarray eval conv1d --shape 5 --data 1,2,3,4,5 --rhs-shape 2 --rhs-data 0.5,0.5",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			opts.Op = args[0]
			return runEval(cmd.OutOrStdout(), opts, newBackend(cfg), cfg.PrintOptions())
		},
	}

	cmd.Flags().StringVar(&opts.DType, "dtype", "float64", "Element type (float64|float32|int64|int32)")
	cmd.Flags().IntSliceVar(&opts.Shape, "shape", nil, "Shape of the input, e.g. 2,3")
	cmd.Flags().Float64SliceVar(&opts.Data, "data", nil, "Input elements in row-major order")
	cmd.Flags().IntSliceVar(&opts.RHSShape, "rhs-shape", nil, "Shape of the second operand")
	cmd.Flags().Float64SliceVar(&opts.RHSData, "rhs-data", nil, "Second operand elements in row-major order")
	cmd.Flags().Float64Var(&opts.Scalar, "scalar", 0, "Scalar operand for *-scalar operations")
	cmd.Flags().IntSliceVar(&opts.To, "to", nil, "Target shape for reshape")

	return cmd
}

// elementKind describes how eval converts float64 flag values to a dtype.
type elementKind struct {
	name    string
	integer bool
	fits    func(v float64) bool
}

var elementKinds = map[string]elementKind{
	"float64": {name: "float64", fits: func(float64) bool { return true }},
	"float32": {name: "float32", fits: func(v float64) bool {
		return math.IsInf(v, 0) || math.IsNaN(v) || math.Abs(v) <= math.MaxFloat32
	}},
	// -MinInt64 is 2^63, exactly representable as a float64 unlike MaxInt64.
	"int64": {name: "int64", integer: true, fits: func(v float64) bool {
		return v >= math.MinInt64 && v < -math.MinInt64
	}},
	"int32": {name: "int32", integer: true, fits: func(v float64) bool {
		return v >= math.MinInt32 && v <= math.MaxInt32
	}},
}

func runEval(w io.Writer, opts evalOptions, backend tensor.Backend, popts printer.Options) error {
	slog.Debug("eval", "op", opts.Op, "dtype", opts.DType, "shape", opts.Shape)

	kind, ok := elementKinds[opts.DType]
	if !ok {
		return fmt.Errorf("unsupported --dtype %q (want float64|float32|int64|int32)", opts.DType)
	}

	switch opts.DType {
	case "float32":
		return evalAs[float32](w, opts, backend, popts, kind)
	case "int64":
		return evalAs[int64](w, opts, backend, popts, kind)
	case "int32":
		return evalAs[int32](w, opts, backend, popts, kind)
	default:
		return evalAs[float64](w, opts, backend, popts, kind)
	}
}

func evalAs[T tensor.DType](w io.Writer, opts evalOptions, backend tensor.Backend, popts printer.Options, kind elementKind) error {
	lhs, err := buildTensor[T]("data", opts.Data, opts.Shape, backend, kind)
	if err != nil {
		return err
	}

	rhs := func() (*tensor.Tensor[T], error) {
		return buildTensor[T]("rhs-data", opts.RHSData, opts.RHSShape, backend, kind)
	}
	scalar := func() (T, error) {
		return convertValue[T]("scalar", opts.Scalar, kind)
	}

	var (
		out   *tensor.Tensor[T]
		label string
	)

	switch opts.Op {
	case "add", "sub", "mul", "div", "matmul", "conv1d":
		other, err := rhs()
		if err != nil {
			return err
		}
		out, err = binaryOp(opts.Op, lhs, other)
		if err != nil {
			return err
		}
		label = opts.Op

	case "add-scalar", "sub-scalar", "mul-scalar", "div-scalar":
		s, err := scalar()
		if err != nil {
			return err
		}
		out, err = scalarOp(opts.Op, lhs, s)
		if err != nil {
			return err
		}
		label = fmt.Sprintf("%s %v", opts.Op, s)

	case "transpose":
		out, label = lhs.Transpose(), "transpose"

	case "reshape":
		if len(opts.To) == 0 {
			return fmt.Errorf("reshape requires --to")
		}
		out, err = lhs.Reshape(tensor.Shape(opts.To))
		if err != nil {
			return err
		}
		label = "reshape"

	case "flatten":
		out, label = lhs.Flatten(), "flatten"

	case "stats":
		if err := printer.Print(w, "input", lhs, popts); err != nil {
			return err
		}
		return writeStats(w, lhs)

	default:
		return fmt.Errorf("unknown op %q (want one of: %s)", opts.Op, strings.Join(evalOps, ", "))
	}

	return printer.Print(w, label, out, popts)
}

func binaryOp[T tensor.DType](op string, a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	switch op {
	case "add":
		return a.Add(b)
	case "sub":
		return a.Sub(b)
	case "mul":
		return a.Mul(b)
	case "div":
		return a.Div(b)
	case "matmul":
		return a.MatMul(b)
	case "conv1d":
		return a.Conv1D(b)
	}
	return nil, fmt.Errorf("unknown binary op %q", op)
}

func scalarOp[T tensor.DType](op string, a *tensor.Tensor[T], s T) (*tensor.Tensor[T], error) {
	switch op {
	case "add-scalar":
		return a.AddScalar(s), nil
	case "sub-scalar":
		return a.SubScalar(s), nil
	case "mul-scalar":
		return a.MulScalar(s), nil
	case "div-scalar":
		return a.DivScalar(s)
	}
	return nil, fmt.Errorf("unknown scalar op %q", op)
}

// buildTensor converts flag values to T and shapes them.
// A missing shape means a 1D tensor over all values.
func buildTensor[T tensor.DType](flag string, values []float64, dims []int, backend tensor.Backend, kind elementKind) (*tensor.Tensor[T], error) {
	data := make([]T, len(values))
	for i, v := range values {
		c, err := convertValue[T](flag, v, kind)
		if err != nil {
			return nil, err
		}
		data[i] = c
	}

	shape := tensor.Shape(dims)
	if dims == nil {
		shape = tensor.Shape{len(data)}
	}

	t, err := tensor.FromSlice(data, shape, backend)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return t, nil
}

// convertValue converts v to T, rejecting fractions for integer types
// and values outside the range of T.
func convertValue[T tensor.DType](flag string, v float64, kind elementKind) (T, error) {
	var zero T
	if kind.integer && (math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v)) {
		return zero, fmt.Errorf("--%s: %v is not an integer", flag, v)
	}
	if !kind.fits(v) {
		return zero, fmt.Errorf("--%s: %v overflows %s", flag, v, kind.name)
	}
	return T(v), nil
}
