package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/born-ml/ndarray/tensor"
	"github.com/spf13/cobra"
)

func newStridesCmd() *cobra.Command {
	var (
		shape []int
		index []int
	)

	cmd := &cobra.Command{
		Use:   "strides",
		Short: "Show row-major strides and the flat offset of an index",
		Example: "  ndarray strides --shape 2,3,4\n" +
			"  ndarray strides --shape 2,3,4 --index 1,2,3",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireConfig(); err != nil {
				return err
			}
			return runStrides(cmd.OutOrStdout(), shape, index, cmd.Flags().Changed("index"))
		},
	}

	cmd.Flags().IntSliceVar(&shape, "shape", nil, "Comma-separated dimensions, e.g. 2,3,4")
	cmd.Flags().IntSliceVar(&index, "index", nil, "Comma-separated multi-index to convert to a flat offset")
	_ = cmd.MarkFlagRequired("shape")

	return cmd
}

func runStrides(w io.Writer, dims, index []int, withIndex bool) error {
	shape := tensor.Shape(dims)
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("--shape: %w", err)
	}
	strides := shape.ComputeStrides()
	slog.Debug("strides", "shape", shape.String(), "strides", strides)

	if _, err := fmt.Fprintf(w, "shape:    %v\nstrides:  %v\nelements: %d\n",
		shape, strides, shape.NumElements()); err != nil {
		return err
	}
	if !withIndex {
		return nil
	}

	offset, err := tensor.Offset(index, shape, strides)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "offset:   %d\n", offset)
	return err
}
