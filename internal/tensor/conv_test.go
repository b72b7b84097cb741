package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConv1D(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		kernel []float64
		want   []float64
	}{
		{"moving average", []float64{1, 2, 3, 4, 5}, []float64{0.5, 0.5}, []float64{1.5, 2.5, 3.5, 4.5}},
		{"kernel not flipped", []float64{1, 2, 3}, []float64{1, 0}, []float64{1, 2}},
		{"kernel as long as input", []float64{1, 2, 3}, []float64{1, 1, 1}, []float64{6}},
		{"single tap", []float64{1, -2, 3}, []float64{2}, []float64{2, -4, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := mustFromSlice(t, tt.input, Shape{len(tt.input)})
			k := mustFromSlice(t, tt.kernel, Shape{len(tt.kernel)})

			got, err := x.Conv1D(k)
			require.NoError(t, err)
			assertEqualShape(t, Shape{len(tt.input) - len(tt.kernel) + 1}, got.Shape(), "Conv1D")
			assert.InDeltaSlice(t, tt.want, got.Data(), 1e-12)
		})
	}
}

func TestConv1DIntegers(t *testing.T) {
	x := mustFromSlice(t, []int{1, 2, 3, 4}, Shape{4})
	k := mustFromSlice(t, []int{1, -1}, Shape{2})

	got, err := x.Conv1D(k)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -1, -1}, got.Data())
}

func TestConv1DErrors(t *testing.T) {
	signal := mustFromSlice(t, []float64{1, 2, 3}, Shape{3})
	matrix := Must(Zeros[float64](Shape{2, 2}, NewMockBackend()))

	_, err := matrix.Conv1D(signal)
	assert.ErrorIs(t, err, ErrRankMismatch)

	_, err = signal.Conv1D(matrix)
	assert.ErrorIs(t, err, ErrRankMismatch)

	long := mustFromSlice(t, []float64{1, 1, 1, 1}, Shape{4})
	got, err := signal.Conv1D(long)
	assert.Nil(t, got)
	require.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "kernel length 4 exceeds input length 3")

	empty := mustFromSlice(t, []float64{}, Shape{0})
	_, err = signal.Conv1D(empty)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestConv1DParallelMatchesSequential(t *testing.T) {
	input := make([]float64, 257)
	for i := range input {
		input[i] = float64(i%13) - 6
	}
	kernel := []float64{0.25, -1, 2, 0.5, 0.125}

	par, err := FromSlice(input, Shape{len(input)}, NewParallelMockBackend(3))
	require.NoError(t, err)
	k := mustFromSlice(t, kernel, Shape{len(kernel)})

	got, err := par.Conv1D(k)
	require.NoError(t, err)

	want, err := mustFromSlice(t, input, Shape{len(input)}).Conv1D(k)
	require.NoError(t, err)
	assert.Equal(t, want.Data(), got.Data())
}
