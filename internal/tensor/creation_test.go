package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeros(t *testing.T) {
	backend := NewMockBackend()

	tests := []struct {
		name  string
		shape Shape
	}{
		{"scalar", Shape{}},
		{"1D", Shape{5}},
		{"2D", Shape{3, 4}},
		{"3D", Shape{2, 3, 4}},
		{"empty", Shape{0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := Zeros[float32](tt.shape, backend)
			require.NoError(t, err)
			assertEqualShape(t, tt.shape, x.Shape(), "Zeros")
			assert.Equal(t, tt.shape.NumElements(), x.NumElements())
			for i, v := range x.Data() {
				if v != 0 {
					t.Errorf("Zeros()[%d] = %v, want 0", i, v)
				}
			}
			assert.Same(t, backend, x.Backend())
		})
	}
}

func TestZerosRejectsNegativeDimensions(t *testing.T) {
	_, err := Zeros[int32](Shape{2, -3}, NewMockBackend())
	require.ErrorIs(t, err, ErrInvalidShape)
	assert.Contains(t, err.Error(), "tensor: zeros:")
}

func TestZerosRejectsOverflowingShape(t *testing.T) {
	_, err := Zeros[float64](Shape{1 << 32, 1 << 32}, NewMockBackend())
	require.ErrorIs(t, err, ErrInvalidShape)
	assert.Contains(t, err.Error(), "tensor: zeros:")

	x := Must(Zeros[float64](Shape{4}, NewMockBackend()))
	_, err = x.Reshape(Shape{1 << 32, 1 << 32})
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestOnes(t *testing.T) {
	x, err := Ones[int64](Shape{2, 3}, NewMockBackend())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1, 1, 1, 1, 1}, x.Data())
}

func TestFull(t *testing.T) {
	x, err := Full[float32](Shape{3, 3}, 3.14, NewMockBackend())
	require.NoError(t, err)
	for i, v := range x.Data() {
		assert.InDelta(t, 3.14, v, 1e-6, "element %d", i)
	}

	_, err = Full[float32](Shape{-1}, 1, NewMockBackend())
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestArange(t *testing.T) {
	x, err := Arange[int32](0, 10, NewMockBackend())
	require.NoError(t, err)
	assertEqualShape(t, Shape{10}, x.Shape(), "Arange")
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, x.Data())

	f, err := Arange[float64](1.5, 4, NewMockBackend())
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, f.Data())

	empty, err := Arange[int](3, 3, NewMockBackend())
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumElements())

	_, err = Arange[int](5, 2, NewMockBackend())
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestEye(t *testing.T) {
	x, err := Eye[float64](3, NewMockBackend())
	require.NoError(t, err)
	assertEqualShape(t, Shape{3, 3}, x.Shape(), "Eye")

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := x.At([]int{i, j})
			require.NoError(t, err)
			want := 0.0
			if i == j {
				want = 1
			}
			assert.Equal(t, want, v, "Eye[%d,%d]", i, j)
		}
	}

	_, err = Eye[float64](-2, NewMockBackend())
	assert.ErrorIs(t, err, ErrInvalidShape)
}
