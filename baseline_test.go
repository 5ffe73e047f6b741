package baseline

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/shapes"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

// iotaTensor returns a Float32 tensor with the given dimensions and values 0, 1, 2, ...
func iotaTensor(dimensions ...int) *tensor.Tensor {
	shape := shapes.Make(dtypes.Float32, dimensions...)
	flat := make([]float64, shape.Size())
	for ii := range flat {
		flat[ii] = float64(ii)
	}
	return tensor.MustNew(shape, flat)
}

// patternTensor returns a Float32 tensor with small integer values (positive and negative) that
// don't follow the index order, so sums are exact and permutation mistakes are visible.
func patternTensor(seed int, dimensions ...int) *tensor.Tensor {
	shape := shapes.Make(dtypes.Float32, dimensions...)
	flat := make([]float64, shape.Size())
	for ii := range flat {
		flat[ii] = float64((ii*7+seed*3)%11 - 5)
	}
	return tensor.MustNew(shape, flat)
}

// requireTensor checks the dimensions and values of got.
func requireTensor(t *testing.T, wantDimensions []int, wantFlat []float64, got *tensor.Tensor) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, len(wantDimensions), got.Rank(), "rank of %s", got.Shape())
	if len(wantDimensions) > 0 {
		require.Equal(t, wantDimensions, got.Shape().Dimensions)
	}
	assert.InDeltaSlice(t, wantFlat, got.Flat(), 1e-9)
}

// requireSameTensor checks that got has the same dimensions and values as want.
func requireSameTensor(t *testing.T, want, got *tensor.Tensor) {
	t.Helper()
	requireTensor(t, want.Shape().Dimensions, want.Flat(), got)
}
