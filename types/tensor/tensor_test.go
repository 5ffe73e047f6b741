package tensor

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/shapes"
	"github.com/x448/float16"
)

func TestNew(t *testing.T) {
	x, err := New(shapes.Make(dtypes.Float32, 2, 3), []float64{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, 6, x.Size())
	assert.Equal(t, dtypes.Float32, x.DType())

	_, err = New(shapes.Make(dtypes.Float32, 2, 3), []float64{0, 1, 2})
	require.True(t, types.IsShapeError(err), "wrong buffer length should be a ShapeError, got %v", err)
	_, err = New(shapes.Shape{DType: dtypes.Float32, Dimensions: []int{-1, 3}}, nil)
	require.True(t, types.IsShapeError(err), "negative dimension should be a ShapeError, got %v", err)

	require.Panics(t, func() { _ = MustNew(shapes.Make(dtypes.Float32, 2), []float64{1}) })

	scalar := Scalar(dtypes.Float32, 7)
	assert.Equal(t, 0, scalar.Rank())
	assert.Equal(t, 1, scalar.Size())
	assert.Equal(t, 7.0, must.M1(scalar.ValueAtLocation(nil)))
}

func TestValues(t *testing.T) {
	x := MustFromAnyValue([][]float32{{0, 1, 2}, {3, 4, 5}})
	assert.Equal(t, 5.0, must.M1(x.ValueAtLocation([]int{1, 2})))
	assert.Equal(t, 4.0, must.M1(x.Value(4)))

	require.NoError(t, x.SetValueAtLocation([]int{0, 1}, 10))
	require.NoError(t, x.SetValue(5, 20))
	assert.Equal(t, []float64{0, 10, 2, 3, 4, 20}, x.Flat())

	_, err := x.Value(6)
	assert.True(t, types.IsShapeError(err))
	_, err = x.ValueAtLocation([]int{2, 0})
	assert.True(t, types.IsShapeError(err))
	err = x.SetValueAtLocation([]int{0}, 1)
	assert.True(t, types.IsShapeError(err))
	assert.True(t, types.IsShapeError(x.SetValue(-1, 0)))

	for index := range x.Size() {
		location := must.M1(x.LocationFromIndex(index))
		assert.Equal(t, index, must.M1(x.IndexFromLocation(location)))
	}
}

func TestFromFlatAndDimensions(t *testing.T) {
	x, err := FromFlatAndDimensions([]int32{1, -2, 3, -4}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, dtypes.Int32, x.DType())
	assert.Equal(t, []float64{1, -2, 3, -4}, x.Flat())

	x, err = FromFlatAndDimensions([]uint8{1, 255}, 2)
	require.NoError(t, err)
	assert.Equal(t, dtypes.Uint8, x.DType())
	assert.Equal(t, []float64{1, 255}, x.Flat())

	x, err = FromFlatAndDimensions([]float16.Float16{float16.Fromfloat32(0.5), float16.Fromfloat32(-2)}, 2)
	require.NoError(t, err)
	assert.Equal(t, dtypes.Float16, x.DType())
	assert.Equal(t, []float64{0.5, -2}, x.Flat())

	_, err = FromFlatAndDimensions([]float32{1, 2, 3}, 2, 2)
	assert.True(t, types.IsShapeError(err))
	_, err = FromFlatAndDimensions([]bool{true}, 1)
	assert.Error(t, err)
	_, err = FromFlatAndDimensions(1.0)
	assert.Error(t, err)
}

func TestCloneAndWithShape(t *testing.T) {
	x := MustFromAnyValue([]float64{1, 2, 3, 4})
	y := x.Clone()
	y.Flat()[0] = 100
	assert.Equal(t, 1.0, x.Flat()[0])

	z, err := x.WithShape(shapes.Make(dtypes.Float64, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, z.Shape().Dimensions)
	_, err = x.WithShape(shapes.Make(dtypes.Float64, 3))
	assert.True(t, types.IsShapeError(err))
}

func TestString(t *testing.T) {
	assert.Equal(t, "(Float32)[2 2]: [[1, 2], [3, 4]]", MustFromAnyValue([][]float32{{1, 2}, {3, 4}}).String())
	assert.Equal(t, "(Float64): 3.5", Scalar(dtypes.Float64, 3.5).String())
}
