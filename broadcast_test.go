package baseline

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

func TestBroadcast(t *testing.T) {
	row := tensor.MustFromAnyValue([]float32{1, 2, 3})
	requireTensor(t, []int{2, 3}, []float64{1, 2, 3, 1, 2, 3}, must.M1(Broadcast(row, 2, 3)))

	column := tensor.MustFromAnyValue([][]float32{{1}, {2}})
	requireTensor(t, []int{2, 3}, []float64{1, 1, 1, 2, 2, 2}, must.M1(Broadcast(column, 2, 3)))
	requireTensor(t, []int{2, 2, 3}, []float64{1, 1, 1, 2, 2, 2, 1, 1, 1, 2, 2, 2}, must.M1(Broadcast(column, 2, 2, 3)))

	scalar := tensor.MustFromAnyValue(float32(7))
	requireTensor(t, []int{2, 2}, []float64{7, 7, 7, 7}, must.M1(Broadcast(scalar, 2, 2)))

	// Broadcasting to its own shape is the identity.
	x := patternTensor(1, 2, 3, 4)
	requireSameTensor(t, x, must.M1(Broadcast(x, x.Shape().Dimensions...)))

	_, err := Broadcast(tensor.MustFromAnyValue([][]float32{{1, 2, 3}, {4, 5, 6}}), 3)
	require.True(t, types.IsShapeError(err), "broadcast [2,3] to [3] should fail with ShapeError, got %v", err)
	_, err = Broadcast(row, 2, 4)
	require.True(t, types.IsShapeError(err))
}

func TestBroadcastShape(t *testing.T) {
	require.Equal(t, []int{4, 2, 3}, must.M1(BroadcastShape([]int{4, 1, 3}, []int{2, 1})))
	_, err := BroadcastShape([]int{2, 3}, []int{2})
	require.True(t, types.IsShapeError(err))
}
