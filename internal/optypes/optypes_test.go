package optypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWebNN(t *testing.T) {
	assert.Equal(t, "conv2d", Conv2D.ToWebNN())
	assert.Equal(t, "convTranspose2d", ConvTranspose2D.ToWebNN())
	assert.Equal(t, "averagePool2d", AveragePool2D.ToWebNN())
	assert.Equal(t, "l2Pool2d", L2Pool2D.ToWebNN())
	assert.Equal(t, "reduceLogSumExp", ReduceLogSumExp.ToWebNN())
	assert.Equal(t, "expand", Broadcast.ToWebNN())
	assert.Equal(t, "OpType(1000)", OpType(1000).String())
}

func TestFromWebNN(t *testing.T) {
	require.Len(t, OpTypeValues(), int(Last)+1)
	for op := Invalid + 1; op < Last; op++ {
		got, err := FromWebNN(op.ToWebNN())
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}
	_, err := FromWebNN("softmax")
	require.Error(t, err)
}
