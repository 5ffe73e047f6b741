package baseline

import (
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/shapeinference"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

// BroadcastShape returns the NumPy-style broadcast of the dimensions a and b: dimensions are aligned
// from the trailing axis and each pair must either match or have one of them equal to 1.
func BroadcastShape(a, b []int) ([]int, error) {
	return shapeinference.BroadcastShape(a, b)
}

// Broadcast x to the given dimensions, returning a materialized copy.
//
// The axes of x are aligned to the trailing dimensions. An axis of x is broadcast if its dimension
// is 1 and the target's is not: then every output location reads x at coordinate 0 along it.
func Broadcast(x *tensor.Tensor, dimensions ...int) (*tensor.Tensor, error) {
	op := optypes.Broadcast
	if err := checkOperands(op, x); err != nil {
		return nil, err
	}
	outputShape, broadcastAxes, err := shapeinference.Broadcast(x.Shape(), dimensions)
	if err != nil {
		return nil, err
	}

	// Strides of x aligned to the output axes, 0 for the broadcast (or missing) axes.
	inputStrides := x.Shape().Strides()
	offset := outputShape.Rank() - x.Rank()
	alignedStrides := make([]int, outputShape.Rank())
	for axis, stride := range inputStrides {
		if !broadcastAxes[axis] {
			alignedStrides[axis+offset] = stride
		}
	}
	output := tensor.Zeros(outputShape)
	inputFlat, outputFlat := x.Flat(), output.Flat()
	for outputIdx, location := range outputShape.Iter() {
		inputIdx := 0
		for axis, coord := range location {
			inputIdx += coord * alignedStrides[axis]
		}
		outputFlat[outputIdx] = inputFlat[inputIdx]
	}
	return output, nil
}
