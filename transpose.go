package baseline

import (
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/shapeinference"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

// Transpose axes of x.
//
// There should be one value in permutation for each axis in x (len(permutation) == rank(x)). If no
// permutation is given, the axes are reversed.
//
// The output will have: output.Shape.Dimension[ii] = x.Shape.Dimension[permutation[i]].
func Transpose(x *tensor.Tensor, permutation ...int) (*tensor.Tensor, error) {
	op := optypes.Transpose
	if err := checkOperands(op, x); err != nil {
		return nil, err
	}
	rank := x.Rank()
	if len(permutation) == 0 && rank > 0 {
		permutation = make([]int, rank)
		for axis := range permutation {
			permutation[axis] = rank - 1 - axis
		}
	}
	outputShape, err := shapeinference.Transpose(x.Shape(), permutation)
	if err != nil {
		return nil, err
	}

	// The strides of x, in the order of the output axes.
	inputStrides := x.Shape().Strides()
	permutedStrides := make([]int, rank)
	for axis, srcAxis := range permutation {
		permutedStrides[axis] = inputStrides[srcAxis]
	}
	output := tensor.Zeros(outputShape)
	inputFlat, outputFlat := x.Flat(), output.Flat()
	for outputIdx, location := range outputShape.Iter() {
		inputIdx := 0
		for axis, coord := range location {
			inputIdx += coord * permutedStrides[axis]
		}
		outputFlat[outputIdx] = inputFlat[inputIdx]
	}
	return output, nil
}

// Reshape x to the new dimensions, with the same total size. At most one dimension can be -1, and it
// is inferred from the others. Values keep their row-major order.
func Reshape(x *tensor.Tensor, dimensions ...int) (*tensor.Tensor, error) {
	op := optypes.Reshape
	if err := checkOperands(op, x); err != nil {
		return nil, err
	}
	outputShape, err := shapeinference.Reshape(x.Shape(), dimensions)
	if err != nil {
		return nil, err
	}
	return x.WithShape(outputShape)
}

// Squeeze removes the given axes of x, which must have dimension 1. If no axes are given, all axes
// with dimension 1 are removed.
func Squeeze(x *tensor.Tensor, axes ...int) (*tensor.Tensor, error) {
	op := optypes.Squeeze
	if err := checkOperands(op, x); err != nil {
		return nil, err
	}
	outputShape, err := shapeinference.Squeeze(x.Shape(), axes)
	if err != nil {
		return nil, err
	}
	return x.WithShape(outputShape)
}
