package baseline

import (
	"math"

	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/shapeinference"
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/shapes"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

var reduceOpTypes = map[types.ReduceKind]optypes.OpType{
	types.ReduceMax:       optypes.ReduceMax,
	types.ReduceMin:       optypes.ReduceMin,
	types.ReduceSum:       optypes.ReduceSum,
	types.ReduceProduct:   optypes.ReduceProduct,
	types.ReduceMean:      optypes.ReduceMean,
	types.ReduceL1:        optypes.ReduceL1,
	types.ReduceL2:        optypes.ReduceL2,
	types.ReduceLogSum:    optypes.ReduceLogSum,
	types.ReduceLogSumExp: optypes.ReduceLogSumExp,
	types.ReduceSumSquare: optypes.ReduceSumSquare,
}

// reducer folds the reduced values of one output element, left to right. Each value is first
// mapped (nil means as is), the fold is seeded with the first mapped value, and finalize is called
// once with the number of folded values.
type reducer struct {
	mapValue func(value float64) float64
	combine  func(acc, value float64) float64
	finalize func(acc float64, count int) float64
}

func identityFinalize(acc float64, _ int) float64 { return acc }

func sumCombine(acc, value float64) float64 { return acc + value }

func square(value float64) float64 { return value * value }

func logFinalize(acc float64, _ int) float64 { return math.Log(acc) }

// newReducer returns the reducer for the kind, or a ConfigError for an unknown kind.
func newReducer(kind types.ReduceKind) (reducer, error) {
	switch kind {
	case types.ReduceMax:
		return reducer{nil, func(acc, value float64) float64 { return max(acc, value) }, identityFinalize}, nil
	case types.ReduceMin:
		return reducer{nil, func(acc, value float64) float64 { return min(acc, value) }, identityFinalize}, nil
	case types.ReduceSum:
		return reducer{nil, sumCombine, identityFinalize}, nil
	case types.ReduceProduct:
		return reducer{nil, func(acc, value float64) float64 { return acc * value }, identityFinalize}, nil
	case types.ReduceMean:
		return reducer{nil, sumCombine, func(acc float64, count int) float64 { return acc / float64(count) }}, nil
	case types.ReduceL1:
		return reducer{math.Abs, sumCombine, identityFinalize}, nil
	case types.ReduceL2:
		return reducer{square, sumCombine, func(acc float64, _ int) float64 { return math.Sqrt(acc) }}, nil
	case types.ReduceLogSum:
		return reducer{nil, sumCombine, logFinalize}, nil
	case types.ReduceLogSumExp:
		return reducer{math.Exp, sumCombine, logFinalize}, nil
	case types.ReduceSumSquare:
		return reducer{square, sumCombine, identityFinalize}, nil
	default:
		return reducer{}, types.ConfigErrorf("invalid reduction kind %s", kind)
	}
}

// fold reduces values, in order. values is never empty.
func (r reducer) fold(values []float64) float64 {
	for ii, value := range values {
		if r.mapValue != nil {
			values[ii] = r.mapValue(value)
		}
	}
	acc := values[0]
	for _, value := range values[1:] {
		acc = r.combine(acc, value)
	}
	return r.finalize(acc, len(values))
}

// Reduce x over opts.Axes with the given kind of reduction.
//
// For each output element, the input values along the reduced axes are visited in row-major order
// of the (sorted) reduced axes, and folded left to right. The mean divides the sum by the number of
// values once, at the end.
//
// See ReduceOptions for the axes and keepDimensions semantics. Reducing zero elements is a
// types.ShapeError.
func Reduce(x *tensor.Tensor, kind types.ReduceKind, opts ReduceOptions) (*tensor.Tensor, error) {
	op := reduceOpTypes[kind]
	if err := checkOperands(op, x); err != nil {
		return nil, err
	}
	r, err := newReducer(kind)
	if err != nil {
		return nil, err
	}
	outputShape, reduceAxes, err := shapeinference.Reduce(x.Shape(), opts.Axes, opts.KeepDimensions)
	if err != nil {
		return nil, err
	}

	// Iterate over the output with the reduced axes kept (as 1), which doesn't change the flat
	// order, and over the reduced sub-space of the input for each output element.
	inputShape := x.Shape()
	inputStrides := inputShape.Strides()
	keptDims := make([]int, inputShape.Rank())
	copy(keptDims, inputShape.Dimensions)
	reducedDims := make([]int, len(reduceAxes))
	reducedStrides := make([]int, len(reduceAxes))
	for i, axis := range reduceAxes {
		keptDims[axis] = 1
		reducedDims[i] = inputShape.Dimensions[axis]
		reducedStrides[i] = inputStrides[axis]
	}
	keptShape := shapes.Make(inputShape.DType, keptDims...)
	reducedShape := shapes.Make(inputShape.DType, reducedDims...)
	count := reducedShape.Size()

	output := tensor.Zeros(outputShape)
	inputFlat, outputFlat := x.Flat(), output.Flat()
	values := make([]float64, count)
	for outputIdx, location := range keptShape.Iter() {
		baseIdx := 0
		for axis, coord := range location {
			baseIdx += coord * inputStrides[axis]
		}
		for valueIdx, reducedLocation := range reducedShape.Iter() {
			inputIdx := baseIdx
			for i, coord := range reducedLocation {
				inputIdx += coord * reducedStrides[i]
			}
			values[valueIdx] = inputFlat[inputIdx]
		}
		outputFlat[outputIdx] = r.fold(values)
	}
	return output, nil
}

// ReduceMax returns the maximum of x over the reduced axes.
func ReduceMax(x *tensor.Tensor, opts ReduceOptions) (*tensor.Tensor, error) {
	return Reduce(x, types.ReduceMax, opts)
}

// ReduceMin returns the minimum of x over the reduced axes.
func ReduceMin(x *tensor.Tensor, opts ReduceOptions) (*tensor.Tensor, error) {
	return Reduce(x, types.ReduceMin, opts)
}

// ReduceSum returns the sum of x over the reduced axes.
func ReduceSum(x *tensor.Tensor, opts ReduceOptions) (*tensor.Tensor, error) {
	return Reduce(x, types.ReduceSum, opts)
}

// ReduceProduct returns the product of x over the reduced axes.
func ReduceProduct(x *tensor.Tensor, opts ReduceOptions) (*tensor.Tensor, error) {
	return Reduce(x, types.ReduceProduct, opts)
}

// ReduceMean returns the mean of x over the reduced axes.
func ReduceMean(x *tensor.Tensor, opts ReduceOptions) (*tensor.Tensor, error) {
	return Reduce(x, types.ReduceMean, opts)
}

// ReduceL1 returns the sum of the absolute values of x over the reduced axes.
func ReduceL1(x *tensor.Tensor, opts ReduceOptions) (*tensor.Tensor, error) {
	return Reduce(x, types.ReduceL1, opts)
}

// ReduceL2 returns the square root of the sum of squares of x over the reduced axes.
func ReduceL2(x *tensor.Tensor, opts ReduceOptions) (*tensor.Tensor, error) {
	return Reduce(x, types.ReduceL2, opts)
}

// ReduceLogSum returns the natural log of the sum of x over the reduced axes.
func ReduceLogSum(x *tensor.Tensor, opts ReduceOptions) (*tensor.Tensor, error) {
	return Reduce(x, types.ReduceLogSum, opts)
}

// ReduceLogSumExp returns the natural log of the sum of exponentials of x over the reduced axes.
func ReduceLogSumExp(x *tensor.Tensor, opts ReduceOptions) (*tensor.Tensor, error) {
	return Reduce(x, types.ReduceLogSumExp, opts)
}

// ReduceSumSquare returns the sum of squares of x over the reduced axes.
func ReduceSumSquare(x *tensor.Tensor, opts ReduceOptions) (*tensor.Tensor, error) {
	return Reduce(x, types.ReduceSumSquare, opts)
}
