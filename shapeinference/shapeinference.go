// Package shapeinference calculates the shape resulting from operations and validates its inputs.
//
// Every operator of the baseline evaluator validates its operands and options here, before any value
// is computed: so an operator either fails with a typed error (see types.ShapeError and
// types.ConfigError) or fills a freshly allocated output of the shape returned here.
//
// It defines a BinaryOp function for shape inference for the elementwise binary functions, using the
// NumPy broadcasting rules (see BroadcastShape).
//
// The unary functions (and activations) don't change the shape. For the remainder operations, each
// one gets its own shape inference function.
package shapeinference

import (
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/utils"
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/shapes"
)

var (
	// StandardBinaryOperations include all elementwise operations that have two operands usually named
	// lhs (left-hand-side) and rhs (right-hand-side), broadcast to a common shape.
	StandardBinaryOperations = utils.SetWith(
		optypes.Add,
		optypes.Sub,
		optypes.Mul,
		optypes.Div,
		optypes.Max,
		optypes.Min,
		optypes.Pow,
	)

	// StandardUnaryOperations include all operations that have a single operand as input, and the return
	// shape is the same as the input (so no reductions). Activations are included.
	StandardUnaryOperations = utils.SetWith(
		optypes.Abs,
		optypes.Ceil,
		optypes.Cos,
		optypes.Erf,
		optypes.Exp,
		optypes.Floor,
		optypes.Log,
		optypes.Neg,
		optypes.Reciprocal,
		optypes.Sin,
		optypes.Sqrt,
		optypes.Tan,

		optypes.Clamp,
		optypes.Elu,
		optypes.HardSigmoid,
		optypes.HardSwish,
		optypes.LeakyRelu,
		optypes.Linear,
		optypes.Relu,
		optypes.Sigmoid,
		optypes.Softplus,
		optypes.Softsign,
		optypes.Tanh,
	)

	// ReduceOperations are all the reductions, see Reduce.
	ReduceOperations = utils.SetWith(
		optypes.ReduceL1,
		optypes.ReduceL2,
		optypes.ReduceLogSum,
		optypes.ReduceLogSumExp,
		optypes.ReduceMax,
		optypes.ReduceMean,
		optypes.ReduceMin,
		optypes.ReduceProduct,
		optypes.ReduceSum,
		optypes.ReduceSumSquare,
	)
)

// BroadcastShape returns the NumPy-style broadcast of the dimensions a and b.
//
// Dimensions are aligned from the trailing axis, and missing leading dimensions are taken as 1. For
// each aligned pair the result is the dimension that is not 1 (or either one if they are equal).
// Any other mismatch is a ShapeError.
func BroadcastShape(a, b []int) ([]int, error) {
	rank := max(len(a), len(b))
	output := make([]int, rank)
	for axis := range rank {
		aDim, bDim := 1, 1
		if aAxis := axis - (rank - len(a)); aAxis >= 0 {
			aDim = a[aAxis]
		}
		if bAxis := axis - (rank - len(b)); bAxis >= 0 {
			bDim = b[bAxis]
		}
		switch {
		case bDim == 1 || aDim == bDim:
			output[axis] = aDim
		case aDim == 1:
			output[axis] = bDim
		default:
			return nil, types.ShapeErrorf("incompatible shapes %v and %v for broadcasting: axis #%d has dimensions %d and %d",
				a, b, axis, aDim, bDim)
		}
	}
	return output, nil
}

// Broadcast returns the shape of the operand broadcast to the target dimensions, and for each
// of the operand's axes whether it is broadcast (an operand dimension of 1 expanded to a larger target
// dimension).
//
// The operand axes are aligned to the trailing target axes. The target rank must be at least the
// operand rank, and operand dimensions that are not 1 must match the target: otherwise a ShapeError
// is returned.
func Broadcast(operand shapes.Shape, target []int) (output shapes.Shape, broadcastAxes []bool, err error) {
	rank := operand.Rank()
	if len(target) < rank {
		err = types.ShapeErrorf("Broadcast() cannot be used to shrink the rank of the operand, got operand=%s and target dimensions %v",
			operand, target)
		return
	}
	if err = shapes.CheckDimensions(target); err != nil {
		err = errors.WithMessagef(err, "Broadcast() target dimensions")
		return
	}
	broadcastAxes = make([]bool, rank)
	offset := len(target) - rank
	for axis, dim := range operand.Dimensions {
		targetDim := target[axis+offset]
		switch {
		case dim == targetDim:
		case dim == 1:
			broadcastAxes[axis] = true
		default:
			err = types.ShapeErrorf("Broadcast() requires operand axes to be broadcast to be of dimension 1, but got operand.Dimensions[%d]=%d and target[%d]=%d",
				axis, dim, axis+offset, targetDim)
			return
		}
	}
	output = shapes.Make(operand.DType, target...)
	return
}

// BinaryOp returns the expected output shape for ops in the StandardBinaryOperations set: the
// broadcast of the two operand shapes.
//
// It returns an error if the operation is not a binary one, if the data types don't match, or if
// the shapes can't be broadcast together.
func BinaryOp(opType optypes.OpType, lhsShape, rhsShape shapes.Shape) (output shapes.Shape, err error) {
	if !StandardBinaryOperations.Has(opType) {
		err = errors.Errorf("operations %s is not in the StandardBinaryOperations set, cannot process it with BinaryOp", opType)
		return
	}
	if !lhsShape.Ok() || !rhsShape.Ok() {
		err = types.ShapeErrorf("invalid shape for %s or %s for %q", lhsShape, rhsShape, opType)
		return
	}
	if lhsShape.DType != rhsShape.DType {
		err = types.ShapeErrorf("data types (DType) for %s must match, got %s and %s", opType, lhsShape, rhsShape)
		return
	}
	dims, err := BroadcastShape(lhsShape.Dimensions, rhsShape.Dimensions)
	if err != nil {
		err = errors.WithMessagef(err, "BinaryOp(%s)", opType)
		return
	}
	output = shapes.Make(lhsShape.DType, dims...)
	return
}

// UnaryOp checks the operation is in StandardUnaryOperations and returns either an error or the
// output shape, which is the same as the operand.
func UnaryOp(opType optypes.OpType, operand shapes.Shape) (output shapes.Shape, err error) {
	if !StandardUnaryOperations.Has(opType) {
		err = errors.Errorf("operation %s is not in the StandardUnaryOperations set, cannot process it with UnaryOp", opType)
		return
	}
	if !operand.Ok() {
		err = types.ShapeErrorf("invalid shape %s for UnaryOp %s", operand, opType)
		return
	}
	output = operand
	return
}

// Cast returns the operand shape with the target dtype. Only integer and float dtypes are supported.
func Cast(operand shapes.Shape, dtype dtypes.DType) (output shapes.Shape, err error) {
	if !operand.Ok() {
		err = types.ShapeErrorf("Cast: invalid operand shape %s", operand)
		return
	}
	if dtype == dtypes.InvalidDType || !(dtype.IsFloat() || dtype.IsInt()) {
		err = types.ConfigErrorf("Cast: unsupported target data type %s", dtype)
		return
	}
	output = operand.Clone()
	output.DType = dtype
	return
}

// Transpose all axes of the operand.
// There must be one value in permutation for each axis in the operand.
// The output will have: output.Shape.Dimension[ii] = operand.Shape.Dimension[permutation[i]].
func Transpose(operand shapes.Shape, permutation []int) (output shapes.Shape, err error) {
	rank := operand.Rank()
	if len(permutation) != rank {
		err = types.ShapeErrorf("Transpose() requires all axes permutation to be defined, operand has shape %s, but %d permutation were given",
			operand, len(permutation))
		return
	}
	if rank == 0 {
		return operand, nil
	}

	// Check permutation axes are within range and unique.
	axesSet := slices.Clone(permutation)
	slices.Sort(axesSet)
	for ii, srcAxis := range axesSet {
		if srcAxis < 0 || srcAxis >= rank {
			err = types.ShapeErrorf("invalid permutation axis %d given to Transpose(%s), it must be within the range of its rank",
				srcAxis, operand)
			return
		}
		if ii > 0 && srcAxis == axesSet[ii-1] {
			err = types.ShapeErrorf("invalid permutation given to Transpose(%s, %v), there cannot be any repeated axis, each must appear exactly once",
				operand, permutation)
			return
		}
	}

	output = operand.Clone()
	for axis := range output.Dimensions {
		srcAxis := permutation[axis]
		output.Dimensions[axis] = operand.Dimensions[srcAxis]
	}
	return
}

// Reshape returns the operand shape with new dimensions of the same total size.
//
// At most one of the new dimensions can be -1, in which case it is inferred from the size of the
// operand and the other dimensions.
func Reshape(operand shapes.Shape, dimensions []int) (output shapes.Shape, err error) {
	dims := slices.Clone(dimensions)
	inferredAxis := -1
	knownSize := 1
	for axis, dim := range dims {
		switch {
		case dim == -1:
			if inferredAxis >= 0 {
				err = types.ShapeErrorf("Reshape(%s, %v): at most one dimension can be -1", operand, dimensions)
				return
			}
			inferredAxis = axis
		case dim < 0:
			err = types.ShapeErrorf("Reshape(%s, %v): invalid negative dimension %d at axis #%d", operand, dimensions, dim, axis)
			return
		default:
			knownSize *= dim
		}
	}
	size := operand.Size()
	if inferredAxis >= 0 {
		if knownSize == 0 || size%knownSize != 0 {
			err = types.ShapeErrorf("Reshape(%s, %v): cannot infer dimension of axis #%d", operand, dimensions, inferredAxis)
			return
		}
		dims[inferredAxis] = size / knownSize
		knownSize = size
	}
	if knownSize != size {
		err = types.ShapeErrorf("Reshape(%s, %v): new dimensions have size %d, but the operand has size %d",
			operand, dimensions, knownSize, size)
		return
	}
	output = shapes.Make(operand.DType, dims...)
	return
}

// Squeeze returns the operand shape with the given axes removed. Each of the axes must have
// dimension 1. If axes is nil, all axes of dimension 1 are removed.
func Squeeze(operand shapes.Shape, axes []int) (output shapes.Shape, err error) {
	rank := operand.Rank()
	squeezeSet := utils.MakeSet[int](rank)
	if axes == nil {
		for axis, dim := range operand.Dimensions {
			if dim == 1 {
				squeezeSet.Insert(axis)
			}
		}
	}
	for i, axis := range axes {
		adjustedAxis, err := AdjustAxisToRank(axis, rank)
		if err != nil {
			return shapes.Invalid(), errors.WithMessagef(err, "invalid value for axes[%d]=%d for Squeeze(%s)", i, axis, operand)
		}
		if squeezeSet.Has(adjustedAxis) {
			return shapes.Invalid(), types.ShapeErrorf("duplicate value for axes[%d]=%d for Squeeze, axes=%v", i, axis, axes)
		}
		if operand.Dimensions[adjustedAxis] != 1 {
			return shapes.Invalid(), types.ShapeErrorf("Squeeze(%s): axis %d has dimension %d, only axes of dimension 1 can be squeezed",
				operand, axis, operand.Dimensions[adjustedAxis])
		}
		squeezeSet.Insert(adjustedAxis)
	}
	dims := make([]int, 0, rank)
	for axis, dim := range operand.Dimensions {
		if !squeezeSet.Has(axis) {
			dims = append(dims, dim)
		}
	}
	output = shapes.Make(operand.DType, dims...)
	return
}

// AdjustAxisToRank returns a positive axis, adjusting negative numbers to the correct rank.
func AdjustAxisToRank(axis, rank int) (int, error) {
	if axis < -rank || axis >= rank {
		return -1, types.ShapeErrorf("axis %d is out of range for the rank %d", axis, rank)
	}
	if axis < 0 {
		axis += rank
	}
	return axis, nil
}

// Reduce returns the operation's output shape and the normalized reduced axes: negative axes are
// converted to positive and the result is sorted. The given axes are not modified.
//
// A nil axes means all axes are reduced, while an empty (non-nil) axes reduces nothing. The reduced
// axes are set to 1 in the output if keepDimensions is true, and removed otherwise: so reducing all
// axes without keepDimensions returns a scalar.
//
// Reducing zero elements is a ShapeError, since most reductions have no value for it.
func Reduce(operand shapes.Shape, axes []int, keepDimensions bool) (output shapes.Shape, reduceAxes []int, err error) {
	if !operand.Ok() {
		err = types.ShapeErrorf("Reduce: invalid operand shape %s", operand)
		return
	}
	rank := operand.Rank()
	if axes == nil {
		reduceAxes = make([]int, rank)
		for axis := range reduceAxes {
			reduceAxes[axis] = axis
		}
	} else {
		// Check the axes are valid.
		if len(axes) > rank {
			err = types.ShapeErrorf("input for Reduce has rank=%d, but %d axes for reduction were given", rank, len(axes))
			return
		}
		axesSet := utils.MakeSet[int](len(axes))
		reduceAxes = make([]int, len(axes))
		for i, axis := range axes {
			adjustedAxis, axisErr := AdjustAxisToRank(axis, rank)
			if axisErr != nil {
				err = errors.WithMessagef(axisErr, "invalid value for axes[%d]=%d for Reduce, operand.shape=%s", i, axis, operand)
				return
			}
			if axesSet.Has(adjustedAxis) {
				err = types.ShapeErrorf("duplicate value for axes[%d]=%d for Reduce, axes=%v", i, axis, axes)
				return
			}
			axesSet.Insert(adjustedAxis)
			reduceAxes[i] = adjustedAxis
		}
		slices.Sort(reduceAxes)
	}

	// Build the output shape.
	reducedSize := 1
	dims := make([]int, 0, rank)
	for axis, dim := range operand.Dimensions {
		if slices.Contains(reduceAxes, axis) {
			reducedSize *= dim
			if keepDimensions {
				dims = append(dims, 1)
			}
			continue
		}
		dims = append(dims, dim)
	}
	if reducedSize == 0 {
		err = types.ShapeErrorf("Reduce(%s, axes=%v): cannot reduce zero elements", operand, reduceAxes)
		return
	}
	output = shapes.Make(operand.DType, dims...)
	return
}
