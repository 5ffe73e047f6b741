package shapeinference

import (
	"github.com/pkg/errors"
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/utils"
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/shapes"
)

// PoolOperations are the 2D pooling operations, see Pool2D.
var PoolOperations = utils.SetWith(optypes.AveragePool2D, optypes.L2Pool2D, optypes.MaxPool2D)

// Window2D holds the resolved spatial parameters of a 2D convolution or pooling: defaults filled in
// and auto-padding applied. Pairs are indexed [height, width].
type Window2D struct {
	// Size of the filter (or pooling window) before dilation.
	Size [2]int

	Strides   [2]int
	Dilations [2]int

	// Padding is [beginHeight, endHeight, beginWidth, endWidth].
	Padding [4]int
}

// EffectiveSize returns the size of the dilated window along the spatial axis (0 for height, 1 for width).
func (w Window2D) EffectiveSize(spatialAxis int) int {
	return EffectiveFilterSize(w.Size[spatialAxis], w.Dilations[spatialAxis])
}

// PadBegin returns the padding at the beginning of the spatial axis (0 for height, 1 for width).
func (w Window2D) PadBegin(spatialAxis int) int { return w.Padding[2*spatialAxis] }

// PadEnd returns the padding at the end of the spatial axis (0 for height, 1 for width).
func (w Window2D) PadEnd(spatialAxis int) int { return w.Padding[2*spatialAxis+1] }

// EffectiveFilterSize returns the extent of a filter of the given size once dilated:
// size + (size-1)*(dilation-1).
func EffectiveFilterSize(size, dilation int) int {
	return size + (size-1)*(dilation-1)
}

// AutoPadding returns the padding at the beginning and end of a spatial axis that makes the output
// size ceil(inputSize/stride) ("same" padding).
//
// With types.AutoPadSameUpper the extra padding (if the total is odd) goes at the end, with
// types.AutoPadSameLower at the beginning. Any other mode returns a ConfigError.
func AutoPadding(mode types.AutoPad, inputSize, effectiveFilterSize, stride int) (begin, end int, err error) {
	outSize := (inputSize + stride - 1) / stride
	needed := (outSize-1)*stride + effectiveFilterSize
	total := max(0, needed-inputSize)
	return splitPadding(mode, total)
}

// TransposedAutoPadding is the AutoPadding of a transposed convolution: the padding that makes the
// output size inputSize*stride.
//
// The padding is negative when the stride is larger than the effective filter size (plus
// outputPadding): the output is then extended past the last filter tap, and those positions are 0.
func TransposedAutoPadding(mode types.AutoPad, inputSize, effectiveFilterSize, stride, outputPadding int) (begin, end int, err error) {
	outSize := inputSize * stride
	total := (inputSize-1)*stride + effectiveFilterSize + outputPadding - outSize
	return splitPadding(mode, total)
}

func splitPadding(mode types.AutoPad, total int) (begin, end int, err error) {
	switch mode {
	case types.AutoPadSameUpper:
		begin = total / 2
		end = total - begin
	case types.AutoPadSameLower:
		end = total / 2
		begin = total - end
	default:
		err = types.ConfigErrorf("invalid auto-padding mode %s, only %s and %s can be used to calculate padding",
			mode, types.AutoPadSameUpper, types.AutoPadSameLower)
	}
	return
}

// resolveWindow2D checks the lengths and values of the spatial options and fills in their defaults:
// zero padding, strides and dilations of 1.
func resolveWindow2D(opType optypes.OpType, size [2]int, padding, strides, dilations []int) (window Window2D, err error) {
	window.Size = size
	window.Strides = [2]int{1, 1}
	window.Dilations = [2]int{1, 1}
	if len(padding) != 0 {
		if len(padding) != 4 {
			err = types.ShapeErrorf("%s: padding (%v) must either be nil or have 4 values [beginHeight, endHeight, beginWidth, endWidth]",
				opType, padding)
			return
		}
		for i, pad := range padding {
			if pad < 0 {
				err = types.ShapeErrorf("%s: padding[%d]=%d must be >= 0", opType, i, pad)
				return
			}
		}
		copy(window.Padding[:], padding)
	}
	if len(strides) != 0 {
		if len(strides) != 2 {
			err = types.ShapeErrorf("%s: strides (%v) must either be nil or have 2 values [height, width]", opType, strides)
			return
		}
		for i, stride := range strides {
			if stride < 1 {
				err = types.ShapeErrorf("%s: strides[%d]=%d must be >= 1", opType, i, stride)
				return
			}
		}
		copy(window.Strides[:], strides)
	}
	if len(dilations) != 0 {
		if len(dilations) != 2 {
			err = types.ShapeErrorf("%s: dilations (%v) must either be nil or have 2 values [height, width]", opType, dilations)
			return
		}
		for i, dilation := range dilations {
			if dilation < 1 {
				err = types.ShapeErrorf("%s: dilations[%d]=%d must be >= 1", opType, i, dilation)
				return
			}
		}
		copy(window.Dilations[:], dilations)
	}
	return
}

// applyAutoPad replaces the explicit padding of the window by the automatic one, if autoPad is not
// types.AutoPadExplicit.
func applyAutoPad(opType optypes.OpType, window *Window2D, autoPad types.AutoPad, inputSpatial [2]int) error {
	if autoPad == types.AutoPadExplicit {
		return nil
	}
	for spatialAxis := range 2 {
		begin, end, err := AutoPadding(autoPad, inputSpatial[spatialAxis], window.EffectiveSize(spatialAxis), window.Strides[spatialAxis])
		if err != nil {
			return errors.WithMessagef(err, "%s", opType)
		}
		window.Padding[2*spatialAxis] = begin
		window.Padding[2*spatialAxis+1] = end
	}
	return nil
}

// checkRank4 returns a ShapeError if the shape is not a valid rank-4 shape.
func checkRank4(opType optypes.OpType, name string, shape shapes.Shape) error {
	if !shape.Ok() {
		return types.ShapeErrorf("%s: invalid %s shape %s", opType, name, shape)
	}
	if shape.Rank() != 4 {
		return types.ShapeErrorf("%s: %s must be rank-4, got shape %s", opType, name, shape)
	}
	return nil
}

// Conv2D returns the output shape of a 2D convolution and its resolved window.
//
// The input must be in "nchw" layout ([batch, inputChannels, height, width]) and the filter in
// "oihw" layout ([outputChannels, inputChannels/groups, height, width]): callers permute other
// layouts first.
//
// Nil padding, strides or dilations take their default values. Groups must be >= 1.
func Conv2D(input, filter shapes.Shape, padding, strides, dilations []int, groups int, autoPad types.AutoPad) (
	output shapes.Shape, window Window2D, err error) {
	opType := optypes.Conv2D
	if err = checkRank4(opType, "input", input); err != nil {
		return
	}
	if err = checkRank4(opType, "filter", filter); err != nil {
		return
	}
	if groups < 1 {
		err = types.ShapeErrorf("%s: groups=%d must be >= 1", opType, groups)
		return
	}
	inputChannels, outputChannels := input.Dimensions[1], filter.Dimensions[0]
	filterInputChannels := filter.Dimensions[1]
	if inputChannels != filterInputChannels*groups {
		err = types.ShapeErrorf("%s: we must have inputChannels (=%d) = filterInputChannels (=%d) * groups (=%d) -- input shape is %s, filter shape is %s",
			opType, inputChannels, filterInputChannels, groups, input, filter)
		return
	}
	if outputChannels%groups != 0 {
		err = types.ShapeErrorf("%s: filter output channels dimension %d must be divisible by groups %d", opType, outputChannels, groups)
		return
	}

	window, err = resolveWindow2D(opType, [2]int{filter.Dimensions[2], filter.Dimensions[3]}, padding, strides, dilations)
	if err != nil {
		return
	}
	inputSpatial := [2]int{input.Dimensions[2], input.Dimensions[3]}
	if err = applyAutoPad(opType, &window, autoPad, inputSpatial); err != nil {
		return
	}

	output = shapes.Make(input.DType, input.Dimensions[0], outputChannels, 0, 0)
	for spatialAxis, inputDim := range inputSpatial {
		effectiveFilterDim := window.EffectiveSize(spatialAxis)
		numerator := inputDim - effectiveFilterDim + window.PadBegin(spatialAxis) + window.PadEnd(spatialAxis)
		if numerator < 0 {
			err = types.ShapeErrorf("%s: effective filter dimension %d for spatial axis %d is larger than padded input dimension %d "+
				"(input_dim: %d, filter_dim: %d, dilation: %d, padding: [%d,%d]) for input shape %s",
				opType, effectiveFilterDim, spatialAxis, inputDim+window.PadBegin(spatialAxis)+window.PadEnd(spatialAxis),
				inputDim, window.Size[spatialAxis], window.Dilations[spatialAxis],
				window.PadBegin(spatialAxis), window.PadEnd(spatialAxis), input)
			return
		}
		output.Dimensions[2+spatialAxis] = numerator/window.Strides[spatialAxis] + 1
	}
	return
}

// ConvTranspose2D returns the output shape of a 2D transposed convolution and its resolved window.
//
// The input must be in "nchw" layout and the filter in "oihw" layout, that is
// [outputChannels/groups, inputChannels, height, width]: callers permute other layouts first.
//
// Without outputSizes the output spatial size is
// (inputSize-1)*stride + effectiveFilterSize - padBegin - padEnd + outputPadding. The outputSizes,
// when given, are used verbatim. Each outputPadding must be smaller than its stride.
func ConvTranspose2D(input, filter shapes.Shape, padding, strides, dilations, outputPadding, outputSizes []int,
	groups int, autoPad types.AutoPad) (output shapes.Shape, window Window2D, err error) {
	opType := optypes.ConvTranspose2D
	if err = checkRank4(opType, "input", input); err != nil {
		return
	}
	if err = checkRank4(opType, "filter", filter); err != nil {
		return
	}
	if groups < 1 {
		err = types.ShapeErrorf("%s: groups=%d must be >= 1", opType, groups)
		return
	}
	inputChannels := input.Dimensions[1]
	if filter.Dimensions[1] != inputChannels {
		err = types.ShapeErrorf("%s: filter input channels (=%d) must match inputChannels (=%d) -- input shape is %s, filter shape is %s",
			opType, filter.Dimensions[1], inputChannels, input, filter)
		return
	}
	if inputChannels%groups != 0 {
		err = types.ShapeErrorf("%s: input channels dimension %d must be divisible by groups %d", opType, inputChannels, groups)
		return
	}
	outputChannels := filter.Dimensions[0] * groups

	window, err = resolveWindow2D(opType, [2]int{filter.Dimensions[2], filter.Dimensions[3]}, padding, strides, dilations)
	if err != nil {
		return
	}
	var outPadding [2]int
	if len(outputPadding) != 0 {
		if len(outputPadding) != 2 {
			err = types.ShapeErrorf("%s: outputPadding (%v) must either be nil or have 2 values [height, width]", opType, outputPadding)
			return
		}
		for i, pad := range outputPadding {
			if pad < 0 || pad >= window.Strides[i] {
				err = types.ShapeErrorf("%s: outputPadding[%d]=%d must be >= 0 and smaller than strides[%d]=%d",
					opType, i, pad, i, window.Strides[i])
				return
			}
		}
		copy(outPadding[:], outputPadding)
	}
	inputSpatial := [2]int{input.Dimensions[2], input.Dimensions[3]}
	if autoPad != types.AutoPadExplicit {
		for spatialAxis := range 2 {
			begin, end, padErr := TransposedAutoPadding(autoPad, inputSpatial[spatialAxis], window.EffectiveSize(spatialAxis),
				window.Strides[spatialAxis], outPadding[spatialAxis])
			if padErr != nil {
				err = errors.WithMessagef(padErr, "%s", opType)
				return
			}
			window.Padding[2*spatialAxis] = begin
			window.Padding[2*spatialAxis+1] = end
		}
	}

	output = shapes.Make(input.DType, input.Dimensions[0], outputChannels, 0, 0)
	if len(outputSizes) != 0 {
		if len(outputSizes) != 2 {
			err = types.ShapeErrorf("%s: outputSizes (%v) must either be nil or have 2 values [height, width]", opType, outputSizes)
			return
		}
		for i, size := range outputSizes {
			if size < 1 {
				err = types.ShapeErrorf("%s: outputSizes[%d]=%d must be >= 1", opType, i, size)
				return
			}
		}
		copy(output.Dimensions[2:], outputSizes)
		return
	}
	for spatialAxis, inputDim := range inputSpatial {
		outputDim := (inputDim-1)*window.Strides[spatialAxis] + window.EffectiveSize(spatialAxis) -
			window.PadBegin(spatialAxis) - window.PadEnd(spatialAxis) + outPadding[spatialAxis]
		if outputDim < 1 {
			err = types.ShapeErrorf("%s: output dimension %d for spatial axis %d is invalid (input_dim: %d, filter_dim: %d, "+
				"stride: %d, dilation: %d, padding: [%d,%d], outputPadding: %d)",
				opType, outputDim, spatialAxis, inputDim, window.Size[spatialAxis], window.Strides[spatialAxis],
				window.Dilations[spatialAxis], window.PadBegin(spatialAxis), window.PadEnd(spatialAxis), outPadding[spatialAxis])
			return
		}
		output.Dimensions[2+spatialAxis] = outputDim
	}
	return
}

// Pool2D returns the output shape of a 2D pooling and its resolved window.
//
// The input must be in "nchw" layout: callers permute other layouts first. A nil windowDimensions
// selects the whole spatial extent of the input. The outputSizes, when given, override the
// computed output spatial size, which is otherwise rounded according to rounding.
func Pool2D(opType optypes.OpType, input shapes.Shape, windowDimensions, padding, strides, dilations []int,
	autoPad types.AutoPad, rounding types.RoundingType, outputSizes []int) (output shapes.Shape, window Window2D, err error) {
	if !PoolOperations.Has(opType) {
		err = errors.Errorf("operation %s is not in the PoolOperations set, cannot process it with Pool2D", opType)
		return
	}
	if err = checkRank4(opType, "input", input); err != nil {
		return
	}
	if rounding != types.RoundingFloor && rounding != types.RoundingCeil {
		err = types.ConfigErrorf("%s: invalid rounding type %s", opType, rounding)
		return
	}
	inputSpatial := [2]int{input.Dimensions[2], input.Dimensions[3]}
	size := inputSpatial
	if len(windowDimensions) != 0 {
		if len(windowDimensions) != 2 {
			err = types.ShapeErrorf("%s: windowDimensions (%v) must either be nil or have 2 values [height, width]", opType, windowDimensions)
			return
		}
		for i, dim := range windowDimensions {
			if dim < 1 {
				err = types.ShapeErrorf("%s: windowDimensions[%d]=%d must be >= 1", opType, i, dim)
				return
			}
		}
		copy(size[:], windowDimensions)
	}
	window, err = resolveWindow2D(opType, size, padding, strides, dilations)
	if err != nil {
		return
	}
	if err = applyAutoPad(opType, &window, autoPad, inputSpatial); err != nil {
		return
	}

	output = input.Clone()
	if len(outputSizes) != 0 {
		if len(outputSizes) != 2 {
			err = types.ShapeErrorf("%s: outputSizes (%v) must either be nil or have 2 values [height, width]", opType, outputSizes)
			return
		}
		for i, outSize := range outputSizes {
			if outSize < 1 {
				err = types.ShapeErrorf("%s: outputSizes[%d]=%d must be >= 1", opType, i, outSize)
				return
			}
		}
		copy(output.Dimensions[2:], outputSizes)
		err = checkPoolTaps(opType, window, inputSpatial, output)
		return
	}
	for spatialAxis, inputDim := range inputSpatial {
		effectiveWindowDim := window.EffectiveSize(spatialAxis)
		numerator := inputDim - effectiveWindowDim + window.PadBegin(spatialAxis) + window.PadEnd(spatialAxis)
		if numerator < 0 {
			err = types.ShapeErrorf("%s: effective window dimension %d for spatial axis %d is larger than padded input dimension %d for input shape %s",
				opType, effectiveWindowDim, spatialAxis, inputDim+window.PadBegin(spatialAxis)+window.PadEnd(spatialAxis), input)
			return
		}
		stride := window.Strides[spatialAxis]
		if rounding == types.RoundingCeil {
			output.Dimensions[2+spatialAxis] = (numerator+stride-1)/stride + 1
		} else {
			output.Dimensions[2+spatialAxis] = numerator/stride + 1
		}
	}
	err = checkPoolTaps(opType, window, inputSpatial, output)
	return
}

// checkPoolTaps returns a ShapeError if some output position of a pooling has a window with no
// in-bounds input values. Windows are separable, so each spatial axis is checked on its own.
func checkPoolTaps(opType optypes.OpType, window Window2D, inputSpatial [2]int, output shapes.Shape) error {
	for spatialAxis, inputDim := range inputSpatial {
		stride, dilation := window.Strides[spatialAxis], window.Dilations[spatialAxis]
		for outPos := range output.Dimensions[2+spatialAxis] {
			start := outPos*stride - window.PadBegin(spatialAxis)
			hasTap := false
			for tap := range window.Size[spatialAxis] {
				if pos := start + tap*dilation; pos >= 0 && pos < inputDim {
					hasTap = true
					break
				}
			}
			if !hasTap {
				return types.ShapeErrorf("%s: window at output position %d of spatial axis %d has no input values "+
					"(window %v, strides %v, dilations %v, padding %v, input spatial dimensions %v)",
					opType, outPos, spatialAxis, window.Size, window.Strides, window.Dilations, window.Padding, inputSpatial)
			}
		}
	}
	return nil
}

// Bias checks that the bias of a convolution is a rank-1 shape with one value per output channel.
func Bias(opType optypes.OpType, bias shapes.Shape, outputChannels int) error {
	if !bias.Ok() {
		return types.ShapeErrorf("%s: invalid bias shape %s", opType, bias)
	}
	if bias.Rank() != 1 || bias.Dimensions[0] != outputChannels {
		return types.ShapeErrorf("%s: bias must have shape [%d] (one value per output channel), got %s", opType, outputChannels, bias)
	}
	return nil
}
