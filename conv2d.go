package baseline

import (
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/shapeinference"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

// Conv2D computes the 2D convolution of input with filter.
//
// The input is [batch, inputChannels, height, width] (or [batch, height, width, inputChannels] with
// the "nhwc" layout), and the filter is [outputChannels, inputChannels/groups, height, width] in
// the default "oihw" layout. See Conv2DOptions for the padding, strides, dilations, groups, layouts,
// bias and activation.
//
// The output spatial size is 1 + (inputSize - effectiveFilterSize + padBegin + padEnd)/stride,
// rounded down. Padded positions are implicit zeros: they contribute nothing to the sums.
//
// Each output value sums over the input channels of its group, then the filter rows, then the filter
// columns, in that order.
func Conv2D(input, filter *tensor.Tensor, opts Conv2DOptions) (*tensor.Tensor, error) {
	op := optypes.Conv2D
	if err := checkOperands(op, input, filter); err != nil {
		return nil, err
	}
	input, err := inputToNCHW(op, input, opts.InputLayout)
	if err != nil {
		return nil, err
	}
	filter, err = conv2DFilterToCanonical(filter, opts.FilterLayout)
	if err != nil {
		return nil, err
	}
	groups := opts.Groups
	if groups == 0 {
		groups = 1
	}
	outputShape, window, err := shapeinference.Conv2D(input.Shape(), filter.Shape(),
		opts.Padding, opts.Strides, opts.Dilations, groups, opts.AutoPad)
	if err != nil {
		return nil, err
	}
	outputChannels := outputShape.Dimensions[1]
	if opts.Bias != nil {
		if err = shapeinference.Bias(op, opts.Bias.Shape(), outputChannels); err != nil {
			return nil, err
		}
	}

	inputDims, filterDims, outputDims := input.Shape().Dimensions, filter.Shape().Dimensions, outputShape.Dimensions
	inputStrides, filterStrides := input.Shape().Strides(), filter.Shape().Strides()
	inputHeight, inputWidth := inputDims[2], inputDims[3]
	filterInputChannels, filterHeight, filterWidth := filterDims[1], filterDims[2], filterDims[3]
	outputChannelsPerGroup := outputChannels / groups
	strideH, strideW := window.Strides[0], window.Strides[1]
	dilationH, dilationW := window.Dilations[0], window.Dilations[1]
	padH, padW := window.PadBegin(0), window.PadBegin(1)

	output := tensor.Zeros(outputShape)
	inputFlat, filterFlat, outputFlat := input.Flat(), filter.Flat(), output.Flat()
	outputIdx := 0
	for batch := range outputDims[0] {
		for outChannel := range outputChannels {
			inChannelStart := (outChannel / outputChannelsPerGroup) * filterInputChannels
			for outH := range outputDims[2] {
				for outW := range outputDims[3] {
					var sum float64
					for filterInChannel := range filterInputChannels {
						inputChannelIdx := batch*inputStrides[0] + (inChannelStart+filterInChannel)*inputStrides[1]
						filterChannelIdx := outChannel*filterStrides[0] + filterInChannel*filterStrides[1]
						for kernelH := range filterHeight {
							inH := outH*strideH - padH + kernelH*dilationH
							if inH < 0 || inH >= inputHeight {
								continue
							}
							for kernelW := range filterWidth {
								inW := outW*strideW - padW + kernelW*dilationW
								if inW < 0 || inW >= inputWidth {
									continue
								}
								sum += inputFlat[inputChannelIdx+inH*inputStrides[2]+inW] *
									filterFlat[filterChannelIdx+kernelH*filterStrides[2]+kernelW]
							}
						}
					}
					outputFlat[outputIdx] = sum
					outputIdx++
				}
			}
		}
	}

	output, err = addBiasAndActivation(output, opts.Bias, opts.Activation)
	if err != nil {
		return nil, err
	}
	return outputFromNCHW(output, opts.InputLayout)
}
