package baseline

import (
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/shapeinference"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

// ConvTranspose2D computes the 2D transposed convolution (sometimes called "deconvolution") of
// input with filter.
//
// The input is [batch, inputChannels, height, width] (or "nhwc"), and the filter is
// [inputChannels, outputChannels/groups, height, width] in the default "iohw" layout. See
// ConvTranspose2DOptions for the other options.
//
// Conceptually each input value is scattered, multiplied by the filter, to the output positions
// inputPosition*stride + kernelPosition*dilation - padBegin. It is computed here in the equivalent
// gather form: for each output position, only the kernel taps that land exactly on an input
// position (on a stride boundary, and inside the input) contribute.
func ConvTranspose2D(input, filter *tensor.Tensor, opts ConvTranspose2DOptions) (*tensor.Tensor, error) {
	op := optypes.ConvTranspose2D
	if err := checkOperands(op, input, filter); err != nil {
		return nil, err
	}
	input, err := inputToNCHW(op, input, opts.InputLayout)
	if err != nil {
		return nil, err
	}
	filter, err = convTranspose2DFilterToCanonical(filter, opts.FilterLayout)
	if err != nil {
		return nil, err
	}
	groups := opts.Groups
	if groups == 0 {
		groups = 1
	}
	outputShape, window, err := shapeinference.ConvTranspose2D(input.Shape(), filter.Shape(),
		opts.Padding, opts.Strides, opts.Dilations, opts.OutputPadding, opts.OutputSizes, groups, opts.AutoPad)
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
	outputChannelsPerGroup, filterHeight, filterWidth := filterDims[0], filterDims[2], filterDims[3]
	inputChannelsPerGroup := inputDims[1] / groups
	strideH, strideW := window.Strides[0], window.Strides[1]
	dilationH, dilationW := window.Dilations[0], window.Dilations[1]
	padH, padW := window.PadBegin(0), window.PadBegin(1)

	output := tensor.Zeros(outputShape)
	inputFlat, filterFlat, outputFlat := input.Flat(), filter.Flat(), output.Flat()
	outputIdx := 0
	for batch := range outputDims[0] {
		for outChannel := range outputChannels {
			group := outChannel / outputChannelsPerGroup
			filterOutChannel := outChannel % outputChannelsPerGroup
			for outH := range outputDims[2] {
				for outW := range outputDims[3] {
					var sum float64
					for groupInChannel := range inputChannelsPerGroup {
						inChannel := group*inputChannelsPerGroup + groupInChannel
						inputChannelIdx := batch*inputStrides[0] + inChannel*inputStrides[1]
						filterChannelIdx := filterOutChannel*filterStrides[0] + inChannel*filterStrides[1]
						for kernelH := range filterHeight {
							scaledH := outH + padH - kernelH*dilationH
							if scaledH < 0 || scaledH%strideH != 0 {
								continue
							}
							inH := scaledH / strideH
							if inH >= inputHeight {
								continue
							}
							for kernelW := range filterWidth {
								scaledW := outW + padW - kernelW*dilationW
								if scaledW < 0 || scaledW%strideW != 0 {
									continue
								}
								inW := scaledW / strideW
								if inW >= inputWidth {
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
