package baseline

import (
	"math"

	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/shapeinference"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

// MaxPool2D returns the maximum of each window of the input.
//
// The input is [batch, channels, height, width] (or "nhwc", see Pool2DOptions.Layout). Padded
// positions are not part of the window.
func MaxPool2D(input *tensor.Tensor, opts Pool2DOptions) (*tensor.Tensor, error) {
	return pool2D(optypes.MaxPool2D, input, opts)
}

// AveragePool2D returns the mean of each window of the input.
//
// Only the in-bounds positions of the window are averaged: padded positions are not counted in
// the denominator.
func AveragePool2D(input *tensor.Tensor, opts Pool2DOptions) (*tensor.Tensor, error) {
	return pool2D(optypes.AveragePool2D, input, opts)
}

// L2Pool2D returns, for each window of the input, the square root of the mean of the squares of
// its in-bounds values.
func L2Pool2D(input *tensor.Tensor, opts Pool2DOptions) (*tensor.Tensor, error) {
	return pool2D(optypes.L2Pool2D, input, opts)
}

func pool2D(op optypes.OpType, input *tensor.Tensor, opts Pool2DOptions) (*tensor.Tensor, error) {
	if err := checkOperands(op, input); err != nil {
		return nil, err
	}
	input, err := inputToNCHW(op, input, opts.Layout)
	if err != nil {
		return nil, err
	}
	outputShape, window, err := shapeinference.Pool2D(op, input.Shape(), opts.WindowDimensions,
		opts.Padding, opts.Strides, opts.Dilations, opts.AutoPad, opts.RoundingType, opts.OutputSizes)
	if err != nil {
		return nil, err
	}

	inputDims, outputDims := input.Shape().Dimensions, outputShape.Dimensions
	inputStrides := input.Shape().Strides()
	inputHeight, inputWidth := inputDims[2], inputDims[3]
	windowHeight, windowWidth := window.Size[0], window.Size[1]
	strideH, strideW := window.Strides[0], window.Strides[1]
	dilationH, dilationW := window.Dilations[0], window.Dilations[1]
	padH, padW := window.PadBegin(0), window.PadBegin(1)

	output := tensor.Zeros(outputShape)
	inputFlat, outputFlat := input.Flat(), output.Flat()
	outputIdx := 0
	for batch := range outputDims[0] {
		for channel := range outputDims[1] {
			channelIdx := batch*inputStrides[0] + channel*inputStrides[1]
			for outH := range outputDims[2] {
				for outW := range outputDims[3] {
					count := 0
					acc := 0.0
					if op == optypes.MaxPool2D {
						acc = math.Inf(-1)
					}
					for windowH := range windowHeight {
						inH := outH*strideH - padH + windowH*dilationH
						if inH < 0 || inH >= inputHeight {
							continue
						}
						for windowW := range windowWidth {
							inW := outW*strideW - padW + windowW*dilationW
							if inW < 0 || inW >= inputWidth {
								continue
							}
							value := inputFlat[channelIdx+inH*inputStrides[2]+inW]
							switch op {
							case optypes.MaxPool2D:
								acc = max(acc, value)
							case optypes.AveragePool2D:
								acc += value
							case optypes.L2Pool2D:
								acc += value * value
							}
							count++
						}
					}
					switch op {
					case optypes.AveragePool2D:
						acc /= float64(count)
					case optypes.L2Pool2D:
						acc = math.Sqrt(acc / float64(count))
					}
					outputFlat[outputIdx] = acc
					outputIdx++
				}
			}
		}
	}
	return outputFromNCHW(output, opts.Layout)
}
