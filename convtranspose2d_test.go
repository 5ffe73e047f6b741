package baseline

import (
	"fmt"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/shapes"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

func TestConvTranspose2D(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		output := must.M1(ConvTranspose2D(iotaTensor(1, 1, 2, 2), iotaTensor(1, 1, 2, 2), ConvTranspose2DOptions{}))
		requireTensor(t, []int{1, 1, 3, 3}, []float64{0, 0, 1, 0, 4, 6, 4, 12, 9}, output)
	})

	t.Run("strides", func(t *testing.T) {
		ones := must.M1(Broadcast(tensor.MustFromAnyValue(float32(1)), 1, 1, 2, 2))
		output := must.M1(ConvTranspose2D(iotaTensor(1, 1, 2, 2), ones, ConvTranspose2DOptions{Strides: []int{2, 2}}))
		requireTensor(t, []int{1, 1, 4, 4}, []float64{
			0, 0, 1, 1,
			0, 0, 1, 1,
			2, 2, 3, 3,
			2, 2, 3, 3,
		}, output)

		// outputPadding adds a row and a column at the end, that receive no values.
		output = must.M1(ConvTranspose2D(iotaTensor(1, 1, 2, 2), ones, ConvTranspose2DOptions{
			Strides:       []int{2, 2},
			OutputPadding: []int{1, 1},
		}))
		requireTensor(t, []int{1, 1, 5, 5}, []float64{
			0, 0, 1, 1, 0,
			0, 0, 1, 1, 0,
			2, 2, 3, 3, 0,
			2, 2, 3, 3, 0,
			0, 0, 0, 0, 0,
		}, output)
	})

	t.Run("bias and activation", func(t *testing.T) {
		output := must.M1(ConvTranspose2D(iotaTensor(1, 1, 2, 2), iotaTensor(1, 1, 2, 2), ConvTranspose2DOptions{
			Bias:       tensor.MustFromAnyValue([]float32{-4}),
			Activation: Relu,
		}))
		requireTensor(t, []int{1, 1, 3, 3}, []float64{0, 0, 0, 0, 0, 2, 0, 8, 5}, output)
	})

	t.Run("auto-padding", func(t *testing.T) {
		input, filter := patternTensor(1, 1, 2, 3, 3), patternTensor(2, 2, 1, 3, 3)
		output := must.M1(ConvTranspose2D(input, filter, ConvTranspose2DOptions{
			Strides: []int{2, 2},
			AutoPad: types.AutoPadSameUpper,
		}))
		require.Equal(t, []int{1, 1, 6, 6}, output.Shape().Dimensions)
		want := must.M1(ConvTranspose2D(input, filter, ConvTranspose2DOptions{
			Strides: []int{2, 2},
			Padding: []int{0, 1, 0, 1},
		}))
		requireSameTensor(t, want, output)

		output = must.M1(ConvTranspose2D(input, filter, ConvTranspose2DOptions{
			Strides: []int{2, 2},
			AutoPad: types.AutoPadSameLower,
		}))
		want = must.M1(ConvTranspose2D(input, filter, ConvTranspose2DOptions{
			Strides: []int{2, 2},
			Padding: []int{1, 0, 1, 0},
		}))
		requireSameTensor(t, want, output)
	})

	t.Run("auto-padding with stride larger than the filter", func(t *testing.T) {
		// The output is still inputSize*stride: the padding goes negative, and the extra
		// positions have no contributing taps.
		ones := tensor.MustNew(shapes.Make(dtypes.Float32, 1, 1, 1, 1), []float64{1})
		output := must.M1(ConvTranspose2D(iotaTensor(1, 1, 2, 2), ones, ConvTranspose2DOptions{
			Strides: []int{2, 2},
			AutoPad: types.AutoPadSameUpper,
		}))
		requireTensor(t, []int{1, 1, 4, 4}, []float64{
			0, 0, 1, 0,
			0, 0, 0, 0,
			2, 0, 3, 0,
			0, 0, 0, 0,
		}, output)

		output = must.M1(ConvTranspose2D(iotaTensor(1, 1, 2, 2), ones, ConvTranspose2DOptions{
			Strides: []int{2, 2},
			AutoPad: types.AutoPadSameLower,
		}))
		requireTensor(t, []int{1, 1, 4, 4}, []float64{
			0, 0, 0, 0,
			0, 0, 0, 1,
			0, 0, 0, 0,
			0, 2, 0, 3,
		}, output)

		output = must.M1(ConvTranspose2D(patternTensor(1, 2, 4, 3, 3), patternTensor(2, 4, 4, 2, 2), ConvTranspose2DOptions{
			Strides: []int{3, 3},
			Groups:  2,
			AutoPad: types.AutoPadSameUpper,
		}))
		require.Equal(t, []int{2, 8, 9, 9}, output.Shape().Dimensions)
	})
}

// referenceConvTranspose2D scatters each value of the "nchw" input, multiplied by the "iohw"
// filter, to the output positions it contributes to.
func referenceConvTranspose2D(input, filter *tensor.Tensor, padding, strides, dilations []int, groups int, outputDims []int) *tensor.Tensor {
	output := tensor.Zeros(input.Shape().WithDimensions(outputDims...))
	inputChannelsPerGroup := input.Shape().Dim(1) / groups
	filterDims := filter.Shape().Dimensions
	for inputIdx := range input.Size() {
		loc := must.M1(input.LocationFromIndex(inputIdx))
		n, ic, ih, iw := loc[0], loc[1], loc[2], loc[3]
		group := ic / inputChannelsPerGroup
		value := must.M1(input.Value(inputIdx))
		for ocg := range filterDims[1] {
			for kh := range filterDims[2] {
				for kw := range filterDims[3] {
					oh := ih*strides[0] - padding[0] + kh*dilations[0]
					ow := iw*strides[1] - padding[2] + kw*dilations[1]
					if oh < 0 || oh >= outputDims[2] || ow < 0 || ow >= outputDims[3] {
						continue
					}
					outputLoc := []int{n, group*filterDims[1] + ocg, oh, ow}
					current := must.M1(output.ValueAtLocation(outputLoc))
					weight := must.M1(filter.ValueAtLocation([]int{ic, ocg, kh, kw}))
					must.M(output.SetValueAtLocation(outputLoc, current+value*weight))
				}
			}
		}
	}
	return output
}

func TestConvTranspose2DReference(t *testing.T) {
	type testCase struct {
		inputDims, filterDims                      []int
		padding, strides, dilations, outputPadding []int
		outputSizes                                []int
		groups                                     int
	}
	for _, tc := range []testCase{
		{[]int{1, 1, 3, 3}, []int{1, 1, 3, 3}, []int{0, 0, 0, 0}, []int{1, 1}, []int{1, 1}, nil, nil, 1},
		{[]int{2, 3, 4, 3}, []int{3, 2, 3, 2}, []int{1, 0, 0, 2}, []int{2, 3}, []int{1, 1}, []int{1, 2}, nil, 1},
		{[]int{1, 2, 3, 4}, []int{2, 3, 2, 3}, []int{1, 1, 2, 1}, []int{2, 2}, []int{2, 3}, nil, nil, 1},
		{[]int{1, 4, 3, 3}, []int{4, 2, 3, 3}, []int{0, 0, 0, 0}, []int{1, 2}, []int{1, 1}, []int{0, 1}, nil, 2},
		{[]int{2, 3, 4, 4}, []int{3, 1, 2, 2}, []int{1, 1, 1, 1}, []int{3, 3}, []int{2, 1}, nil, nil, 3},
		{[]int{1, 2, 3, 3}, []int{2, 2, 3, 3}, []int{1, 1, 1, 1}, []int{2, 2}, []int{1, 1}, nil, []int{6, 7}, 1},
	} {
		t.Run(fmt.Sprintf("input=%v,filter=%v,groups=%d,strides=%v", tc.inputDims, tc.filterDims, tc.groups, tc.strides), func(t *testing.T) {
			input := patternTensor(3, tc.inputDims...)
			filter := patternTensor(4, tc.filterDims...)
			opts := ConvTranspose2DOptions{
				Padding:       tc.padding,
				Strides:       tc.strides,
				Dilations:     tc.dilations,
				OutputPadding: tc.outputPadding,
				OutputSizes:   tc.outputSizes,
				Groups:        tc.groups,
			}
			output := must.M1(ConvTranspose2D(input, filter, opts))
			if tc.outputSizes != nil {
				require.Equal(t, tc.outputSizes, output.Shape().Dimensions[2:])
			}
			want := referenceConvTranspose2D(input, filter, tc.padding, tc.strides, tc.dilations, tc.groups, output.Shape().Dimensions)
			requireSameTensor(t, want, output)

			// The same transposed convolution in the other layouts.
			nhwcInput := must.M1(Transpose(input, nchwToNHWC...))
			for layout, toLayout := range map[types.ConvTranspose2DFilterLayout][]int{
				types.TransposedFilterIOHW: {0, 1, 2, 3},
				types.TransposedFilterHWOI: {2, 3, 1, 0},
				types.TransposedFilterOHWI: {1, 2, 3, 0},
			} {
				opts.InputLayout = types.LayoutNHWC
				opts.FilterLayout = layout
				got := must.M1(ConvTranspose2D(nhwcInput, must.M1(Transpose(filter, toLayout...)), opts))
				requireSameTensor(t, must.M1(Transpose(output, nchwToNHWC...)), got)
			}
		})
	}
}

func TestConvTranspose2DErrors(t *testing.T) {
	input, filter := iotaTensor(1, 1, 2, 2), iotaTensor(1, 1, 2, 2)

	_, err := ConvTranspose2D(input, filter, ConvTranspose2DOptions{OutputPadding: []int{1, 1}})
	require.True(t, types.IsShapeError(err), "outputPadding must be smaller than strides, got %v", err)
	_, err = ConvTranspose2D(input, filter, ConvTranspose2DOptions{OutputPadding: []int{1}, Strides: []int{2, 2}})
	require.True(t, types.IsShapeError(err), "got %v", err)
	_, err = ConvTranspose2D(iotaTensor(1, 2, 2, 2), filter, ConvTranspose2DOptions{})
	require.True(t, types.IsShapeError(err), "got %v", err)
	_, err = ConvTranspose2D(iotaTensor(1, 3, 2, 2), iotaTensor(3, 1, 2, 2), ConvTranspose2DOptions{Groups: 2})
	require.True(t, types.IsShapeError(err), "got %v", err)
	_, err = ConvTranspose2D(input, filter, ConvTranspose2DOptions{Bias: tensor.MustFromAnyValue([]float32{1, 2})})
	require.True(t, types.IsShapeError(err), "got %v", err)
	_, err = ConvTranspose2D(input, filter, ConvTranspose2DOptions{Padding: []int{2, 2, 0, 0}})
	require.True(t, types.IsShapeError(err), "got %v", err)
	_, err = ConvTranspose2D(input, filter, ConvTranspose2DOptions{OutputSizes: []int{3, 0}})
	require.True(t, types.IsShapeError(err), "got %v", err)

	_, err = ConvTranspose2D(input, filter, ConvTranspose2DOptions{AutoPad: types.AutoPad(99)})
	require.True(t, types.IsConfigError(err), "got %v", err)
	_, err = ConvTranspose2D(input, filter, ConvTranspose2DOptions{FilterLayout: types.ConvTranspose2DFilterLayout(5)})
	require.True(t, types.IsConfigError(err), "got %v", err)
	_, err = types.ParseConvTranspose2DFilterLayout("oihw")
	require.True(t, types.IsConfigError(err), "got %v", err)
}
