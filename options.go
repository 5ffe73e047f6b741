package baseline

import (
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

// Conv2DOptions configures Conv2D. The zero value selects all the defaults.
type Conv2DOptions struct {
	// Padding is [beginHeight, endHeight, beginWidth, endWidth]. Defaults to no padding.
	// It is ignored if AutoPad is not types.AutoPadExplicit.
	Padding []int

	// Strides is [height, width]. Defaults to [1, 1].
	Strides []int

	// Dilations is [height, width]. Defaults to [1, 1].
	Dilations []int

	// Groups splits the input and output channels in groups that are convolved independently.
	// 0 means 1.
	Groups int

	// AutoPad defaults to types.AutoPadExplicit.
	AutoPad types.AutoPad

	// InputLayout of the input and output. Defaults to types.LayoutNCHW.
	InputLayout types.InputLayout

	// FilterLayout defaults to types.FilterOIHW.
	FilterLayout types.Conv2DFilterLayout

	// Bias, if not nil, must be rank-1 with one value per output channel.
	Bias *tensor.Tensor

	// Activation, if not nil, is applied to the output after the bias.
	Activation Activation
}

// ConvTranspose2DOptions configures ConvTranspose2D. The zero value selects all the defaults.
type ConvTranspose2DOptions struct {
	// Padding is [beginHeight, endHeight, beginWidth, endWidth], and it crops the output. Defaults to
	// no padding. It is ignored if AutoPad is not types.AutoPadExplicit.
	Padding []int

	// Strides is [height, width]. Defaults to [1, 1].
	Strides []int

	// Dilations is [height, width]. Defaults to [1, 1].
	Dilations []int

	// OutputPadding is [height, width], added at the end of the output. Defaults to [0, 0]. Each value
	// must be smaller than its stride.
	OutputPadding []int

	// OutputSizes is [height, width]. If set, it is used verbatim as the output spatial size.
	OutputSizes []int

	// Groups: 0 means 1.
	Groups int

	// AutoPad defaults to types.AutoPadExplicit.
	AutoPad types.AutoPad

	// InputLayout of the input and output. Defaults to types.LayoutNCHW.
	InputLayout types.InputLayout

	// FilterLayout defaults to types.TransposedFilterIOHW.
	FilterLayout types.ConvTranspose2DFilterLayout

	Bias       *tensor.Tensor
	Activation Activation
}

// Pool2DOptions configures MaxPool2D, AveragePool2D and L2Pool2D. The zero value selects all the
// defaults.
type Pool2DOptions struct {
	// WindowDimensions is [height, width]. Defaults to the whole spatial extent of the input.
	WindowDimensions []int

	// Padding is [beginHeight, endHeight, beginWidth, endWidth]. Padded positions are not counted.
	Padding []int

	// Strides is [height, width]. Defaults to [1, 1].
	Strides []int

	// Dilations is [height, width]. Defaults to [1, 1].
	Dilations []int

	// AutoPad defaults to types.AutoPadExplicit.
	AutoPad types.AutoPad

	// Layout of the input and output. Defaults to types.LayoutNCHW.
	Layout types.InputLayout

	// RoundingType of the output size. Defaults to types.RoundingFloor.
	RoundingType types.RoundingType

	// OutputSizes is [height, width]. If set, it overrides the computed output spatial size.
	OutputSizes []int
}

// ReduceOptions configures Reduce. The zero value reduces all axes and removes them.
type ReduceOptions struct {
	// Axes to reduce. Negative values count from the end. A nil Axes reduces all axes, while an
	// empty (non-nil) one reduces none.
	Axes []int

	// KeepDimensions keeps the reduced axes in the output, with dimension 1.
	KeepDimensions bool
}
