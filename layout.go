package baseline

import (
	"github.com/pkg/errors"
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

// Axes permutations used to convert to and from the canonical layouts: "nchw" for inputs and outputs
// of the spatial operators and "oihw" for the filters.
var (
	nhwcToNCHW = []int{0, 3, 1, 2}
	nchwToNHWC = []int{0, 2, 3, 1}

	conv2DFilterToOIHW = map[types.Conv2DFilterLayout][]int{
		types.FilterHWIO: {3, 2, 0, 1},
		types.FilterOHWI: {0, 3, 1, 2},
		types.FilterIHWO: {3, 0, 1, 2},
	}

	convTranspose2DFilterToOIHW = map[types.ConvTranspose2DFilterLayout][]int{
		types.TransposedFilterIOHW: {1, 0, 2, 3},
		types.TransposedFilterHWOI: {2, 3, 0, 1},
		types.TransposedFilterOHWI: {0, 3, 1, 2},
	}
)

// inputToNCHW permutes the input of a spatial operator to the "nchw" layout.
func inputToNCHW(op optypes.OpType, x *tensor.Tensor, layout types.InputLayout) (*tensor.Tensor, error) {
	switch layout {
	case types.LayoutNCHW:
		return x, nil
	case types.LayoutNHWC:
		output, err := Transpose(x, nhwcToNCHW...)
		if err != nil {
			return nil, errors.WithMessagef(err, "%s: converting input from %s to %s", op, layout, types.LayoutNCHW)
		}
		return output, nil
	default:
		return nil, types.ConfigErrorf("%s: invalid input layout %s", op, layout)
	}
}

// outputFromNCHW permutes the output of a spatial operator, computed in "nchw", back to the
// requested layout.
func outputFromNCHW(x *tensor.Tensor, layout types.InputLayout) (*tensor.Tensor, error) {
	if layout == types.LayoutNHWC {
		return Transpose(x, nchwToNHWC...)
	}
	return x, nil
}

// conv2DFilterToCanonical permutes a Conv2D filter to the "oihw" layout.
func conv2DFilterToCanonical(filter *tensor.Tensor, layout types.Conv2DFilterLayout) (*tensor.Tensor, error) {
	op := optypes.Conv2D
	if layout == types.FilterOIHW {
		return filter, nil
	}
	permutation, found := conv2DFilterToOIHW[layout]
	if !found {
		return nil, types.ConfigErrorf("%s: invalid filter layout %s", op, layout)
	}
	output, err := Transpose(filter, permutation...)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s: converting filter from %s to %s", op, layout, types.FilterOIHW)
	}
	return output, nil
}

// convTranspose2DFilterToCanonical permutes a ConvTranspose2D filter to the "oihw" layout, that
// is [outputChannels/groups, inputChannels, height, width].
func convTranspose2DFilterToCanonical(filter *tensor.Tensor, layout types.ConvTranspose2DFilterLayout) (*tensor.Tensor, error) {
	op := optypes.ConvTranspose2D
	permutation, found := convTranspose2DFilterToOIHW[layout]
	if !found {
		return nil, types.ConfigErrorf("%s: invalid filter layout %s", op, layout)
	}
	output, err := Transpose(filter, permutation...)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s: converting filter from %s to oihw", op, layout)
	}
	return output, nil
}

// addBiasAndActivation adds the per-channel bias (if not nil) to the "nchw" output, by reshaping it
// to [1, channels, 1, 1] and broadcasting, and then applies the activation (if not nil).
func addBiasAndActivation(output, bias *tensor.Tensor, activation Activation) (*tensor.Tensor, error) {
	var err error
	if bias != nil {
		bias, err = Reshape(bias, 1, -1, 1, 1)
		if err != nil {
			return nil, err
		}
		output, err = Add(output, bias)
		if err != nil {
			return nil, errors.WithMessagef(err, "adding bias")
		}
	}
	if activation != nil {
		output, err = activation(output)
		if err != nil {
			return nil, errors.WithMessagef(err, "applying activation")
		}
	}
	return output, nil
}
