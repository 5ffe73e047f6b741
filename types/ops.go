package types

// AutoPad selects how the padding of a spatial operation is derived.
type AutoPad int

//go:generate go tool enumer -type=AutoPad -trimprefix=AutoPad -transform=kebab -output=gen_autopad_enumer.go ops.go

const (
	// AutoPadExplicit uses the padding given in the options. This is the default.
	AutoPadExplicit AutoPad = iota

	// AutoPadSameUpper pads so that the output size is ceil(inputSize/stride), with the extra
	// padding (if the total is odd) at the end.
	AutoPadSameUpper

	// AutoPadSameLower is like AutoPadSameUpper, but the extra padding goes at the beginning.
	AutoPadSameLower
)

// parseToken converts a WebNN token with the enumer generated fromString. The empty string maps
// to defaultValue, and an unknown token is a ConfigError.
func parseToken[T any](option, token string, defaultValue T, fromString func(string) (T, error), valid []string) (T, error) {
	if token == "" {
		return defaultValue, nil
	}
	value, err := fromString(token)
	if err != nil {
		return defaultValue, ConfigErrorf("invalid %s %q, valid values are %q", option, token, valid)
	}
	return value, nil
}

// ParseAutoPad converts a WebNN token ("explicit", "same-upper", "same-lower") to an AutoPad.
// The empty string maps to the default, AutoPadExplicit.
func ParseAutoPad(token string) (AutoPad, error) {
	return parseToken("autoPad", token, AutoPadExplicit, AutoPadString, AutoPadStrings())
}

// InputLayout is the axes ordering of the input (and output) of spatial operations.
type InputLayout int

//go:generate go tool enumer -type=InputLayout -trimprefix=Layout -transform=lower -output=gen_inputlayout_enumer.go ops.go

const (
	// LayoutNCHW is [batch, channels, height, width]. This is the default.
	LayoutNCHW InputLayout = iota

	// LayoutNHWC is [batch, height, width, channels].
	LayoutNHWC
)

// ParseInputLayout converts "nchw" or "nhwc" to an InputLayout. The empty string maps to LayoutNCHW.
func ParseInputLayout(token string) (InputLayout, error) {
	return parseToken("input layout", token, LayoutNCHW, InputLayoutString, InputLayoutStrings())
}

// Conv2DFilterLayout is the axes ordering of the Conv2D filter, where "o" is the output channels,
// "i" the input channels (per group) and "h", "w" the kernel spatial axes.
type Conv2DFilterLayout int

//go:generate go tool enumer -type=Conv2DFilterLayout -trimprefix=Filter -transform=lower -output=gen_conv2dfilterlayout_enumer.go ops.go

const (
	// FilterOIHW is the default.
	FilterOIHW Conv2DFilterLayout = iota
	FilterHWIO
	FilterOHWI
	FilterIHWO
)

// ParseConv2DFilterLayout converts a WebNN filter layout token. The empty string maps to FilterOIHW.
func ParseConv2DFilterLayout(token string) (Conv2DFilterLayout, error) {
	return parseToken("conv2d filter layout", token, FilterOIHW, Conv2DFilterLayoutString, Conv2DFilterLayoutStrings())
}

// ConvTranspose2DFilterLayout is the axes ordering of the ConvTranspose2D filter.
type ConvTranspose2DFilterLayout int

//go:generate go tool enumer -type=ConvTranspose2DFilterLayout -trimprefix=TransposedFilter -transform=lower -output=gen_convtranspose2dfilterlayout_enumer.go ops.go

const (
	// TransposedFilterIOHW is the default.
	TransposedFilterIOHW ConvTranspose2DFilterLayout = iota
	TransposedFilterHWOI
	TransposedFilterOHWI
)

// ParseConvTranspose2DFilterLayout converts a WebNN filter layout token. The empty string maps to
// TransposedFilterIOHW.
func ParseConvTranspose2DFilterLayout(token string) (ConvTranspose2DFilterLayout, error) {
	return parseToken("convTranspose2d filter layout", token, TransposedFilterIOHW,
		ConvTranspose2DFilterLayoutString, ConvTranspose2DFilterLayoutStrings())
}

// RoundingType controls how the pooling output size is rounded when the window doesn't evenly
// cover the padded input.
type RoundingType int

//go:generate go tool enumer -type=RoundingType -trimprefix=Rounding -transform=lower -output=gen_roundingtype_enumer.go ops.go

const (
	// RoundingFloor is the default.
	RoundingFloor RoundingType = iota
	RoundingCeil
)

// ParseRoundingType converts "floor" or "ceil". The empty string maps to RoundingFloor.
func ParseRoundingType(token string) (RoundingType, error) {
	return parseToken("roundingType", token, RoundingFloor, RoundingTypeString, RoundingTypeStrings())
}

// ReduceKind selects the combining rule of a reduction.
type ReduceKind int

//go:generate go tool enumer -type=ReduceKind -trimprefix=Reduce -output=gen_reducekind_enumer.go ops.go

const (
	ReduceMax ReduceKind = iota
	ReduceMin
	ReduceSum
	ReduceProduct

	// ReduceMean sums the values and divides by their count once, after the fold.
	ReduceMean

	// ReduceL1 is the sum of absolute values.
	ReduceL1

	// ReduceL2 is the square root of the sum of squares.
	ReduceL2

	// ReduceLogSum is the natural log of the sum.
	ReduceLogSum

	// ReduceLogSumExp is the natural log of the sum of exponentials.
	ReduceLogSumExp

	// ReduceSumSquare is the sum of squares.
	ReduceSumSquare
)
