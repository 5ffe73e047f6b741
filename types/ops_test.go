package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokens(t *testing.T) {
	for _, autoPad := range AutoPadValues() {
		got, err := ParseAutoPad(autoPad.String())
		require.NoError(t, err)
		assert.Equal(t, autoPad, got)
	}
	assert.Equal(t, []string{"explicit", "same-upper", "same-lower"}, AutoPadStrings())
	assert.Equal(t, []string{"nchw", "nhwc"}, InputLayoutStrings())
	assert.Equal(t, []string{"oihw", "hwio", "ohwi", "ihwo"}, Conv2DFilterLayoutStrings())
	assert.Equal(t, []string{"iohw", "hwoi", "ohwi"}, ConvTranspose2DFilterLayoutStrings())
	assert.Equal(t, []string{"floor", "ceil"}, RoundingTypeStrings())
	assert.Equal(t, "LogSumExp", ReduceLogSumExp.String())
	assert.Equal(t, "AutoPad(99)", AutoPad(99).String())

	// Empty tokens select the defaults.
	autoPad, err := ParseAutoPad("")
	require.NoError(t, err)
	assert.Equal(t, AutoPadExplicit, autoPad)
	layout, err := ParseInputLayout("")
	require.NoError(t, err)
	assert.Equal(t, LayoutNCHW, layout)
	filterLayout, err := ParseConv2DFilterLayout("")
	require.NoError(t, err)
	assert.Equal(t, FilterOIHW, filterLayout)
	transposedLayout, err := ParseConvTranspose2DFilterLayout("")
	require.NoError(t, err)
	assert.Equal(t, TransposedFilterIOHW, transposedLayout)
	rounding, err := ParseRoundingType("")
	require.NoError(t, err)
	assert.Equal(t, RoundingFloor, rounding)

	layout, err = ParseInputLayout("nhwc")
	require.NoError(t, err)
	assert.Equal(t, LayoutNHWC, layout)
	rounding, err = ParseRoundingType("ceil")
	require.NoError(t, err)
	assert.Equal(t, RoundingCeil, rounding)

	_, err = ParseAutoPad("same")
	assert.True(t, IsConfigError(err), "got %v", err)
	_, err = ParseInputLayout("nchwc")
	assert.True(t, IsConfigError(err), "got %v", err)
	_, err = ParseConv2DFilterLayout("iohw")
	assert.True(t, IsConfigError(err), "got %v", err)
	_, err = ParseConvTranspose2DFilterLayout("oihw")
	assert.True(t, IsConfigError(err), "got %v", err)
	_, err = ParseRoundingType("round")
	assert.True(t, IsConfigError(err), "got %v", err)
}
