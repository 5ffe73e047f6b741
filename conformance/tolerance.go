package conformance

import (
	"math"
	"slices"

	"github.com/pkg/errors"
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/utils"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

// Default tolerance used when neither the runner nor the test case sets one.
const (
	DefaultATol = 1e-6
	DefaultRTol = 1e-5
)

// Tolerance defines the acceptable numeric drift between an output and its expected value.
type Tolerance struct {
	ATol float64
	RTol float64
}

// DefaultTolerance returns the tolerance with DefaultATol and DefaultRTol.
func DefaultTolerance() Tolerance {
	return Tolerance{ATol: DefaultATol, RTol: DefaultRTol}
}

// Override returns tol with the fields set in override replacing its own.
func (tol Tolerance) Override(override *ToleranceOverride) Tolerance {
	if override == nil {
		return tol
	}
	if override.ATol != nil {
		tol.ATol = *override.ATol
	}
	if override.RTol != nil {
		tol.RTol = *override.RTol
	}
	return tol
}

// Close reports whether got is within the tolerance of want: |got-want| <= atol + rtol*|want|.
// NaN only matches NaN, and infinities only match themselves.
func (tol Tolerance) Close(got, want float64) bool {
	if math.IsNaN(want) || math.IsNaN(got) {
		return math.IsNaN(want) && math.IsNaN(got)
	}
	if math.IsInf(want, 0) || math.IsInf(got, 0) {
		return got == want
	}
	return math.Abs(got-want) <= tol.ATol+tol.RTol*math.Abs(want)
}

// Compare checks that got has the dtype and dimensions of want, and that all its values are Close
// to the ones of want. The error describes the first mismatch.
func (tol Tolerance) Compare(got, want *tensor.Tensor) error {
	if got.DType() != want.DType() {
		return errors.Errorf("output type %s, expected %s", utils.DTypeToWebNN(got.DType()), utils.DTypeToWebNN(want.DType()))
	}
	if !slices.Equal(got.Shape().Dimensions, want.Shape().Dimensions) {
		return errors.Errorf("output shape %v, expected %v", got.Shape().Dimensions, want.Shape().Dimensions)
	}
	gotFlat, wantFlat := got.Flat(), want.Flat()
	for ii, wantValue := range wantFlat {
		if !tol.Close(gotFlat[ii], wantValue) {
			location, _ := want.LocationFromIndex(ii)
			return errors.Errorf("output value at location %v is %g, expected %g (atol=%g, rtol=%g)",
				location, gotFlat[ii], wantValue, tol.ATol, tol.RTol)
		}
	}
	return nil
}
