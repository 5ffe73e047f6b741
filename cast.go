package baseline

import (
	"math"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/shapeinference"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
	"github.com/x448/float16"
)

// Cast x to the dtype, rounding its values to what the dtype can represent.
//
// Float values are rounded to the nearest value of the target precision (float16 and bfloat16
// included). For integer dtypes values are truncated toward zero and wrapped around the width of
// the type, and NaN or infinities become 0.
func Cast(x *tensor.Tensor, dtype dtypes.DType) (*tensor.Tensor, error) {
	op := optypes.Cast
	if err := checkOperands(op, x); err != nil {
		return nil, err
	}
	outputShape, err := shapeinference.Cast(x.Shape(), dtype)
	if err != nil {
		return nil, err
	}
	convert := castFunc(dtype)
	output := tensor.Zeros(outputShape)
	outputFlat := output.Flat()
	for ii, value := range x.Flat() {
		outputFlat[ii] = convert(value)
	}
	return output, nil
}

// castFunc returns the rounding function for a float or integer dtype.
func castFunc(dtype dtypes.DType) func(float64) float64 {
	switch dtype {
	case dtypes.Float64:
		return func(v float64) float64 { return v }
	case dtypes.Float32:
		return func(v float64) float64 { return float64(float32(v)) }
	case dtypes.Float16:
		return func(v float64) float64 { return float64(float16.Fromfloat32(float32(v)).Float32()) }
	case dtypes.BFloat16:
		return func(v float64) float64 { return float64(bfloat16.FromFloat32(float32(v)).Float32()) }
	}
	bits := float64(dtype.Bits())
	modulus := math.Exp2(bits)
	unsigned := dtype.IsUnsigned()
	return func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		wrapped := math.Mod(math.Trunc(v), modulus)
		if unsigned {
			if wrapped < 0 {
				// For 64 bits the sum can round up to modulus itself, which is out of range.
				wrapped = min(wrapped+modulus, math.Nextafter(modulus, 0))
			}
			return wrapped
		}
		// Signed values end up in [-modulus/2, modulus/2). Small negative values are never shifted
		// by modulus: 2^64-1 is not representable in float64.
		half := modulus / 2
		if wrapped >= half {
			wrapped -= modulus
		} else if wrapped < -half {
			wrapped += modulus
		}
		return wrapped
	}
}
