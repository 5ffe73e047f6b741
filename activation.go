package baseline

import (
	"math"

	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

// Activation is an element-wise function that can be fused at the end of Conv2D and
// ConvTranspose2D, see Conv2DOptions.Activation.
//
// All the activations without parameters (Relu, Sigmoid, Tanh, HardSwish, Softplus, Softsign) are
// Activation functions; the parameterized ones are created with ClampActivation,
// LeakyReluActivation, EluActivation, HardSigmoidActivation and LinearActivation.
type Activation func(x *tensor.Tensor) (*tensor.Tensor, error)

// Default parameters of the activations, as defined by WebNN.
const (
	DefaultLeakyReluAlpha   = 0.01
	DefaultEluAlpha         = 1.0
	DefaultHardSigmoidAlpha = 0.2
	DefaultHardSigmoidBeta  = 0.5
	DefaultLinearAlpha      = 1.0
	DefaultLinearBeta       = 0.0
)

// Relu returns max(0, x).
func Relu(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Relu, x, func(v float64) float64 { return max(0, v) })
}

// Sigmoid returns 1/(1+exp(-x)).
func Sigmoid(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Sigmoid, x, func(v float64) float64 { return 1 / (1 + math.Exp(-v)) })
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Tanh, x, math.Tanh)
}

// HardSwish returns x * max(0, min(6, x+3)) / 6.
func HardSwish(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.HardSwish, x, func(v float64) float64 { return v * max(0, min(6, v+3)) / 6 })
}

// Softplus returns log(1+exp(x)).
func Softplus(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Softplus, x, func(v float64) float64 { return math.Log1p(math.Exp(v)) })
}

// Softsign returns x/(1+|x|).
func Softsign(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Softsign, x, func(v float64) float64 { return v / (1 + math.Abs(v)) })
}

// Clamp limits the values of x to the range [minValue, maxValue]. Use math.Inf for an open end.
//
// It returns a ConfigError if minValue > maxValue.
func Clamp(x *tensor.Tensor, minValue, maxValue float64) (*tensor.Tensor, error) {
	if minValue > maxValue {
		return nil, types.ConfigErrorf("%s: minValue (%g) must be <= maxValue (%g)", optypes.Clamp, minValue, maxValue)
	}
	return unaryOp(optypes.Clamp, x, func(v float64) float64 { return min(max(v, minValue), maxValue) })
}

// LeakyRelu returns x for positive values and alpha*x otherwise.
func LeakyRelu(x *tensor.Tensor, alpha float64) (*tensor.Tensor, error) {
	return unaryOp(optypes.LeakyRelu, x, func(v float64) float64 {
		if v >= 0 {
			return v
		}
		return alpha * v
	})
}

// Elu returns x for positive values and alpha*(exp(x)-1) otherwise.
func Elu(x *tensor.Tensor, alpha float64) (*tensor.Tensor, error) {
	return unaryOp(optypes.Elu, x, func(v float64) float64 {
		if v > 0 {
			return v
		}
		return alpha * math.Expm1(v)
	})
}

// HardSigmoid returns max(0, min(1, alpha*x+beta)).
func HardSigmoid(x *tensor.Tensor, alpha, beta float64) (*tensor.Tensor, error) {
	return unaryOp(optypes.HardSigmoid, x, func(v float64) float64 { return max(0, min(1, alpha*v+beta)) })
}

// Linear returns alpha*x + beta.
func Linear(x *tensor.Tensor, alpha, beta float64) (*tensor.Tensor, error) {
	return unaryOp(optypes.Linear, x, func(v float64) float64 { return alpha*v + beta })
}

// ClampActivation returns Clamp with the given range as an Activation.
func ClampActivation(minValue, maxValue float64) Activation {
	return func(x *tensor.Tensor) (*tensor.Tensor, error) { return Clamp(x, minValue, maxValue) }
}

// LeakyReluActivation returns LeakyRelu with the given alpha as an Activation.
func LeakyReluActivation(alpha float64) Activation {
	return func(x *tensor.Tensor) (*tensor.Tensor, error) { return LeakyRelu(x, alpha) }
}

// EluActivation returns Elu with the given alpha as an Activation.
func EluActivation(alpha float64) Activation {
	return func(x *tensor.Tensor) (*tensor.Tensor, error) { return Elu(x, alpha) }
}

// HardSigmoidActivation returns HardSigmoid with the given parameters as an Activation.
func HardSigmoidActivation(alpha, beta float64) Activation {
	return func(x *tensor.Tensor) (*tensor.Tensor, error) { return HardSigmoid(x, alpha, beta) }
}

// LinearActivation returns Linear with the given parameters as an Activation.
func LinearActivation(alpha, beta float64) Activation {
	return func(x *tensor.Tensor) (*tensor.Tensor, error) { return Linear(x, alpha, beta) }
}
