package baseline

import (
	"math"

	"github.com/pkg/errors"
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/shapeinference"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

// binaryOp broadcasts lhs and rhs to their common shape and combines them element by element.
func binaryOp(op optypes.OpType, lhs, rhs *tensor.Tensor, fn func(a, b float64) float64) (*tensor.Tensor, error) {
	if err := checkOperands(op, lhs, rhs); err != nil {
		return nil, err
	}
	outputShape, err := shapeinference.BinaryOp(op, lhs.Shape(), rhs.Shape())
	if err != nil {
		return nil, err
	}
	lhs, err = Broadcast(lhs, outputShape.Dimensions...)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s: broadcasting lhs", op)
	}
	rhs, err = Broadcast(rhs, outputShape.Dimensions...)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s: broadcasting rhs", op)
	}
	output := tensor.Zeros(outputShape)
	lhsFlat, rhsFlat, outputFlat := lhs.Flat(), rhs.Flat(), output.Flat()
	for ii := range outputFlat {
		outputFlat[ii] = fn(lhsFlat[ii], rhsFlat[ii])
	}
	return output, nil
}

// unaryOp applies fn to each element of x.
func unaryOp(op optypes.OpType, x *tensor.Tensor, fn func(float64) float64) (*tensor.Tensor, error) {
	if err := checkOperands(op, x); err != nil {
		return nil, err
	}
	outputShape, err := shapeinference.UnaryOp(op, x.Shape())
	if err != nil {
		return nil, err
	}
	output := tensor.Zeros(outputShape)
	outputFlat := output.Flat()
	for ii, value := range x.Flat() {
		outputFlat[ii] = fn(value)
	}
	return output, nil
}

// Add returns lhs + rhs, broadcasting the operands.
func Add(lhs, rhs *tensor.Tensor) (*tensor.Tensor, error) {
	return binaryOp(optypes.Add, lhs, rhs, func(a, b float64) float64 { return a + b })
}

// Sub returns lhs - rhs, broadcasting the operands.
func Sub(lhs, rhs *tensor.Tensor) (*tensor.Tensor, error) {
	return binaryOp(optypes.Sub, lhs, rhs, func(a, b float64) float64 { return a - b })
}

// Mul returns lhs * rhs, broadcasting the operands.
func Mul(lhs, rhs *tensor.Tensor) (*tensor.Tensor, error) {
	return binaryOp(optypes.Mul, lhs, rhs, func(a, b float64) float64 { return a * b })
}

// Div returns lhs / rhs, broadcasting the operands. Division by zero follows IEEE-754.
func Div(lhs, rhs *tensor.Tensor) (*tensor.Tensor, error) {
	return binaryOp(optypes.Div, lhs, rhs, func(a, b float64) float64 { return a / b })
}

// Max returns the element-wise maximum of lhs and rhs, broadcasting the operands.
func Max(lhs, rhs *tensor.Tensor) (*tensor.Tensor, error) {
	return binaryOp(optypes.Max, lhs, rhs, func(a, b float64) float64 { return max(a, b) })
}

// Min returns the element-wise minimum of lhs and rhs, broadcasting the operands.
func Min(lhs, rhs *tensor.Tensor) (*tensor.Tensor, error) {
	return binaryOp(optypes.Min, lhs, rhs, func(a, b float64) float64 { return min(a, b) })
}

// Pow returns lhs raised to the power rhs, broadcasting the operands.
func Pow(lhs, rhs *tensor.Tensor) (*tensor.Tensor, error) {
	return binaryOp(optypes.Pow, lhs, rhs, math.Pow)
}

// Abs returns the absolute value of x, element-wise.
func Abs(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Abs, x, math.Abs)
}

// Ceil returns the smallest integer value greater than or equal to x, element-wise.
func Ceil(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Ceil, x, math.Ceil)
}

// Floor returns the largest integer value less than or equal to x, element-wise.
func Floor(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Floor, x, math.Floor)
}

// Exp returns e**x, element-wise.
func Exp(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Exp, x, math.Exp)
}

// Log returns the natural logarithm of x, element-wise.
func Log(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Log, x, math.Log)
}

// Sqrt returns the square root of x, element-wise.
func Sqrt(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Sqrt, x, math.Sqrt)
}

// Sin returns the sine of x (in radians), element-wise.
func Sin(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Sin, x, math.Sin)
}

// Cos returns the cosine of x (in radians), element-wise.
func Cos(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Cos, x, math.Cos)
}

// Tan returns the tangent of x (in radians), element-wise.
func Tan(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Tan, x, math.Tan)
}

// Erf returns the error function of x, element-wise.
func Erf(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Erf, x, math.Erf)
}

// Neg returns -x.
func Neg(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Neg, x, func(v float64) float64 { return -v })
}

// Reciprocal returns 1/x.
func Reciprocal(x *tensor.Tensor) (*tensor.Tensor, error) {
	return unaryOp(optypes.Reciprocal, x, func(v float64) float64 { return 1 / v })
}
