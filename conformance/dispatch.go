package conformance

import (
	"math"

	"github.com/pkg/errors"
	baseline "github.com/webmachinelearning/webnn-baseline-sub000"
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/utils"
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

type unaryFn func(x *tensor.Tensor) (*tensor.Tensor, error)

type binaryFn func(lhs, rhs *tensor.Tensor) (*tensor.Tensor, error)

var (
	unaryOps = map[optypes.OpType]unaryFn{
		optypes.Abs:        baseline.Abs,
		optypes.Ceil:       baseline.Ceil,
		optypes.Cos:        baseline.Cos,
		optypes.Erf:        baseline.Erf,
		optypes.Exp:        baseline.Exp,
		optypes.Floor:      baseline.Floor,
		optypes.HardSwish:  baseline.HardSwish,
		optypes.Log:        baseline.Log,
		optypes.Neg:        baseline.Neg,
		optypes.Reciprocal: baseline.Reciprocal,
		optypes.Relu:       baseline.Relu,
		optypes.Sigmoid:    baseline.Sigmoid,
		optypes.Sin:        baseline.Sin,
		optypes.Softplus:   baseline.Softplus,
		optypes.Softsign:   baseline.Softsign,
		optypes.Sqrt:       baseline.Sqrt,
		optypes.Tan:        baseline.Tan,
		optypes.Tanh:       baseline.Tanh,
	}

	binaryOps = map[optypes.OpType]binaryFn{
		optypes.Add: baseline.Add,
		optypes.Div: baseline.Div,
		optypes.Max: baseline.Max,
		optypes.Min: baseline.Min,
		optypes.Mul: baseline.Mul,
		optypes.Pow: baseline.Pow,
		optypes.Sub: baseline.Sub,
	}

	// activationOps are the unaryOps that can be fused as an activation without parameters.
	activationOps = utils.SetWith(optypes.HardSwish, optypes.Relu, optypes.Sigmoid, optypes.Softplus,
		optypes.Softsign, optypes.Tanh)

	reduceKinds = map[optypes.OpType]types.ReduceKind{
		optypes.ReduceL1:        types.ReduceL1,
		optypes.ReduceL2:        types.ReduceL2,
		optypes.ReduceLogSum:    types.ReduceLogSum,
		optypes.ReduceLogSumExp: types.ReduceLogSumExp,
		optypes.ReduceMax:       types.ReduceMax,
		optypes.ReduceMean:      types.ReduceMean,
		optypes.ReduceMin:       types.ReduceMin,
		optypes.ReduceProduct:   types.ReduceProduct,
		optypes.ReduceSum:       types.ReduceSum,
		optypes.ReduceSumSquare: types.ReduceSumSquare,
	}
)

// operands holds the converted inputs of a test case.
type operands struct {
	op      optypes.OpType
	tensors map[string]*tensor.Tensor
}

func (o operands) get(name string) (*tensor.Tensor, error) {
	t, found := o.tensors[name]
	if !found {
		return nil, errors.Errorf("%s: missing input %q", o.op.ToWebNN(), name)
	}
	return t, nil
}

// Execute runs the WebNN operator with the given inputs and options on the baseline evaluator.
func Execute(operator string, inputs map[string]*Operand, opts Options) (*tensor.Tensor, error) {
	op, err := optypes.FromWebNN(operator)
	if err != nil {
		return nil, types.ConfigErrorf("%v", err)
	}
	ops := operands{op: op, tensors: make(map[string]*tensor.Tensor, len(inputs))}
	for name, operand := range inputs {
		if operand == nil {
			return nil, errors.Errorf("%s: input %q is null", operator, name)
		}
		ops.tensors[name], err = operand.Tensor()
		if err != nil {
			return nil, errors.WithMessagef(err, "%s: input %q", operator, name)
		}
	}

	if fn, found := unaryOps[op]; found {
		x, err := ops.get("input")
		if err != nil {
			return nil, err
		}
		return fn(x)
	}
	if fn, found := binaryOps[op]; found {
		lhs, err := ops.get("a")
		if err != nil {
			return nil, err
		}
		rhs, err := ops.get("b")
		if err != nil {
			return nil, err
		}
		return fn(lhs, rhs)
	}
	if kind, found := reduceKinds[op]; found {
		x, err := ops.get("input")
		if err != nil {
			return nil, err
		}
		return baseline.Reduce(x, kind, baseline.ReduceOptions{Axes: opts.Axes, KeepDimensions: opts.KeepDimensions})
	}

	switch op {
	case optypes.Conv2D, optypes.ConvTranspose2D:
		return executeConvolution(op, ops, opts)
	case optypes.AveragePool2D, optypes.L2Pool2D, optypes.MaxPool2D:
		return executePool(op, ops, opts)
	}

	x, err := ops.get("input")
	if err != nil {
		return nil, err
	}
	switch op {
	case optypes.Broadcast:
		return baseline.Broadcast(x, opts.NewShape...)
	case optypes.Transpose:
		return baseline.Transpose(x, opts.Permutation...)
	case optypes.Reshape:
		return baseline.Reshape(x, opts.NewShape...)
	case optypes.Squeeze:
		return baseline.Squeeze(x, opts.Axes...)
	case optypes.Cast:
		dtype, err := utils.DTypeFromWebNN(opts.Type)
		if err != nil {
			return nil, types.ConfigErrorf("%s: %v", operator, err)
		}
		return baseline.Cast(x, dtype)
	case optypes.Clamp, optypes.Elu, optypes.HardSigmoid, optypes.LeakyRelu, optypes.Linear:
		activation, err := parameterizedActivation(op, opts.Alpha, opts.Beta, opts.MinValue, opts.MaxValue)
		if err != nil {
			return nil, err
		}
		return activation(x)
	}
	return nil, types.ConfigErrorf("operator %q is not supported by the conformance runner", operator)
}

func executeConvolution(op optypes.OpType, ops operands, opts Options) (*tensor.Tensor, error) {
	input, err := ops.get("input")
	if err != nil {
		return nil, err
	}
	filter, err := ops.get("filter")
	if err != nil {
		return nil, err
	}
	autoPad, err := types.ParseAutoPad(opts.AutoPad)
	if err != nil {
		return nil, err
	}
	inputLayout, err := types.ParseInputLayout(opts.InputLayout)
	if err != nil {
		return nil, err
	}
	var bias *tensor.Tensor
	if opts.Bias != nil {
		bias, err = opts.Bias.Tensor()
		if err != nil {
			return nil, errors.WithMessagef(err, "%s: bias", op.ToWebNN())
		}
	}
	var activation baseline.Activation
	if opts.Activation != nil {
		activation, err = activationFromOptions(opts.Activation)
		if err != nil {
			return nil, err
		}
	}

	if op == optypes.Conv2D {
		filterLayout, err := types.ParseConv2DFilterLayout(opts.FilterLayout)
		if err != nil {
			return nil, err
		}
		return baseline.Conv2D(input, filter, baseline.Conv2DOptions{
			Padding:      opts.Padding,
			Strides:      opts.Strides,
			Dilations:    opts.Dilations,
			Groups:       opts.Groups,
			AutoPad:      autoPad,
			InputLayout:  inputLayout,
			FilterLayout: filterLayout,
			Bias:         bias,
			Activation:   activation,
		})
	}
	filterLayout, err := types.ParseConvTranspose2DFilterLayout(opts.FilterLayout)
	if err != nil {
		return nil, err
	}
	return baseline.ConvTranspose2D(input, filter, baseline.ConvTranspose2DOptions{
		Padding:       opts.Padding,
		Strides:       opts.Strides,
		Dilations:     opts.Dilations,
		OutputPadding: opts.OutputPadding,
		OutputSizes:   opts.OutputSizes,
		Groups:        opts.Groups,
		AutoPad:       autoPad,
		InputLayout:   inputLayout,
		FilterLayout:  filterLayout,
		Bias:          bias,
		Activation:    activation,
	})
}

func executePool(op optypes.OpType, ops operands, opts Options) (*tensor.Tensor, error) {
	input, err := ops.get("input")
	if err != nil {
		return nil, err
	}
	autoPad, err := types.ParseAutoPad(opts.AutoPad)
	if err != nil {
		return nil, err
	}
	layout, err := types.ParseInputLayout(opts.Layout)
	if err != nil {
		return nil, err
	}
	rounding, err := types.ParseRoundingType(opts.RoundingType)
	if err != nil {
		return nil, err
	}
	poolOpts := baseline.Pool2DOptions{
		WindowDimensions: opts.WindowDimensions,
		Padding:          opts.Padding,
		Strides:          opts.Strides,
		Dilations:        opts.Dilations,
		AutoPad:          autoPad,
		Layout:           layout,
		RoundingType:     rounding,
		OutputSizes:      opts.OutputSizes,
	}
	switch op {
	case optypes.MaxPool2D:
		return baseline.MaxPool2D(input, poolOpts)
	case optypes.L2Pool2D:
		return baseline.L2Pool2D(input, poolOpts)
	default:
		return baseline.AveragePool2D(input, poolOpts)
	}
}

// activationFromOptions returns the fused activation selected by its WebNN name.
func activationFromOptions(act *Activation) (baseline.Activation, error) {
	op, err := optypes.FromWebNN(act.Name)
	if err != nil {
		return nil, types.ConfigErrorf("invalid activation: %v", err)
	}
	if fn, found := unaryOps[op]; found && activationOps.Has(op) {
		return baseline.Activation(fn), nil
	}
	return parameterizedActivation(op, act.Alpha, act.Beta, act.MinValue, act.MaxValue)
}

// parameterizedActivation creates the activation op with the given parameters, using the WebNN
// defaults for the ones not given.
func parameterizedActivation(op optypes.OpType, alpha, beta, minValue, maxValue *float64) (baseline.Activation, error) {
	valueOr := func(v *float64, defaultValue float64) float64 {
		if v == nil {
			return defaultValue
		}
		return *v
	}
	switch op {
	case optypes.Clamp:
		return baseline.ClampActivation(valueOr(minValue, math.Inf(-1)), valueOr(maxValue, math.Inf(1))), nil
	case optypes.Elu:
		return baseline.EluActivation(valueOr(alpha, baseline.DefaultEluAlpha)), nil
	case optypes.HardSigmoid:
		return baseline.HardSigmoidActivation(valueOr(alpha, baseline.DefaultHardSigmoidAlpha),
			valueOr(beta, baseline.DefaultHardSigmoidBeta)), nil
	case optypes.LeakyRelu:
		return baseline.LeakyReluActivation(valueOr(alpha, baseline.DefaultLeakyReluAlpha)), nil
	case optypes.Linear:
		return baseline.LinearActivation(valueOr(alpha, baseline.DefaultLinearAlpha), valueOr(beta, baseline.DefaultLinearBeta)), nil
	}
	return nil, types.ConfigErrorf("%s is not an activation", op.ToWebNN())
}
