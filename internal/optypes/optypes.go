// Package optypes defines OpType and lists the supported operations.
package optypes

import (
	"github.com/pkg/errors"
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/utils"
)

// OpType is an enum of all operators the baseline evaluator implements.
type OpType int

//go:generate go tool enumer -type=OpType optypes.go

const (
	Invalid OpType = iota

	Abs
	Add
	AveragePool2D
	Broadcast
	Cast
	Ceil
	Clamp
	Conv2D
	ConvTranspose2D
	Cos
	Div
	Elu
	Erf
	Exp
	Floor
	HardSigmoid
	HardSwish
	L2Pool2D
	LeakyRelu
	Linear
	Log
	Max
	MaxPool2D
	Min
	Mul
	Neg
	Pow
	Reciprocal
	ReduceL1
	ReduceL2
	ReduceLogSum
	ReduceLogSumExp
	ReduceMax
	ReduceMean
	ReduceMin
	ReduceProduct
	ReduceSum
	ReduceSumSquare
	Relu
	Reshape
	Sigmoid
	Sin
	Softplus
	Softsign
	Sqrt
	Squeeze
	Sub
	Tan
	Tanh
	Transpose

	// Last should always be kept the last, it is used as a counter/marker for the number of ops.
	Last
)

var (
	// webNNMappings maps OpType to the corresponding WebNN operator name, when the default
	// "lower camel case" doesn't work.
	webNNMappings = map[OpType]string{
		Broadcast: "expand",
	}

	// fromWebNN is the reverse index of ToWebNN.
	fromWebNN = func() map[string]OpType {
		index := make(map[string]OpType, int(Last))
		for op := Invalid + 1; op < Last; op++ {
			index[op.ToWebNN()] = op
		}
		return index
	}()
)

// ToWebNN returns the WebNN name of the operation.
func (op OpType) ToWebNN() string {
	name, ok := webNNMappings[op]
	if !ok {
		name = utils.ToLowerCamelCase(op.String())
	}
	return name
}

// FromWebNN returns the OpType for a WebNN operator name, e.g. "convTranspose2d".
func FromWebNN(name string) (OpType, error) {
	op, found := fromWebNN[name]
	if !found {
		return Invalid, errors.Errorf("unknown WebNN operator %q", name)
	}
	return op, nil
}
