// Package baseline is a reference ("baseline") numeric evaluator for the WebNN tensor operators.
//
// It is used to validate accelerated implementations of the same operators: every function here is a
// direct, single-threaded and deterministic rendition of the operator semantics, computed in float64.
//
// Among its features:
//
//   - N-dimensional tensors (see package types/tensor) with NumPy-style broadcasting.
//   - A generic reduction engine: max, min, sum, product, mean, and the norms, over any set of axes.
//   - The spatial engine: Conv2D, ConvTranspose2D and the pooling operators (MaxPool2D, AveragePool2D,
//     L2Pool2D), with explicit or automatic padding, strides, dilations, groups and the "nhwc" and
//     filter layouts.
//   - Shape inference and validation of every operator (see package shapeinference): an operator
//     either returns a fresh output tensor or a typed error (types.ShapeError or types.ConfigError),
//     never partial results.
//
// Operators never modify their inputs. The options of each operator are given by a struct whose zero
// value selects the WebNN defaults.
package baseline

import (
	"github.com/pkg/errors"
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

// checkOperands returns an error if any of the operands is nil.
func checkOperands(op optypes.OpType, operands ...*tensor.Tensor) error {
	for i, operand := range operands {
		if operand == nil {
			return errors.Errorf("%s: operand #%d is nil", op, i)
		}
	}
	return nil
}
