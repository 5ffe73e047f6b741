// Package conformance runs JSON-described operator test cases against the baseline evaluator.
//
// A test file holds a list of cases. Each case names a WebNN operator, gives its input operands and
// options (with the WebNN spellings), and either the expected output operand or the kind of the
// expected error:
//
//	{"tests": [{
//	  "name": "conv2d padding",
//	  "operator": "conv2d",
//	  "inputs": {
//	    "input": {"shape": [1, 1, 3, 3], "data": [0, 1, 2, 3, 4, 5, 6, 7, 8]},
//	    "filter": {"shape": [1, 1, 1, 1], "data": [2]}
//	  },
//	  "options": {"padding": [1, 1, 1, 1]},
//	  "expected": {"shape": [1, 1, 5, 5], "data": [...]}
//	}]}
//
// Outputs are compared with a Tolerance: a value passes if |got-want| <= atol + rtol*|want|.
package conformance

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/webmachinelearning/webnn-baseline-sub000/internal/utils"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/shapes"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/tensor"
)

// Operand is the JSON form of a tensor. Type is the WebNN operand type ("float32" if empty).
type Operand struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
	Type  string    `json:"type,omitempty"`
}

// Tensor converts the operand to a tensor.
func (o *Operand) Tensor() (*tensor.Tensor, error) {
	dtype, err := utils.DTypeFromWebNN(o.Type)
	if err != nil {
		return nil, err
	}
	if err = shapes.CheckDimensions(o.Shape); err != nil {
		return nil, err
	}
	return tensor.New(shapes.Make(dtype, o.Shape...), o.Data)
}

// Activation selects the activation fused at the end of conv2d and convTranspose2d.
// Name is the WebNN operator name, e.g. "relu" or "clamp".
type Activation struct {
	Name     string   `json:"name"`
	Alpha    *float64 `json:"alpha,omitempty"`
	Beta     *float64 `json:"beta,omitempty"`
	MinValue *float64 `json:"minValue,omitempty"`
	MaxValue *float64 `json:"maxValue,omitempty"`
}

// Options of all operators, with their WebNN names. Each operator reads only the fields it uses;
// absent fields select the operator defaults.
type Options struct {
	// Spatial operators.
	Padding          []int       `json:"padding,omitempty"`
	Strides          []int       `json:"strides,omitempty"`
	Dilations        []int       `json:"dilations,omitempty"`
	Groups           int         `json:"groups,omitempty"`
	AutoPad          string      `json:"autoPad,omitempty"`
	InputLayout      string      `json:"inputLayout,omitempty"`
	Layout           string      `json:"layout,omitempty"`
	FilterLayout     string      `json:"filterLayout,omitempty"`
	OutputPadding    []int       `json:"outputPadding,omitempty"`
	OutputSizes      []int       `json:"outputSizes,omitempty"`
	WindowDimensions []int       `json:"windowDimensions,omitempty"`
	RoundingType     string      `json:"roundingType,omitempty"`
	Bias             *Operand    `json:"bias,omitempty"`
	Activation       *Activation `json:"activation,omitempty"`

	// Reductions: a missing "axes" reduces all axes, an empty list reduces none.
	Axes           []int `json:"axes"`
	KeepDimensions bool  `json:"keepDimensions,omitempty"`

	// Shape manipulation.
	Permutation []int `json:"permutation,omitempty"`
	NewShape    []int `json:"newShape,omitempty"`

	// Cast target type.
	Type string `json:"type,omitempty"`

	// Parameterized element-wise operators: clamp, leakyRelu, elu, hardSigmoid, linear.
	Alpha    *float64 `json:"alpha,omitempty"`
	Beta     *float64 `json:"beta,omitempty"`
	MinValue *float64 `json:"minValue,omitempty"`
	MaxValue *float64 `json:"maxValue,omitempty"`
}

// ToleranceOverride sets the tolerance of one test case. Fields left unset fall back to the runner
// tolerance, and 0 is an exact match.
type ToleranceOverride struct {
	ATol *float64 `json:"atol,omitempty"`
	RTol *float64 `json:"rtol,omitempty"`
}

// TestCase is one operator invocation and its expected outcome.
type TestCase struct {
	Name     string              `json:"name"`
	Operator string              `json:"operator"`
	Inputs   map[string]*Operand `json:"inputs"`
	Options  Options             `json:"options"`

	// Expected output. Exactly one of Expected and ExpectedError must be set.
	Expected *Operand `json:"expected,omitempty"`

	// ExpectedError is the kind of the expected error: "ShapeError" or "ConfigError".
	ExpectedError string `json:"expectedError,omitempty"`

	Tolerance *ToleranceOverride `json:"tolerance,omitempty"`
}

// File is the top-level JSON object of a test file.
type File struct {
	Tests []*TestCase `json:"tests"`
}

// Parse reads a test file from r.
func Parse(r io.Reader) (*File, error) {
	var file File
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, errors.Wrap(err, "failed to parse conformance test file")
	}
	for i, tc := range file.Tests {
		if tc == nil {
			return nil, errors.Errorf("test #%d is null", i)
		}
		if tc.Name == "" {
			return nil, errors.Errorf("test #%d has no name", i)
		}
		if (tc.Expected == nil) == (tc.ExpectedError == "") {
			return nil, errors.Errorf("test %q must have exactly one of \"expected\" or \"expectedError\"", tc.Name)
		}
		if tc.ExpectedError != "" && tc.ExpectedError != ShapeErrorKind && tc.ExpectedError != ConfigErrorKind {
			return nil, errors.Errorf("test %q: invalid expectedError %q, valid values are %q and %q",
				tc.Name, tc.ExpectedError, ShapeErrorKind, ConfigErrorKind)
		}
	}
	return &file, nil
}

// LoadFile reads and parses the test file at path.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %q", path)
	}
	defer func() { _ = f.Close() }()
	file, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "file %q", path)
	}
	return file, nil
}
