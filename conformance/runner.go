package conformance

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
	"k8s.io/klog/v2"
)

// Kinds of errors a test case can expect.
const (
	ShapeErrorKind  = "ShapeError"
	ConfigErrorKind = "ConfigError"
)

// errorKind returns the kind of err: ShapeErrorKind, ConfigErrorKind or "" for any other error.
func errorKind(err error) string {
	switch {
	case types.IsShapeError(err):
		return ShapeErrorKind
	case types.IsConfigError(err):
		return ConfigErrorKind
	}
	return ""
}

// Result of running one TestCase.
type Result struct {
	Name     string
	Operator string

	// Failure is nil if the test passed.
	Failure error
}

// Passed reports whether the test case passed.
func (r Result) Passed() bool { return r.Failure == nil }

// String implements fmt.Stringer.
func (r Result) String() string {
	if r.Passed() {
		return fmt.Sprintf("PASS %s (%s)", r.Name, r.Operator)
	}
	return fmt.Sprintf("FAIL %s (%s): %v", r.Name, r.Operator, r.Failure)
}

// Runner runs test cases with a default Tolerance, which each case can override.
type Runner struct {
	Tolerance Tolerance
}

// NewRunner returns a Runner with the DefaultTolerance.
func NewRunner() *Runner {
	return &Runner{Tolerance: DefaultTolerance()}
}

// Run executes the test case and checks its outcome.
//
// A case expecting an error passes only if the operator fails with an error of that kind. A case
// expecting an output passes if the operator succeeds with an output Close to it.
func (r *Runner) Run(tc *TestCase) Result {
	result := Result{Name: tc.Name, Operator: tc.Operator}
	klog.V(1).Infof("running %q (%s)", tc.Name, tc.Operator)
	output, err := Execute(tc.Operator, tc.Inputs, tc.Options)

	if tc.ExpectedError != "" {
		switch {
		case err == nil:
			result.Failure = errors.Errorf("expected %s, got output %s", tc.ExpectedError, output.Shape())
		case errorKind(err) != tc.ExpectedError:
			result.Failure = errors.WithMessagef(err, "expected %s, got", tc.ExpectedError)
		default:
			klog.V(2).Infof("%q failed as expected: %v", tc.Name, err)
		}
		return result
	}

	if err != nil {
		result.Failure = err
		return result
	}
	klog.V(2).Infof("%q output: %s", tc.Name, output)
	want, err := tc.Expected.Tensor()
	if err != nil {
		result.Failure = errors.WithMessagef(err, "invalid expected operand")
		return result
	}
	result.Failure = r.Tolerance.Override(tc.Tolerance).Compare(output, want)
	return result
}

// RunFile runs all the test cases of file, in order.
func (r *Runner) RunFile(file *File) []Result {
	results := make([]Result, 0, len(file.Tests))
	for _, tc := range file.Tests {
		results = append(results, r.Run(tc))
	}
	return results
}
