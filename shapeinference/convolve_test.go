package shapeinference

import (
	"strings"
	"testing"

	"github.com/webmachinelearning/webnn-baseline-sub000/internal/optypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/shapes"
)

func TestAutoPadding(t *testing.T) {
	for _, tc := range []struct {
		mode                                   types.AutoPad
		inputSize, effectiveFilterSize, stride int
		begin, end                             int
	}{
		{types.AutoPadSameUpper, 5, 4, 1, 1, 2},
		{types.AutoPadSameLower, 5, 4, 1, 2, 1},
		{types.AutoPadSameUpper, 5, 3, 2, 1, 1},
		{types.AutoPadSameUpper, 4, 2, 2, 0, 0},
		{types.AutoPadSameLower, 1, 1, 1, 0, 0},
	} {
		begin, end, err := AutoPadding(tc.mode, tc.inputSize, tc.effectiveFilterSize, tc.stride)
		if err != nil {
			t.Fatalf("AutoPadding(%s, %d, %d, %d) failed: %+v", tc.mode, tc.inputSize, tc.effectiveFilterSize, tc.stride, err)
		}
		if begin != tc.begin || end != tc.end {
			t.Errorf("AutoPadding(%s, %d, %d, %d) = (%d, %d), want (%d, %d)",
				tc.mode, tc.inputSize, tc.effectiveFilterSize, tc.stride, begin, end, tc.begin, tc.end)
		}
	}
	for _, mode := range []types.AutoPad{types.AutoPadExplicit, types.AutoPad(99)} {
		if _, _, err := AutoPadding(mode, 5, 3, 1); !types.IsConfigError(err) {
			t.Errorf("expected ConfigError for mode %s, got %v", mode, err)
		}
	}

	begin, end, err := TransposedAutoPadding(types.AutoPadSameUpper, 3, 3, 2, 0)
	if err != nil || begin != 0 || end != 1 {
		t.Errorf("TransposedAutoPadding(same-upper, 3, 3, 2, 0) = (%d, %d, %v), want (0, 1, nil)", begin, end, err)
	}
	begin, end, err = TransposedAutoPadding(types.AutoPadSameLower, 3, 3, 2, 0)
	if err != nil || begin != 1 || end != 0 {
		t.Errorf("TransposedAutoPadding(same-lower, 3, 3, 2, 0) = (%d, %d, %v), want (1, 0, nil)", begin, end, err)
	}

	// A stride larger than the filter needs negative padding to keep the output at inputSize*stride.
	begin, end, err = TransposedAutoPadding(types.AutoPadSameUpper, 2, 1, 2, 0)
	if err != nil || begin != 0 || end != -1 {
		t.Errorf("TransposedAutoPadding(same-upper, 2, 1, 2, 0) = (%d, %d, %v), want (0, -1, nil)", begin, end, err)
	}
	begin, end, err = TransposedAutoPadding(types.AutoPadSameLower, 2, 1, 2, 0)
	if err != nil || begin != -1 || end != 0 {
		t.Errorf("TransposedAutoPadding(same-lower, 2, 1, 2, 0) = (%d, %d, %v), want (-1, 0, nil)", begin, end, err)
	}

	if got := EffectiveFilterSize(3, 2); got != 5 {
		t.Errorf("EffectiveFilterSize(3, 2) = %d, want 5", got)
	}
}

// errorKind is used by the test tables to check the type of the returned error.
type errorKind int

const (
	noError errorKind = iota
	shapeError
	configError
	anyError
)

func checkErrorKind(t *testing.T, kind errorKind, err error) (stop bool) {
	t.Helper()
	switch kind {
	case noError:
		if err != nil {
			t.Fatalf("expected no error, got %+v", err)
		}
		return false
	case shapeError:
		if !types.IsShapeError(err) {
			t.Fatalf("expected ShapeError, got %v", err)
		}
	case configError:
		if !types.IsConfigError(err) {
			t.Fatalf("expected ConfigError, got %v", err)
		}
	case anyError:
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
	}
	return true
}

func TestConv2D(t *testing.T) {
	type testCase struct {
		name                        string
		input, filter               shapes.Shape
		padding, strides, dilations []int
		groups                      int
		autoPad                     types.AutoPad
		expectedError               errorKind
		expectedErrorContains       string
		output                      shapes.Shape
		padded                      [4]int
	}
	testCases := []testCase{
		{
			name:    "padding 1",
			input:   S(F32, 1, 1, 5, 5),
			filter:  S(F32, 1, 1, 3, 3),
			padding: []int{1, 1, 1, 1},
			groups:  1,
			output:  S(F32, 1, 1, 5, 5),
			padded:  [4]int{1, 1, 1, 1},
		},
		{
			name:   "defaults",
			input:  S(F32, 1, 1, 5, 5),
			filter: S(F32, 1, 1, 3, 3),
			groups: 1,
			output: S(F32, 1, 1, 3, 3),
		},
		{
			name:    "stride 2 with padding",
			input:   S(F32, 1, 1, 5, 5),
			filter:  S(F32, 1, 1, 3, 3),
			padding: []int{1, 1, 1, 1},
			strides: []int{2, 2},
			groups:  1,
			output:  S(F32, 1, 1, 3, 3),
			padded:  [4]int{1, 1, 1, 1},
		},
		{
			name:    "stride floors the output size",
			input:   S(F32, 1, 1, 6, 7),
			filter:  S(F32, 1, 1, 3, 3),
			strides: []int{2, 2},
			groups:  1,
			output:  S(F32, 1, 1, 2, 3),
		},
		{
			name:   "groups",
			input:  S(F32, 2, 4, 7, 7),
			filter: S(F32, 6, 2, 3, 3),
			groups: 2,
			output: S(F32, 2, 6, 5, 5),
		},
		{
			name:      "dilations",
			input:     S(F32, 1, 1, 7, 7),
			filter:    S(F32, 1, 1, 3, 3),
			dilations: []int{2, 2},
			groups:    1,
			output:    S(F32, 1, 1, 3, 3),
		},
		{
			name:    "same-upper with stride 2",
			input:   S(F32, 1, 1, 5, 5),
			filter:  S(F32, 1, 1, 3, 3),
			strides: []int{2, 2},
			groups:  1,
			autoPad: types.AutoPadSameUpper,
			output:  S(F32, 1, 1, 3, 3),
			padded:  [4]int{1, 1, 1, 1},
		},
		{
			name:    "same-lower with even filter",
			input:   S(F32, 1, 1, 5, 5),
			filter:  S(F32, 1, 1, 4, 2),
			groups:  1,
			autoPad: types.AutoPadSameLower,
			output:  S(F32, 1, 1, 5, 5),
			padded:  [4]int{2, 1, 1, 0},
		},
		{
			name:                  "channels mismatch",
			input:                 S(F32, 1, 4, 5, 5),
			filter:                S(F32, 6, 3, 3, 3),
			groups:                2,
			expectedError:         shapeError,
			expectedErrorContains: "inputChannels",
		},
		{
			name:                  "output channels not divisible by groups",
			input:                 S(F32, 1, 4, 5, 5),
			filter:                S(F32, 5, 2, 3, 3),
			groups:                2,
			expectedError:         shapeError,
			expectedErrorContains: "divisible",
		},
		{
			name:          "filter larger than input",
			input:         S(F32, 1, 1, 2, 2),
			filter:        S(F32, 1, 1, 3, 3),
			groups:        1,
			expectedError: shapeError,
		},
		{
			name:          "input rank 3",
			input:         S(F32, 1, 5, 5),
			filter:        S(F32, 1, 1, 3, 3),
			groups:        1,
			expectedError: shapeError,
		},
		{
			name:          "groups 0",
			input:         S(F32, 1, 1, 5, 5),
			filter:        S(F32, 1, 1, 3, 3),
			expectedError: shapeError,
		},
		{
			name:          "padding of length 3",
			input:         S(F32, 1, 1, 5, 5),
			filter:        S(F32, 1, 1, 3, 3),
			padding:       []int{1, 1, 1},
			groups:        1,
			expectedError: shapeError,
		},
		{
			name:          "stride 0",
			input:         S(F32, 1, 1, 5, 5),
			filter:        S(F32, 1, 1, 3, 3),
			strides:       []int{0, 1},
			groups:        1,
			expectedError: shapeError,
		},
		{
			name:          "invalid autoPad",
			input:         S(F32, 1, 1, 5, 5),
			filter:        S(F32, 1, 1, 3, 3),
			groups:        1,
			autoPad:       types.AutoPad(99),
			expectedError: configError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, window, err := Conv2D(tc.input, tc.filter, tc.padding, tc.strides, tc.dilations, tc.groups, tc.autoPad)
			if checkErrorKind(t, tc.expectedError, err) {
				if !strings.Contains(err.Error(), tc.expectedErrorContains) {
					t.Fatalf("expected error containing %q, got %q", tc.expectedErrorContains, err.Error())
				}
				return
			}
			if !tc.output.Equal(output) {
				t.Errorf("expected output %v, got %v", tc.output, output)
			}
			if window.Padding != tc.padded {
				t.Errorf("expected padding %v, got %v", tc.padded, window.Padding)
			}
		})
	}
}

func TestConvTranspose2D(t *testing.T) {
	type testCase struct {
		name                                      string
		input, filter                             shapes.Shape
		padding, strides, outputPadding, outSizes []int
		groups                                    int
		autoPad                                   types.AutoPad
		expectedError                             errorKind
		output                                    shapes.Shape
		padded                                    [4]int
	}
	testCases := []testCase{
		{
			name:   "defaults",
			input:  S(F32, 1, 1, 2, 2),
			filter: S(F32, 1, 1, 2, 2),
			groups: 1,
			output: S(F32, 1, 1, 3, 3),
		},
		{
			name:    "stride 2",
			input:   S(F32, 1, 1, 3, 3),
			filter:  S(F32, 2, 1, 3, 3),
			strides: []int{2, 2},
			groups:  1,
			output:  S(F32, 1, 2, 7, 7),
		},
		{
			name:          "output padding",
			input:         S(F32, 1, 1, 3, 3),
			filter:        S(F32, 2, 1, 3, 3),
			strides:       []int{2, 2},
			outputPadding: []int{1, 1},
			groups:        1,
			output:        S(F32, 1, 2, 8, 8),
		},
		{
			name:          "output padding not smaller than stride",
			input:         S(F32, 1, 1, 3, 3),
			filter:        S(F32, 2, 1, 3, 3),
			strides:       []int{2, 2},
			outputPadding: []int{2, 0},
			groups:        1,
			expectedError: shapeError,
		},
		{
			name:     "output sizes",
			input:    S(F32, 1, 1, 3, 3),
			filter:   S(F32, 2, 1, 3, 3),
			strides:  []int{2, 2},
			outSizes: []int{9, 9},
			groups:   1,
			output:   S(F32, 1, 2, 9, 9),
		},
		{
			name:   "groups",
			input:  S(F32, 1, 4, 3, 3),
			filter: S(F32, 3, 4, 2, 2),
			groups: 2,
			output: S(F32, 1, 6, 4, 4),
		},
		{
			name:          "filter input channels mismatch",
			input:         S(F32, 1, 4, 3, 3),
			filter:        S(F32, 3, 2, 2, 2),
			groups:        2,
			expectedError: shapeError,
		},
		{
			name:    "same-upper",
			input:   S(F32, 1, 1, 3, 3),
			filter:  S(F32, 1, 1, 3, 3),
			strides: []int{2, 2},
			groups:  1,
			autoPad: types.AutoPadSameUpper,
			output:  S(F32, 1, 1, 6, 6),
			padded:  [4]int{0, 1, 0, 1},
		},
		{
			name:    "same-lower",
			input:   S(F32, 1, 1, 3, 3),
			filter:  S(F32, 1, 1, 3, 3),
			strides: []int{2, 2},
			groups:  1,
			autoPad: types.AutoPadSameLower,
			output:  S(F32, 1, 1, 6, 6),
			padded:  [4]int{1, 0, 1, 0},
		},
		{
			name:    "same-upper with stride larger than the filter",
			input:   S(F32, 1, 1, 3, 3),
			filter:  S(F32, 1, 1, 2, 2),
			strides: []int{3, 3},
			groups:  1,
			autoPad: types.AutoPadSameUpper,
			output:  S(F32, 1, 1, 9, 9),
			padded:  [4]int{0, -1, 0, -1},
		},
		{
			name:          "padding larger than output",
			input:         S(F32, 1, 1, 1, 1),
			filter:        S(F32, 1, 1, 1, 1),
			padding:       []int{1, 1, 0, 0},
			groups:        1,
			expectedError: shapeError,
		},
		{
			name:          "invalid autoPad",
			input:         S(F32, 1, 1, 2, 2),
			filter:        S(F32, 1, 1, 2, 2),
			groups:        1,
			autoPad:       types.AutoPad(-1),
			expectedError: configError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, window, err := ConvTranspose2D(tc.input, tc.filter, tc.padding, tc.strides, nil,
				tc.outputPadding, tc.outSizes, tc.groups, tc.autoPad)
			if checkErrorKind(t, tc.expectedError, err) {
				return
			}
			if !tc.output.Equal(output) {
				t.Errorf("expected output %v, got %v", tc.output, output)
			}
			if window.Padding != tc.padded {
				t.Errorf("expected padding %v, got %v", tc.padded, window.Padding)
			}
		})
	}
}

func TestPool2D(t *testing.T) {
	type testCase struct {
		name                                          string
		opType                                        optypes.OpType
		input                                         shapes.Shape
		window, padding, strides, dilations, outSizes []int
		autoPad                                       types.AutoPad
		rounding                                      types.RoundingType
		expectedError                                 errorKind
		output                                        shapes.Shape
	}
	testCases := []testCase{
		{name: "global window", opType: optypes.MaxPool2D, input: S(F32, 1, 3, 4, 4), output: S(F32, 1, 3, 1, 1)},
		{name: "window 2 stride 2", opType: optypes.AveragePool2D, input: S(F32, 1, 3, 4, 4),
			window: []int{2, 2}, strides: []int{2, 2}, output: S(F32, 1, 3, 2, 2)},
		{name: "floor rounding", opType: optypes.MaxPool2D, input: S(F32, 1, 1, 5, 5),
			window: []int{2, 2}, strides: []int{2, 2}, output: S(F32, 1, 1, 2, 2)},
		{name: "ceil rounding", opType: optypes.MaxPool2D, input: S(F32, 1, 1, 5, 5),
			window: []int{2, 2}, strides: []int{2, 2}, rounding: types.RoundingCeil, output: S(F32, 1, 1, 3, 3)},
		{name: "padding", opType: optypes.L2Pool2D, input: S(F32, 1, 1, 5, 5),
			window: []int{3, 3}, padding: []int{1, 1, 1, 1}, output: S(F32, 1, 1, 5, 5)},
		{name: "dilations", opType: optypes.MaxPool2D, input: S(F32, 1, 1, 5, 5),
			window: []int{2, 2}, dilations: []int{2, 2}, output: S(F32, 1, 1, 3, 3)},
		{name: "same-upper", opType: optypes.MaxPool2D, input: S(F32, 1, 1, 5, 5),
			window: []int{2, 2}, strides: []int{2, 2}, autoPad: types.AutoPadSameUpper, output: S(F32, 1, 1, 3, 3)},
		{name: "output sizes", opType: optypes.AveragePool2D, input: S(F32, 1, 3, 5, 5),
			window: []int{2, 2}, strides: []int{2, 2}, outSizes: []int{3, 3}, output: S(F32, 1, 3, 3, 3)},
		{name: "window larger than input", opType: optypes.MaxPool2D, input: S(F32, 1, 1, 5, 5),
			window: []int{6, 6}, expectedError: shapeError},
		{name: "invalid rounding", opType: optypes.MaxPool2D, input: S(F32, 1, 1, 5, 5),
			rounding: types.RoundingType(5), expectedError: configError},
		{name: "input rank 2", opType: optypes.MaxPool2D, input: S(F32, 5, 5), expectedError: shapeError},
		{name: "window with 0", opType: optypes.MaxPool2D, input: S(F32, 1, 1, 5, 5),
			window: []int{0, 2}, expectedError: shapeError},
		{name: "not a pooling", opType: optypes.Conv2D, input: S(F32, 1, 1, 5, 5), expectedError: anyError},
		{name: "window entirely in the padding", opType: optypes.MaxPool2D, input: S(F32, 1, 1, 1, 1),
			window: []int{1, 1}, padding: []int{2, 0, 0, 0}, expectedError: shapeError},
		{name: "output sizes past the input", opType: optypes.AveragePool2D, input: S(F32, 1, 1, 5, 5),
			window: []int{2, 2}, strides: []int{2, 2}, outSizes: []int{3, 4}, expectedError: shapeError},
		{name: "dilated window skipping the input", opType: optypes.L2Pool2D, input: S(F32, 1, 1, 1, 5),
			window: []int{2, 1}, padding: []int{1, 1, 0, 0}, dilations: []int{2, 1}, expectedError: shapeError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, _, err := Pool2D(tc.opType, tc.input, tc.window, tc.padding, tc.strides, tc.dilations,
				tc.autoPad, tc.rounding, tc.outSizes)
			if checkErrorKind(t, tc.expectedError, err) {
				return
			}
			if !tc.output.Equal(output) {
				t.Errorf("expected output %v, got %v", tc.output, output)
			}
		})
	}
}

func TestBias(t *testing.T) {
	if err := Bias(optypes.Conv2D, S(F32, 4), 4); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if err := Bias(optypes.Conv2D, S(F32, 1, 4), 4); !types.IsShapeError(err) {
		t.Errorf("expected ShapeError for rank-2 bias, got %v", err)
	}
	if err := Bias(optypes.ConvTranspose2D, S(F32, 3), 4); !types.IsShapeError(err) {
		t.Errorf("expected ShapeError for bias of the wrong length, got %v", err)
	}
}
