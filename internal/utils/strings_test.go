package utils

import "testing"

func TestToLowerCamelCase(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"Abs", "abs"},
		{"Conv2D", "conv2d"},
		{"ConvTranspose2D", "convTranspose2d"},
		{"AveragePool2D", "averagePool2d"},
		{"L2Pool2D", "l2Pool2d"},
		{"ReduceL1", "reduceL1"},
		{"ReduceLogSumExp", "reduceLogSumExp"},
		{"HardSwish", "hardSwish"},
		{"HTTPServer", "httpServer"},
		{"", ""},
	} {
		if got := ToLowerCamelCase(tc.in); got != tc.want {
			t.Errorf("ToLowerCamelCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
