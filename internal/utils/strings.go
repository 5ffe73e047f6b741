package utils

import (
	"strings"
	"unicode"
)

// ToLowerCamelCase converts a Go exported CamelCase name to the lowerCamelCase used by WebNN operator
// names: the leading run of upper case letters is lowered (keeping the last one if it starts a new
// word), and an upper case letter that directly follows a digit is lowered too.
//
// Examples: "Conv2D" -> "conv2d", "AveragePool2D" -> "averagePool2d", "L2Pool2D" -> "l2Pool2d",
// "ReduceLogSumExp" -> "reduceLogSumExp".
func ToLowerCamelCase(s string) string {
	runes := []rune(s)
	var res strings.Builder
	res.Grow(len(s))
	leading := true
	for i, r := range runes {
		var next rune
		if i < len(runes)-1 {
			next = runes[i+1]
		}
		switch {
		case leading && unicode.IsUpper(r):
			if i > 0 && unicode.IsLower(next) {
				leading = false
				res.WriteRune(r)
				continue
			}
			res.WriteRune(unicode.ToLower(r))
		case unicode.IsUpper(r) && i > 0 && unicode.IsDigit(runes[i-1]) && !unicode.IsLower(next):
			leading = false
			res.WriteRune(unicode.ToLower(r))
		default:
			leading = false
			res.WriteRune(r)
		}
	}
	return res.String()
}
