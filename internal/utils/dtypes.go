package utils

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// webNNDTypeNames maps the dtypes supported as operand types to their WebNN names.
var webNNDTypeNames = map[dtypes.DType]string{
	dtypes.Float64:  "float64",
	dtypes.Float32:  "float32",
	dtypes.Float16:  "float16",
	dtypes.BFloat16: "bfloat16",
	dtypes.Int64:    "int64",
	dtypes.Int32:    "int32",
	dtypes.Int16:    "int16",
	dtypes.Int8:     "int8",
	dtypes.Uint64:   "uint64",
	dtypes.Uint32:   "uint32",
	dtypes.Uint16:   "uint16",
	dtypes.Uint8:    "uint8",
}

// DTypeToWebNN returns the WebNN operand type name of dtype, e.g. "float32".
func DTypeToWebNN(dtype dtypes.DType) string {
	if name, found := webNNDTypeNames[dtype]; found {
		return name
	}
	return fmt.Sprintf("unknown_dtype<%s>", dtype.String())
}

// DTypeFromWebNN parses a WebNN operand type name. The empty string maps to Float32, the
// default operand type.
func DTypeFromWebNN(name string) (dtypes.DType, error) {
	if name == "" {
		return dtypes.Float32, nil
	}
	for dtype, webNNName := range webNNDTypeNames {
		if webNNName == name {
			return dtype, nil
		}
	}
	return dtypes.InvalidDType, errors.Errorf("unknown operand type %q", name)
}
