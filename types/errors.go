package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// ShapeError is returned when operands or options describe incompatible shapes: rank mismatches,
// incompatible broadcast dimensions, out-of-range or duplicate axes, channel or bias size mismatches,
// invalid derived output sizes.
type ShapeError struct {
	msg string
}

// Error implements the error interface.
func (e *ShapeError) Error() string { return e.msg }

// ConfigError is returned for unrecognized enum-like option values, e.g. an unknown autoPad mode,
// layout token or rounding type.
type ConfigError struct {
	msg string
}

// Error implements the error interface.
func (e *ConfigError) Error() string { return e.msg }

// ShapeErrorf creates a new *ShapeError with the formatted message, annotated with a stack trace.
func ShapeErrorf(format string, args ...any) error {
	return errors.WithStack(&ShapeError{msg: fmt.Sprintf(format, args...)})
}

// ConfigErrorf creates a new *ConfigError with the formatted message, annotated with a stack trace.
func ConfigErrorf(format string, args ...any) error {
	return errors.WithStack(&ConfigError{msg: fmt.Sprintf(format, args...)})
}

// IsShapeError reports whether err is, or wraps, a *ShapeError.
func IsShapeError(err error) bool {
	var target *ShapeError
	return errors.As(err, &target)
}

// IsConfigError reports whether err is, or wraps, a *ConfigError.
func IsConfigError(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}
