// Package tensor implements Tensor, the N-dimensional value consumed and produced by every operator.
//
// A Tensor couples a shapes.Shape with a flat row-major buffer of float64 values. The DType of the
// shape is metadata: values are always held (and computed) in float64, and only Cast rounds them to
// the precision of a narrower type.
package tensor

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
	"github.com/webmachinelearning/webnn-baseline-sub000/types/shapes"
	"github.com/x448/float16"
)

// Tensor is a shaped, row-major buffer of values.
//
// The shape is fixed at construction. Values can be changed in place with SetValue and
// SetValueAtLocation, but operators never do that to their inputs: they always return a fresh Tensor.
type Tensor struct {
	shape shapes.Shape
	flat  []float64
}

// New creates a Tensor with the given shape, owning the flat buffer (it is not copied).
//
// It returns a ShapeError if the shape has a negative dimension, or if len(flat) differs from the
// shape size.
func New(shape shapes.Shape, flat []float64) (*Tensor, error) {
	if err := shapes.CheckDimensions(shape.Dimensions); err != nil {
		return nil, err
	}
	if len(flat) != shape.Size() {
		return nil, types.ShapeErrorf("tensor.New: buffer has %d values, but shape %s requires %d", len(flat), shape, shape.Size())
	}
	return &Tensor{shape: shape.Clone(), flat: flat}, nil
}

// MustNew is like New, but panics on error.
func MustNew(shape shapes.Shape, flat []float64) *Tensor {
	t, err := New(shape, flat)
	if err != nil {
		exceptions.Panicf("tensor.MustNew: %+v", err)
	}
	return t
}

// Zeros returns a Tensor of the given shape filled with zeros.
func Zeros(shape shapes.Shape) *Tensor {
	return &Tensor{shape: shape.Clone(), flat: make([]float64, shape.Size())}
}

// Scalar returns a rank-0 Tensor holding value.
func Scalar(dtype dtypes.DType, value float64) *Tensor {
	return &Tensor{shape: shapes.Make(dtype), flat: []float64{value}}
}

// FromFlatAndDimensions creates a Tensor from a flat slice of any supported Go numeric type
// (ints, uints, floats, float16.Float16 or bfloat16.BFloat16) and the dimensions. The DType is
// taken from the slice element type.
//
// Example:
//
//	t, err := tensor.FromFlatAndDimensions([]float32{0, 1, 2, 3, 4, 5}, 2, 3)
func FromFlatAndDimensions(flat any, dimensions ...int) (*Tensor, error) {
	flatV := reflect.ValueOf(flat)
	if flatV.Kind() != reflect.Slice {
		return nil, errors.Errorf("tensor.FromFlatAndDimensions: flat must be a slice, got %T", flat)
	}
	dtype := dtypes.FromGoType(flatV.Type().Elem())
	if dtype == dtypes.InvalidDType || !(dtype.IsFloat() || dtype.IsInt()) {
		return nil, errors.Errorf("tensor.FromFlatAndDimensions: unsupported element type %s", flatV.Type().Elem())
	}
	if err := shapes.CheckDimensions(dimensions); err != nil {
		return nil, err
	}
	values := make([]float64, flatV.Len())
	for ii := range values {
		values[ii] = valueToFloat64(flatV.Index(ii))
	}
	return New(shapes.Make(dtype, dimensions...), values)
}

// FromAnyValue creates a Tensor from a scalar or (nested) slices of a supported Go numeric type.
// The nested slices must be regular, see shapes.FromAnyValue.
//
// Example:
//
//	t, err := tensor.FromAnyValue([][]float32{{0, 1, 2}, {3, 4, 5}}) // Shape (Float32)[2 3]
func FromAnyValue(value any) (*Tensor, error) {
	shape, err := shapes.FromAnyValue(value)
	if err != nil {
		return nil, err
	}
	values := make([]float64, 0, shape.Size())
	values = flattenRecursive(values, reflect.ValueOf(value))
	return New(shape, values)
}

// MustFromAnyValue is like FromAnyValue, but panics on error.
func MustFromAnyValue(value any) *Tensor {
	t, err := FromAnyValue(value)
	if err != nil {
		exceptions.Panicf("tensor.MustFromAnyValue: %+v", err)
	}
	return t
}

func flattenRecursive(values []float64, v reflect.Value) []float64 {
	if v.Kind() != reflect.Slice {
		return append(values, valueToFloat64(v))
	}
	for ii := range v.Len() {
		values = flattenRecursive(values, v.Index(ii))
	}
	return values
}

var (
	float16Type  = reflect.TypeOf(float16.Float16(0))
	bfloat16Type = reflect.TypeOf(bfloat16.BFloat16(0))
)

func valueToFloat64(v reflect.Value) float64 {
	switch v.Type() {
	case float16Type:
		return float64(v.Interface().(float16.Float16).Float32())
	case bfloat16Type:
		return float64(v.Interface().(bfloat16.BFloat16).Float32())
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	exceptions.Panicf("tensor: unsupported value type %s", v.Type())
	return 0
}

// Shape returns the shape of the tensor. The returned Shape must not be modified.
func (t *Tensor) Shape() shapes.Shape { return t.shape }

// DType returns the data type of the tensor.
func (t *Tensor) DType() dtypes.DType { return t.shape.DType }

// Rank returns the number of axes.
func (t *Tensor) Rank() int { return t.shape.Rank() }

// Size returns the number of elements: the product of the dimensions, 1 for a scalar.
func (t *Tensor) Size() int { return len(t.flat) }

// Flat returns the underlying row-major buffer. Changes to it change the tensor.
func (t *Tensor) Flat() []float64 { return t.flat }

// IndexFromLocation converts a location to a flat index, see shapes.Shape.IndexFromLocation.
func (t *Tensor) IndexFromLocation(location []int) (int, error) {
	return t.shape.IndexFromLocation(location)
}

// LocationFromIndex converts a flat index to a location, see shapes.Shape.LocationFromIndex.
func (t *Tensor) LocationFromIndex(index int) ([]int, error) {
	return t.shape.LocationFromIndex(index)
}

// Value returns the value at the flat index.
func (t *Tensor) Value(index int) (float64, error) {
	if index < 0 || index >= len(t.flat) {
		return 0, types.ShapeErrorf("index %d out of range for tensor of shape %s", index, t.shape)
	}
	return t.flat[index], nil
}

// SetValue sets the value at the flat index.
func (t *Tensor) SetValue(index int, value float64) error {
	if index < 0 || index >= len(t.flat) {
		return types.ShapeErrorf("index %d out of range for tensor of shape %s", index, t.shape)
	}
	t.flat[index] = value
	return nil
}

// ValueAtLocation returns the value at the location (one coordinate per axis).
func (t *Tensor) ValueAtLocation(location []int) (float64, error) {
	index, err := t.shape.IndexFromLocation(location)
	if err != nil {
		return 0, err
	}
	return t.flat[index], nil
}

// SetValueAtLocation sets the value at the location (one coordinate per axis).
func (t *Tensor) SetValueAtLocation(location []int, value float64) error {
	index, err := t.shape.IndexFromLocation(location)
	if err != nil {
		return err
	}
	t.flat[index] = value
	return nil
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{shape: t.shape.Clone(), flat: slices.Clone(t.flat)}
}

// WithShape returns a copy of t with a different shape of the same size. The dtype of the new
// shape is used as is.
func (t *Tensor) WithShape(shape shapes.Shape) (*Tensor, error) {
	return New(shape, slices.Clone(t.flat))
}

// String implements fmt.Stringer. Values are printed in nested brackets, one level per axis.
func (t *Tensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: ", t.shape)
	if t.Rank() == 0 {
		fmt.Fprintf(&sb, "%g", t.flat[0])
		return sb.String()
	}
	var writeAxis func(axis, offset int)
	strides := t.shape.Strides()
	writeAxis = func(axis, offset int) {
		sb.WriteByte('[')
		for ii := range t.shape.Dimensions[axis] {
			if ii > 0 {
				sb.WriteString(", ")
			}
			if axis == t.Rank()-1 {
				fmt.Fprintf(&sb, "%g", t.flat[offset+ii])
			} else {
				writeAxis(axis+1, offset+ii*strides[axis])
			}
		}
		sb.WriteByte(']')
	}
	writeAxis(0, 0)
	return sb.String()
}
