package shapes

import (
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
)

// FromAnyValue returns the shape of a Go value: a scalar of a supported POD type (ints, uints,
// floats) or (multiple levels of) slices of it.
//
// Example:
//
//	shape, _ := shapes.FromAnyValue([][]float32{{0, 0}}) // Returns shape (Float32)[1 2]
func FromAnyValue(v any) (shape Shape, err error) {
	if v == nil {
		return Invalid(), errors.New("shapes.FromAnyValue(nil) is not a valid value")
	}
	err = shapeForAnyValueRecursive(&shape, reflect.ValueOf(v), reflect.TypeOf(v))
	return
}

func shapeForAnyValueRecursive(shape *Shape, v reflect.Value, t reflect.Type) error {
	if t.Kind() != reflect.Slice {
		// Leaf: it must be one of the supported scalar types.
		shape.DType = dtypes.FromGoType(t)
		if shape.DType == dtypes.InvalidDType || !(shape.DType.IsFloat() || shape.DType.IsInt()) {
			return errors.Errorf("cannot convert type %q to a tensor shape, only integer, unsigned integer and float types are supported", t)
		}
		return nil
	}

	// Slice: recurse into its element type (again slices or a supported POD).
	t = t.Elem()
	shape.Dimensions = append(shape.Dimensions, v.Len())
	shapePrefix := shape.Clone()

	if v.Len() == 0 {
		return types.ShapeErrorf("empty slice not valid for shape conversion: %T -- the inner dimensions can't be inferred", v.Interface())
	}
	err := shapeForAnyValueRecursive(shape, v.Index(0), t)
	if err != nil {
		return err
	}

	// All other elements must have the same shape as the first one.
	for ii := 1; ii < v.Len(); ii++ {
		shapeTest := shapePrefix.Clone()
		err = shapeForAnyValueRecursive(&shapeTest, v.Index(ii), t)
		if err != nil {
			return err
		}
		if !shape.Equal(shapeTest) {
			return types.ShapeErrorf("sub-slices have irregular shapes, found shapes %s and %s", shape, shapeTest)
		}
	}
	return nil
}
