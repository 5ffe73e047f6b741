// Package shapes defines Shape: the data type and dimensions of a tensor, plus the row-major
// index arithmetic shared by every operator.
//
// ## Glossary
//
//   - Rank: number of axes of a tensor; 0 for a scalar.
//   - Axis: the index of a dimension. We refer to a dimension's index as "axis" (plural axes), and to
//     its size as its dimension.
//   - Location: one coordinate per axis, each in the range [0, dimension).
//   - Index (or flat index): the position of a location in the row-major flat buffer.
//   - Stride: number of flat elements skipped to advance one unit along an axis.
//
// Example: `[][]float32{{0, 1, 2}, {3, 4, 5}}` has shape `(Float32)[2 3]`, with strides `[3 1]`, and
// the value 5 is at location [1, 2], index 5.
package shapes

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/webmachinelearning/webnn-baseline-sub000/types"
)

// Shape of a tensor: its DType and its dimensions.
//
// Dimensions may be 0 (an empty tensor), but never negative.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int
}

// Make returns a Shape with the given dtype and dimensions.
//
// It panics if a dimension is negative: use CheckDimensions to validate user-provided dimensions first.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s := Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
	for _, dim := range dimensions {
		if dim < 0 {
			exceptions.Panicf("shapes.Make(%s): cannot create a shape with an axis with negative dimension", s)
		}
	}
	return s
}

// CheckDimensions returns a ShapeError if any of the dimensions is negative.
func CheckDimensions(dimensions []int) error {
	for axis, dim := range dimensions {
		if dim < 0 {
			return types.ShapeErrorf("dimension of axis #%d is negative (%d) in %v", axis, dim, dimensions)
		}
	}
	return nil
}

// Invalid returns an invalid shape.
//
// Invalid().Ok() == false.
func Invalid() Shape {
	return Shape{DType: dtypes.InvalidDType}
}

// Ok returns whether this is a valid Shape. A "zero" Shape{} is invalid.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType }

// Rank of the shape, that is, the number of axes.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar returns whether the shape has no axes.
func (s Shape) IsScalar() bool { return s.Ok() && s.Rank() == 0 }

// Dim returns the dimension of the given axis. Negative axes count from the end, so -1 is the
// last axis. It panics for an out-of-bounds axis, like slice indexing.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// Shape returns itself. It allows Shape to be used where a "has shape" value is expected.
func (s Shape) Shape() Shape { return s }

// String implements fmt.Stringer.
func (s Shape) String() string {
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	return fmt.Sprintf("(%s)%v", s.DType, s.Dimensions)
}

// Size returns the number of elements of the shape: the product of all dimensions, 1 for a scalar.
func (s Shape) Size() (size int) {
	size = 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return
}

// Equal compares dtype and dimensions.
func (s Shape) Equal(s2 Shape) bool {
	return s.DType == s2.DType && s.EqualDimensions(s2)
}

// EqualDimensions compares only the dimensions, the dtypes can differ.
func (s Shape) EqualDimensions(s2 Shape) bool {
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{DType: s.DType, Dimensions: slices.Clone(s.Dimensions)}
}

// WithDimensions returns a copy of the shape with the same dtype and the given dimensions.
func (s Shape) WithDimensions(dimensions ...int) Shape {
	return Make(s.DType, dimensions...)
}

// Strides returns the row-major strides: strides[i] = product(Dimensions[i+1:]).
// A scalar has no strides.
func (s Shape) Strides() []int {
	rank := s.Rank()
	strides := make([]int, rank)
	stride := 1
	for axis := rank - 1; axis >= 0; axis-- {
		strides[axis] = stride
		stride *= s.Dimensions[axis]
	}
	return strides
}

// CheckDims checks that the shape has the given dimensions and rank. A value of -1 in
// dimensions is not checked.
func (s Shape) CheckDims(dimensions ...int) error {
	if s.Rank() != len(dimensions) {
		return types.ShapeErrorf("shape %s has incompatible rank %d (wanted %d)", s, s.Rank(), len(dimensions))
	}
	for axis, wantDim := range dimensions {
		if wantDim != -1 && s.Dimensions[axis] != wantDim {
			return types.ShapeErrorf("shape %s axis %d has dimension %d, wanted %d (dimensions wanted=%v)",
				s, axis, s.Dimensions[axis], wantDim, dimensions)
		}
	}
	return nil
}

// IndexFromLocation converts a location (one coordinate per axis) to its flat row-major index.
//
// It returns a ShapeError if len(location) != rank or a coordinate is out of range.
func (s Shape) IndexFromLocation(location []int) (int, error) {
	if len(location) != s.Rank() {
		return 0, types.ShapeErrorf("location %v has %d coordinates, but shape %s has rank %d",
			location, len(location), s, s.Rank())
	}
	index := 0
	for axis, coord := range location {
		dim := s.Dimensions[axis]
		if coord < 0 || coord >= dim {
			return 0, types.ShapeErrorf("location %v is out of range for shape %s at axis %d", location, s, axis)
		}
		index = index*dim + coord
	}
	return index, nil
}

// LocationFromIndex converts a flat row-major index to a location: it is the inverse of IndexFromLocation.
//
// It returns a ShapeError if the index is not in the range [0, Size()).
func (s Shape) LocationFromIndex(index int) ([]int, error) {
	if index < 0 || index >= s.Size() {
		return nil, types.ShapeErrorf("index %d out of range for shape %s (size %d)", index, s, s.Size())
	}
	location := make([]int, s.Rank())
	for axis := s.Rank() - 1; axis >= 0; axis-- {
		dim := s.Dimensions[axis]
		location[axis] = index % dim
		index /= dim
	}
	return location, nil
}
