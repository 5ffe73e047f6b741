package shapes

import "iter"

// Iter iterates over all locations of the shape in row-major order (the last axis changes fastest),
// yielding the flat index together with the location.
//
// The yielded location slice is owned by Iter and reused between iterations: don't change it or
// keep it after the loop body returns.
//
// A scalar yields once, with an empty location. A shape with a 0 dimension yields nothing.
func (s Shape) Iter() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		rank := s.Rank()
		size := s.Size()
		if size == 0 {
			return
		}
		location := make([]int, rank)
		for index := 0; index < size; index++ {
			if !yield(index, location) {
				return
			}
			// Increment location, carrying over to the slower axes.
			for axis := rank - 1; axis >= 0; axis-- {
				location[axis]++
				if location[axis] < s.Dimensions[axis] {
					break
				}
				location[axis] = 0
			}
		}
	}
}
