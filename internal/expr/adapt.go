package expr

import "slices"

// adaptIndex rewrites coordinates that fall on broadcast dimensions: a size-1
// extent always reads its sole element, so any coordinate >= 1 on it maps to
// 0. The excess leading coordinates (len(coords) > rank) are left untouched.
// The input slice is never modified; a copy is made only when a rewrite
// fires, so the common non-broadcast call does not allocate.
func adaptIndex(coords []int, shape Shape) []int {
	offset := len(coords) - len(shape)
	adapted := coords
	cloned := false
	for d, extent := range shape {
		i := offset + d
		if coords[i] >= extent && extent == 1 {
			if !cloned {
				adapted = slices.Clone(coords)
				cloned = true
			}
			adapted[i] = 0
		}
	}
	return adapted
}

// boundIndex clamps each of the trailing rank coordinates to its extent, the
// coordinate-sequence form of the adaptation rule: on a size-1 extent the
// clamp reads index 0. Copy-on-write like adaptIndex.
func boundIndex(coords []int, shape Shape) []int {
	offset := len(coords) - len(shape)
	adapted := coords
	cloned := false
	for d, extent := range shape {
		i := offset + d
		if coords[i] >= extent {
			if !cloned {
				adapted = slices.Clone(coords)
				cloned = true
			}
			adapted[i] = extent - 1
		}
	}
	return adapted
}

// checkIndex validates a coordinate list against a shape under broadcasting:
// size-1 extents accept any non-negative coordinate, other extents require
// 0 <= c < extent. Fewer coordinates than the rank is an error; excess
// leading coordinates are permitted and ignored.
func checkIndex(shape Shape, coords []int) error {
	if len(coords) < len(shape) {
		return errOutOfRangef("%d coordinates supplied for rank %d", len(coords), len(shape))
	}
	offset := len(coords) - len(shape)
	for d, extent := range shape {
		c := coords[offset+d]
		if c < 0 || (c >= extent && extent != 1) {
			return errOutOfRangef("coordinate %d at axis %d with extent %d", c, d, extent)
		}
	}
	return nil
}
