//go:build debugchecks

package expr

// verifyIndex panics when a coordinate list violates the Call contract.
// Compiled in only under the debugchecks build tag.
func verifyIndex(shape Shape, coords []int) {
	if err := checkIndex(shape, coords); err != nil {
		panic(err)
	}
}
