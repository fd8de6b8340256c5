package expr

import (
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Shape represents the dimension extents of an expression.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int { return len(s) }

// NumElements returns the total number of elements described by the shape.
// A rank-0 shape is a scalar and has one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is non-negative. Every offending extent
// is reported, not just the first.
func (s Shape) Validate() error {
	var err error
	for i, dim := range s {
		if dim < 0 {
			err = multierr.Append(err,
				errors.Wrapf(ErrShapeMismatch, "negative extent %d at axis %d", dim, i))
		}
	}
	return err
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	return slices.Clone(s)
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define element order: stride[i] = product of all extents after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastInto merges src into acc following NumPy broadcasting rules.
//
// Shapes are aligned on their trailing dimensions. An accumulator extent of 1
// is treated as not yet determined and takes the source extent; otherwise the
// aligned pair must be equal or the source extent must be 1. When src has
// higher rank than acc, acc grows on the left. Incompatible extents return
// ErrShapeMismatch and leave acc unchanged.
//
// The returned flag reports whether the broadcast is trivial: after the
// merge, every aligned pair of extents is equal, so src can be evaluated
// under acc without any coordinate adaptation.
func BroadcastInto(src Shape, acc *Shape) (bool, error) {
	out := acc.Clone()
	if len(src) > len(out) {
		grown := make(Shape, len(src))
		for i := range grown {
			grown[i] = 1
		}
		copy(grown[len(src)-len(out):], out)
		out = grown
	}
	trivial := true
	offset := len(out) - len(src)
	for d, sd := range src {
		ad := out[offset+d]
		switch {
		case ad == 1:
			out[offset+d] = sd
		case sd != 1 && sd != ad:
			return false, errors.Wrapf(ErrShapeMismatch,
				"cannot broadcast %v into %v at axis %d (%d vs %d)", src, *acc, offset+d, sd, ad)
		}
		trivial = trivial && out[offset+d] == sd
	}
	*acc = out
	return trivial, nil
}

// BroadcastShapes computes the combined broadcast shape of a and b.
// It returns the resulting shape and a flag indicating whether either
// operand needs broadcasting to reach it.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	acc := a.Clone()
	trivial, err := BroadcastInto(b, &acc)
	if err != nil {
		return nil, false, err
	}
	return acc, !trivial || !a.Equal(acc), nil
}

// unravel converts a flat row-major position into coordinates of the shape.
func unravel(flat int, shape Shape) []int {
	coords := make([]int, len(shape))
	for d := len(shape) - 1; d >= 0; d-- {
		if shape[d] > 0 {
			coords[d] = flat % shape[d]
			flat /= shape[d]
		}
	}
	return coords
}
