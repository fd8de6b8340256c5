package expr

import "github.com/pkg/errors"

// DimInferred is the placeholder extent in a reshape target: the marked
// dimension is computed from the source element count and the remaining
// extents.
const DimInferred = -1

// inferReshape resolves a reshape target against a source element count. At
// most one extent may be DimInferred, the source count must divide evenly
// into the remaining extents, and the resolved count must match the source
// exactly. Violations return ErrShapeMismatch.
func inferReshape(size int, dims []int) (Shape, error) {
	shape := make(Shape, len(dims))
	prod := 1
	inferred := -1
	for i, dim := range dims {
		switch {
		case dim == DimInferred:
			if inferred >= 0 {
				return nil, errors.Wrapf(ErrShapeMismatch, "more than one inferred dimension in %v", dims)
			}
			inferred = i
		case dim < 0:
			return nil, errors.Wrapf(ErrShapeMismatch, "invalid extent %d in %v", dim, dims)
		default:
			shape[i] = dim
			prod *= dim
		}
	}
	if inferred >= 0 {
		if prod == 0 || size%prod != 0 {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"cannot infer extent: %d elements do not divide evenly by %d", size, prod)
		}
		shape[inferred] = size / prod
		prod = size
	}
	if prod != size {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"%v holds %d elements, source holds %d", shape, prod, size)
	}
	return shape, nil
}

// ReshapeView presents an expression under a new shape while preserving
// row-major element order: a coordinate is raveled under the view shape and
// the flat position unraveled under the source shape. The wrapped expression
// is borrowed, never copied or evaluated eagerly, and the view re-exposes
// the full indexing and stepping protocol.
type ReshapeView[T any] struct {
	src     Expr[T]
	shape   Shape
	strides []int
}

// NewReshapeView wraps an expression under a new shape. One extent may be
// DimInferred; the element count of the resolved shape must match the
// source.
func NewReshapeView[T any](src Expr[T], dims []int) (*ReshapeView[T], error) {
	shape, err := inferReshape(src.Shape().NumElements(), dims)
	if err != nil {
		return nil, err
	}
	return &ReshapeView[T]{src: src, shape: shape, strides: shape.ComputeStrides()}, nil
}

// Size returns the total number of elements.
func (v *ReshapeView[T]) Size() int { return v.shape.NumElements() }

// Dimension returns the number of dimensions of the view.
func (v *ReshapeView[T]) Dimension() int { return v.shape.Rank() }

// Shape returns the view's shape. Callers must not modify it.
func (v *ReshapeView[T]) Shape() Shape { return v.shape }

// Layout reports LayoutDynamic: every element address goes through the
// source expression, so no stride-based fast path applies.
func (v *ReshapeView[T]) Layout() Layout { return LayoutDynamic }

// Element evaluates the element addressed by a coordinate sequence of length
// at least the view's rank, with the same trailing alignment and bounding
// rules as any other expression.
func (v *ReshapeView[T]) Element(coords []int) T {
	bounded := boundIndex(coords, v.shape)
	offset := len(bounded) - len(v.shape)
	flat := 0
	for d, stride := range v.strides {
		flat += bounded[offset+d] * stride
	}
	return v.src.Element(unravel(flat, v.src.Shape()))
}

// Call evaluates the element at the given coordinates; bounds are verified
// only under the debugchecks build tag.
func (v *ReshapeView[T]) Call(coords ...int) T {
	verifyIndex(v.shape, coords)
	return v.Element(coords)
}

// At evaluates the element at the given coordinates with mandatory bounds
// checking, returning ErrOutOfRange on a violation.
func (v *ReshapeView[T]) At(coords ...int) (T, error) {
	if err := checkIndex(v.shape, coords); err != nil {
		var zero T
		return zero, err
	}
	return v.Element(coords), nil
}

// Flat evaluates the element at a single flat coordinate.
func (v *ReshapeView[T]) Flat(i int) T {
	return v.Call(i)
}

// BroadcastShape merges the view's shape into acc.
func (v *ReshapeView[T]) BroadcastShape(acc *Shape) (bool, error) {
	return BroadcastInto(v.shape, acc)
}

// HasLinearAssign reports whether the view can be linearly assigned from.
// Always false, like its source.
func (v *ReshapeView[T]) HasLinearAssign(strides []int) bool { return false }

// StepperBegin returns a stepper positioned at the view's first element
// under the given traversal shape.
func (v *ReshapeView[T]) StepperBegin(shape Shape) *Stepper[T] {
	return newStepper[T](v, shape)
}

// StepperEnd returns the one-past-last sentinel stepper.
func (v *ReshapeView[T]) StepperEnd(shape Shape, l Layout) *Stepper[T] {
	st := newStepper[T](v, shape)
	st.ToEnd(l)
	return st
}

// AssignTo resizes dst to the view's shape and fills it element by element
// in row-major order.
func (v *ReshapeView[T]) AssignTo(dst Target[T]) error {
	if err := dst.Resize(v.shape); err != nil {
		return err
	}
	assignElements[T](v, dst)
	return nil
}

// Reshape rewraps the view's source expression under another shape, so
// stacked reshapes do not chain views.
func (v *ReshapeView[T]) Reshape(dims ...int) (*ReshapeView[T], error) {
	return NewReshapeView[T](v.src, dims)
}
