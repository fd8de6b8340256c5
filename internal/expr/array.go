package expr

import "github.com/pkg/errors"

// Array is a dense row-major container of elements. It is the concrete
// destination expressions are assigned into, and it satisfies Expr itself,
// so arrays participate in the same indexing, stepping and reshaping
// protocol as lazy nodes.
type Array[T any] struct {
	data    []T
	shape   Shape
	strides []int
}

// NewArray creates a zero-valued array of the given shape.
func NewArray[T any](shape Shape) (*Array[T], error) {
	a := &Array[T]{}
	if err := a.Resize(shape); err != nil {
		return nil, err
	}
	return a, nil
}

// FromSlice creates an array adopting data under the given shape. The data
// is not copied; it must hold exactly the shape's element count.
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d elements for shape %v", len(data), shape)
	}
	return &Array[T]{data: data, shape: shape.Clone(), strides: shape.ComputeStrides()}, nil
}

// Resize reallocates the array for a new shape. Contents are preserved only
// when the element count is unchanged.
func (a *Array[T]) Resize(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if n := shape.NumElements(); n != len(a.data) {
		a.data = make([]T, n)
	}
	a.shape = shape.Clone()
	a.strides = shape.ComputeStrides()
	return nil
}

// Data returns the flat row-major element storage.
func (a *Array[T]) Data() []T { return a.data }

// Size returns the total number of elements.
func (a *Array[T]) Size() int { return len(a.data) }

// Dimension returns the number of dimensions.
func (a *Array[T]) Dimension() int { return a.shape.Rank() }

// Shape returns the array's shape. Callers must not modify it.
func (a *Array[T]) Shape() Shape { return a.shape }

// Layout reports LayoutRowMajor: array storage is contiguous C order.
func (a *Array[T]) Layout() Layout { return LayoutRowMajor }

// At returns the element at the given coordinates with bounds checking.
func (a *Array[T]) At(coords ...int) (T, error) {
	if err := checkIndex(a.shape, coords); err != nil {
		var zero T
		return zero, err
	}
	return a.Element(coords), nil
}

// Set stores v at the given coordinates with bounds checking.
func (a *Array[T]) Set(coords []int, v T) error {
	if err := checkIndex(a.shape, coords); err != nil {
		return err
	}
	a.data[a.flatten(adaptIndex(coords, a.shape))] = v
	return nil
}

// Element returns the element addressed by a coordinate sequence of length
// at least the rank, with the same trailing alignment and bounding rules as
// lazy expressions.
func (a *Array[T]) Element(coords []int) T {
	return a.data[a.flatten(boundIndex(coords, a.shape))]
}

// BroadcastShape merges the array's shape into acc.
func (a *Array[T]) BroadcastShape(acc *Shape) (bool, error) {
	return BroadcastInto(a.shape, acc)
}

// StepperBegin returns a stepper positioned at the array's first element
// under the given traversal shape.
func (a *Array[T]) StepperBegin(shape Shape) *Stepper[T] {
	return newStepper[T](a, shape)
}

// StepperEnd returns the one-past-last sentinel stepper.
func (a *Array[T]) StepperEnd(shape Shape, l Layout) *Stepper[T] {
	st := newStepper[T](a, shape)
	st.ToEnd(l)
	return st
}

// Reshape returns a lazy view of the array under a new shape.
func (a *Array[T]) Reshape(dims ...int) (*ReshapeView[T], error) {
	return NewReshapeView[T](a, dims)
}

// flatten converts an adapted coordinate sequence into a flat storage
// position, ignoring excess leading coordinates.
func (a *Array[T]) flatten(coords []int) int {
	offset := len(coords) - len(a.shape)
	flat := 0
	for d, stride := range a.strides {
		flat += coords[offset+d] * stride
	}
	return flat
}
