// Package expr implements lazy array expressions: values that behave like
// N-dimensional arrays but compute each element on demand from a function of
// its coordinates instead of storing elements. The Generator node is the core
// of the package; Stepper, ReshapeView and Array share its indexing protocol.
package expr

// Generator is a lazy multidimensional expression whose elements are computed
// on demand by a functor of their coordinates. It owns a functor and a shape
// and stores no elements.
//
// A Generator is immutable after construction and freely copyable: reshape
// produces a view and never mutates in place, and there is no shared mutable
// state. Concurrent reads are safe as long as the functor itself is
// reentrant, which is the functor author's contract.
type Generator[T any] struct {
	f     Functor[T]
	shape Shape
}

// New constructs a generator applying f over the given shape.
// The shape is validated and cloned.
func New[T any](f Functor[T], shape Shape) (Generator[T], error) {
	if err := shape.Validate(); err != nil {
		return Generator[T]{}, err
	}
	return Generator[T]{f: f, shape: shape.Clone()}, nil
}

// Generate constructs a generator from a plain coordinate function.
//
// Example:
//
//	g, err := expr.Generate(func(c []int) int {
//	    return c[0]*10 + c[1]
//	}, expr.Shape{2, 3})
func Generate[T any](f func(coords []int) T, shape Shape) (Generator[T], error) {
	return New[T](Func[T](f), shape)
}

// Must returns g or panics when err is non-nil. It allows construction with
// known-good shapes to be used inline in expressions.
func Must[T any](g Generator[T], err error) Generator[T] {
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the total number of elements.
func (g Generator[T]) Size() int { return g.shape.NumElements() }

// Dimension returns the number of dimensions.
func (g Generator[T]) Dimension() int { return g.shape.Rank() }

// Shape returns the shape of the generator. Callers must not modify it.
func (g Generator[T]) Shape() Shape { return g.shape }

// Layout always reports LayoutDynamic: a generator has no memory layout.
func (g Generator[T]) Layout() Layout { return LayoutDynamic }

// Call evaluates the element at the given coordinates. At least as many
// coordinates as the rank must be supplied; excess leading coordinates are
// permitted so that higher-rank callers can index through broadcasting, and
// are forwarded to the functor unchanged. Coordinates on size-1 extents are
// rewritten to 0 before the functor runs.
//
// Bounds are verified only in builds with the debugchecks tag; out-of-range
// coordinates in release builds produce meaningless results. Use At for the
// safe entry point.
func (g Generator[T]) Call(coords ...int) T {
	verifyIndex(g.shape, coords)
	return g.f.Apply(adaptIndex(coords, g.shape))
}

// At evaluates the element at the given coordinates with mandatory bounds
// checking. A coordinate on a size-1 extent is always in bounds, matching
// the broadcast adaptation rule. Returns ErrOutOfRange on a violation or
// when fewer coordinates than the rank are supplied.
func (g Generator[T]) At(coords ...int) (T, error) {
	if err := checkIndex(g.shape, coords); err != nil {
		var zero T
		return zero, err
	}
	return g.Call(coords...), nil
}

// Unchecked evaluates the element at the given coordinates with no
// adaptation and no checks. It is a performance escape hatch: the result is
// meaningless when the coordinates are inconsistent with the shape, and it
// must not be used with shapes that require broadcast adaptation.
func (g Generator[T]) Unchecked(coords ...int) T {
	return g.f.Apply(coords)
}

// Element evaluates the element addressed by a coordinate sequence whose
// length is at least the rank. Each of the trailing rank coordinates is
// bounded against its extent before the functor is applied, so coordinates
// on broadcast dimensions read the sole element. This is the most general
// indexing form and the one steppers evaluate through.
func (g Generator[T]) Element(coords []int) T {
	return g.f.Apply(boundIndex(coords, g.shape))
}

// Flat evaluates the element at a single flat coordinate, forwarding to Call
// with that one coordinate. It is only meaningful for rank-agnostic use on
// expressions of rank at most one.
func (g Generator[T]) Flat(i int) T {
	return g.Call(i)
}

// BroadcastShape merges the generator's shape into acc and reports whether
// the broadcast is trivial, meaning the generator can be evaluated under acc
// without coordinate adaptation.
func (g Generator[T]) BroadcastShape(acc *Shape) (bool, error) {
	return BroadcastInto(g.shape, acc)
}

// HasLinearAssign reports whether the generator can be linearly assigned to
// a destination with the given strides. Always false: a generator has no
// memory to copy from, so assignment goes element by element or through the
// functor's fused path.
func (g Generator[T]) HasLinearAssign(strides []int) bool { return false }

// StepperBegin returns a stepper positioned at the first element, walking
// the generator under the given traversal shape. The traversal shape may
// have higher rank than the generator when broadcasting.
func (g Generator[T]) StepperBegin(shape Shape) *Stepper[T] {
	return newStepper[T](g, shape)
}

// StepperEnd returns the one-past-last sentinel stepper for the traversal
// shape and layout.
func (g Generator[T]) StepperEnd(shape Shape, l Layout) *Stepper[T] {
	st := newStepper[T](g, shape)
	st.ToEnd(l)
	return st
}

// HasFusedAssign reports whether the functor carries the fused-assignment
// capability.
func (g Generator[T]) HasFusedAssign() bool {
	_, ok := g.f.(Assigner[T])
	return ok
}

// AssignTo resizes dst to the generator's shape and fills it. When the
// functor implements Assigner the fill is delegated to the functor in one
// fused pass; otherwise elements are produced one by one through a stepper
// in row-major order.
func (g Generator[T]) AssignTo(dst Target[T]) error {
	if err := dst.Resize(g.shape); err != nil {
		return err
	}
	if a, ok := g.f.(Assigner[T]); ok {
		a.AssignTo(dst)
		return nil
	}
	assignElements[T](g, dst)
	return nil
}

// Functor returns the functor owned by the generator.
func (g Generator[T]) Functor() Functor[T] { return g.f }

// Rebind builds a new generator with the same shape and a different functor,
// possibly of a different element type. It is how the operation layer
// transforms one generator into another without restating the shape.
func Rebind[U, T any](g Generator[T], f Functor[U]) Generator[U] {
	return Generator[U]{f: f, shape: g.shape.Clone()}
}

// Reshape returns a view of the generator under a new shape, preserving
// row-major element order. One extent may be DimInferred (-1), in which case
// it is computed from the generator's size and the remaining extents:
//
//	g := expr.Arange[float64](0, 50, 1)
//	v, err := g.Reshape(-1, 10)  // v.Shape() is {5, 10}
//
// Returns ErrShapeMismatch when the target element count cannot match the
// source.
func (g Generator[T]) Reshape(dims ...int) (*ReshapeView[T], error) {
	return NewReshapeView[T](g, dims)
}

// assignElements fills dst element by element from src through a stepper in
// row-major order. dst must already hold exactly src's element count.
func assignElements[T any](src Expr[T], dst Target[T]) {
	data := dst.Data()
	st := newStepper[T](src, src.Shape())
	for i := range data {
		data[i] = st.Value()
		st.Next()
	}
}
