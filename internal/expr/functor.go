package expr

// Functor computes a single element of an expression from its coordinates.
//
// The coordinate slice may be longer than the rank of the shape the functor
// was declared for: broadcasting lets higher-rank callers index lower-rank
// expressions, and trailing alignment of the excess leading coordinates is
// the functor's own responsibility. Implementations must not retain or
// modify the slice.
type Functor[T any] interface {
	Apply(coords []int) T
}

// Func adapts an ordinary coordinate function into a Functor.
type Func[T any] func(coords []int) T

// Apply implements Functor.
func (f Func[T]) Apply(coords []int) T { return f(coords) }

// Target is the destination contract consumed by deferred assignment: a
// container that can be resized to a shape and then filled through its flat
// row-major storage. Resize always happens before the fill.
type Target[T any] interface {
	Resize(shape Shape) error
	Data() []T
}

// Assigner is an optional Functor capability. A functor that implements it
// can fill a whole destination in one fused pass, bypassing per-element
// evaluation. The destination has already been resized when AssignTo runs.
type Assigner[T any] interface {
	AssignTo(dst Target[T])
}

// Expr is the minimal protocol shared by every expression kind: a shape plus
// coordinate-sequence evaluation. Steppers and views are written against it
// rather than against concrete node types.
type Expr[T any] interface {
	Shape() Shape
	Element(coords []int) T
}
