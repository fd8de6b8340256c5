package expr

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number constrains the built-in numeric element types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float constrains the floating-point element types.
type Float interface {
	constraints.Float
}

// rampFunc generates evenly spaced values from a start and step along the
// last coordinate. It carries the fused-assignment capability: filling a
// destination is a single linear sweep.
type rampFunc[T Number] struct {
	start, step T
}

func (f rampFunc[T]) Apply(coords []int) T {
	return f.start + T(coords[len(coords)-1])*f.step
}

func (f rampFunc[T]) AssignTo(dst Target[T]) {
	data := dst.Data()
	v := f.start
	for i := range data {
		data[i] = v
		v += f.step
	}
}

// Arange returns a 1-D generator of values spaced by step in [start, stop).
//
// Example:
//
//	g := expr.Arange[int](0, 10, 1)  // [0, 1, 2, ..., 9]
func Arange[T Number](start, stop, step T) Generator[T] {
	n := 0
	if step != 0 {
		n = int(math.Ceil(float64(stop-start) / float64(step)))
		if n < 0 {
			n = 0
		}
	}
	return Generator[T]{f: rampFunc[T]{start: start, step: step}, shape: Shape{n}}
}

// Linspace returns a 1-D generator of n values evenly spaced from start to
// stop inclusive.
func Linspace[T Float](start, stop T, n int) Generator[T] {
	if n < 0 {
		n = 0
	}
	var step T
	if n > 1 {
		step = (stop - start) / T(n-1)
	}
	return Generator[T]{f: rampFunc[T]{start: start, step: step}, shape: Shape{n}}
}

// constFunc yields the same value at every coordinate, with a fused fill.
type constFunc[T any] struct{ v T }

func (f constFunc[T]) Apply([]int) T { return f.v }

func (f constFunc[T]) AssignTo(dst Target[T]) {
	data := dst.Data()
	for i := range data {
		data[i] = f.v
	}
}

// Full returns a generator yielding v at every coordinate of shape.
func Full[T any](shape Shape, v T) (Generator[T], error) {
	return New[T](constFunc[T]{v: v}, shape)
}

// Zeros returns a generator of zeros over the given shape.
func Zeros[T Number](shape Shape) (Generator[T], error) {
	return Full[T](shape, 0)
}

// Ones returns a generator of ones over the given shape.
func Ones[T Number](shape Shape) (Generator[T], error) {
	return Full[T](shape, 1)
}

// Eye returns an n×n identity generator. Its functor has no fused path, so
// assignment always goes through the stepper fallback.
func Eye[T Number](n int) Generator[T] {
	if n < 0 {
		n = 0
	}
	f := Func[T](func(coords []int) T {
		if coords[len(coords)-2] == coords[len(coords)-1] {
			return 1
		}
		return 0
	})
	return Generator[T]{f: f, shape: Shape{n, n}}
}
