// Copyright 2026 Genarr ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/genarr-ml/genarr/internal/expr"
)

// Type aliases for the public API

// Shape represents the dimension extents of an expression.
// Example: Shape{2, 3, 4} describes a 3-D expression with extents 2×3×4.
type Shape = expr.Shape

// Layout identifies the memory layout of an expression.
type Layout = expr.Layout

// Layout constants.
const (
	LayoutRowMajor    Layout = expr.LayoutRowMajor
	LayoutColumnMajor Layout = expr.LayoutColumnMajor
	LayoutDynamic     Layout = expr.LayoutDynamic
)

// DimInferred is the placeholder extent in a reshape target, meaning "infer
// this extent from the element count and the other given extents".
const DimInferred = expr.DimInferred

// Generator is a lazy multidimensional expression computing elements on
// demand from a functor of their coordinates.
//
// Example:
//
//	g, _ := expr.Generate(func(c []int) int { return c[0] + c[1] }, expr.Shape{2, 2})
//	v := g.Call(1, 1)  // 2
type Generator[T any] = expr.Generator[T]

// Functor computes a single element of an expression from its coordinates.
type Functor[T any] = expr.Functor[T]

// Func adapts an ordinary coordinate function into a Functor.
type Func[T any] = expr.Func[T]

// Assigner is an optional Functor capability for fused assignment.
type Assigner[T any] = expr.Assigner[T]

// Target is the destination contract consumed by deferred assignment.
type Target[T any] = expr.Target[T]

// Expr is the minimal protocol shared by every expression kind.
type Expr[T any] = expr.Expr[T]

// Stepper is a cursor walking an expression coordinate by coordinate.
type Stepper[T any] = expr.Stepper[T]

// ReshapeView presents an expression under a new shape, preserving row-major
// element order.
type ReshapeView[T any] = expr.ReshapeView[T]

// Array is a dense row-major container, the concrete destination expressions
// are assigned into.
type Array[T any] = expr.Array[T]

// Number constrains the built-in numeric element types.
type Number = expr.Number

// Float constrains the floating-point element types.
type Float = expr.Float

// Errors

// ErrOutOfRange reports a coordinate outside its dimension extent.
var ErrOutOfRange = expr.ErrOutOfRange

// ErrShapeMismatch reports shapes that cannot be broadcast together or a
// reshape target whose element count cannot match the source.
var ErrShapeMismatch = expr.ErrShapeMismatch

// Construction functions

// New constructs a generator applying f over the given shape.
func New[T any](f Functor[T], shape Shape) (Generator[T], error) {
	return expr.New[T](f, shape)
}

// Generate constructs a generator from a plain coordinate function.
//
// Example:
//
//	g, err := expr.Generate(func(c []int) int {
//	    return c[0]*10 + c[1]
//	}, expr.Shape{2, 3})
func Generate[T any](f func(coords []int) T, shape Shape) (Generator[T], error) {
	return expr.Generate[T](f, shape)
}

// Must returns g or panics when err is non-nil.
//
// Example:
//
//	g := expr.Must(expr.Generate(f, expr.Shape{2, 3}))
func Must[T any](g Generator[T], err error) Generator[T] {
	return expr.Must[T](g, err)
}

// Rebind builds a new generator with the same shape and a different functor,
// possibly of a different element type.
func Rebind[U, T any](g Generator[T], f Functor[U]) Generator[U] {
	return expr.Rebind[U, T](g, f)
}

// NewReshapeView wraps any expression under a new shape. One extent may be
// DimInferred.
func NewReshapeView[T any](src Expr[T], dims []int) (*ReshapeView[T], error) {
	return expr.NewReshapeView[T](src, dims)
}

// NewArray creates a zero-valued array of the given shape.
func NewArray[T any](shape Shape) (*Array[T], error) {
	return expr.NewArray[T](shape)
}

// FromSlice creates an array adopting data under the given shape.
//
// Example:
//
//	a, err := expr.FromSlice([]float32{1, 2, 3, 4, 5, 6}, expr.Shape{2, 3})
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	return expr.FromSlice[T](data, shape)
}

// Builder generators

// Arange returns a 1-D generator of values spaced by step in [start, stop).
//
// Example:
//
//	g := expr.Arange[int](0, 10, 1)         // [0, 1, 2, ..., 9]
//	v, _ := g.Reshape(-1, 5)                // shape (2, 5)
func Arange[T Number](start, stop, step T) Generator[T] {
	return expr.Arange[T](start, stop, step)
}

// Linspace returns a 1-D generator of n values evenly spaced from start to
// stop inclusive.
func Linspace[T Float](start, stop T, n int) Generator[T] {
	return expr.Linspace[T](start, stop, n)
}

// Full returns a generator yielding v at every coordinate of shape.
func Full[T any](shape Shape, v T) (Generator[T], error) {
	return expr.Full[T](shape, v)
}

// Zeros returns a generator of zeros over the given shape.
func Zeros[T Number](shape Shape) (Generator[T], error) {
	return expr.Zeros[T](shape)
}

// Ones returns a generator of ones over the given shape.
func Ones[T Number](shape Shape) (Generator[T], error) {
	return expr.Ones[T](shape)
}

// Eye returns an n×n identity generator.
func Eye[T Number](n int) Generator[T] {
	return expr.Eye[T](n)
}

// Utility functions

// BroadcastInto merges src into acc following NumPy broadcasting rules and
// reports whether the broadcast is trivial.
func BroadcastInto(src Shape, acc *Shape) (bool, error) {
	return expr.BroadcastInto(src, acc)
}

// BroadcastShapes computes the combined broadcast shape of a and b following
// NumPy broadcasting rules. It returns the resulting shape and a flag
// indicating whether either operand needs broadcasting.
//
// Example:
//
//	result, needsBroadcast, err := expr.BroadcastShapes(
//	    expr.Shape{3, 1},
//	    expr.Shape{3, 4},
//	)
//	// result = [3, 4], needsBroadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return expr.BroadcastShapes(a, b)
}
