// Copyright 2026 Genarr ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr provides lazy, index-driven array expressions.
//
// # Overview
//
// A Generator behaves like an N-dimensional array but computes each element
// on demand from a function of its coordinates, storing nothing. This package
// provides:
//   - Generic generator expressions (Generator[T])
//   - NumPy-style broadcasting of size-1 dimensions
//   - Stepper cursors for generic coordinate-by-coordinate traversal
//   - Reshape views with placeholder (-1) dimension inference
//   - Dense arrays (Array[T]) as assignment destinations
//
// # Basic Usage
//
//	import "github.com/genarr-ml/genarr/expr"
//
//	func main() {
//	    g, _ := expr.Generate(func(c []int) int {
//	        return c[0]*10 + c[1]
//	    }, expr.Shape{2, 3})
//
//	    v := g.Call(1, 2)          // 12, computed on demand
//	    dst := &expr.Array[int]{}
//	    _ = g.AssignTo(dst)        // materialize: [0 1 2 10 11 12]
//	}
//
// # Indexing Entry Points
//
// Every expression exposes the same closed set of indexing operations:
//   - Call: coordinate list, checked only under the debugchecks build tag
//   - At: coordinate list with mandatory bounds checking
//   - Unchecked: no adaptation, no checks; a performance escape hatch
//   - Element: coordinate-sequence form, the most general path
//   - Flat: single flat coordinate for rank-agnostic use
//
// # Broadcasting
//
// A size-1 dimension repeats its sole element to match any paired extent.
// Callers may pass more coordinates than an expression has dimensions; the
// excess leading coordinates belong to broadcast dimensions and are ignored:
//
//	g, _ := expr.Generate(f, expr.Shape{1, 4})
//	g.Call(0, 2) == g.Call(99, 2)  // size-1 axis is constant
//
// # Deferred Assignment
//
// AssignTo resizes a destination and fills it. Functors that implement
// Assigner fill the destination in one fused pass; all other generators fall
// back to per-element stepper iteration. Builders like Arange and Full carry
// the fused capability.
package expr
