package expr

// Stepper is a cursor positioned at a multi-index within a traversal shape,
// walking a borrowed expression coordinate by coordinate without
// materializing it. The traversal shape may have higher rank than the
// expression: the trailing expression rank of the cursor's coordinate is
// what reaches the expression, and evaluation goes through Element, so a
// stepper and direct indexing always agree on broadcast dimensions.
//
// Steppers are freely copyable, and several may advance over the same
// expression concurrently.
type Stepper[T any] struct {
	e       Expr[T]
	shape   Shape // traversal shape
	strides []int
	index   []int // current coordinate, one entry per traversal dimension
	pos     int   // linear row-major position, total marks one-past-last
	total   int
}

func newStepper[T any](e Expr[T], traversal Shape) *Stepper[T] {
	return &Stepper[T]{
		e:       e,
		shape:   traversal.Clone(),
		strides: traversal.ComputeStrides(),
		index:   make([]int, traversal.Rank()),
		total:   traversal.NumElements(),
	}
}

// Value evaluates the expression at the cursor's current coordinate.
func (s *Stepper[T]) Value() T {
	return s.e.Element(s.index)
}

// Index returns the cursor's current coordinate within the traversal shape.
// Callers must not modify it.
func (s *Stepper[T]) Index() []int { return s.index }

// Next advances the cursor one element in row-major order and reports
// whether it is still in range.
func (s *Stepper[T]) Next() bool {
	s.pos++
	if s.pos >= s.total {
		return false
	}
	for dim := len(s.shape) - 1; dim >= 0; dim-- {
		if s.index[dim]+1 < s.shape[dim] {
			s.index[dim]++
			return true
		}
		s.index[dim] = 0
	}
	return true
}

// Done reports whether the cursor has passed the last element.
func (s *Stepper[T]) Done() bool { return s.pos >= s.total }

// Step moves the cursor n elements along the given traversal dimension.
func (s *Stepper[T]) Step(dim, n int) {
	s.index[dim] += n
	s.pos += n * s.strides[dim]
}

// StepBack moves the cursor n elements backwards along the given traversal
// dimension.
func (s *Stepper[T]) StepBack(dim, n int) { s.Step(dim, -n) }

// Reset moves the cursor to coordinate zero on the given traversal
// dimension.
func (s *Stepper[T]) Reset(dim int) {
	s.pos -= s.index[dim] * s.strides[dim]
	s.index[dim] = 0
}

// ResetBack moves the cursor to the last coordinate on the given traversal
// dimension.
func (s *Stepper[T]) ResetBack(dim int) {
	last := s.shape[dim] - 1
	s.pos += (last - s.index[dim]) * s.strides[dim]
	s.index[dim] = last
}

// ToBegin moves the cursor to the first element.
func (s *Stepper[T]) ToBegin() {
	for i := range s.index {
		s.index[i] = 0
	}
	s.pos = 0
}

// ToEnd moves the cursor to the one-past-last sentinel. The layout argument
// mirrors the stepper protocol of strided expressions; an indexed stepper's
// sentinel does not depend on it.
func (s *Stepper[T]) ToEnd(Layout) {
	s.pos = s.total
	for i := range s.index {
		s.index[i] = 0
	}
	if len(s.index) > 0 {
		s.index[0] = s.shape[0]
	}
}

// Equal reports whether two steppers over the same expression are at the
// same position.
func (s *Stepper[T]) Equal(o *Stepper[T]) bool {
	return s.pos == o.pos && s.shape.Equal(o.shape)
}
