package expr

import "github.com/pkg/errors"

// Error kinds reported by the checked entry points. The unchecked entry
// points never report errors: violating their preconditions produces
// meaningless results instead, keeping the hot path branch-free.
var (
	// ErrOutOfRange reports a coordinate outside its dimension extent, or an
	// indexing call with fewer coordinates than the expression rank.
	ErrOutOfRange = errors.New("expr: index out of range")

	// ErrShapeMismatch reports shapes that cannot be broadcast together, or a
	// reshape target whose element count cannot match the source.
	ErrShapeMismatch = errors.New("expr: shape mismatch")
)

func errOutOfRangef(format string, args ...any) error {
	return errors.Wrapf(ErrOutOfRange, format, args...)
}
