package expr

// Layout identifies the memory layout of an expression.
type Layout int

// Supported layouts.
const (
	// LayoutRowMajor is contiguous C order: the last dimension varies fastest.
	LayoutRowMajor Layout = iota
	// LayoutColumnMajor is contiguous Fortran order.
	LayoutColumnMajor
	// LayoutDynamic marks expressions that have no memory layout at all, such
	// as generators and views. Downstream optimizers must not attempt
	// pointer- or stride-based fast paths on them.
	LayoutDynamic
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case LayoutRowMajor:
		return "row-major"
	case LayoutColumnMajor:
		return "column-major"
	case LayoutDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}
