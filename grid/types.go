// Package grid defines callbacks, traversal orders, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/tessera.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and traversal.
var (
	// ErrBadDims indicates a non-positive width or height at construction.
	ErrBadDims = errors.New("grid: width and height must be at least 1")
	// ErrBadBlocksize indicates a blocksize outside [1, min(width, height)].
	ErrBadBlocksize = errors.New("grid: blocksize must be in [1, min(width, height)]")
	// ErrOrderUnsupported indicates a traversal order the variant does not implement.
	ErrOrderUnsupported = errors.New("grid: traversal order unsupported by this variant")
	// ErrEmptyRows indicates FromRows input with no rows or no columns.
	ErrEmptyRows = errors.New("grid: input rows must have at least one row and one column")
	// ErrRaggedRows indicates FromRows rows of differing lengths.
	ErrRaggedRows = errors.New("grid: all rows must have the same length")
)

// VisitFunc is invoked once per element during a traversal, with the
// element's logical coordinates and a pointer to its storage slot.
// Writing through el mutates the grid in place.
type VisitFunc[T any] func(col, row int, el *T)

// ElemFunc is the coordinate-free visiting callback, for callers that only
// care about element values.
type ElemFunc[T any] func(el *T)

// Elems adapts an ElemFunc to the full VisitFunc signature by discarding
// coordinates, so one traversal path serves both callback shapes.
func Elems[T any](fn ElemFunc[T]) VisitFunc[T] {
	return func(_, _ int, el *T) { fn(el) }
}

// Order selects a traversal order for EachOrder.
type Order int

const (
	// OrderDefault uses the variant's preferred (most cache-friendly) order:
	// row-major for Dense, block-major for Blocked.
	OrderDefault Order = iota
	// OrderRowMajor visits row by row, columns ascending within a row.
	OrderRowMajor
	// OrderColMajor visits column by column, rows ascending within a column.
	OrderColMajor
	// OrderBlockMajor visits tile by tile; only block layouts support it.
	OrderBlockMajor
)

// String returns the flag-style name of the order.
func (o Order) String() string {
	switch o {
	case OrderDefault:
		return "default"
	case OrderRowMajor:
		return "row-major"
	case OrderColMajor:
		return "col-major"
	case OrderBlockMajor:
		return "block-major"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Maker constructs a grid variant for the given dimensions. Factories of
// this shape are how callers thread a storage choice through code that must
// not know the concrete variant.
type Maker[T any] func(width, height int) (Grid[T], error)

// boundsPanic aborts on an out-of-range At. Coordinates are a caller
// precondition, not a recoverable condition.
func boundsPanic(col, row, width, height int) {
	panic(fmt.Sprintf("grid: At(%d,%d) out of range for %d×%d grid", col, row, width, height))
}
