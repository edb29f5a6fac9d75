// Package grid exposes the capability table shared by all storage variants:
// the Grid interface, its block-major extension, order dispatch, and the
// [][]T convenience constructors.
package grid

import "fmt"

// Grid is the capability table: the fixed operation set every storage
// variant implements. Callers hold one Grid value and never the concrete
// variant — interface dispatch is the library's only polymorphism mechanism.
type Grid[T any] interface {
	// Width returns the number of columns.
	// Complexity: O(1).
	Width() int

	// Height returns the number of rows.
	// Complexity: O(1).
	Height() int

	// ElemSize returns the storage footprint of one element in bytes,
	// cached at construction.
	// Complexity: O(1).
	ElemSize() int

	// Blocksize returns the tile edge length; the dense variant reports 1.
	// Complexity: O(1).
	Blocksize() int

	// At returns a mutable pointer to the element at (col, row).
	// Out-of-range coordinates are a precondition violation: At panics.
	// Complexity: O(1).
	At(col, row int) *T

	// NewLike allocates a fresh zero-valued grid of the same variant.
	// Blocked grids re-derive their blocksize with the cache-fit heuristic.
	// Complexity: O(width·height) memory.
	NewLike(width, height int) (Grid[T], error)

	// NewLikeBlocksize allocates a fresh grid of the same variant with an
	// explicit blocksize; the dense variant ignores the argument.
	NewLikeBlocksize(width, height, blocksize int) (Grid[T], error)

	// EachRowMajor visits every element row by row.
	// Complexity: O(W·H).
	EachRowMajor(fn VisitFunc[T])

	// EachColMajor visits every element column by column.
	// Complexity: O(W·H).
	EachColMajor(fn VisitFunc[T])

	// Each visits every element in the variant's preferred order.
	// Complexity: O(W·H).
	Each(fn VisitFunc[T])
}

// BlockGrid extends Grid with block-major traversal. Only variants with a
// physical block layout implement it; on every other variant the order is
// absent at compile time, so EachOrder is the one place a missing order
// surfaces at runtime.
type BlockGrid[T any] interface {
	Grid[T]

	// EachBlockMajor visits every element tile by tile: blocks in row-major
	// block order, cells row-major within each block, edge blocks clipped
	// to their logical extent.
	// Complexity: O(W·H).
	EachBlockMajor(fn VisitFunc[T])
}

// EachOrder drives one traversal of g in the requested order. It returns
// ErrOrderUnsupported when ord is OrderBlockMajor and g carries no block
// layout, or when ord is not a known Order value.
// Complexity: O(W·H).
func EachOrder[T any](g Grid[T], ord Order, fn VisitFunc[T]) error {
	switch ord {
	case OrderDefault:
		g.Each(fn)
	case OrderRowMajor:
		g.EachRowMajor(fn)
	case OrderColMajor:
		g.EachColMajor(fn)
	case OrderBlockMajor:
		bg, ok := g.(BlockGrid[T])
		if !ok {
			return ErrOrderUnsupported
		}
		bg.EachBlockMajor(fn)
	default:
		return fmt.Errorf("grid: order %d: %w", int(ord), ErrOrderUnsupported)
	}

	return nil
}

// FromRows builds a grid through mk and fills it from rows[row][col].
// The input is deep-copied into the new storage, never aliased.
// Returns ErrEmptyRows if rows has no rows or no columns,
// ErrRaggedRows if any row length differs, or mk's error verbatim.
// Complexity: O(W·H) time and memory.
func FromRows[T any](rows [][]T, mk Maker[T]) (Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyRows
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrRaggedRows
		}
	}
	g, err := mk(w, h)
	if err != nil {
		return nil, err
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			*g.At(col, row) = rows[row][col]
		}
	}

	return g, nil
}

// Rows exports a [][]T snapshot of g indexed as rows[row][col]. The
// snapshot is an independent copy.
// Complexity: O(W·H) time and memory.
func Rows[T any](g Grid[T]) [][]T {
	rows := make([][]T, g.Height())
	for row := range rows {
		rows[row] = make([]T, g.Width())
	}
	g.EachRowMajor(func(col, row int, el *T) {
		rows[row][col] = *el
	})

	return rows
}

// MakeDense is the Maker for the flat row-major variant.
func MakeDense[T any](width, height int) (Grid[T], error) {
	return NewDense[T](width, height)
}

// MakeBlocked64K is the Maker for blocked storage sized by the cache-fit
// heuristic.
func MakeBlocked64K[T any](width, height int) (Grid[T], error) {
	return NewBlocked64K[T](width, height)
}

// MakeBlocked returns a Maker building blocked storage with a fixed
// explicit blocksize.
func MakeBlocked[T any](blocksize int) Maker[T] {
	return func(width, height int) (Grid[T], error) {
		return NewBlocked[T](width, height, blocksize)
	}
}
