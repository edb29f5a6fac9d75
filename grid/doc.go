// Package grid provides a generic two-dimensional array with interchangeable
// physical storage layouts behind one interface, so indexing and traversal
// code never needs to know whether a flat row-major buffer or a
// cache-conscious grid of blocks backs the data.
//
// 🚀 What is grid?
//
//	A Grid[T] stores a fixed width×height rectangle of T values and exposes
//	random access plus selectable traversal orders.  Two variants implement it:
//	  • Dense   — one flat row-major slice; the familiar layout
//	  • Blocked — an arena of blocksize×blocksize tiles, so a traversal that
//	    follows the tiles touches memory that stays resident in cache
//
// ✨ Key features:
//   - one interface for every variant, chosen at runtime via Maker factories
//   - block-major traversal exists only where a block layout does:
//     BlockGrid[T] extends Grid[T], and EachOrder reports
//     ErrOrderUnsupported everywhere else
//   - clipped edge blocks: dimensions need not divide by the blocksize
//   - 64,000-byte cache-fit heuristic for picking a blocksize (FitBlocksize)
//   - visiting callbacks receive coordinates and a mutable element pointer;
//     Elems adapts coordinate-free callbacks to the same traversals
//
// ⚙️ Usage:
//
//	g, err := grid.NewBlocked64K[uint8](1024, 768)
//	if err != nil {
//	  // handle ErrBadDims
//	}
//	*g.At(5, 3) = 42
//	g.EachBlockMajor(func(col, row int, el *uint8) {
//	  // visited tile by tile, edge tiles clipped
//	})
//
// Performance:
//
//   - At: O(1) for both variants
//   - Traversals: O(W·H); block-major walks each tile's cells contiguously
//
// Errors:
//
//   - ErrBadDims: width or height below 1 at construction.
//   - ErrBadBlocksize: blocksize outside [1, min(width, height)].
//   - ErrOrderUnsupported: EachOrder asked for an order the variant lacks.
//   - ErrEmptyRows / ErrRaggedRows: FromRows input empty or not rectangular.
//
// See examples in example_test.go.
package grid
