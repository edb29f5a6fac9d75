// Blocked is the cache-conscious storage variant: the rectangle is carved
// into blocksize×blocksize tiles living side by side in one arena slice, so
// a block-major traversal walks memory contiguously.
package grid

import (
	"math"
	"unsafe"
)

// blockBudgetBytes bounds one tile's footprint for the cache-fit heuristic.
const blockBudgetBytes = 64000

// Blocked stores a width×height rectangle as a blockCols×blockRows grid of
// tiles. Every tile — edge tiles included — owns blocksize² arena cells;
// edge tiles use only their clipped logical extent and the rest is padding
// that no traversal visits.
type Blocked[T any] struct {
	width, height int
	elemSize      int
	blocksize     int
	blockCols     int // ceil(width/blocksize)
	blockRows     int // ceil(height/blocksize)
	arena         []T // blockCols*blockRows*blocksize² cells, tiles row-major
}

// Blocked implements the capability table plus block-major traversal.
var _ BlockGrid[byte] = (*Blocked[byte])(nil)

// NewBlocked allocates a zero-valued width×height grid tiled at blocksize.
// Returns ErrBadDims unless both dimensions are at least 1, and
// ErrBadBlocksize unless 1 ≤ blocksize ≤ min(width, height). All tiles are
// allocated eagerly in a single arena, so construction either fully
// succeeds or fails before any storage escapes.
// Complexity: O(ceil(W/bs)·ceil(H/bs)·bs²) memory.
func NewBlocked[T any](width, height, blocksize int) (*Blocked[T], error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDims
	}
	if blocksize < 1 || blocksize > width || blocksize > height {
		return nil, ErrBadBlocksize
	}
	bc := (width + blocksize - 1) / blocksize
	br := (height + blocksize - 1) / blocksize
	var zero T

	return &Blocked[T]{
		width:     width,
		height:    height,
		elemSize:  int(unsafe.Sizeof(zero)),
		blocksize: blocksize,
		blockCols: bc,
		blockRows: br,
		arena:     make([]T, bc*br*blocksize*blocksize),
	}, nil
}

// NewBlocked64K allocates a blocked grid whose blocksize comes from the
// cache-fit heuristic; see FitBlocksize.
func NewBlocked64K[T any](width, height int) (*Blocked[T], error) {
	var zero T

	return NewBlocked[T](width, height, FitBlocksize(width, height, int(unsafe.Sizeof(zero))))
}

// FitBlocksize returns the blocksize a 64,000-byte tile budget picks for a
// width×height grid of elemSize-byte elements: the side of the largest
// square tile of N = 64000/elemSize cells. Three mutually exclusive cases:
//
//   - one element alone overflows the budget (N < 1): blocksize 1;
//   - √N overshoots either dimension: the smaller of width and height, so
//     one tile spans the limiting dimension exactly;
//   - otherwise ⌊√N⌋.
//
// Elements reported at zero size (empty structs) take the second case: any
// tile fits, so the limiting dimension wins.
// Complexity: O(1).
func FitBlocksize(width, height, elemSize int) int {
	if elemSize > blockBudgetBytes {
		return 1
	}
	root := math.Inf(1)
	if elemSize > 0 {
		root = math.Sqrt(float64(blockBudgetBytes / elemSize))
	}
	if root > float64(width) || root > float64(height) {
		if height < width {
			return height
		}

		return width
	}

	return int(root)
}

// Width returns the number of columns. Complexity: O(1).
func (b *Blocked[T]) Width() int { return b.width }

// Height returns the number of rows. Complexity: O(1).
func (b *Blocked[T]) Height() int { return b.height }

// ElemSize returns bytes per element. Complexity: O(1).
func (b *Blocked[T]) ElemSize() int { return b.elemSize }

// Blocksize returns the tile edge length. Complexity: O(1).
func (b *Blocked[T]) Blocksize() int { return b.blocksize }

// cellIndex maps a logical (col, row) to its arena offset: tile
// (col/bs, row/bs) first, then the row-major offset inside that tile.
// Callers guarantee the coordinate is in range.
func (b *Blocked[T]) cellIndex(col, row int) int {
	bs := b.blocksize
	block := (row/bs)*b.blockCols + col/bs

	return block*bs*bs + (row%bs)*bs + col%bs
}

// At returns a mutable pointer to the element at (col, row).
// Panics when the coordinate is out of range. Complexity: O(1).
func (b *Blocked[T]) At(col, row int) *T {
	if col < 0 || col >= b.width || row < 0 || row >= b.height {
		boundsPanic(col, row, b.width, b.height)
	}

	return &b.arena[b.cellIndex(col, row)]
}

// NewLike allocates a fresh zero-valued blocked grid, re-deriving the
// blocksize with the cache-fit heuristic for the new dimensions.
// Complexity: O(width·height) memory plus edge-tile padding.
func (b *Blocked[T]) NewLike(width, height int) (Grid[T], error) {
	return NewBlocked64K[T](width, height)
}

// NewLikeBlocksize allocates a fresh blocked grid with an explicit blocksize.
func (b *Blocked[T]) NewLikeBlocksize(width, height, blocksize int) (Grid[T], error) {
	return NewBlocked[T](width, height, blocksize)
}

// EachRowMajor visits elements in whole-grid row-major order, striding
// across tiles. Complexity: O(W·H).
func (b *Blocked[T]) EachRowMajor(fn VisitFunc[T]) {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			fn(col, row, &b.arena[b.cellIndex(col, row)])
		}
	}
}

// EachColMajor visits elements in whole-grid column-major order.
// Complexity: O(W·H).
func (b *Blocked[T]) EachColMajor(fn VisitFunc[T]) {
	for col := 0; col < b.width; col++ {
		for row := 0; row < b.height; row++ {
			fn(col, row, &b.arena[b.cellIndex(col, row)])
		}
	}
}

// Each visits elements block-major, the layout's natural stride.
// Complexity: O(W·H).
func (b *Blocked[T]) Each(fn VisitFunc[T]) { b.EachBlockMajor(fn) }

// EachBlockMajor visits tiles in row-major block order and cells row-major
// within each tile, clipped to the tile's logical extent: the last block
// row is height%blocksize cells tall when that remainder is nonzero (else
// full), and likewise the last block column is width%blocksize cells wide.
// Edge padding is never visited; every logical coordinate is visited
// exactly once. Complexity: O(W·H), contiguous in the arena within a tile.
func (b *Blocked[T]) EachBlockMajor(fn VisitFunc[T]) {
	bs := b.blocksize
	for br := 0; br < b.blockRows; br++ {
		rows := bs
		if br == b.blockRows-1 && b.height%bs != 0 {
			rows = b.height % bs
		}
		for bc := 0; bc < b.blockCols; bc++ {
			cols := bs
			if bc == b.blockCols-1 && b.width%bs != 0 {
				cols = b.width % bs
			}
			base := (br*b.blockCols + bc) * bs * bs
			for y := 0; y < rows; y++ {
				for x := 0; x < cols; x++ {
					fn(bc*bs+x, br*bs+y, &b.arena[base+y*bs+x])
				}
			}
		}
	}
}
