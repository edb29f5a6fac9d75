// Dense is the plain storage variant: a single flat row-major slice with
// offset arithmetic, the layout most Go code expects.
package grid

import "unsafe"

// Dense stores a width×height rectangle in one row-major slice,
// offset row*width+col. It reports Blocksize()==1 and carries no
// block-major traversal.
type Dense[T any] struct {
	width, height int
	elemSize      int
	cells         []T // len == width*height, row-major
}

// Dense implements the full capability table.
var _ Grid[byte] = (*Dense[byte])(nil)

// NewDense allocates a zero-valued width×height dense grid.
// Returns ErrBadDims unless both dimensions are at least 1.
// Complexity: O(W·H) memory.
func NewDense[T any](width, height int) (*Dense[T], error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDims
	}
	var zero T

	return &Dense[T]{
		width:    width,
		height:   height,
		elemSize: int(unsafe.Sizeof(zero)),
		cells:    make([]T, width*height),
	}, nil
}

// Width returns the number of columns. Complexity: O(1).
func (d *Dense[T]) Width() int { return d.width }

// Height returns the number of rows. Complexity: O(1).
func (d *Dense[T]) Height() int { return d.height }

// ElemSize returns bytes per element. Complexity: O(1).
func (d *Dense[T]) ElemSize() int { return d.elemSize }

// Blocksize reports 1: dense storage has no tiles. Complexity: O(1).
func (d *Dense[T]) Blocksize() int { return 1 }

// At returns a mutable pointer to the element at (col, row).
// Panics when the coordinate is out of range. Complexity: O(1).
func (d *Dense[T]) At(col, row int) *T {
	if col < 0 || col >= d.width || row < 0 || row >= d.height {
		boundsPanic(col, row, d.width, d.height)
	}

	return &d.cells[row*d.width+col]
}

// NewLike allocates a fresh zero-valued dense grid.
// Complexity: O(width·height) memory.
func (d *Dense[T]) NewLike(width, height int) (Grid[T], error) {
	return NewDense[T](width, height)
}

// NewLikeBlocksize allocates a fresh dense grid. The blocksize argument is
// ignored: dense storage has none.
func (d *Dense[T]) NewLikeBlocksize(width, height, _ int) (Grid[T], error) {
	return NewDense[T](width, height)
}

// EachRowMajor visits elements row by row, columns ascending — a straight
// walk over the backing slice. Complexity: O(W·H).
func (d *Dense[T]) EachRowMajor(fn VisitFunc[T]) {
	i := 0
	for row := 0; row < d.height; row++ {
		for col := 0; col < d.width; col++ {
			fn(col, row, &d.cells[i])
			i++
		}
	}
}

// EachColMajor visits elements column by column, rows ascending.
// Complexity: O(W·H).
func (d *Dense[T]) EachColMajor(fn VisitFunc[T]) {
	for col := 0; col < d.width; col++ {
		for row := 0; row < d.height; row++ {
			fn(col, row, &d.cells[row*d.width+col])
		}
	}
}

// Each visits elements row-major, the layout's natural stride.
// Complexity: O(W·H).
func (d *Dense[T]) Each(fn VisitFunc[T]) { d.EachRowMajor(fn) }
