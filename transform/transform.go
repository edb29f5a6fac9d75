// Apply drives one traversal of a source grid and writes every element into
// its geometrically mapped destination cell.
package transform

import (
	"fmt"
	"time"

	"github.com/katalvlaran/tessera/grid"
)

// Apply runs op over src and returns the transformed grid.
//
// The destination is allocated through src's own capability table
// (grid.Grid.NewLike), so it carries the same storage variant; blocked
// sources size the destination's tiles with the cache-fit heuristic. One
// traversal of the source in the selected order writes every element to its
// mapped destination cell; the caller's reassignment is the old/new swap,
// and the old grid's storage is simply collected. On error the source is
// untouched and no destination escapes.
//
// Returns ErrBadAngle, ErrBadAxis or ErrBadOp for ill-formed ops,
// construction errors from the destination allocation, and
// grid.ErrOrderUnsupported when the selected order is absent on src's
// variant.
// Complexity: O(W×H) time, O(W×H) destination memory.
func Apply[T any](src grid.Grid[T], op Op, opts ...Option) (grid.Grid[T], error) {
	if err := op.validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	width, height := src.Width(), src.Height()
	dw, dh := op.Dims(width, height)
	dst, err := src.NewLike(dw, dh)
	if err != nil {
		return nil, fmt.Errorf("transform: destination %d×%d: %w", dw, dh, err)
	}

	visit := func(col, row int, el *T) {
		x, y := op.destCoord(col, row, width, height)
		*dst.At(x, y) = *el
	}

	start := time.Now()
	if err := grid.EachOrder(src, o.order, visit); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	if o.timing != nil {
		*o.timing = Timing{Elapsed: elapsed, Cells: width * height}
	}

	return dst, nil
}
