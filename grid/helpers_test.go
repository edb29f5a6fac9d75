package grid_test

import (
	"testing"

	"github.com/katalvlaran/tessera/grid"
	"github.com/stretchr/testify/require"
)

// visit records one traversal callback invocation.
type visit struct {
	col, row, val int
}

// collect drives the given traversal entry point and records every visit
// in callback order.
func collect(each func(grid.VisitFunc[int])) []visit {
	var got []visit
	each(func(col, row int, el *int) {
		got = append(got, visit{col, row, *el})
	})

	return got
}

// fillIndexed writes row*width+col into every cell, so each coordinate
// carries a unique marker.
func fillIndexed(g grid.Grid[int]) {
	w := g.Width()
	g.EachRowMajor(func(col, row int, el *int) { *el = row*w + col })
}

// visitedSet drives the traversal and returns a row-major bitmap of visited
// coordinates, failing the test on any repeat visit.
func visitedSet(t *testing.T, w, h int, each func(grid.VisitFunc[int])) []bool {
	t.Helper()
	seen := make([]bool, w*h)
	each(func(col, row int, _ *int) {
		idx := row*w + col
		require.False(t, seen[idx], "coordinate (%d,%d) visited twice", col, row)
		seen[idx] = true
	})

	return seen
}
