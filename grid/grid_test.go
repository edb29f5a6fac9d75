package grid_test

import (
	"testing"

	"github.com/katalvlaran/tessera/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectOrder drives EachOrder and records every visit, requiring success.
func collectOrder(t *testing.T, g grid.Grid[int], ord grid.Order) []visit {
	t.Helper()
	var got []visit
	require.NoError(t, grid.EachOrder(g, ord, func(col, row int, el *int) {
		got = append(got, visit{col, row, *el})
	}))

	return got
}

// TestEachOrder_Dispatch verifies every Order value reaches the matching
// traversal entry point on a blocked grid.
func TestEachOrder_Dispatch(t *testing.T) {
	g, err := grid.MakeBlocked[int](2)(4, 4)
	require.NoError(t, err)
	fillIndexed(g)

	bg, ok := g.(grid.BlockGrid[int])
	require.True(t, ok, "blocked variant carries the block-major slot")

	assert.Equal(t, collect(g.EachRowMajor), collectOrder(t, g, grid.OrderRowMajor))
	assert.Equal(t, collect(g.EachColMajor), collectOrder(t, g, grid.OrderColMajor))
	assert.Equal(t, collect(bg.EachBlockMajor), collectOrder(t, g, grid.OrderBlockMajor))
	assert.Equal(t, collect(g.Each), collectOrder(t, g, grid.OrderDefault))
}

// TestEachOrder_UnknownOrder verifies an out-of-range Order value is a
// configuration error and the callback never runs.
func TestEachOrder_UnknownOrder(t *testing.T) {
	g, err := grid.MakeDense[int](2, 2)
	require.NoError(t, err)

	calls := 0
	err = grid.EachOrder(g, grid.Order(42), func(_, _ int, _ *int) { calls++ })
	assert.ErrorIs(t, err, grid.ErrOrderUnsupported)
	assert.Zero(t, calls)
}

// TestElems_DiscardsCoordinates checks the reduced-arity adapter visits
// every element exactly once and can mutate in place.
func TestElems_DiscardsCoordinates(t *testing.T) {
	g, err := grid.MakeDense[int](3, 2)
	require.NoError(t, err)
	fillIndexed(g)

	sum, count := 0, 0
	g.Each(grid.Elems(func(el *int) {
		sum += *el
		count++
	}))
	assert.Equal(t, 6, count)
	assert.Equal(t, 15, sum, "0+1+2+3+4+5")

	g.EachRowMajor(grid.Elems(func(el *int) { *el *= 2 }))
	assert.Equal(t, 10, *g.At(2, 1), "writes through the adapter reach storage")
}

// TestFromRows_FillsByCoordinate verifies values land at (col, row) and the
// input is deep-copied.
func TestFromRows_FillsByCoordinate(t *testing.T) {
	rows := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	g, err := grid.FromRows(rows, grid.MakeDense[int])
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 6, *g.At(2, 1))
	assert.Equal(t, 2, *g.At(1, 0))

	rows[0][0] = 99
	assert.Equal(t, 1, *g.At(0, 0), "input mutation must not leak into the grid")
}

// TestFromRows_Errors verifies rejection of empty and ragged inputs and
// propagation of the maker's own error.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"NoRows", [][]int{}, grid.ErrEmptyRows},
		{"NoCols", [][]int{{}}, grid.ErrEmptyRows},
		{"Ragged", [][]int{{1, 2}, {3}}, grid.ErrRaggedRows},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows, grid.MakeDense[int])
			assert.ErrorIs(t, err, tc.err)
		})
	}

	// a maker failure surfaces verbatim
	_, err := grid.FromRows([][]int{{1, 2}, {3, 4}}, grid.MakeBlocked[int](5))
	assert.ErrorIs(t, err, grid.ErrBadBlocksize)
}

// TestRows_Snapshot verifies the exported [][]T copy round-trips and stays
// independent of later grid writes.
func TestRows_Snapshot(t *testing.T) {
	in := [][]int{
		{1, 2},
		{3, 4},
		{5, 6},
	}
	g, err := grid.FromRows(in, grid.MakeBlocked64K[int])
	require.NoError(t, err)

	snap := grid.Rows(g)
	assert.Equal(t, in, snap)

	*g.At(0, 0) = 77
	assert.Equal(t, 1, snap[0][0], "snapshot is independent of later writes")
}

// TestMakers verifies the three factory shapes produce the variants they
// promise.
func TestMakers(t *testing.T) {
	d, err := grid.MakeDense[int](3, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Blocksize())

	b64, err := grid.MakeBlocked64K[byte](1000, 1000)
	require.NoError(t, err)
	assert.Equal(t, 252, b64.Blocksize())
	_, ok := b64.(grid.BlockGrid[byte])
	assert.True(t, ok)

	fixed, err := grid.MakeBlocked[int](3)(9, 6)
	require.NoError(t, err)
	assert.Equal(t, 3, fixed.Blocksize())

	_, err = grid.MakeBlocked[int](7)(9, 6)
	assert.ErrorIs(t, err, grid.ErrBadBlocksize)
}

// TestOrder_String covers the flag-style names, including unknown values.
func TestOrder_String(t *testing.T) {
	assert.Equal(t, "default", grid.OrderDefault.String())
	assert.Equal(t, "row-major", grid.OrderRowMajor.String())
	assert.Equal(t, "col-major", grid.OrderColMajor.String())
	assert.Equal(t, "block-major", grid.OrderBlockMajor.String())
	assert.Equal(t, "Order(9)", grid.Order(9).String())
}
