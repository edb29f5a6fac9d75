// File: transform/example_test.go
package transform_test

import (
	"fmt"

	"github.com/katalvlaran/tessera/grid"
	"github.com/katalvlaran/tessera/transform"
)

////////////////////////////////////////////////////////////////////////////////
// Example: quarter turn
////////////////////////////////////////////////////////////////////////////////

// ExampleApply rotates a 3×2 grid a quarter turn clockwise: the left column
// of the source, read bottom to top, becomes the top row of the result.
func ExampleApply() {
	src, _ := grid.FromRows([][]int{
		{0, 1, 2},
		{3, 4, 5},
	}, grid.MakeDense[int])

	dst, _ := transform.Apply(src, transform.Rotate(90))
	for _, row := range grid.Rows(dst) {
		fmt.Println(row)
	}
	// Output:
	// [3 0]
	// [4 1]
	// [5 2]
}

////////////////////////////////////////////////////////////////////////////////
// Example: blocked source, block-major traversal
////////////////////////////////////////////////////////////////////////////////

// ExampleApply_blockMajor flips a blocked grid tile by tile. The traversal
// order changes only the visiting sequence, never the result.
func ExampleApply_blockMajor() {
	src, _ := grid.FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
	}, grid.MakeBlocked[int](2))

	dst, _ := transform.Apply(src, transform.Flip(transform.Vertical),
		transform.WithOrder(grid.OrderBlockMajor))
	for _, row := range grid.Rows(dst) {
		fmt.Println(row)
	}
	// Output:
	// [4 5 6]
	// [1 2 3]
}
