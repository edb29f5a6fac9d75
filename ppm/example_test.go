// File: ppm/example_test.go
package ppm_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tessera/grid"
	"github.com/katalvlaran/tessera/ppm"
	"github.com/katalvlaran/tessera/transform"
)

////////////////////////////////////////////////////////////////////////////////
// Example: decoding a plain pixmap
////////////////////////////////////////////////////////////////////////////////

// ExampleDecode reads a plain P3 stream into dense storage and inspects one
// pixel by coordinate.
func ExampleDecode() {
	const src = "P3\n2 2\n255\n" +
		"255 0 0    0 255 0\n" +
		"0 0 255    255 255 0\n"

	img, _ := ppm.Decode(strings.NewReader(src), nil)
	fmt.Println(img.Width(), img.Height(), img.Maxval)
	fmt.Println(*img.Pixels.At(1, 1))
	// Output:
	// 2 2 255
	// {255 255 0}
}

////////////////////////////////////////////////////////////////////////////////
// Example: the full decode → transform → inspect pipeline
////////////////////////////////////////////////////////////////////////////////

// Example_rotatePixmap decodes a pixmap into blocked storage, rotates it a
// quarter turn driven block-major, and prints the red channel of the result.
func Example_rotatePixmap() {
	const src = "P3\n3 2\n255\n" +
		"10 0 0  20 0 0  30 0 0\n" +
		"40 0 0  50 0 0  60 0 0\n"

	img, _ := ppm.Decode(strings.NewReader(src), grid.MakeBlocked64K[ppm.Pixel])
	dst, _ := transform.Apply(img.Pixels, transform.Rotate(90),
		transform.WithOrder(grid.OrderBlockMajor))
	img.Pixels = dst

	for _, row := range grid.Rows(img.Pixels) {
		for i, px := range row {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%3d", px.R)
		}
		fmt.Println()
	}
	// Output:
	//  40  10
	//  50  20
	//  60  30
}
