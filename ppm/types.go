package ppm

import (
	"errors"

	"github.com/katalvlaran/tessera/grid"
)

// MaxMaxval is the largest sample ceiling the format allows. Headers
// declaring more than two bytes per channel are rejected.
const MaxMaxval = 65535

var (
	// ErrBadMagic means the stream does not begin with a P3 or P6 magic.
	ErrBadMagic = errors.New("ppm: bad magic, want P3 or P6")
	// ErrBadHeader means width or height is malformed or not positive.
	ErrBadHeader = errors.New("ppm: bad header")
	// ErrBadMaxval means the declared maxval is outside [1, 65535].
	ErrBadMaxval = errors.New("ppm: maxval must be in [1, 65535]")
	// ErrBadSample means a plain-format sample is not an integer in [0, maxval].
	ErrBadSample = errors.New("ppm: bad sample")
	// ErrTruncated means the stream ended before the last pixel.
	ErrTruncated = errors.New("ppm: truncated pixel data")
	// ErrNoPixels means Encode received an Image with no pixel grid.
	ErrNoPixels = errors.New("ppm: image has no pixels")
)

// Pixel is one RGB triple. Channels are stored full-width; samples read
// from a one-byte file occupy the low 8 bits unscaled.
type Pixel struct {
	R, G, B uint16
}

// Image couples a pixel grid with the maxval its samples are scaled to.
// Dimensions live in the grid alone, so they cannot drift out of sync.
type Image struct {
	// Maxval is the per-channel ceiling, in [1, 65535].
	Maxval int
	// Pixels holds the samples in any grid variant.
	Pixels grid.Grid[Pixel]
}

// Width returns the pixel count per row, or 0 for an empty image.
func (img *Image) Width() int {
	if img == nil || img.Pixels == nil {
		return 0
	}
	return img.Pixels.Width()
}

// Height returns the row count, or 0 for an empty image.
func (img *Image) Height() int {
	if img == nil || img.Pixels == nil {
		return 0
	}
	return img.Pixels.Height()
}
