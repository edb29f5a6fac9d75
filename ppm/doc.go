// Package ppm reads and writes portable pixmap images on top of grid storage.
//
// What:
//
//	ppm decodes the two pixmap flavors defined by netpbm - plain "P3"
//	(ASCII samples) and raw "P6" (binary samples) - into an Image whose
//	pixels live in any grid variant, and encodes an Image back out as
//	raw "P6". The caller picks the storage by passing a grid.Maker to
//	Decode, so the same file can land in flat or tiled memory without
//	the codec knowing the difference.
//
// Why:
//
//	Pixmaps are the simplest interchange format that still exercises a
//	full decode/transform/encode pipeline. Keeping the codec behind
//	grid.Grid means transforms and traversal orders apply to image data
//	unchanged.
//
// Types:
//
//   - Pixel - one RGB sample triple, 16 bits per channel.
//   - Image - pixel grid plus the maxval the samples are scaled to.
//
// Errors:
//
//   - ErrBadMagic     - the stream does not start with "P3" or "P6".
//   - ErrBadHeader    - malformed or non-positive width/height.
//   - ErrBadMaxval    - maxval outside [1, 65535].
//   - ErrBadSample    - a plain-format sample is not a number in range.
//   - ErrTruncated    - the stream ended before all pixels arrived.
//   - ErrNoPixels     - Encode was handed an Image without pixel data.
//
// Complexity: Decode and Encode are O(width×height) time, one grid of
// pixels in memory.
package ppm
