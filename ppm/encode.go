package ppm

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Encode writes img to w as a raw (P6) pixmap. Samples wider than the
// image maxval allows are truncated to the emitted byte width.
//
// Complexity: O(width×height) time, one row buffer in memory.
func Encode(w io.Writer, img *Image) error {
	if img == nil || img.Pixels == nil {
		return ErrNoPixels
	}
	width, height := img.Width(), img.Height()
	if img.Maxval < 1 || img.Maxval > MaxMaxval {
		return fmt.Errorf("ppm: maxval %d: %w", img.Maxval, ErrBadMaxval)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n%d\n", width, height, img.Maxval); err != nil {
		return fmt.Errorf("ppm: writing header: %w", err)
	}

	bytesPer := 1
	if img.Maxval > 255 {
		bytesPer = 2
	}
	rowBuf := make([]byte, width*3*bytesPer)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			px := *img.Pixels.At(col, row)
			i := col * 3 * bytesPer
			if bytesPer == 2 {
				binary.BigEndian.PutUint16(rowBuf[i:], px.R)
				binary.BigEndian.PutUint16(rowBuf[i+2:], px.G)
				binary.BigEndian.PutUint16(rowBuf[i+4:], px.B)
			} else {
				rowBuf[i] = byte(px.R)
				rowBuf[i+1] = byte(px.G)
				rowBuf[i+2] = byte(px.B)
			}
		}
		if _, err := bw.Write(rowBuf); err != nil {
			return fmt.Errorf("ppm: writing row %d: %w", row, err)
		}
	}
	return bw.Flush()
}
