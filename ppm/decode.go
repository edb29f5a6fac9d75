package ppm

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tessera/grid"
)

// Decode reads one plain (P3) or raw (P6) pixmap from r. The maker
// decides where the pixels land; a nil maker defaults to dense storage.
//
// Complexity: O(width×height) time, one pixel grid allocated.
func Decode(r io.Reader, mk grid.Maker[Pixel]) (*Image, error) {
	if mk == nil {
		mk = grid.MakeDense[Pixel]
	}
	br := bufio.NewReader(r)

	var magic [2]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, fmt.Errorf("ppm: reading magic: %w", ErrBadMagic)
	}
	if magic[0] != 'P' || (magic[1] != '3' && magic[1] != '6') {
		return nil, fmt.Errorf("ppm: magic %q: %w", magic[:], ErrBadMagic)
	}
	raw := magic[1] == '6'

	width, err := headerInt(br)
	if err != nil {
		return nil, err
	}
	height, err := headerInt(br)
	if err != nil {
		return nil, err
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("ppm: %d×%d: %w", width, height, ErrBadHeader)
	}
	maxval, err := headerInt(br)
	if err != nil {
		return nil, err
	}
	if maxval < 1 || maxval > MaxMaxval {
		return nil, fmt.Errorf("ppm: maxval %d: %w", maxval, ErrBadMaxval)
	}

	pixels, err := mk(width, height)
	if err != nil {
		return nil, fmt.Errorf("ppm: make %d×%d pixel grid: %w", width, height, err)
	}

	if raw {
		err = decodeRaw(br, pixels, maxval)
	} else {
		err = decodePlain(br, pixels, maxval)
	}
	if err != nil {
		return nil, err
	}
	return &Image{Maxval: maxval, Pixels: pixels}, nil
}

// decodeRaw reads binary samples row by row. The format mandates exactly
// one whitespace byte between maxval and the first sample.
func decodeRaw(br *bufio.Reader, pixels grid.Grid[Pixel], maxval int) error {
	sep, err := br.ReadByte()
	if err != nil || !isSpace(sep) {
		return fmt.Errorf("ppm: after maxval: %w", ErrBadHeader)
	}

	width, height := pixels.Width(), pixels.Height()
	bytesPer := 1
	if maxval > 255 {
		bytesPer = 2
	}
	rowBuf := make([]byte, width*3*bytesPer)
	for row := 0; row < height; row++ {
		if _, err := io.ReadFull(br, rowBuf); err != nil {
			return fmt.Errorf("ppm: row %d: %w", row, ErrTruncated)
		}
		for col := 0; col < width; col++ {
			i := col * 3 * bytesPer
			var px Pixel
			if bytesPer == 2 {
				px.R = binary.BigEndian.Uint16(rowBuf[i:])
				px.G = binary.BigEndian.Uint16(rowBuf[i+2:])
				px.B = binary.BigEndian.Uint16(rowBuf[i+4:])
			} else {
				px.R = uint16(rowBuf[i])
				px.G = uint16(rowBuf[i+1])
				px.B = uint16(rowBuf[i+2])
			}
			*pixels.At(col, row) = px
		}
	}
	return nil
}

// decodePlain reads ASCII samples. Whitespace and # comments may appear
// between any two samples.
func decodePlain(br *bufio.Reader, pixels grid.Grid[Pixel], maxval int) error {
	width, height := pixels.Width(), pixels.Height()
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			r, err := sample(br, maxval)
			if err != nil {
				return err
			}
			g, err := sample(br, maxval)
			if err != nil {
				return err
			}
			b, err := sample(br, maxval)
			if err != nil {
				return err
			}
			*pixels.At(col, row) = Pixel{R: r, G: g, B: b}
		}
	}
	return nil
}

// sample reads one plain-format sample and checks it against maxval.
func sample(br *bufio.Reader, maxval int) (uint16, error) {
	tok, err := nextToken(br)
	if err != nil {
		return 0, fmt.Errorf("ppm: reading sample: %w", ErrTruncated)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("ppm: sample %q: %w", tok, ErrBadSample)
	}
	if n < 0 || n > maxval {
		return 0, fmt.Errorf("ppm: sample %d exceeds maxval %d: %w", n, maxval, ErrBadSample)
	}
	return uint16(n), nil
}

// headerInt reads one decimal header field. An exhausted or non-numeric
// stream at this stage is a header defect, not truncation.
func headerInt(br *bufio.Reader) (int, error) {
	tok, err := nextToken(br)
	if err != nil {
		return 0, fmt.Errorf("ppm: reading header: %w", ErrBadHeader)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("ppm: header token %q: %w", tok, ErrBadHeader)
	}
	return n, nil
}

// nextToken skips whitespace and comments, then returns the following run
// of non-space bytes. The terminating delimiter stays unread.
func nextToken(br *bufio.Reader) (string, error) {
	if err := skipSpace(br); err != nil {
		return "", err
	}
	var tok []byte
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if isSpace(c) || c == '#' {
			if err := br.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
		tok = append(tok, c)
	}
	if len(tok) == 0 {
		return "", io.ErrUnexpectedEOF
	}
	return string(tok), nil
}

// skipSpace consumes whitespace and # comments up to the next token byte,
// which stays unread.
func skipSpace(br *bufio.Reader) error {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return err
		}
		if isSpace(c) {
			continue
		}
		if c == '#' {
			for c != '\n' {
				c, err = br.ReadByte()
				if err != nil {
					return err
				}
			}
			continue
		}
		return br.UnreadByte()
	}
}

// isSpace reports whether c is whitespace in the netpbm sense.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
