package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/katalvlaran/tessera/grid"
	"github.com/katalvlaran/tessera/ppm"
	"github.com/katalvlaran/tessera/transform"
)

// Config holds the command-line parameters of one tessera run.
type Config struct {
	Rotate     int
	Flip       string
	Transpose  bool
	RowMajor   bool
	ColMajor   bool
	BlockMajor bool
	Blocked    bool
	Blocksize  int
	TimeFile   string
}

// NewConfig returns a Config populated with the defaults: rotate 0 over
// dense storage, traversed in the variant's preferred order.
func NewConfig() *Config {
	return &Config{}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rotate, "rotate", 0, "rotate clockwise by 0, 90, 180 or 270 degrees")
	fs.StringVar(&c.Flip, "flip", "", "mirror the image: horizontal or vertical")
	fs.BoolVar(&c.Transpose, "transpose", false, "swap columns and rows")
	fs.BoolVar(&c.RowMajor, "row-major", false, "traverse the source row by row")
	fs.BoolVar(&c.ColMajor, "col-major", false, "traverse the source column by column")
	fs.BoolVar(&c.BlockMajor, "block-major", false, "traverse the source tile by tile (implies -blocked)")
	fs.BoolVar(&c.Blocked, "blocked", false, "store pixels in tiles sized by the 64K cache budget")
	fs.IntVar(&c.Blocksize, "blocksize", 0, "explicit tile edge length (implies -blocked; 0 derives it)")
	fs.StringVar(&c.TimeFile, "time", "", "write a traversal timing report to this file")
}

// Request is one fully resolved run: the operation to apply, the storage the
// pixels land in, and the traversal order driving the copy.
type Request struct {
	Op    transform.Op
	Maker grid.Maker[ppm.Pixel]
	Order grid.Order
}

// Resolve validates the parsed flags and turns them into engine inputs.
// An explicit -rotate 0 and no transform flag at all both resolve to the
// zero rotation, which still performs the full copy.
func (c *Config) Resolve() (Request, error) {
	var req Request

	ops := 0
	if c.Rotate != 0 {
		ops++
	}
	if c.Flip != "" {
		ops++
	}
	if c.Transpose {
		ops++
	}
	if ops > 1 {
		return Request{}, errors.New("choose at most one of -rotate, -flip and -transpose")
	}

	switch {
	case c.Flip != "":
		switch c.Flip {
		case "horizontal":
			req.Op = transform.Flip(transform.Horizontal)
		case "vertical":
			req.Op = transform.Flip(transform.Vertical)
		default:
			return Request{}, fmt.Errorf("flip must be horizontal or vertical, got %q", c.Flip)
		}
	case c.Transpose:
		req.Op = transform.Transpose()
	default:
		switch c.Rotate {
		case 0, 90, 180, 270:
			req.Op = transform.Rotate(c.Rotate)
		default:
			return Request{}, fmt.Errorf("rotation must be 0, 90, 180 or 270, got %d", c.Rotate)
		}
	}

	orders := 0
	for _, set := range []bool{c.RowMajor, c.ColMajor, c.BlockMajor} {
		if set {
			orders++
		}
	}
	if orders > 1 {
		return Request{}, errors.New("choose at most one of -row-major, -col-major and -block-major")
	}
	switch {
	case c.RowMajor:
		req.Order = grid.OrderRowMajor
	case c.ColMajor:
		req.Order = grid.OrderColMajor
	case c.BlockMajor:
		req.Order = grid.OrderBlockMajor
	default:
		req.Order = grid.OrderDefault
	}

	// -block-major needs a block layout to walk, so it implies -blocked.
	switch {
	case c.Blocksize < 0:
		return Request{}, fmt.Errorf("blocksize must be at least 1, got %d", c.Blocksize)
	case c.Blocksize > 0:
		req.Maker = grid.MakeBlocked[ppm.Pixel](c.Blocksize)
	case c.Blocked || c.BlockMajor:
		req.Maker = grid.MakeBlocked64K[ppm.Pixel]
	default:
		req.Maker = grid.MakeDense[ppm.Pixel]
	}

	return req, nil
}
