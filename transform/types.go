// Package transform defines operation parameters, options, and sentinel
// errors for the transform subpackage of github.com/katalvlaran/tessera.
package transform

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/tessera/grid"
)

// Sentinel errors for transform requests.
var (
	// ErrBadAngle indicates a rotation angle other than 0, 90, 180 or 270.
	ErrBadAngle = errors.New("transform: rotation angle must be 0, 90, 180 or 270")
	// ErrBadAxis indicates a flip axis other than Horizontal or Vertical.
	ErrBadAxis = errors.New("transform: flip axis must be Horizontal or Vertical")
	// ErrBadOp indicates a zero or unknown operation value.
	ErrBadOp = errors.New("transform: unknown operation")
)

// Axis selects the mirror line of a flip.
type Axis int

const (
	// Horizontal mirrors left-right: column c maps to width-c-1.
	Horizontal Axis = iota + 1
	// Vertical mirrors top-bottom: row r maps to height-r-1.
	Vertical
)

// String returns the flag-style name of the axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Timing records how long the traversal of one Apply took.
type Timing struct {
	// Elapsed is the wall-clock duration of the traversal.
	Elapsed time.Duration
	// Cells is the number of elements visited.
	Cells int
}

// PerCell returns the average nanoseconds spent per element.
func (t Timing) PerCell() float64 {
	if t.Cells == 0 {
		return 0
	}

	return float64(t.Elapsed.Nanoseconds()) / float64(t.Cells)
}

// Option tunes one Apply invocation.
type Option func(*options)

type options struct {
	order  grid.Order
	timing *Timing
}

// WithOrder selects the traversal order Apply drives over the source.
// The default is grid.OrderDefault, the variant's preferred order.
func WithOrder(ord grid.Order) Option {
	return func(o *options) { o.order = ord }
}

// WithTiming records the traversal duration and cell count of a successful
// Apply into t.
func WithTiming(t *Timing) Option {
	return func(o *options) { o.timing = t }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
