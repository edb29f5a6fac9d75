// Op is the closed set of geometric operations and their coordinate maps.
package transform

import "fmt"

// opKind discriminates the closed operation set.
type opKind int

const (
	opNone opKind = iota
	opRotate
	opFlip
	opTranspose
)

// Op is one geometric operation: a clockwise rotation by a right-angle
// multiple, a flip about an axis, or a transposition. The zero Op is
// invalid; build values with Rotate, Flip or Transpose.
type Op struct {
	kind  opKind
	angle int  // rotations only
	axis  Axis // flips only
}

// Rotate returns the clockwise rotation by angle degrees. Valid angles are
// 0, 90, 180 and 270; Apply rejects anything else with ErrBadAngle.
func Rotate(angle int) Op { return Op{kind: opRotate, angle: angle} }

// Flip returns the mirror about axis.
func Flip(axis Axis) Op { return Op{kind: opFlip, axis: axis} }

// Transpose returns the operation that swaps columns and rows.
func Transpose() Op { return Op{kind: opTranspose} }

// String returns a human-readable name: "rotate 90", "flip horizontal",
// "transpose".
func (op Op) String() string {
	switch op.kind {
	case opRotate:
		return fmt.Sprintf("rotate %d", op.angle)
	case opFlip:
		return fmt.Sprintf("flip %s", op.axis)
	case opTranspose:
		return "transpose"
	default:
		return "invalid op"
	}
}

// validate reports the sentinel matching an ill-formed Op.
func (op Op) validate() error {
	switch op.kind {
	case opRotate:
		switch op.angle {
		case 0, 90, 180, 270:
			return nil
		}

		return fmt.Errorf("transform: rotate %d: %w", op.angle, ErrBadAngle)
	case opFlip:
		if op.axis != Horizontal && op.axis != Vertical {
			return ErrBadAxis
		}

		return nil
	case opTranspose:
		return nil
	default:
		return ErrBadOp
	}
}

// Dims returns the destination dimensions for a width×height source:
// rotations by 90 or 270 and transposition swap the two, every other
// operation keeps them.
// Complexity: O(1).
func (op Op) Dims(width, height int) (dw, dh int) {
	if op.kind == opTranspose || (op.kind == opRotate && (op.angle == 90 || op.angle == 270)) {
		return height, width
	}

	return width, height
}

// destCoord maps source (col, row) in a width×height grid to its
// destination coordinate. Every operation is a bijection, so the traversal
// order feeding it never matters.
func (op Op) destCoord(col, row, width, height int) (x, y int) {
	switch op.kind {
	case opRotate:
		switch op.angle {
		case 90:
			return height - row - 1, col
		case 180:
			return width - col - 1, height - row - 1
		case 270:
			return row, width - col - 1
		}
		// rotate 0 still copies cell for cell
		return col, row
	case opFlip:
		if op.axis == Horizontal {
			return width - col - 1, row
		}

		return col, height - row - 1
	default:
		// transpose; validate has excluded everything else
		return row, col
	}
}
