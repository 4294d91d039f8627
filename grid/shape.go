package grid

// Shape identifies one of the seven fixed tetrominoes. There is no rotation,
// so each shape has exactly one layout.
type Shape uint8

const (
	Q Shape = iota
	Z
	S
	T
	I
	L
	J
)

// Shapes lists every shape in catalog order.
var Shapes = [...]Shape{Q, Z, S, T, I, L, J}

const shapeLetters = "QZSTILJ"

func (s Shape) String() string {
	if !s.Valid() {
		return "?"
	}
	return shapeLetters[s : s+1]
}

// Valid reports whether s is one of the seven catalog shapes.
func (s Shape) Valid() bool {
	return s <= J
}

// ShapeFromLetter maps an upper-case shape letter to its Shape.
func ShapeFromLetter(c byte) (Shape, bool) {
	for i := 0; i < len(shapeLetters); i++ {
		if shapeLetters[i] == c {
			return Shape(i), true
		}
	}
	return 0, false
}

// Width returns the width of the shape's bounding box.
func (s Shape) Width() int {
	switch s {
	case Q, L, J:
		return 2
	case Z, S, T:
		return 3
	case I:
		return 4
	}
	return 0
}

// Height returns the height of the shape's bounding box.
func (s Shape) Height() int {
	switch s {
	case I:
		return 1
	case Q, Z, S, T:
		return 2
	case L, J:
		return 3
	}
	return 0
}

// CellsAt returns the four cells the shape occupies when the bottom-left
// corner of its bounding box sits at anchor. The last cell of the result is
// always on the shape's top row.
//
// Layouts, bottom row first (numbers give the order in the result):
//
//	Q  3 4     Z  3 4       S    3 4   T  2 3 4
//	   1 2          1 2        1 2          1
//
//	I  1 2 3 4     L  4     J    4
//	                  3          3
//	                  1 2      1 2
func (s Shape) CellsAt(anchor Cell) (Placement, error) {
	if !s.Valid() {
		return Placement{}, &BoundsError{Shape: s, Anchor: anchor}
	}
	x, y := anchor.X, anchor.Y
	if x < 0 || y < 0 || x > Width-s.Width() || y > Height-s.Height() {
		return Placement{}, &BoundsError{Shape: s, Anchor: anchor}
	}

	switch s {
	case Q:
		return Placement{{x, y}, {x + 1, y}, {x, y + 1}, {x + 1, y + 1}}, nil
	case Z:
		return Placement{{x + 1, y}, {x + 2, y}, {x, y + 1}, {x + 1, y + 1}}, nil
	case S:
		return Placement{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x + 2, y + 1}}, nil
	case T:
		return Placement{{x + 1, y}, {x, y + 1}, {x + 1, y + 1}, {x + 2, y + 1}}, nil
	case I:
		return Placement{{x, y}, {x + 1, y}, {x + 2, y}, {x + 3, y}}, nil
	case L:
		return Placement{{x, y}, {x + 1, y}, {x, y + 1}, {x, y + 2}}, nil
	default: // J
		return Placement{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x + 1, y + 2}}, nil
	}
}
