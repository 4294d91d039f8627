package grid

import "fmt"

// Cell is a grid coordinate. X is the column, Y the row counted from the
// floor.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Placement is the set of four cells a shape covers at one anchor. Element
// 3 is on the shape's top row.
type Placement [4]Cell

// Top returns the row of the placement's topmost cell.
func (p Placement) Top() int {
	return p[3].Y
}

// Bottom returns the lowest row the placement covers.
func (p Placement) Bottom() int {
	bottom := p[0].Y
	for _, c := range p[1:] {
		bottom = min(bottom, c.Y)
	}
	return bottom
}
