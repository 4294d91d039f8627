package render

import "github.com/plus3/stackdrop/grid"

// Paint mirrors a grid's occupancy, remembering which shape filled each
// cell. Apply every landing of the grid, in order, to keep it in step.
type Paint struct {
	cells [grid.Height][grid.Width]uint8 // shape+1, 0 when empty
}

func (p *Paint) Apply(l grid.Landing) {
	for _, c := range l.Placement {
		p.cells[c.Y][c.X] = uint8(l.Shape) + 1
	}
	for _, y := range l.ClearedRows {
		copy(p.cells[y:], p.cells[y+1:])
		p.cells[grid.Height-1] = [grid.Width]uint8{}
	}
}

// ShapeAt returns the shape that filled the cell at column x, row y.
func (p *Paint) ShapeAt(x, y int) (grid.Shape, bool) {
	if x < 0 || x >= grid.Width || y < 0 || y >= grid.Height || p.cells[y][x] == 0 {
		return 0, false
	}
	return grid.Shape(p.cells[y][x] - 1), true
}

func (p *Paint) Reset() {
	*p = Paint{}
}
