// Package grid implements the board of a falling-block puzzle: a fixed
// catalog of seven tetrominoes dropped straight down into a column of a
// 10x100 grid, where completely filled rows are cleared.
//
// Basic usage:
//
//	g := grid.New()
//	if err := g.Place(grid.Q, 0); err != nil {
//	    return err
//	}
//	fmt.Println(g.Height()) // 2
package grid

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	// Width is the number of columns in a grid.
	Width = 10
	// Height is the number of rows in a grid.
	Height = 100

	fullRow uint16 = 1<<Width - 1
)

// Grid is the board state. Each row is stored as a bitmask with bit x set
// when column x is occupied.
//
// Every row at or above the first blank row is empty, and after Place
// returns no row below it is full.
type Grid struct {
	rows       [Height]uint16
	firstBlank int

	placed  int
	cleared int
}

// Landing describes where a dropped shape came to rest and what it cleared.
// ClearedRows lists the removed rows top first, numbered as they were before
// any row moved.
type Landing struct {
	Shape       Shape
	Column      int
	Placement   Placement
	Cleared     int
	ClearedRows []int
	Height      int
}

// New creates an empty grid.
func New() *Grid {
	return &Grid{}
}

// Place drops shape s into column and clears any rows it completes. On error
// the grid is left unchanged.
func (g *Grid) Place(s Shape, column int) error {
	_, err := g.Drop(s, column)
	return err
}

// Drop is Place, returning the resting position and the number of cleared
// rows as well.
func (g *Grid) Drop(s Shape, column int) (Landing, error) {
	p, err := g.rest(s, column)
	if err != nil {
		return Landing{}, err
	}

	for _, c := range p {
		g.rows[c.Y] |= 1 << c.X
	}

	top := p.Top()
	g.firstBlank = max(g.firstBlank, top+1)
	clearedRows := g.clearSpan(top-s.Height()+1, top)

	g.placed++
	g.cleared += len(clearedRows)

	return Landing{
		Shape:       s,
		Column:      column,
		Placement:   p,
		Cleared:     len(clearedRows),
		ClearedRows: clearedRows,
		Height:      g.firstBlank,
	}, nil
}

// rest finds the lowest placement reachable by dropping s straight down
// column. The first blank row always fits; scanning continues downward until
// the first row where the shape would overlap an occupied cell.
func (g *Grid) rest(s Shape, column int) (Placement, error) {
	best, err := s.CellsAt(Cell{X: column, Y: g.firstBlank})
	if err != nil {
		return Placement{}, err
	}

	for row := g.firstBlank - 1; row >= 0; row-- {
		p, err := s.CellsAt(Cell{X: column, Y: row})
		if err != nil {
			return Placement{}, err
		}
		if !g.fits(p) {
			break
		}
		best = p
	}

	return best, nil
}

func (g *Grid) fits(p Placement) bool {
	for _, c := range p {
		if g.rows[c.Y]&(1<<c.X) != 0 {
			return false
		}
	}
	return true
}

// clearSpan removes every full row in [lo, hi], shifts the rows above down
// and returns the removed rows, top first. Full rows are marked before any
// row moves.
func (g *Grid) clearSpan(lo, hi int) []int {
	lo = max(lo, 0)

	var marked uint8
	var removed []int
	for y := hi; y >= lo; y-- {
		if g.rows[y] == fullRow {
			marked |= 1 << (y - lo)
			removed = append(removed, y)
		}
	}
	if marked == 0 {
		return nil
	}

	dst := lo + bits.TrailingZeros8(marked)
	for src := dst; src < g.firstBlank; src++ {
		if src <= hi && marked&(1<<(src-lo)) != 0 {
			continue
		}
		g.rows[dst] = g.rows[src]
		dst++
	}
	for ; dst < g.firstBlank; dst++ {
		g.rows[dst] = 0
	}

	g.firstBlank -= len(removed)
	return removed
}

// Height returns the index of the first blank row, which is the height of
// the stack.
func (g *Grid) Height() int {
	return g.firstBlank
}

// Occupied reports whether the cell at column x, row y is filled. Cells
// outside the grid are reported empty.
func (g *Grid) Occupied(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return g.rows[y]&(1<<x) != 0
}

// Row returns the occupancy bitmask of row y.
func (g *Grid) Row(y int) uint16 {
	if y < 0 || y >= Height {
		return 0
	}
	return g.rows[y]
}

// Filled returns the number of occupied cells in row y.
func (g *Grid) Filled(y int) int {
	return bits.OnesCount16(g.Row(y))
}

// Placed returns the number of shapes placed since the grid was created or
// last reset.
func (g *Grid) Placed() int {
	return g.placed
}

// Cleared returns the number of rows cleared since the grid was created or
// last reset.
func (g *Grid) Cleared() int {
	return g.cleared
}

// Reset empties the grid.
func (g *Grid) Reset() {
	*g = Grid{}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Validate checks the grid invariants: no occupied cell at or above the
// first blank row and no full row below it.
func (g *Grid) Validate() error {
	if g.firstBlank < 0 || g.firstBlank > Height {
		return fmt.Errorf("first blank row %d outside [0, %d]", g.firstBlank, Height)
	}
	for y := 0; y < g.firstBlank; y++ {
		if g.rows[y] == fullRow {
			return fmt.Errorf("row %d is full below first blank row %d", y, g.firstBlank)
		}
	}
	for y := g.firstBlank; y < Height; y++ {
		if g.rows[y] != 0 {
			return fmt.Errorf("row %d is occupied at or above first blank row %d", y, g.firstBlank)
		}
	}
	return nil
}

// String draws the occupied rows top to bottom, '#' for a filled cell and
// '.' for an empty one.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := g.firstBlank - 1; y >= 0; y-- {
		for x := 0; x < Width; x++ {
			if g.rows[y]&(1<<x) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
