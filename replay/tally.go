package replay

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/stackdrop/grid"
)

// Tally accumulates statistics over every landing it observes.
type Tally struct {
	Lines       int
	Placements  int
	RowsCleared int
	PeakHeight  int

	placed  *intmap.Map[grid.Shape, int]
	cleared *intmap.Map[grid.Shape, int]
}

func NewTally() *Tally {
	return &Tally{
		placed:  intmap.New[grid.Shape, int](len(grid.Shapes)),
		cleared: intmap.New[grid.Shape, int](len(grid.Shapes)),
	}
}

// Observe records one landing. It has the Observer signature.
func (t *Tally) Observe(l grid.Landing) {
	t.Placements++
	t.RowsCleared += l.Cleared
	t.PeakHeight = max(t.PeakHeight, l.Placement.Top()+1)

	n, _ := t.placed.Get(l.Shape)
	t.placed.Put(l.Shape, n+1)

	if l.Cleared > 0 {
		c, _ := t.cleared.Get(l.Shape)
		t.cleared.Put(l.Shape, c+l.Cleared)
	}
}

// EndLine marks the end of one puzzle.
func (t *Tally) EndLine() {
	t.Lines++
}

// PlacedBy returns how many times shape s was placed.
func (t *Tally) PlacedBy(s grid.Shape) int {
	n, _ := t.placed.Get(s)
	return n
}

// ClearedBy returns how many rows were cleared by placements of shape s.
func (t *Tally) ClearedBy(s grid.Shape) int {
	n, _ := t.cleared.Get(s)
	return n
}

// Reset zeroes every counter.
func (t *Tally) Reset() {
	t.Lines, t.Placements, t.RowsCleared, t.PeakHeight = 0, 0, 0, 0
	t.placed.Clear()
	t.cleared.Clear()
}
