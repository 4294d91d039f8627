package replay

import (
	"github.com/plus3/stackdrop/grid"
	"github.com/plus3/stackdrop/notation"
)

// Player replays a puzzle one move at a time, for front ends that show the
// board between moves.
type Player struct {
	grid      *grid.Grid
	moves     []notation.Move
	next      int
	err       error
	observers []Observer
}

func NewPlayer(moves []notation.Move, observers ...Observer) *Player {
	return &Player{
		grid:      grid.New(),
		moves:     moves,
		observers: observers,
	}
}

// AddObserver registers o for every later landing.
func (p *Player) AddObserver(o Observer) {
	p.observers = append(p.observers, o)
}

func (p *Player) Grid() *grid.Grid {
	return p.grid
}

// Step applies the next move. It returns false once every move has been
// applied or a move has failed; the failure is then available from Err.
func (p *Player) Step() (grid.Landing, bool) {
	if p.Done() {
		return grid.Landing{}, false
	}

	m := p.moves[p.next]
	landing, err := p.grid.Drop(m.Shape, m.Column)
	if err != nil {
		p.err = &MoveError{Index: p.next, Move: m, Err: err}
		return grid.Landing{}, false
	}

	p.next++
	for _, observe := range p.observers {
		observe(landing)
	}
	return landing, true
}

// Done reports whether no further move can be applied.
func (p *Player) Done() bool {
	return p.err != nil || p.next >= len(p.moves)
}

func (p *Player) Err() error {
	return p.err
}

// Position returns the index of the next move and the number of moves.
func (p *Player) Position() (next, total int) {
	return p.next, len(p.moves)
}

// Restart empties the grid and rewinds to the first move.
func (p *Player) Restart() {
	p.grid.Reset()
	p.next = 0
	p.err = nil
}
