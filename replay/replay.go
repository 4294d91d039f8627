// Package replay drives a grid from placement-code input. Each line of input
// is an independent puzzle played on a fresh grid, and its final height is
// reported.
package replay

import (
	"fmt"

	"github.com/plus3/stackdrop/grid"
	"github.com/plus3/stackdrop/notation"
)

// Observer is called with every landing during Play.
type Observer func(grid.Landing)

// MoveError wraps a placement failure with the move that caused it.
type MoveError struct {
	Index int
	Move  notation.Move
	Err   error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %d %s: %v", e.Index, e.Move, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Play applies moves to g in order and stops at the first failing move.
// Moves before the failure stay applied.
func Play(g *grid.Grid, moves []notation.Move, observe Observer) error {
	for i, m := range moves {
		landing, err := g.Drop(m.Shape, m.Column)
		if err != nil {
			return &MoveError{Index: i, Move: m, Err: err}
		}
		if observe != nil {
			observe(landing)
		}
	}
	return nil
}

// Solve plays one line of placement code on an empty grid and returns the
// resulting height.
func Solve(line string) (int, error) {
	g, err := solveLine(line, nil)
	if err != nil {
		return 0, err
	}
	return g.Height(), nil
}

// solveLine parses line and plays it on a fresh grid.
func solveLine(line string, observe Observer) (*grid.Grid, error) {
	moves, err := notation.ParseLine(line)
	if err != nil {
		return nil, err
	}

	g := grid.New()
	if err := Play(g, moves, observe); err != nil {
		return nil, err
	}
	return g, nil
}
