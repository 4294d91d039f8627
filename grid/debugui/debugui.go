// Package debugui provides Dear ImGui panels for inspecting a grid while a
// puzzle is replayed: the board itself, the landing history and per-shape
// statistics.
package debugui

import (
	"github.com/plus3/stackdrop/grid"
	"github.com/plus3/stackdrop/replay"
)

// Inspector owns every debug panel for one grid. Feed it landings through
// Record and call Render once per frame between the backend's BeginFrame and
// EndFrame.
type Inspector struct {
	grid  *grid.Grid
	tally *replay.Tally

	Board       BoardViewer
	History     HistoryBrowser
	Tally       TallyViewer
	Performance PerformanceStats
}

func NewInspector(g *grid.Grid, historyFrames int) *Inspector {
	return &Inspector{
		grid:        g,
		tally:       replay.NewTally(),
		Board:       NewBoardViewer(),
		History:     NewHistoryBrowser(25),
		Tally:       TallyViewer{},
		Performance: NewPerformanceStats(historyFrames),
	}
}

// Record stores a landing. It has the replay.Observer signature.
func (in *Inspector) Record(l grid.Landing) {
	in.tally.Observe(l)
	in.History.Append(l)
	in.Board.Highlight(l.Placement, l.Cleared)
}

// Reset forgets every recorded landing.
func (in *Inspector) Reset() {
	in.tally.Reset()
	in.History.Clear()
	in.Board.Highlight(grid.Placement{}, 0)
}

func (in *Inspector) Stats() *replay.Tally {
	return in.tally
}

func (in *Inspector) Render(deltaTime float32) {
	in.Board.Render(in.grid)
	in.History.Render()
	in.Tally.Render(in.tally)
	in.Performance.Render(in.grid, deltaTime)
}
