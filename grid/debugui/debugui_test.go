package debugui

import (
	"testing"

	"github.com/plus3/stackdrop/grid"
	"github.com/plus3/stackdrop/notation"
	"github.com/plus3/stackdrop/replay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func replayInto(t *testing.T, in *Inspector, g *grid.Grid, line string) {
	t.Helper()
	moves, err := notation.ParseLine(line)
	require.NoError(t, err)
	require.NoError(t, replay.Play(g, moves, in.Record))
}

func TestInspectorRecord(t *testing.T) {
	g := grid.New()
	in := NewInspector(g, 60)
	replayInto(t, in, g, "I0,I4,Q8,T2")

	assert.Equal(t, 4, in.History.Len())
	assert.Equal(t, 4, in.Stats().Placements)
	assert.Equal(t, 1, in.Stats().RowsCleared)
	assert.Equal(t, 1, in.Stats().ClearedBy(grid.Q))

	// T2 landed without clearing, so its cells are highlighted.
	assert.True(t, in.Board.highlighted(3, 1))
	assert.False(t, in.Board.highlighted(8, 0))

	in.Reset()
	assert.Equal(t, 0, in.History.Len())
	assert.Equal(t, 0, in.Stats().Placements)
	assert.False(t, in.Board.highlighted(3, 1))
}

func TestBoardViewerHidesHighlightAfterClear(t *testing.T) {
	g := grid.New()
	in := NewInspector(g, 60)
	replayInto(t, in, g, "I0,I4,Q8")

	for x := 0; x < grid.Width; x++ {
		assert.False(t, in.Board.highlighted(x, 0))
	}
}

func TestHistoryFilter(t *testing.T) {
	g := grid.New()
	in := NewInspector(g, 60)
	replayInto(t, in, g, "Q0,T3,Q4,I6")

	assert.Equal(t, []int{0, 1, 2, 3}, in.History.Filtered())

	in.History.filterText = "q"
	assert.Equal(t, []int{0, 2}, in.History.Filtered())

	in.History.filterText = "Q4"
	assert.Equal(t, []int{2}, in.History.Filtered())

	in.History.filterText = "Z"
	assert.Empty(t, in.History.Filtered())
}

func TestPerformanceStatsSample(t *testing.T) {
	g := grid.New()
	require.NoError(t, g.Place(grid.Q, 0))

	ps := NewPerformanceStats(4)
	for range 4 {
		ps.Sample(g, 0.010)
	}
	assert.InDelta(t, 10.0, ps.AvgFrameTime(), 0.001)
	assert.Equal(t, []float32{2, 2, 2, 2}, ps.heightHistory)

	ps.Sample(g, 0.030)
	assert.InDelta(t, 15.0, ps.AvgFrameTime(), 0.001)
}

func TestPerformanceStatsZeroHistory(t *testing.T) {
	g := grid.New()
	ps := NewPerformanceStats(0)
	assert.NotPanics(t, func() { ps.Sample(g, 0.020) })
	assert.InDelta(t, 20.0, ps.AvgFrameTime(), 0.001)
}
