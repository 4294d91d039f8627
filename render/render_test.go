package render_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/plus3/stackdrop/grid"
	"github.com/plus3/stackdrop/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T) *grid.Grid {
	t.Helper()
	g := grid.New()
	require.NoError(t, g.Place(grid.S, 0))
	require.NoError(t, g.Place(grid.L, 6))
	return g
}

func TestTextDefault(t *testing.T) {
	g := newBoard(t)
	assert.Equal(t, g.String(), render.Text(g, render.DefaultOptions))
}

func TestTextOptions(t *testing.T) {
	g := newBoard(t)
	got := render.Text(g, render.Options{
		Filled:     'X',
		Empty:      ' ',
		MinRows:    4,
		RowNumbers: true,
		Ruler:      true,
	})

	want := "" +
		"  3           \n" +
		"  2       X   \n" +
		"  1  XX   X   \n" +
		"  0 XX    XX  \n" +
		"    0123456789\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestTextEmptyGrid(t *testing.T) {
	assert.Empty(t, render.Text(grid.New(), render.DefaultOptions))
	assert.Equal(t, "..........\n", render.Text(grid.New(), render.Options{Filled: '#', Empty: '.', MinRows: 1}))
}

func TestStyler(t *testing.T) {
	g := newBoard(t)
	out := render.DefaultStyler().Render(g)

	assert.Equal(t, g.Height()+2, lipgloss.Height(out))
	assert.Equal(t, 2*grid.Width+2, lipgloss.Width(out))

	empty := render.DefaultStyler().Render(grid.New())
	assert.Equal(t, 3, lipgloss.Height(empty))
}
