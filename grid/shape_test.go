package grid_test

import (
	"testing"

	"github.com/plus3/stackdrop/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeDimensions(t *testing.T) {
	tests := []struct {
		shape  grid.Shape
		letter string
		width  int
		height int
	}{
		{grid.Q, "Q", 2, 2},
		{grid.Z, "Z", 3, 2},
		{grid.S, "S", 3, 2},
		{grid.T, "T", 3, 2},
		{grid.I, "I", 4, 1},
		{grid.L, "L", 2, 3},
		{grid.J, "J", 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.letter, func(t *testing.T) {
			assert.Equal(t, tt.letter, tt.shape.String())
			assert.Equal(t, tt.width, tt.shape.Width())
			assert.Equal(t, tt.height, tt.shape.Height())

			s, ok := grid.ShapeFromLetter(tt.letter[0])
			assert.True(t, ok)
			assert.Equal(t, tt.shape, s)
		})
	}

	_, ok := grid.ShapeFromLetter('O')
	assert.False(t, ok)
	assert.Equal(t, "?", grid.Shape(42).String())
}

func TestShapeLayouts(t *testing.T) {
	anchor := grid.Cell{X: 3, Y: 5}
	want := map[grid.Shape]grid.Placement{
		grid.Q: {{3, 5}, {4, 5}, {3, 6}, {4, 6}},
		grid.Z: {{4, 5}, {5, 5}, {3, 6}, {4, 6}},
		grid.S: {{3, 5}, {4, 5}, {4, 6}, {5, 6}},
		grid.T: {{4, 5}, {3, 6}, {4, 6}, {5, 6}},
		grid.I: {{3, 5}, {4, 5}, {5, 5}, {6, 5}},
		grid.L: {{3, 5}, {4, 5}, {3, 6}, {3, 7}},
		grid.J: {{3, 5}, {4, 5}, {4, 6}, {4, 7}},
	}

	for _, s := range grid.Shapes {
		p, err := s.CellsAt(anchor)
		require.NoError(t, err)
		assert.Equal(t, want[s], p, "shape %s", s)
	}
}

// Placement and row clearing both rely on the last cell being on the top row.
func TestShapeLastCellIsTop(t *testing.T) {
	for _, s := range grid.Shapes {
		for x := 0; x <= grid.Width-s.Width(); x++ {
			for _, y := range []int{0, 1, 50, grid.Height - s.Height()} {
				p, err := s.CellsAt(grid.Cell{X: x, Y: y})
				require.NoError(t, err)

				for _, c := range p {
					assert.LessOrEqual(t, c.Y, p.Top(), "shape %s at (%d,%d)", s, x, y)
					assert.GreaterOrEqual(t, c.X, x)
					assert.Less(t, c.X, x+s.Width())
				}
				assert.Equal(t, y+s.Height()-1, p.Top())
				assert.Equal(t, y, p.Bottom())
			}
		}
	}
}

func TestShapeOutOfBounds(t *testing.T) {
	for _, s := range grid.Shapes {
		anchors := []grid.Cell{
			{X: grid.Width - s.Width() + 1, Y: 0},
			{X: 0, Y: grid.Height - s.Height() + 1},
			{X: -1, Y: 0},
			{X: 0, Y: -1},
		}
		for _, a := range anchors {
			_, err := s.CellsAt(a)
			require.Error(t, err, "shape %s at %s", s, a)
			assert.ErrorIs(t, err, grid.ErrOutOfBounds)

			var be *grid.BoundsError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, s, be.Shape)
			assert.Equal(t, a, be.Anchor)
		}
	}

	_, err := grid.Shape(9).CellsAt(grid.Cell{})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}
