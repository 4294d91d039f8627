// Package render draws grids as text for terminals and logs.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/stackdrop/grid"
)

// Options controls the plain text layout.
type Options struct {
	Filled byte
	Empty  byte
	// MinRows pads the drawing with empty rows when the stack is lower.
	MinRows int
	// RowNumbers prefixes every row with its index.
	RowNumbers bool
	// Ruler appends a line of column digits.
	Ruler bool
}

// DefaultOptions matches grid.Grid.String.
var DefaultOptions = Options{Filled: '#', Empty: '.'}

func rowCount(g *grid.Grid, minRows int) int {
	return min(max(g.Height(), minRows), grid.Height)
}

// Text draws g top row first.
func Text(g *grid.Grid, opts Options) string {
	var sb strings.Builder
	for y := rowCount(g, opts.MinRows) - 1; y >= 0; y-- {
		if opts.RowNumbers {
			fmt.Fprintf(&sb, "%3d ", y)
		}
		for x := 0; x < grid.Width; x++ {
			if g.Occupied(x, y) {
				sb.WriteByte(opts.Filled)
			} else {
				sb.WriteByte(opts.Empty)
			}
		}
		sb.WriteByte('\n')
	}
	if opts.Ruler {
		if opts.RowNumbers {
			sb.WriteString("    ")
		}
		for x := 0; x < grid.Width; x++ {
			sb.WriteByte(byte('0' + x))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Styler draws a framed, colored board with two terminal columns per cell.
type Styler struct {
	Filled  lipgloss.Style
	Empty   lipgloss.Style
	Frame   lipgloss.Style
	MinRows int
}

func DefaultStyler() Styler {
	return Styler{
		Filled:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")),
		MinRows: 1,
	}
}

func (s Styler) Render(g *grid.Grid) string {
	filled := s.Filled.Render("[]")
	empty := s.Empty.Render(" .")

	rows := make([]string, 0, rowCount(g, s.MinRows))
	for y := rowCount(g, s.MinRows) - 1; y >= 0; y-- {
		var sb strings.Builder
		for x := 0; x < grid.Width; x++ {
			if g.Occupied(x, y) {
				sb.WriteString(filled)
			} else {
				sb.WriteString(empty)
			}
		}
		rows = append(rows, sb.String())
	}
	return s.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
