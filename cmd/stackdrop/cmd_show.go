package main

import (
	"fmt"

	"github.com/plus3/stackdrop/grid"
	"github.com/plus3/stackdrop/notation"
	"github.com/plus3/stackdrop/render"
	"github.com/plus3/stackdrop/replay"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	showPlain bool
	showRows  int
)

var showCmd = &cobra.Command{
	Use:   "show [line]",
	Short: "Play one puzzle and draw the resulting board",
	Example: `  stackdrop show Q0,I2,I6,T4
  stackdrop show --plain --rows 6 I0,I6,T4,J8,T6`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Draw with plain ASCII, no colors or frame")
	showCmd.Flags().IntVar(&showRows, "rows", 1, "Minimum number of rows to draw")
}

func runShow(cmd *cobra.Command, args []string) error {
	moves, err := notation.ParseLine(args[0])
	if err != nil {
		return err
	}

	g := grid.New()
	if err := replay.Play(g, moves, func(l grid.Landing) {
		logger.Debug("landing",
			zap.Stringer("shape", l.Shape),
			zap.Int("column", l.Column),
			zap.Int("row", l.Placement.Bottom()),
			zap.Int("cleared", l.Cleared))
	}); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showPlain {
		opts := render.DefaultOptions
		opts.MinRows = showRows
		opts.RowNumbers = true
		opts.Ruler = true
		fmt.Fprint(out, render.Text(g, opts))
	} else {
		styler := render.DefaultStyler()
		styler.MinRows = showRows
		fmt.Fprintln(out, styler.Render(g))
	}
	fmt.Fprintf(out, "height %d\n", g.Height())
	return nil
}
