package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/plus3/stackdrop/grid"
	"github.com/plus3/stackdrop/replay"
	"github.com/spf13/cobra"
)

var printTally bool

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve puzzles from a file or standard input",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&printTally, "tally", false, "Print placement statistics to stderr after the run")
}

func runSolve(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	tally := replay.NewTally()
	runner := replay.NewRunner(replay.WithLogger(logger), replay.WithTally(tally))
	if err := runner.Run(cmd.Context(), in, cmd.OutOrStdout()); err != nil {
		return err
	}

	if printTally {
		return writeTally(cmd.ErrOrStderr(), tally)
	}
	return nil
}

func writeTally(w io.Writer, t *replay.Tally) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "lines\t%d\n", t.Lines)
	fmt.Fprintf(tw, "placements\t%d\n", t.Placements)
	fmt.Fprintf(tw, "rows cleared\t%d\n", t.RowsCleared)
	fmt.Fprintf(tw, "peak height\t%d\n", t.PeakHeight)
	fmt.Fprintln(tw, "shape\tplaced\tcleared")
	for _, s := range grid.Shapes {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", s, t.PlacedBy(s), t.ClearedBy(s))
	}
	return tw.Flush()
}
