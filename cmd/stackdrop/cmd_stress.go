package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/plus3/stackdrop/grid"
	"github.com/plus3/stackdrop/notation"
	"github.com/plus3/stackdrop/replay"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	stressDuration       time.Duration
	stressPieces         int
	stressLines          int
	stressSeed           uint64
	stressGCPauseMetrics bool
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Solve randomly generated puzzles for a fixed duration and report timings",
	Long: `Generates a pool of random puzzles, then solves them round-robin until the
duration elapses. Every generated placement uses a column where the shape fits
horizontally; puzzles whose stack grows past the top of the grid are counted as
overflows.`,
	Args: cobra.NoArgs,
	RunE: runStress,
}

func init() {
	d := cfg.Stress
	stressCmd.Flags().DurationVar(&stressDuration, "duration", d.Duration, "The total duration the test should run for.")
	stressCmd.Flags().IntVar(&stressPieces, "pieces", d.Pieces, "Placements per generated puzzle.")
	stressCmd.Flags().IntVar(&stressLines, "lines", d.Lines, "Number of distinct generated puzzles.")
	stressCmd.Flags().Uint64Var(&stressSeed, "seed", d.Seed, "Random seed for puzzle generation.")
	stressCmd.Flags().BoolVar(&stressGCPauseMetrics, "gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
}

func runStress(cmd *cobra.Command, args []string) error {
	// Values from --config apply unless the flag was given explicitly.
	flags := cmd.Flags()
	if !flags.Changed("duration") {
		stressDuration = cfg.Stress.Duration
	}
	if !flags.Changed("pieces") {
		stressPieces = cfg.Stress.Pieces
	}
	if !flags.Changed("lines") {
		stressLines = cfg.Stress.Lines
	}
	if !flags.Changed("seed") {
		stressSeed = cfg.Stress.Seed
	}
	if stressPieces <= 0 || stressLines <= 0 {
		return errors.New("--pieces and --lines must be positive")
	}

	logger.Info("Generating puzzles",
		zap.Int("lines", stressLines),
		zap.Int("pieces", stressPieces),
		zap.Uint64("seed", stressSeed))
	lines := generateLines(rand.New(rand.NewPCG(stressSeed, stressSeed^0x9e3779b97f4a7c15)), stressLines, stressPieces)

	report := &Report{
		Duration:       stressDuration,
		Lines:          stressLines,
		Pieces:         stressPieces,
		Seed:           stressSeed,
		GCPauseMetrics: stressGCPauseMetrics,
	}

	logger.Info("Running stress test", zap.Duration("duration", stressDuration))
	ctx, cancel := context.WithTimeout(cmd.Context(), stressDuration)
	defer cancel()

	runStressLoop(ctx, lines, report)
	logger.Info("Stress test complete", zap.Int64("solved", report.TotalSolved))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "--- Stress Test Report ---")
	if err := report.Generate(out); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	fmt.Fprintln(out, "--- End of Report ---")
	return nil
}

// generateLines builds n puzzles of the given length. Columns are drawn from
// the range where each shape fits horizontally.
func generateLines(rng *rand.Rand, n, pieces int) []string {
	lines := make([]string, n)
	moves := make([]notation.Move, pieces)
	for i := range lines {
		for j := range moves {
			s := grid.Shapes[rng.IntN(len(grid.Shapes))]
			moves[j] = notation.Move{Shape: s, Column: rng.IntN(grid.Width - s.Width() + 1)}
		}
		lines[i] = notation.Format(moves)
	}
	return lines
}

func runStressLoop(ctx context.Context, lines []string, report *Report) {
	tally := replay.NewTally()
	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

Loop:
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		line := lines[i%len(lines)]
		solveStart := time.Now()

		moves, err := notation.ParseLine(line)
		if err != nil {
			report.Failures++
			continue
		}
		g := grid.New()
		err = replay.Play(g, moves, tally.Observe)
		report.SolveTime.Samples = append(report.SolveTime.Samples, time.Since(solveStart))

		switch {
		case errors.Is(err, grid.ErrOutOfBounds):
			report.Overflows++
		case err != nil:
			report.Failures++
		default:
			tally.EndLine()
			report.TotalSolved++
			report.HeightSum += int64(g.Height())
		}
	}

	report.TotalTime = time.Since(startTime)
	report.SolveTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Placements = tally.Placements
	report.RowsCleared = tally.RowsCleared
	report.PeakHeight = tally.PeakHeight
}
