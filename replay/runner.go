package replay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Runner reads puzzles line by line and writes one height per line.
type Runner struct {
	logger *zap.Logger
	tally  *Tally
}

type Option func(*Runner)

func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithTally records every landing of the run into t.
func WithTally(t *Tally) Option {
	return func(r *Runner) {
		r.tally = t
	}
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes lines from in until an empty line or end of input. Any parse
// or placement error stops the run and is returned; heights already written
// stay written.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	br := bufio.NewReader(in)

	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read line %d: %w", lineNo, readErr)
		}

		line := strings.TrimRight(raw, "\r\n")
		if line == "" {
			r.logger.Debug("end of input", zap.Int("lines", lineNo-1))
			return nil
		}

		height, err := r.solve(line)
		if err != nil {
			r.logger.Error("puzzle failed", zap.Int("line", lineNo), zap.Error(err))
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		if _, err := fmt.Fprintln(out, height); err != nil {
			return fmt.Errorf("write height: %w", err)
		}

		if readErr != nil {
			return nil
		}
	}
}

func (r *Runner) solve(line string) (int, error) {
	var observe Observer
	if r.tally != nil {
		observe = r.tally.Observe
	}

	g, err := solveLine(line, observe)
	if err != nil {
		return 0, err
	}
	if r.tally != nil {
		r.tally.EndLine()
	}

	r.logger.Debug("puzzle solved",
		zap.Int("moves", g.Placed()),
		zap.Int("cleared", g.Cleared()),
		zap.Int("height", g.Height()))

	return g.Height(), nil
}
