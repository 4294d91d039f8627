package replay_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/plus3/stackdrop/grid"
	"github.com/plus3/stackdrop/notation"
	"github.com/plus3/stackdrop/replay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunnerWritesOneHeightPerLine(t *testing.T) {
	in := strings.NewReader("Q0\nQ0,Q1\nQ0,Q2,Q4,Q6,Q8\nI0,I4,Q8\n")
	var out bytes.Buffer

	r := replay.NewRunner(replay.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, r.Run(context.Background(), in, &out))
	assert.Equal(t, "2\n4\n0\n1\n", out.String())
}

func TestRunnerStopsAtEmptyLine(t *testing.T) {
	in := strings.NewReader("Q0\n\nQ0,Q1\n")
	var out bytes.Buffer

	require.NoError(t, replay.NewRunner().Run(context.Background(), in, &out))
	assert.Equal(t, "2\n", out.String())
}

func TestRunnerLastLineWithoutNewline(t *testing.T) {
	in := strings.NewReader("Q0\r\nT0,T3")
	var out bytes.Buffer

	require.NoError(t, replay.NewRunner().Run(context.Background(), in, &out))
	assert.Equal(t, "2\n2\n", out.String())
}

func TestRunnerEmptyInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, replay.NewRunner().Run(context.Background(), strings.NewReader(""), &out))
	assert.Empty(t, out.String())
}

func TestRunnerFailsFast(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
	}{
		{"bad shape", "Q0\nQ0,K1\nQ0\n", notation.ErrInvalidToken},
		{"bad column", "Q0\nQ0,Qx\nQ0\n", notation.ErrInvalidToken},
		{"out of bounds", "Q0\nI7\nQ0\n", grid.ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			var out bytes.Buffer

			err := replay.NewRunner(replay.WithLogger(zap.New(core))).
				Run(context.Background(), strings.NewReader(tt.input), &out)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.True(t, strings.HasPrefix(err.Error(), "line 2: "), err.Error())
			assert.Equal(t, "2\n", out.String())

			failed := logs.FilterMessage("puzzle failed").All()
			require.Len(t, failed, 1)
			assert.Equal(t, int64(2), failed[0].ContextMap()["line"])
		})
	}
}

func TestRunnerReadError(t *testing.T) {
	boom := errors.New("boom")
	var out bytes.Buffer

	err := replay.NewRunner().Run(context.Background(), iotest.ErrReader(boom), &out)
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "read line 1: boom")
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := replay.NewRunner().Run(ctx, strings.NewReader("Q0\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerTally(t *testing.T) {
	tally := replay.NewTally()
	in := strings.NewReader("Q0,Q2,Q4,Q6,Q8\nL0,J2,L4,J6,Q8\n")

	err := replay.NewRunner(replay.WithTally(tally)).Run(context.Background(), in, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, 2, tally.Lines)
	assert.Equal(t, 10, tally.Placements)
	assert.Equal(t, 6, tally.PlacedBy(grid.Q))
	assert.Equal(t, 2, tally.PlacedBy(grid.L))
	assert.Equal(t, 2, tally.PlacedBy(grid.J))
}

func TestRunnerMatchesSolve(t *testing.T) {
	lines := []string{"Q0,Q1", "I0,I4,Q8,I0,I4", "T1,Z3,I4", "L0,Z1,Z3,Z5,Z7"}

	var want bytes.Buffer
	for _, line := range lines {
		height, err := replay.Solve(line)
		require.NoError(t, err)
		fmt.Fprintln(&want, height)
	}

	var got bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, replay.NewRunner(replay.WithTally(replay.NewTally())).Run(context.Background(), in, &got))
	assert.Equal(t, want.String(), got.String())
}
