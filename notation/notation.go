// Package notation parses the compact placement code used as puzzle input:
// a comma-separated list of two-character tokens, a shape letter followed by
// a column digit, for example "Q0,I4,T6".
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plus3/stackdrop/grid"
)

// ErrInvalidToken is matched by every parse error.
var ErrInvalidToken = errors.New("invalid token")

// TokenError reports which token of a line failed to parse and why.
type TokenError struct {
	Index  int
	Token  string
	Reason string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token %d %q: %s: %v", e.Index, e.Token, e.Reason, ErrInvalidToken)
}

func (e *TokenError) Unwrap() error {
	return ErrInvalidToken
}

// Move is one placement: a shape dropped into a column.
type Move struct {
	Shape  grid.Shape
	Column int
}

func (m Move) String() string {
	return fmt.Sprintf("%s%d", m.Shape, m.Column)
}

// ParseToken parses a single token such as "Z3". Surrounding whitespace is
// ignored.
func ParseToken(s string) (Move, error) {
	return parseToken(0, s)
}

func parseToken(index int, raw string) (Move, error) {
	tok := strings.TrimSpace(raw)
	fail := func(reason string) (Move, error) {
		return Move{}, &TokenError{Index: index, Token: tok, Reason: reason}
	}

	switch {
	case len(tok) == 0:
		return fail("missing shape")
	case len(tok) == 1:
		return fail("missing column")
	case len(tok) > 2:
		return fail("trailing characters")
	}

	shape, ok := grid.ShapeFromLetter(tok[0])
	if !ok {
		return fail("unknown shape")
	}
	if tok[1] < '0' || tok[1] > '9' {
		return fail("column is not a digit")
	}

	return Move{Shape: shape, Column: int(tok[1] - '0')}, nil
}

// ParseLine parses a full line of tokens. The first malformed token aborts
// parsing.
func ParseLine(line string) ([]Move, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	moves := make([]Move, 0, len(fields))
	for i, f := range fields {
		m, err := parseToken(i, f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Format joins moves back into a line that ParseLine accepts.
func Format(moves []Move) string {
	tokens := make([]string, len(moves))
	for i, m := range moves {
		tokens[i] = m.String()
	}
	return strings.Join(tokens, ",")
}
