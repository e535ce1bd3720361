package chess

import (
	"fmt"
	"strings"
)

// Move is a single legal or pseudo-legal move: an origin and destination
// square, plus an optional promotion piece type ('b','n','r','q', lowercase,
// or 0 for no promotion).
type Move struct {
	From, To  Square
	Promotion byte
}

// NullMove is the Move with both squares NoSquare, returned by
// ParseMoveString alongside an error and never returned by the generator.
var NullMove = Move{From: NoSquare, To: NoSquare}

// String renders m as a move string: two squares in algebraic notation,
// optionally followed by the lowercase promotion letter — the same format
// ParseMoveString accepts, and the one recorded in Game's move history.
func (m Move) String() string {
	var buf strings.Builder
	buf.WriteString(m.From.String())
	buf.WriteString(m.To.String())
	if m.Promotion != 0 {
		buf.WriteByte(m.Promotion)
	}
	return buf.String()
}

// ParseMoveString parses a move string: 4 characters naming origin and
// destination squares in algebraic notation, optionally followed by a 5th
// lowercase promotion letter from {b, n, r, q}. Case is normalised to
// lowercase before parsing. It does not consult a position or validate
// legality — that is Game.ApplyMove's job.
func ParseMoveString(s string) (Move, error) {
	if len(s) < 4 {
		return NullMove, fmt.Errorf("chess: move string %q shorter than 4 characters", s)
	}
	s = strings.ToLower(s)
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("chess: move string %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("chess: move string %q: %w", s, err)
	}
	var promotion byte
	if len(s) > 4 {
		switch s[4] {
		case 'b', 'n', 'r', 'q':
			promotion = s[4]
		default:
			return NullMove, fmt.Errorf("chess: move string %q has invalid promotion letter %q", s, s[4])
		}
		if len(s) > 5 {
			return NullMove, fmt.Errorf("chess: move string %q longer than 5 characters", s)
		}
	}
	return Move{From: from, To: to, Promotion: promotion}, nil
}
