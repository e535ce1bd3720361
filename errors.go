package chess

import "fmt"

// IllegalMoveError is returned by Game.ApplyMove when the move string is too
// short or malformed to parse (always checked), or when validation was
// requested and the move is not present in the current legal move list. It
// carries the offending move string and the FEN it was rejected against,
// for diagnostics.
type IllegalMoveError struct {
	Move string
	FEN  string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("chess: illegal move %q in position %q", e.Move, e.FEN)
}
