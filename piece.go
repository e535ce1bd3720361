package chess

// Piece is a board occupant encoded exactly as it appears in a FEN board
// field: one of "PNBRQK" for White, "pnbrqk" for Black, or a space for an
// empty square. The board container and move generator both read and write
// squares in terms of that byte directly, so there's no separate packed
// color|type representation to convert to and from.
type Piece byte

// Empty is the Piece value of an unoccupied square.
const Empty Piece = ' '

const (
	White = 'w'
	Black = 'b'
)

// Color returns 'w' or 'b' for an occupied square, or 0 for Empty.
func (p Piece) Color() byte {
	switch {
	case p == Empty:
		return 0
	case p >= 'a' && p <= 'z':
		return Black
	default:
		return White
	}
}

// Type returns the piece's lowercase letter (p, n, b, r, q, k), or 0 for
// Empty.
func (p Piece) Type() byte {
	if p == Empty {
		return 0
	}
	if p >= 'a' && p <= 'z' {
		return byte(p)
	}
	return byte(p) + ('a' - 'A')
}

// colored returns the FEN letter for pieceType ('p','n','b','r','q','k')
// cased for the given side.
func colored(pieceType byte, side byte) Piece {
	if side == White {
		return Piece(pieceType - ('a' - 'A'))
	}
	return Piece(pieceType)
}

func isPieceLetter(c byte) bool {
	switch c {
	case 'p', 'n', 'b', 'r', 'q', 'k', 'P', 'N', 'B', 'R', 'Q', 'K':
		return true
	}
	return false
}
