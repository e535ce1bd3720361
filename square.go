package chess

import "fmt"

// Square is a board index in [0, 63]. Index 0 is a8 (top-left from White's
// point of view) and index 63 is h1; this is the numbering FEN's rank-major,
// top-to-bottom board field uses, and the one the castling-rights-map
// literals in ApplyMove are defined against.
type Square int8

// NoSquare is the absence of a square, used for "-" FEN fields.
const NoSquare Square = -1

// sq constructs the square at the given file (0=a..7=h) and rank
// (0=rank1..7=rank8).
func sq(file, rank int) Square { return Square((7-rank)*8 + file) }

// File returns the square's file, 0 (a) through 7 (h).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the square's rank, 0 (rank 1) through 7 (rank 8).
func (s Square) Rank() int { return 7 - int(s)/8 }

var squareNames = [64]string{
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
}

// String returns the algebraic notation of the square (a8, e5, h1, ...), or
// "-" for NoSquare.
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return squareNames[s]
}

// ParseSquare parses algebraic notation ("e4") into a Square. It returns
// NoSquare and a nil error for "-", and NoSquare and an error if s is not
// exactly two characters naming a square on the board.
func ParseSquare(s string) (Square, error) {
	if s == "-" {
		return NoSquare, nil
	}
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("chess: invalid square %q", s)
	}
	return sq(int(s[0]-'a'), int(s[1]-'1')), nil
}
