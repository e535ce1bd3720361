package chess

import (
	"fmt"
	"strings"
)

// Board is the 64-square piece placement of a position: a mailbox array
// mapping Square to Piece, with Empty for unoccupied squares. It has no
// notion of side to move, castling rights, or move counters — those live in
// State (see game.go); Board only ever parses and serialises FEN's first
// field.
type Board struct {
	squares [64]Piece
}

// GetPiece returns the piece occupying i, or Empty.
func (b *Board) GetPiece(i Square) Piece { return b.squares[i] }

// GetOwner returns 'w' or 'b' for the side owning the piece at i, or 0 if i
// is empty.
func (b *Board) GetOwner(i Square) byte { return b.squares[i].Color() }

// MovePiece places symbol at to and clears from. If from == to, it simply
// writes symbol at that square (used by en-passant's capture removal, with
// symbol = Empty, and by the king-safety probe to restore a square).
func (b *Board) MovePiece(from, to Square, symbol Piece) {
	b.squares[to] = symbol
	if from != to {
		b.squares[from] = Empty
	}
}

// FindPiece returns the first square (in index order) holding symbol, or
// NoSquare if there is none. Callers only rely on this for kings, of which
// every reachable position has exactly one per side.
func (b *Board) FindPiece(symbol Piece) Square {
	for i, p := range b.squares {
		if p == symbol {
			return Square(i)
		}
	}
	return NoSquare
}

// SetPosition replaces all 64 squares from FEN's first field: ranks 8 down
// to 1, separated by '/', digits 1-8 expanding to that many empty squares,
// and piece letters placed verbatim.
func (b *Board) SetPosition(field string) error {
	var squares [64]Piece
	rank, file := 7, 0
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == '/':
			if file != 8 {
				return fmt.Errorf("chess: rank %d has %d files, want 8", rank+1, file)
			}
			rank--
			file = 0
			if rank < 0 {
				return fmt.Errorf("chess: too many ranks in %q", field)
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > 8 {
				return fmt.Errorf("chess: rank %d has too many files", rank+1)
			}
		case isPieceLetter(c):
			if file >= 8 {
				return fmt.Errorf("chess: rank %d has too many files", rank+1)
			}
			squares[sq(file, rank)] = Piece(c)
			file++
		default:
			return fmt.Errorf("chess: unexpected character %q in board field", c)
		}
	}
	if rank != 0 || file != 8 {
		return fmt.Errorf("chess: %q does not describe 8 ranks of 8 files", field)
	}
	for i := range squares {
		if squares[i] == 0 {
			squares[i] = Empty
		}
	}
	b.squares = squares
	return nil
}

// String serialises the board to FEN's first field.
func (b *Board) String() string {
	var out strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[sq(file, rank)]
			if p == Empty {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&out, "%d", empty)
				empty = 0
			}
			out.WriteByte(byte(p))
		}
		if empty > 0 {
			fmt.Fprintf(&out, "%d", empty)
		}
		if rank > 0 {
			out.WriteByte('/')
		}
	}
	return out.String()
}
