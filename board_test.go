package chess

import (
	"reflect"
	"testing"
)

type boardFieldTest struct {
	name  string
	field string
}

var boardFieldTests = []boardFieldTest{
	{"starting position", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
	{"castling scenario", "r4rk1/2pp1ppp/8/8/5P2/8/PPPPP1PP/RNBQKBNR"},
	{"sparse endgame", "8/8/3k4/p2p2p1/P2P2P1/3K4/8/8"},
}

func TestBoardRoundTrip(t *testing.T) {
	for _, test := range boardFieldTests {
		var b Board
		if err := b.SetPosition(test.field); err != nil {
			t.Errorf("%s: SetPosition failed: %v", test.name, err)
			continue
		}
		if got := b.String(); got != test.field {
			t.Errorf("%s: String() = %q, want %q", test.name, got, test.field)
		}
	}
}

func TestBoardGetPieceAndOwner(t *testing.T) {
	var b Board
	if err := b.SetPosition(boardFieldTests[0].field); err != nil {
		t.Fatal(err)
	}
	e1 := sq(4, 0)
	if p := b.GetPiece(e1); p != 'K' {
		t.Errorf("GetPiece(e1) = %q, want 'K'", p)
	}
	if owner := b.GetOwner(e1); owner != White {
		t.Errorf("GetOwner(e1) = %q, want White", owner)
	}
	e4 := sq(4, 3)
	if p := b.GetPiece(e4); p != Empty {
		t.Errorf("GetPiece(e4) = %q, want Empty", p)
	}
	if owner := b.GetOwner(e4); owner != 0 {
		t.Errorf("GetOwner(e4) = %q, want 0", owner)
	}
}

func TestBoardMovePiece(t *testing.T) {
	var b Board
	if err := b.SetPosition(boardFieldTests[0].field); err != nil {
		t.Fatal(err)
	}
	e2, e4 := sq(4, 1), sq(4, 3)
	b.MovePiece(e2, e4, 'P')
	if p := b.GetPiece(e2); p != Empty {
		t.Errorf("origin not cleared after MovePiece: GetPiece(e2) = %q", p)
	}
	if p := b.GetPiece(e4); p != 'P' {
		t.Errorf("GetPiece(e4) = %q, want 'P'", p)
	}

	// from == to: en-passant-style capture removal writes symbol in place.
	b.MovePiece(e4, e4, Empty)
	if p := b.GetPiece(e4); p != Empty {
		t.Errorf("GetPiece(e4) after same-square clear = %q, want Empty", p)
	}
}

func TestBoardFindPiece(t *testing.T) {
	var b Board
	if err := b.SetPosition(boardFieldTests[0].field); err != nil {
		t.Fatal(err)
	}
	if got, want := b.FindPiece('K'), sq(4, 0); got != want {
		t.Errorf("FindPiece('K') = %d, want %d", got, want)
	}
	if got, want := b.FindPiece('k'), sq(4, 7); got != want {
		t.Errorf("FindPiece('k') = %d, want %d", got, want)
	}
	if got := b.FindPiece('Q'); got != sq(3, 0) {
		t.Errorf("FindPiece('Q') = %d, want %d", got, sq(3, 0))
	}
}

func TestBoardSetPositionRejectsMalformedFields(t *testing.T) {
	bad := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP", // only 7 ranks
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnrx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
	}
	for _, field := range bad {
		var b Board
		if err := b.SetPosition(field); err == nil {
			t.Errorf("SetPosition(%q) did not fail", field)
		}
	}
}

func TestBoardDistinctCopies(t *testing.T) {
	var a, b Board
	if err := a.SetPosition(boardFieldTests[0].field); err != nil {
		t.Fatal(err)
	}
	b = a
	b.MovePiece(sq(4, 1), sq(4, 3), 'P')
	if reflect.DeepEqual(a, b) {
		t.Errorf("Board value copy aliased underlying array")
	}
}
