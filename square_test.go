package chess

import (
	"reflect"
	"testing"
)

type squareTest struct {
	name string
	file int
	rank int
	sq   Square
	str  string
}

var squareTests = []squareTest{
	{"a8 is index 0", 0, 7, Square(0), "a8"},
	{"h8 is index 7", 7, 7, Square(7), "h8"},
	{"a1 is index 56", 0, 0, Square(56), "a1"},
	{"h1 is index 63", 7, 0, Square(63), "h1"},
	{"e1 is index 60", 4, 0, Square(60), "e1"},
	{"e8 is index 4", 4, 7, Square(4), "e8"},
	{"e4 is index 36", 4, 3, Square(36), "e4"},
}

func TestSquareConstruction(t *testing.T) {
	for _, test := range squareTests {
		got := sq(test.file, test.rank)
		if got != test.sq {
			t.Errorf("%s: sq(%d,%d) = %d, want %d", test.name, test.file, test.rank, got, test.sq)
		}
		if got.File() != test.file || got.Rank() != test.rank {
			t.Errorf("%s: File()/Rank() = %d,%d, want %d,%d", test.name, got.File(), got.Rank(), test.file, test.rank)
		}
		if got.String() != test.str {
			t.Errorf("%s: String() = %q, want %q", test.name, got.String(), test.str)
		}
	}
}

func TestParseSquare(t *testing.T) {
	for _, test := range squareTests {
		got, err := ParseSquare(test.str)
		if err != nil {
			t.Errorf("%s: ParseSquare(%q) failed: %v", test.name, test.str, err)
			continue
		}
		if got != test.sq {
			t.Errorf("%s: ParseSquare(%q) = %d, want %d", test.name, test.str, got, test.sq)
		}
	}
	if got, err := ParseSquare("-"); err != nil || got != NoSquare {
		t.Errorf(`ParseSquare("-") = %d, %v, want NoSquare, nil`, got, err)
	}
	for _, bad := range []string{"", "i1", "a9", "a", "e4e5"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q) did not fail", bad)
		}
	}
}

func TestSquareRoundTrip(t *testing.T) {
	var got [64]string
	for i := 0; i < 64; i++ {
		got[i] = Square(i).String()
	}
	if !reflect.DeepEqual(got, squareNames) {
		t.Errorf("squareNames drifted from String():\n\texp: %v\n\tgot: %v", squareNames, got)
	}
}
