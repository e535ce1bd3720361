package chess

import (
	"reflect"
	"testing"
)

type parseMoveStringTest struct {
	input string
	move  Move
}

var parseMoveStringTests = []parseMoveStringTest{
	{"e2e4", Move{From: sq(4, 1), To: sq(4, 3)}},
	{"a7a6", Move{From: sq(0, 6), To: sq(0, 5)}},
	{"e1g1", Move{From: sq(4, 0), To: sq(6, 0)}},
	{"a7a8q", Move{From: sq(0, 6), To: sq(0, 7), Promotion: 'q'}},
	{"A7A8Q", Move{From: sq(0, 6), To: sq(0, 7), Promotion: 'q'}},
	{"b2b1n", Move{From: sq(1, 1), To: sq(1, 0), Promotion: 'n'}},
}

func TestParseMoveString(t *testing.T) {
	for _, test := range parseMoveStringTests {
		m, err := ParseMoveString(test.input)
		if err != nil {
			t.Errorf("ParseMoveString(%q) failed: %v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(m, test.move) {
			t.Errorf("ParseMoveString(%q) = %+v, want %+v", test.input, m, test.move)
		}
	}
}

func TestParseMoveStringRejectsBad(t *testing.T) {
	for _, bad := range []string{"", "e2", "e2e", "e2e4x", "i2e4", "e2e4qq"} {
		if _, err := ParseMoveString(bad); err == nil {
			t.Errorf("ParseMoveString(%q) did not fail", bad)
		}
	}
}

func TestMoveString(t *testing.T) {
	for _, test := range parseMoveStringTests {
		m, err := ParseMoveString(test.input)
		if err != nil {
			t.Fatal(err)
		}
		if got := m.String(); got != lower(test.input) {
			t.Errorf("Move{%+v}.String() = %q, want %q", m, got, lower(test.input))
		}
	}
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
