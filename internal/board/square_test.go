package board

import (
	"errors"
	"testing"
)

func TestParseSquare(t *testing.T) {
	for _, name := range []string{"a1", "a2", "e4", "h8"} {
		sq, err := ParseSquare(name)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", name, err)
		}
		if sq.String() != name {
			t.Errorf("ParseSquare(%q).String() = %q", name, sq.String())
		}
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, name := range []string{"", "a", "a9", "i1", "e10", "4e", "A1"} {
		_, err := ParseSquare(name)
		if err == nil {
			t.Errorf("ParseSquare(%q): expected error", name)
			continue
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("ParseSquare(%q): error %v is not a ParseError", name, err)
		}
	}
}

func TestNewSquareRange(t *testing.T) {
	sq, err := NewSquare(0, 1)
	if err != nil {
		t.Fatalf("NewSquare(0, 1): %v", err)
	}
	if sq.String() != "a2" {
		t.Errorf("NewSquare(0, 1) = %s, want a2", sq)
	}

	for _, coords := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if _, err := NewSquare(coords[0], coords[1]); err == nil {
			t.Errorf("NewSquare(%d, %d): expected error", coords[0], coords[1])
		}
	}
}
