package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStartingPositionFEN(t *testing.T) {
	if got := NewGame().FEN(); got != StartingFEN {
		t.Errorf("NewGame().FEN() = %q, want %q", got, StartingFEN)
	}
}

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		StartingFEN,
		"rnbqkbnr/pppppppp/8/8/P7/8/1PPPPPPP/RNBQKBNR b KQkq a3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
		"8/P6k/8/8/8/8/8/K7 w - - 12 34",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	}
	for _, fen := range fens {
		g, err := ParseFEN(fen)
		if err != nil {
			t.Errorf("ParseFEN(%q): %v", fen, err)
			continue
		}
		if diff := cmp.Diff(fen, g.FEN()); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestParseFENMalformed(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"five fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"},
		{"seven ranks", "pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"long rank", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KX - 0 1"},
		{"duplicate castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KK - 0 1"},
		{"bad en passant", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1"},
		{"non-numeric halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1"},
		{"non-numeric fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 x"},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFEN(tc.fen)
			if err == nil {
				t.Fatalf("ParseFEN(%q): expected error", tc.fen)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("ParseFEN(%q): error %v is not a ParseError", tc.fen, err)
			}
		})
	}
}

func TestParseFENMissingKing(t *testing.T) {
	for _, fen := range []string{
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/2K1K3 w - - 0 1",
	} {
		_, err := ParseFEN(fen)
		if err == nil {
			t.Errorf("ParseFEN(%q): expected error", fen)
			continue
		}
		var violation *InvariantViolation
		if !errors.As(err, &violation) {
			t.Errorf("ParseFEN(%q): error %v is not an InvariantViolation", fen, err)
		}
	}
}

func TestRoundTripAfterPlay(t *testing.T) {
	g := NewGame()
	for _, text := range []string{"e2e4", "c7c5", "g1f3", "d7d6", "f1b5", "c8d7", "e1g1"} {
		m, err := ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", text, err)
		}
		g, err = g.Apply(m)
		if err != nil {
			t.Fatalf("Apply(%s): %v", text, err)
		}

		fen := g.FEN()
		parsed, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if diff := cmp.Diff(fen, parsed.FEN()); diff != "" {
			t.Errorf("round trip after %s (-want +got):\n%s", text, diff)
		}
	}
}
