package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doismellburning/chess/internal/core"
)

func TestApplyDoublePawnAdvance(t *testing.T) {
	g := mustApply(t, NewGame(), "a2a4")

	want := "rnbqkbnr/pppppppp/8/8/P7/8/1PPPPPPP/RNBQKBNR b KQkq a3 0 1"
	if diff := cmp.Diff(want, g.FEN()); diff != "" {
		t.Errorf("FEN after a2a4 (-want +got):\n%s", diff)
	}
	if g.Turn() != core.ColorBlack {
		t.Errorf("turn after a2a4 = %s, want black", g.Turn())
	}
	if target, ok := g.EnPassantTarget(); !ok || target.String() != "a3" {
		t.Errorf("en passant target after a2a4 = %v, %t, want a3", target, ok)
	}
}

func TestApplyIllegalMoveLeavesStateUntouched(t *testing.T) {
	g := NewGame()

	for _, text := range []string{"e2e5", "a1a3", "e7e5", "e1g1", "e2e4q"} {
		m, err := ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", text, err)
		}
		_, err = g.Apply(m)
		if err == nil {
			t.Errorf("Apply(%s): expected error", text)
			continue
		}
		var illegal *IllegalMoveError
		if !errors.As(err, &illegal) {
			t.Errorf("Apply(%s): error %v is not an IllegalMoveError", text, err)
		}
	}

	if g.FEN() != StartingFEN {
		t.Errorf("original state changed: %q", g.FEN())
	}
}

func TestMoveCounters(t *testing.T) {
	g := NewGame()

	g = mustApply(t, g, "g1f3")
	if g.HalfmoveClock() != 1 || g.FullmoveNumber() != 1 {
		t.Errorf("after g1f3: halfmove=%d fullmove=%d, want 1, 1", g.HalfmoveClock(), g.FullmoveNumber())
	}

	g = mustApply(t, g, "b8c6")
	if g.HalfmoveClock() != 2 || g.FullmoveNumber() != 2 {
		t.Errorf("after b8c6: halfmove=%d fullmove=%d, want 2, 2", g.HalfmoveClock(), g.FullmoveNumber())
	}

	// A pawn move resets the halfmove clock.
	g = mustApply(t, g, "e2e4")
	if g.HalfmoveClock() != 0 {
		t.Errorf("after e2e4: halfmove=%d, want 0", g.HalfmoveClock())
	}
}

func TestFoolsMate(t *testing.T) {
	g := NewGame()
	for _, text := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		g = mustApply(t, g, text)
	}

	if !g.IsCheckmate() {
		t.Error("fool's mate position is not checkmate")
	}
	if !g.IsInCheck(core.ColorWhite) {
		t.Error("white is not in check in the fool's mate position")
	}
	if g.IsStalemate() {
		t.Error("checkmate position reported as stalemate")
	}
	if got := len(g.LegalMoves()); got != 0 {
		t.Errorf("checkmated side has %d legal moves, want 0", got)
	}
	if got := g.Terminal(); got != core.StateBlackWins {
		t.Errorf("Terminal() = %s, want %s", got, core.StateBlackWins)
	}
}

func TestStalemate(t *testing.T) {
	g := mustParseFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	if !g.IsStalemate() {
		t.Error("position is not stalemate")
	}
	if g.IsCheckmate() {
		t.Error("stalemate position reported as checkmate")
	}
	if g.IsInCheck(core.ColorBlack) {
		t.Error("stalemated side reported in check")
	}
	if got := len(g.LegalMoves()); got != 0 {
		t.Errorf("stalemated side has %d legal moves, want 0", got)
	}
	if got := g.Terminal(); got != core.StateStalemate {
		t.Errorf("Terminal() = %s, want %s", got, core.StateStalemate)
	}
}

func TestPromotionDefaultsToQueen(t *testing.T) {
	g := mustParseFEN(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")

	promoted := mustApply(t, g, "a7a8")
	if p, _ := promoted.Board().At(Square{file: 0, rank: 7}); p.Kind != Queen {
		t.Errorf("omitted promotion kind produced %v, want queen", p.Kind)
	}

	underpromoted := mustApply(t, g, "a7a8n")
	if p, _ := underpromoted.Board().At(Square{file: 0, rank: 7}); p.Kind != Knight {
		t.Errorf("explicit underpromotion produced %v, want knight", p.Kind)
	}
}

func TestCaptureResetsHalfmoveClock(t *testing.T) {
	g := mustParseFEN(t, "1k6/8/8/3r4/8/3R4/8/1K6 w - - 7 20")

	g = mustApply(t, g, "d3d5")
	if g.HalfmoveClock() != 0 {
		t.Errorf("halfmove clock after capture = %d, want 0", g.HalfmoveClock())
	}
	if g.FullmoveNumber() != 20 {
		t.Errorf("fullmove number after white's move = %d, want 20", g.FullmoveNumber())
	}
}

func TestRookCaptureClearsOpponentCastlingRight(t *testing.T) {
	g := mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	// Capturing the h8 rook strips black's kingside right even though black
	// never moved.
	g = mustApply(t, g, "h1h8")
	if got := g.Castling().String(); got != "Qq" {
		t.Errorf("castling rights after h1xh8 = %q, want %q", got, "Qq")
	}
}

func TestSharedStateExploration(t *testing.T) {
	// Two hypothetical lines branched from one GameState leave the original
	// and each other untouched.
	g := NewGame()

	lineA := mustApply(t, g, "e2e4")
	lineB := mustApply(t, g, "d2d4")

	if g.FEN() != StartingFEN {
		t.Errorf("branching changed the shared origin: %q", g.FEN())
	}
	if lineA.FEN() == lineB.FEN() {
		t.Error("branched lines share a position")
	}
}
