package board

import (
	"github.com/doismellburning/chess/internal/core"
)

// CastlingRights tracks which of the four castlings are still available.
// Flags are only ever cleared, never re-granted.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

func (r CastlingRights) String() string {
	s := ""
	if r.WhiteKingside {
		s += "K"
	}
	if r.WhiteQueenside {
		s += "Q"
	}
	if r.BlackKingside {
		s += "k"
	}
	if r.BlackQueenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// GameState is the full position: board, side to move, castling rights, en
// passant target, halfmove clock and fullmove number. It is an immutable
// value; Apply returns a new one and the receiver stays valid, so retaining
// an old GameState is all that undo or hypothetical exploration takes, and
// concurrent readers need no synchronization.
type GameState struct {
	board    Board
	turn     core.Color
	castling CastlingRights
	epTarget Square
	epValid  bool
	halfmove int
	fullmove int
}

// NewGame returns the standard starting position.
func NewGame() GameState {
	return GameState{
		board: startingBoard(),
		turn:  core.ColorWhite,
		castling: CastlingRights{
			WhiteKingside:  true,
			WhiteQueenside: true,
			BlackKingside:  true,
			BlackQueenside: true,
		},
		halfmove: 0,
		fullmove: 1,
	}
}

func (g GameState) Board() Board             { return g.board }
func (g GameState) Turn() core.Color         { return g.turn }
func (g GameState) Castling() CastlingRights { return g.castling }
func (g GameState) HalfmoveClock() int       { return g.halfmove }
func (g GameState) FullmoveNumber() int      { return g.fullmove }

// EnPassantTarget returns the square a capturing pawn would land on, with
// ok=false when no two-square pawn advance just happened.
func (g GameState) EnPassantTarget() (Square, bool) {
	return g.epTarget, g.epValid
}

// LegalMovesFrom returns the legal moves of the piece on from. The result is
// a set: no ordering is guaranteed, and promotion variants onto the same
// square are distinct members. An empty or opposing square yields nil.
func (g GameState) LegalMovesFrom(from Square) []Move {
	p, occupied := g.board.At(from)
	if !occupied || p.Color != g.turn {
		return nil
	}
	var legal []Move
	for _, m := range pseudoLegalFrom(g.board, from, g.epTarget, g.epValid, g.castling) {
		if in, err := InCheck(g.boardAfter(m), g.turn); err == nil && !in {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMoves returns every legal move for the side to move.
func (g GameState) LegalMoves() []Move {
	var legal []Move
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			legal = append(legal, g.LegalMovesFrom(Square{file: f, rank: r})...)
		}
	}
	return legal
}

// LegalDestinations returns the squares the piece on from may move to,
// collapsing promotion variants to their shared destination.
func (g GameState) LegalDestinations(from Square) []Square {
	var dests []Square
	seen := map[Square]bool{}
	for _, m := range g.LegalMovesFrom(from) {
		if !seen[m.To] {
			seen[m.To] = true
			dests = append(dests, m.To)
		}
	}
	return dests
}

// hasLegalMove is LegalMoves with an early exit, for terminal detection.
func (g GameState) hasLegalMove() bool {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if len(g.LegalMovesFrom(Square{file: f, rank: r})) > 0 {
				return true
			}
		}
	}
	return false
}

// boardAfter applies m's board side effects only: the en passant victim is
// lifted, the moving piece relocated, the castling rook brought across, and
// a promoted pawn replaced. Auxiliary fields are untouched, which is all the
// legality filter needs for check testing.
func (g GameState) boardAfter(m Move) Board {
	b := g.board
	p, _ := b.At(m.From)

	if p.Kind == Pawn && g.epValid && m.To == g.epTarget && m.From.file != m.To.file {
		// En passant captures the passed pawn, not the destination square.
		b = b.WithPieceRemoved(Square{file: m.To.file, rank: m.From.rank})
	}

	b = b.WithPieceMoved(m.From, m.To)

	if p.Kind == King && abs(m.To.file-m.From.file) == 2 {
		if m.To.file == 6 {
			b = b.WithPieceMoved(Square{file: 7, rank: m.From.rank}, Square{file: 5, rank: m.From.rank})
		} else {
			b = b.WithPieceMoved(Square{file: 0, rank: m.From.rank}, Square{file: 3, rank: m.From.rank})
		}
	}

	if p.Kind == Pawn && (m.To.rank == 0 || m.To.rank == 7) {
		kind := m.Promotion
		if kind == NoPiece {
			kind = Queen
		}
		b = b.WithPiece(m.To, Piece{Kind: kind, Color: p.Color})
	}

	return b
}

// Apply plays m and returns the resulting GameState. It fails with
// IllegalMoveError when m is not in the legal set for its source square,
// leaving the receiver untouched. A promotion move may omit its promotion
// kind, which selects a queen.
func (g GameState) Apply(m Move) (GameState, error) {
	chosen, ok := g.matchLegal(m)
	if !ok {
		return GameState{}, &IllegalMoveError{Move: m}
	}

	moved, _ := g.board.At(chosen.From)
	_, captured := g.board.At(chosen.To)
	enPassant := moved.Kind == Pawn && g.epValid && chosen.To == g.epTarget && chosen.From.file != chosen.To.file

	next := GameState{
		board:    g.boardAfter(chosen),
		turn:     g.turn.Opposite(),
		castling: updatedRights(g.castling, chosen),
		halfmove: g.halfmove + 1,
		fullmove: g.fullmove,
	}
	if moved.Kind == Pawn || captured || enPassant {
		next.halfmove = 0
	}
	if g.turn == core.ColorBlack {
		next.fullmove++
	}
	if moved.Kind == Pawn && abs(chosen.To.rank-chosen.From.rank) == 2 {
		// The target is the square the pawn passed over.
		next.epTarget = Square{file: chosen.From.file, rank: (chosen.From.rank + chosen.To.rank) / 2}
		next.epValid = true
	}

	return next, nil
}

// matchLegal finds the legal move matching m's (from, to, promotion) triple,
// resolving an omitted promotion kind to Queen.
func (g GameState) matchLegal(m Move) (Move, bool) {
	for _, legal := range g.LegalMovesFrom(m.From) {
		if legal.To != m.To {
			continue
		}
		if legal.Promotion == NoPiece {
			if m.Promotion == NoPiece {
				return legal, true
			}
			continue
		}
		want := m.Promotion
		if want == NoPiece {
			want = Queen
		}
		if legal.Promotion == want {
			return legal, true
		}
	}
	return Move{}, false
}

// updatedRights clears castling flags once a king or relevant rook moves
// away from, or is captured on, its starting square.
func updatedRights(r CastlingRights, m Move) CastlingRights {
	for _, sq := range [2]Square{m.From, m.To} {
		switch sq {
		case Square{file: 4, rank: 0}:
			r.WhiteKingside, r.WhiteQueenside = false, false
		case Square{file: 0, rank: 0}:
			r.WhiteQueenside = false
		case Square{file: 7, rank: 0}:
			r.WhiteKingside = false
		case Square{file: 4, rank: 7}:
			r.BlackKingside, r.BlackQueenside = false, false
		case Square{file: 0, rank: 7}:
			r.BlackQueenside = false
		case Square{file: 7, rank: 7}:
			r.BlackKingside = false
		}
	}
	return r
}

// IsInCheck reports whether c's king is currently attacked. Every GameState
// constructor guarantees both kings are present, so the king lookup cannot
// fail here.
func (g GameState) IsInCheck(c core.Color) bool {
	in, err := InCheck(g.board, c)
	if err != nil {
		panic(err)
	}
	return in
}

// IsCheckmate reports whether the side to move is in check with no legal
// move. Mutually exclusive with IsStalemate.
func (g GameState) IsCheckmate() bool {
	return g.IsInCheck(g.turn) && !g.hasLegalMove()
}

// IsStalemate reports whether the side to move has no legal move without
// being in check.
func (g GameState) IsStalemate() bool {
	return !g.IsInCheck(g.turn) && !g.hasLegalMove()
}

// Terminal evaluates the terminal predicates and maps them onto a game
// state. GameState carries no terminal field; this is computed on demand.
func (g GameState) Terminal() core.State {
	if g.hasLegalMove() {
		return core.StateOngoing
	}
	if g.IsInCheck(g.turn) {
		if g.turn == core.ColorWhite {
			return core.StateBlackWins
		}
		return core.StateWhiteWins
	}
	return core.StateStalemate
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
