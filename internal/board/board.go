package board

import (
	"fmt"

	"github.com/doismellburning/chess/internal/core"
)

// Board is an immutable mapping from Square to Piece. It is a plain value:
// every mutator returns a fresh copy and the receiver is untouched, so a
// Board may be shared freely. It owns storage and query only, no rules.
type Board struct {
	squares [8][8]Piece // [rank][file]
}

// At returns the piece occupying sq, with ok=false for an empty square.
func (b Board) At(sq Square) (Piece, bool) {
	p := b.squares[sq.rank][sq.file]
	return p, p.Kind != NoPiece
}

// WithPiece returns a board with p placed on sq, overwriting any occupant.
func (b Board) WithPiece(sq Square, p Piece) Board {
	b.squares[sq.rank][sq.file] = p
	return b
}

// WithPieceMoved returns a board with the occupant of from relocated to to.
// The origin is cleared and any occupant of to is overwritten. No legality
// checking happens here; this is the transition primitive.
func (b Board) WithPieceMoved(from, to Square) Board {
	b.squares[to.rank][to.file] = b.squares[from.rank][from.file]
	b.squares[from.rank][from.file] = Piece{}
	return b
}

// WithPieceRemoved returns a board with sq emptied.
func (b Board) WithPieceRemoved(sq Square) Board {
	b.squares[sq.rank][sq.file] = Piece{}
	return b
}

// FindKing locates the king of the given color. A position missing a king
// cannot arise through legal play, so failure signals corrupted input.
func (b Board) FindKing(c core.Color) (Square, error) {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			p := b.squares[r][f]
			if p.Kind == King && p.Color == c {
				return Square{file: f, rank: r}, nil
			}
		}
	}
	return Square{}, &InvariantViolation{Msg: fmt.Sprintf("no %s king on board", c)}
}

// startingBoard places the standard 32 pieces.
func startingBoard() Board {
	var b Board
	back := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		b.squares[0][f] = Piece{Kind: back[f], Color: core.ColorWhite}
		b.squares[1][f] = Piece{Kind: Pawn, Color: core.ColorWhite}
		b.squares[6][f] = Piece{Kind: Pawn, Color: core.ColorBlack}
		b.squares[7][f] = Piece{Kind: back[f], Color: core.ColorBlack}
	}
	return b
}
