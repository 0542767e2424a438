package board

import "github.com/doismellburning/chess/internal/core"

type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = map[PieceKind]byte{
	Pawn:   'p',
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
	King:   'k',
}

// Piece is a kind plus a color. The zero value marks an empty square.
type Piece struct {
	Kind  PieceKind
	Color core.Color
}

// Letter returns the FEN letter for the piece, uppercase for White.
func (p Piece) Letter() byte {
	l := kindLetters[p.Kind]
	if p.Color == core.ColorWhite {
		l -= 'a' - 'A'
	}
	return l
}

// pieceFromLetter maps a FEN piece letter to a Piece.
func pieceFromLetter(l byte) (Piece, bool) {
	color := core.ColorBlack
	if l >= 'A' && l <= 'Z' {
		color = core.ColorWhite
		l += 'a' - 'A'
	}
	for kind, letter := range kindLetters {
		if letter == l {
			return Piece{Kind: kind, Color: color}, true
		}
	}
	return Piece{}, false
}

// promotionKind maps a lowercase promotion letter (q, r, b, n) to its kind.
func promotionKind(l byte) (PieceKind, bool) {
	switch l {
	case 'q':
		return Queen, true
	case 'r':
		return Rook, true
	case 'b':
		return Bishop, true
	case 'n':
		return Knight, true
	}
	return NoPiece, false
}
