package board

import "github.com/doismellburning/chess/internal/core"

// IsAttacked reports whether any piece of color by attacks target: a piece
// attacks the squares it could capture on, so pawns count their diagonals
// only, and castling and the two-square pawn advance never attack anything.
func IsAttacked(b Board, target Square, by core.Color) bool {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			from := Square{file: f, rank: r}
			p, occupied := b.At(from)
			if !occupied || p.Color != by {
				continue
			}
			if attacks(b, from, p, target) {
				return true
			}
		}
	}
	return false
}

func attacks(b Board, from Square, p Piece, target Square) bool {
	switch p.Kind {
	case Pawn:
		dir := 1
		if p.Color == core.ColorBlack {
			dir = -1
		}
		for _, df := range [2]int{-1, 1} {
			if to, ok := from.offset(df, dir); ok && to == target {
				return true
			}
		}
	case Knight:
		return leapsTo(from, target, knightOffsets[:])
	case King:
		return leapsTo(from, target, royalDirs[:])
	case Bishop:
		return slidesTo(b, from, target, bishopDirs[:])
	case Rook:
		return slidesTo(b, from, target, rookDirs[:])
	case Queen:
		return slidesTo(b, from, target, royalDirs[:])
	}
	return false
}

func leapsTo(from, target Square, offsets [][2]int) bool {
	for _, d := range offsets {
		if to, ok := from.offset(d[0], d[1]); ok && to == target {
			return true
		}
	}
	return false
}

func slidesTo(b Board, from, target Square, dirs [][2]int) bool {
	for _, d := range dirs {
		cur := from
		for {
			to, ok := cur.offset(d[0], d[1])
			if !ok {
				break
			}
			if to == target {
				return true
			}
			if _, occupied := b.At(to); occupied {
				break
			}
			cur = to
		}
	}
	return false
}

// InCheck reports whether c's king is attacked by the opponent. It fails
// with InvariantViolation when the board holds no king of that color.
func InCheck(b Board, c core.Color) (bool, error) {
	king, err := b.FindKing(c)
	if err != nil {
		return false, err
	}
	return IsAttacked(b, king, c.Opposite()), nil
}
