package board

import (
	"fmt"

	"github.com/doismellburning/chess/internal/core"
)

// Move is a (source, destination, optional promotion) triple. Promotion is
// NoPiece except for pawn moves onto the far rank.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

func (m Move) String() string {
	if m.Promotion != NoPiece {
		return fmt.Sprintf("%s%s%c", m.From, m.To, kindLetters[m.Promotion])
	}
	return fmt.Sprintf("%s%s", m.From, m.To)
}

// ParseMove converts coordinate text like "e2e4" or "e7e8q" to a Move.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, &ParseError{Input: s, Msg: "want a move like e2e4 or e7e8q"}
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		kind, ok := promotionKind(s[4])
		if !ok {
			return Move{}, &ParseError{Input: s, Msg: "promotion piece must be one of q, r, b, n"}
		}
		m.Promotion = kind
	}
	return m, nil
}

var (
	knightOffsets = [...][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	rookDirs      = [...][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs    = [...][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	royalDirs     = [...][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

var promotionKinds = [...]PieceKind{Queen, Rook, Bishop, Knight}

// pseudoLegalFrom generates the moves the piece on from could make by
// movement pattern and occupancy alone, ignoring whether the mover's own
// king would be left in check. Castling is the one exception: its
// not-attacked conditions are part of what castling means and are applied
// here. The en passant target and castling rights come from the caller.
func pseudoLegalFrom(b Board, from Square, ep Square, epOK bool, rights CastlingRights) []Move {
	p, ok := b.At(from)
	if !ok {
		return nil
	}

	switch p.Kind {
	case Pawn:
		return pawnMoves(b, from, p.Color, ep, epOK)
	case Knight:
		return leaperMoves(b, from, p.Color, knightOffsets[:])
	case Bishop:
		return sliderMoves(b, from, p.Color, bishopDirs[:])
	case Rook:
		return sliderMoves(b, from, p.Color, rookDirs[:])
	case Queen:
		return sliderMoves(b, from, p.Color, royalDirs[:])
	case King:
		moves := leaperMoves(b, from, p.Color, royalDirs[:])
		return append(moves, castlingMoves(b, from, p.Color, rights)...)
	}
	return nil
}

// sliderMoves walks each ray until it leaves the board or hits a piece,
// including the blocking square when it holds an enemy piece.
func sliderMoves(b Board, from Square, mover core.Color, dirs [][2]int) []Move {
	var moves []Move
	for _, d := range dirs {
		cur := from
		for {
			to, ok := cur.offset(d[0], d[1])
			if !ok {
				break
			}
			occupant, occupied := b.At(to)
			if !occupied {
				moves = append(moves, Move{From: from, To: to})
				cur = to
				continue
			}
			if occupant.Color != mover {
				moves = append(moves, Move{From: from, To: to})
			}
			break
		}
	}
	return moves
}

// leaperMoves applies fixed offsets, filtered to on-board squares not
// occupied by the mover's own pieces.
func leaperMoves(b Board, from Square, mover core.Color, offsets [][2]int) []Move {
	var moves []Move
	for _, d := range offsets {
		to, ok := from.offset(d[0], d[1])
		if !ok {
			continue
		}
		if occupant, occupied := b.At(to); occupied && occupant.Color == mover {
			continue
		}
		moves = append(moves, Move{From: from, To: to})
	}
	return moves
}

func pawnMoves(b Board, from Square, mover core.Color, ep Square, epOK bool) []Move {
	dir, startRank := 1, 1
	if mover == core.ColorBlack {
		dir, startRank = -1, 6
	}

	var moves []Move
	add := func(to Square) {
		// A pawn reaching the far rank yields one move per promotion kind.
		if to.rank == 0 || to.rank == 7 {
			for _, kind := range promotionKinds {
				moves = append(moves, Move{From: from, To: to, Promotion: kind})
			}
			return
		}
		moves = append(moves, Move{From: from, To: to})
	}

	if one, ok := from.offset(0, dir); ok {
		if _, occupied := b.At(one); !occupied {
			add(one)
			if from.rank == startRank {
				if two, ok := from.offset(0, 2*dir); ok {
					if _, occupied := b.At(two); !occupied {
						add(two)
					}
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := from.offset(df, dir)
		if !ok {
			continue
		}
		if occupant, occupied := b.At(to); occupied && occupant.Color != mover {
			add(to)
		} else if !occupied && epOK && to == ep {
			moves = append(moves, Move{From: from, To: to})
		}
	}

	return moves
}

// castlingMoves yields the king's two-square castling moves when the rights
// flag is present, the king and rook stand on their home squares, the gap is
// empty, and neither the king's square nor any square it crosses or lands on
// is attacked.
func castlingMoves(b Board, from Square, mover core.Color, rights CastlingRights) []Move {
	homeRank := 0
	kingside, queenside := rights.WhiteKingside, rights.WhiteQueenside
	if mover == core.ColorBlack {
		homeRank = 7
		kingside, queenside = rights.BlackKingside, rights.BlackQueenside
	}
	home := Square{file: 4, rank: homeRank}
	if from != home || (!kingside && !queenside) {
		return nil
	}
	if IsAttacked(b, home, mover.Opposite()) {
		return nil
	}

	var moves []Move
	ownRook := Piece{Kind: Rook, Color: mover}

	if kingside {
		corner := Square{file: 7, rank: homeRank}
		if rook, _ := b.At(corner); rook == ownRook &&
			clearAndSafe(b, mover, homeRank, []int{5, 6}, []int{5, 6}) {
			moves = append(moves, Move{From: from, To: Square{file: 6, rank: homeRank}})
		}
	}
	if queenside {
		corner := Square{file: 0, rank: homeRank}
		// b1/b8 must be empty but may be attacked; the king never crosses it.
		if rook, _ := b.At(corner); rook == ownRook &&
			clearAndSafe(b, mover, homeRank, []int{1, 2, 3}, []int{2, 3}) {
			moves = append(moves, Move{From: from, To: Square{file: 2, rank: homeRank}})
		}
	}
	return moves
}

func clearAndSafe(b Board, mover core.Color, rank int, emptyFiles, safeFiles []int) bool {
	for _, f := range emptyFiles {
		if _, occupied := b.At(Square{file: f, rank: rank}); occupied {
			return false
		}
	}
	for _, f := range safeFiles {
		if IsAttacked(b, Square{file: f, rank: rank}, mover.Opposite()) {
			return false
		}
	}
	return true
}
