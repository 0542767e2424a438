package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/doismellburning/chess/internal/core"
)

const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a GameState from Forsyth-Edwards Notation. Malformed text
// fails with ParseError; a well-formed position without exactly one king of
// each color fails with InvariantViolation.
func ParseFEN(fen string) (GameState, error) {
	fail := func(format string, args ...any) (GameState, error) {
		return GameState{}, &ParseError{Input: fen, Msg: fmt.Sprintf(format, args...)}
	}

	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return fail("expected 6 fields, got %d", len(fields))
	}

	var g GameState

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fail("expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i // FEN lists rank 8 first
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece, ok := pieceFromLetter(ch)
			if !ok {
				return fail("invalid piece letter %q in rank %d", ch, rank+1)
			}
			if file > 7 {
				return fail("too many pieces in rank %d", rank+1)
			}
			g.board.squares[rank][file] = piece
			file++
		}
		if file != 8 {
			return fail("rank %d has %d files", rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		g.turn = core.ColorWhite
	case "b":
		g.turn = core.ColorBlack
	default:
		return fail("side to move must be w or b")
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			var flag *bool
			switch fields[2][i] {
			case 'K':
				flag = &g.castling.WhiteKingside
			case 'Q':
				flag = &g.castling.WhiteQueenside
			case 'k':
				flag = &g.castling.BlackKingside
			case 'q':
				flag = &g.castling.BlackQueenside
			default:
				return fail("invalid castling flag %q", fields[2][i])
			}
			if *flag {
				return fail("duplicate castling flag %q", fields[2][i])
			}
			*flag = true
		}
	}

	if fields[3] != "-" {
		target, err := ParseSquare(fields[3])
		if err != nil {
			return fail("invalid en passant target %q", fields[3])
		}
		g.epTarget = target
		g.epValid = true
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return fail("invalid halfmove clock %q", fields[4])
	}
	g.halfmove = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return fail("invalid fullmove number %q", fields[5])
	}
	g.fullmove = fullmove

	for _, c := range [2]core.Color{core.ColorWhite, core.ColorBlack} {
		if n := countKings(g.board, c); n != 1 {
			return GameState{}, &InvariantViolation{
				Msg: fmt.Sprintf("position has %d %s kings, want 1", n, c),
			}
		}
	}

	return g, nil
}

func countKings(b Board, c core.Color) int {
	n := 0
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if p := b.squares[r][f]; p.Kind == King && p.Color == c {
				n++
			}
		}
	}
	return n
}

// FEN serializes the position: piece placement from rank 8 down with empty
// runs as digits, then side to move, castling rights, en passant target,
// halfmove clock and fullmove number.
func (g GameState) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := g.board.squares[rank][file]
			if p.Kind == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	ep := "-"
	if g.epValid {
		ep = g.epTarget.String()
	}
	fmt.Fprintf(&sb, " %c %s %s %d %d", g.turn, g.castling, ep, g.halfmove, g.fullmove)

	return sb.String()
}
