package board

import "fmt"

// Square identifies one of the 64 board cells. Constructors enforce the
// range, so no off-board Square is representable. The zero value is a1.
type Square struct {
	file int // 0..7, file a..h
	rank int // 0..7, rank 1..8
}

// NewSquare builds a Square from zero-based file and rank coordinates.
func NewSquare(file, rank int) (Square, error) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return Square{}, &ParseError{
			Input: fmt.Sprintf("(%d,%d)", file, rank),
			Msg:   "file and rank must be in 0..7",
		}
	}
	return Square{file: file, rank: rank}, nil
}

// ParseSquare converts algebraic notation ("a1".."h8") to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, &ParseError{Input: s, Msg: "want a square like e2"}
	}
	return Square{file: int(s[0] - 'a'), rank: int(s[1] - '1')}, nil
}

func (s Square) File() int { return s.file }
func (s Square) Rank() int { return s.rank }

func (s Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+s.file, '1'+s.rank)
}

// offset returns the square displaced by (df,dr), or ok=false off the board.
func (s Square) offset(df, dr int) (Square, bool) {
	f, r := s.file+df, s.rank+dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return Square{}, false
	}
	return Square{file: f, rank: r}, true
}
