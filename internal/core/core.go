package core

type State int

const (
	StateOngoing State = iota
	StateWhiteWins
	StateBlackWins
	StateDraw
	StateStalemate
)

func (s State) String() string {
	switch s {
	case StateWhiteWins:
		return "White wins"
	case StateBlackWins:
		return "Black wins"
	case StateDraw:
		return "Draw"
	case StateStalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// Color is the FEN side letter, 'w' or 'b'.
type Color byte

const (
	ColorWhite Color = 'w'
	ColorBlack Color = 'b'
)

func (c Color) Opposite() Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

func (c Color) String() string {
	if c == ColorWhite {
		return "white"
	}
	return "black"
}
