package board

import "fmt"

// ParseError reports malformed FEN or malformed algebraic text. Parsing only
// ever constructs new values, so a ParseError never disturbs existing state.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Msg)
}

// IllegalMoveError reports a move that is not in the current legal set. The
// GameState it was requested against is unaffected.
type IllegalMoveError struct {
	Move Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s", e.Move)
}

// InvariantViolation reports a position that cannot arise through legal play,
// such as externally loaded state missing a king.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return e.Msg
}
