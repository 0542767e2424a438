// Package bot fills the computer seat with a uniformly random legal move.
// It does no search and no evaluation; it exists so the harness can drive
// both sides of a game through the same rules interface a human uses.
package bot

import (
	"fmt"
	"math/rand/v2"

	"github.com/doismellburning/chess/internal/board"
)

// Choose picks a legal move for the side to move in g. It fails when no
// legal move exists, i.e. the position is checkmate or stalemate.
func Choose(g board.GameState) (board.Move, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return board.Move{}, fmt.Errorf("no legal moves for %s", g.Turn())
	}
	return moves[rand.IntN(len(moves))], nil
}
