package game

import (
	"fmt"

	"github.com/doismellburning/chess/internal/board"
	"github.com/doismellburning/chess/internal/core"
)

// Snapshot is one position in a game's history, paired with the move that
// produced it. Because GameStates are immutable values, retaining snapshots
// is all that undo takes: no inverse move is ever computed.
type Snapshot struct {
	State        board.GameState
	PreviousMove string // move that created this position (empty for initial)
}

// MoveResult tracks the outcome of a move
type MoveResult struct {
	Move      string
	Player    core.Color
	GameState core.State
}

type Game struct {
	snapshots  []Snapshot
	players    map[core.Color]*core.Player
	lastResult *MoveResult
}

func New(initial board.GameState, whitePlayer, blackPlayer *core.Player) *Game {
	return &Game{
		snapshots: []Snapshot{
			{State: initial},
		},
		players: map[core.Color]*core.Player{
			core.ColorWhite: whitePlayer,
			core.ColorBlack: blackPlayer,
		},
	}
}

func (g *Game) SetLastResult(result *MoveResult) {
	g.lastResult = result
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

func (g *Game) Current() board.GameState {
	return g.snapshots[len(g.snapshots)-1].State
}

func (g *Game) CurrentFEN() string {
	return g.Current().FEN()
}

func (g *Game) NextTurn() core.Color {
	return g.Current().Turn()
}

func (g *Game) NextPlayer() *core.Player {
	return g.players[g.NextTurn()]
}

func (g *Game) UpdatePlayers(whitePlayer, blackPlayer *core.Player) {
	g.players[core.ColorWhite] = whitePlayer
	g.players[core.ColorBlack] = blackPlayer
}

// Push appends the position that move produced.
func (g *Game) Push(next board.GameState, move string) {
	g.snapshots = append(g.snapshots, Snapshot{State: next, PreviousMove: move})
}

func (g *Game) UndoMoves(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid undo count: %d", count)
	}

	availableMoves := len(g.snapshots) - 1
	if availableMoves < count {
		return fmt.Errorf("cannot undo %d moves: only %d moves available", count, availableMoves)
	}

	g.snapshots = g.snapshots[:len(g.snapshots)-count]
	g.lastResult = nil
	return nil
}

func (g *Game) Moves() []string {
	moves := []string{}
	for i := 1; i < len(g.snapshots); i++ {
		if g.snapshots[i].PreviousMove != "" {
			moves = append(moves, g.snapshots[i].PreviousMove)
		}
	}
	return moves
}

func (g *Game) MoveCount() int {
	return len(g.snapshots) - 1
}

// State is computed from the current position on demand; a game carries no
// terminal flag.
func (g *Game) State() core.State {
	return g.Current().Terminal()
}

func (g *Game) InitialFEN() string {
	return g.snapshots[0].State.FEN()
}
