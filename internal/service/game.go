package service

import (
	"fmt"
	"time"

	"github.com/doismellburning/chess/internal/board"
	"github.com/doismellburning/chess/internal/bot"
	"github.com/doismellburning/chess/internal/core"
	"github.com/doismellburning/chess/internal/game"
	"github.com/doismellburning/chess/internal/storage"
)

// NewGame registers a game with the given seat configuration, starting from
// the standard position or from an optional FEN string.
func (s *Service) NewGame(id string, whiteConfig, blackConfig core.PlayerConfig, fen ...string) error {
	if err := s.validate.Struct(whiteConfig); err != nil {
		return fmt.Errorf("invalid white player config: %w", err)
	}
	if err := s.validate.Struct(blackConfig); err != nil {
		return fmt.Errorf("invalid black player config: %w", err)
	}

	initial := board.NewGame()
	if len(fen) > 0 && fen[0] != "" {
		var err error
		initial, err = board.ParseFEN(fen[0])
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}

	whitePlayer := core.NewPlayer(whiteConfig, core.ColorWhite)
	blackPlayer := core.NewPlayer(blackConfig, core.ColorBlack)

	s.games[id] = game.New(initial, whitePlayer, blackPlayer)

	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:        id,
			InitialFEN:    initial.FEN(),
			WhitePlayerID: whitePlayer.ID,
			WhiteType:     int(whitePlayer.Type),
			BlackPlayerID: blackPlayer.ID,
			BlackType:     int(blackPlayer.Type),
			StartTimeUTC:  time.Now().UTC(),
		})
	}

	return nil
}

// MakeHumanMove parses coordinate move text ("e2e4", "e7e8q") and applies it
// to the game. An illegal move surfaces as board.IllegalMoveError and the
// game keeps its current position.
func (s *Service) MakeHumanMove(gameID, moveText string) (*game.MoveResult, error) {
	m, err := board.ParseMove(moveText)
	if err != nil {
		return nil, err
	}
	return s.applyMove(gameID, m)
}

// MakeComputerMove lets the bot pick for the side to move and applies its
// choice through the same path a human move takes.
func (s *Service) MakeComputerMove(gameID string) (*game.MoveResult, error) {
	s.mu.RLock()
	g, ok := s.games[gameID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}

	m, err := bot.Choose(g.Current())
	if err != nil {
		return nil, err
	}
	return s.applyMove(gameID, m)
}

func (s *Service) applyMove(gameID string, m board.Move) (*game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}

	if g.State() != core.StateOngoing {
		return nil, fmt.Errorf("game is over: %s", g.State())
	}

	current := g.Current()
	mover := current.Turn()
	next, err := current.Apply(m)
	if err != nil {
		return nil, err
	}

	g.Push(next, m.String())

	result := &game.MoveResult{
		Move:      m.String(),
		Player:    mover,
		GameState: next.Terminal(),
	}
	g.SetLastResult(result)

	if s.store != nil {
		s.store.RecordMove(storage.MoveRecord{
			GameID:       gameID,
			MoveNumber:   g.MoveCount(),
			MoveText:     m.String(),
			FENAfterMove: next.FEN(),
			PlayerColor:  string(mover),
			MoveTimeUTC:  time.Now().UTC(),
		})
	}

	return result, nil
}

// LegalDestinations lists the squares the piece on from may move to, in
// algebraic notation.
func (s *Service) LegalDestinations(gameID, from string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}

	sq, err := board.ParseSquare(from)
	if err != nil {
		return nil, err
	}

	var dests []string
	for _, d := range g.Current().LegalDestinations(sq) {
		dests = append(dests, d.String())
	}
	return dests, nil
}

// Undo removes the last count moves from game history
func (s *Service) Undo(gameID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	if err := g.UndoMoves(count); err != nil {
		return err
	}

	if s.store != nil {
		s.store.DeleteUndoneMoves(gameID, g.MoveCount())
	}

	return nil
}

// CurrentState returns the game's current position
func (s *Service) CurrentState(gameID string) (board.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return board.GameState{}, fmt.Errorf("game not found: %s", gameID)
	}
	return g.Current(), nil
}
