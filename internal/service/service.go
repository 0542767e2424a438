package service

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/doismellburning/chess/internal/game"
	"github.com/doismellburning/chess/internal/storage"
)

// Service is a state manager for chess games with optional persistence. The
// positions themselves are immutable GameState values; the games map is the
// only shared mutable state.
type Service struct {
	games    map[string]*game.Game
	mu       sync.RWMutex
	store    *storage.Store // nil if persistence disabled
	validate *validator.Validate
}

// New creates a new service instance with optional storage
func New(store *storage.Store) (*Service, error) {
	if store != nil {
		if err := store.InitDB(); err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
	}
	return &Service{
		games:    make(map[string]*game.Game),
		store:    store,
		validate: validator.New(),
	}, nil
}

// GetGame retrieves a game by ID
func (s *Service) GetGame(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	return g, nil
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Ensure UUID uniqueness (handle potential conflicts)
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	delete(s.games, gameID)
	return nil
}
