package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "chess.db"), false)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.InitDB(); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	return s
}

// waitForMoves polls until the async writer has landed want rows.
func waitForMoves(t *testing.T, s *Store, gameID string, want int) []MoveRecord {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for {
		moves, err := s.QueryMoves(gameID)
		if err != nil {
			t.Fatalf("QueryMoves: %v", err)
		}
		if len(moves) == want {
			return moves
		}
		if time.Now().After(deadline) {
			t.Fatalf("got %d moves, want %d", len(moves), want)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRecordAndQueryMoves(t *testing.T) {
	s := newTestStore(t)

	now := time.Now().UTC()
	s.RecordNewGame(GameRecord{
		GameID:        "g1",
		InitialFEN:    "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		WhitePlayerID: "w1",
		WhiteType:     1,
		BlackPlayerID: "b1",
		BlackType:     1,
		StartTimeUTC:  now,
	})
	s.RecordMove(MoveRecord{GameID: "g1", MoveNumber: 1, MoveText: "e2e4", FENAfterMove: "fen1", PlayerColor: "w", MoveTimeUTC: now})
	s.RecordMove(MoveRecord{GameID: "g1", MoveNumber: 2, MoveText: "e7e5", FENAfterMove: "fen2", PlayerColor: "b", MoveTimeUTC: now})

	moves := waitForMoves(t, s, "g1", 2)
	if moves[0].MoveText != "e2e4" || moves[1].MoveText != "e7e5" {
		t.Errorf("moves out of order: %+v", moves)
	}
	if !s.IsHealthy() {
		t.Error("store degraded after successful writes")
	}
}

func TestDeleteUndoneMoves(t *testing.T) {
	s := newTestStore(t)

	now := time.Now().UTC()
	s.RecordNewGame(GameRecord{GameID: "g1", InitialFEN: "fen0", WhitePlayerID: "w1", WhiteType: 1, BlackPlayerID: "b1", BlackType: 2, StartTimeUTC: now})
	for i := 1; i <= 3; i++ {
		s.RecordMove(MoveRecord{GameID: "g1", MoveNumber: i, MoveText: "m", FENAfterMove: "f", PlayerColor: "w", MoveTimeUTC: now})
	}
	waitForMoves(t, s, "g1", 3)

	s.DeleteUndoneMoves("g1", 1)
	moves := waitForMoves(t, s, "g1", 1)
	if moves[0].MoveNumber != 1 {
		t.Errorf("surviving move number = %d, want 1", moves[0].MoveNumber)
	}
}
