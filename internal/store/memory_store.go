package store

import (
	"sync"

	"nfl-data-service/internal/domain/games"
)

// MemoryStore keeps a thread-safe snapshot of the latest polled scoreboard.
// The snapshot preserves upstream feed order.
type MemoryStore struct {
	mu    sync.RWMutex
	date  string
	games []games.GameSummary
	byID  map[string]int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]int),
	}
}

// ListGames returns the snapshot date and a copy of the current games slice.
func (s *MemoryStore) ListGames() (string, []games.GameSummary) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]games.GameSummary, len(s.games))
	copy(result, s.games)
	return s.date, result
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (games.GameSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.byID[id]
	if !ok {
		return games.GameSummary{}, false
	}
	return s.games[pos], true
}

// SetGames replaces the snapshot with a new date's games.
func (s *MemoryStore) SetGames(date string, items []games.GameSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.date = date
	s.games = make([]games.GameSummary, len(items))
	copy(s.games, items)
	s.byID = make(map[string]int, len(items))
	for i, g := range items {
		s.byID[g.ID] = i
	}
}
