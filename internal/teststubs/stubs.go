package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	domaingames "nfl-data-service/internal/domain/games"
)

// StubProvider is a test double for providers.GameProvider.
type StubProvider struct {
	Games  []domaingames.GameSummary
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchGamesByDate returns configured games and error while tracking calls.
func (s *StubProvider) FetchGamesByDate(ctx context.Context, dateKey string) ([]domaingames.GameSummary, error) {
	_ = ctx
	_ = dateKey
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Games, s.Err
}

// StubSink is a test double for poller.Sink.
type StubSink struct {
	mu       sync.Mutex
	Snapshot map[string][]domaingames.GameSummary // keyed by date
}

// ReplaceGames records the snapshot for verification in tests.
func (s *StubSink) ReplaceGames(date string, games []domaingames.GameSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Snapshot == nil {
		s.Snapshot = make(map[string][]domaingames.GameSummary)
	}
	s.Snapshot[date] = games
}

// Latest returns the snapshot recorded for a date.
func (s *StubSink) Latest(date string) ([]domaingames.GameSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	games, ok := s.Snapshot[date]
	return games, ok
}
