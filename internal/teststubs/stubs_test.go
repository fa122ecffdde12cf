package teststubs

import (
	"context"
	"errors"
	"testing"

	domaingames "nfl-data-service/internal/domain/games"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Games: []domaingames.GameSummary{{ID: "g1"}}, Err: err}
	if _, got := p.FetchGamesByDate(context.Background(), "20240101"); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
}

func TestStubSinkRecordsSnapshots(t *testing.T) {
	s := &StubSink{}
	s.ReplaceGames("20240101", []domaingames.GameSummary{{ID: "g1"}})

	games, ok := s.Latest("20240101")
	if !ok || len(games) != 1 || games[0].ID != "g1" {
		t.Fatalf("expected recorded snapshot, got %v ok=%v", games, ok)
	}
	if _, ok := s.Latest("20240102"); ok {
		t.Fatal("expected miss for unrecorded date")
	}
}
