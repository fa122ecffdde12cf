package poller

import (
	"context"
	"testing"
	"time"

	domaingames "nfl-data-service/internal/domain/games"
	"nfl-data-service/internal/teststubs"
)

func BenchmarkPollerFetchOnce(b *testing.B) {
	provider := &teststubs.StubProvider{
		Games: []domaingames.GameSummary{
			{ID: "bench-game", DateTime: "23-09-10 17:00:00", Name: "Kansas City Chiefs at Los Angeles Chargers", ShortName: "KC @ LAC"},
		},
	}
	p := New(provider, &teststubs.StubSink{}, nil, nil, time.Second)
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.fetchOnce(ctx)
	}
}
