package testutil

import (
	appgames "nfl-data-service/internal/app/games"
	domaingames "nfl-data-service/internal/domain/games"
	"nfl-data-service/internal/store"
)

// NewServiceWithGames builds a games service backed by an in-memory store
// preloaded with a snapshot for the given date.
func NewServiceWithGames(date string, g []domaingames.GameSummary) *appgames.Service {
	ms := store.NewMemoryStore()
	if len(g) > 0 {
		ms.SetGames(date, g)
	}
	return appgames.NewService(ms, nil)
}
