package http

import (
	nethttp "net/http"

	"nfl-data-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/games", handler.WeekGames)
	mux.HandleFunc("/games/today", handler.GamesToday)
	mux.HandleFunc("/games/find", handler.FindGame)
	mux.HandleFunc("/games/", handler.GameRoutes)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/teams/resolve", handler.ResolveTeam)
	mux.HandleFunc("/teams/", handler.TeamRoutes)
	return mux
}
