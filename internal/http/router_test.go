package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	appgames "nfl-data-service/internal/app/games"
	appteams "nfl-data-service/internal/app/teams"
	domainteams "nfl-data-service/internal/domain/teams"
	"nfl-data-service/internal/http/handlers"
	"nfl-data-service/internal/providers/fixture"
	"nfl-data-service/internal/store"
)

func newTestRouter() http.Handler {
	provider := fixture.New()
	games := appgames.NewService(store.NewMemoryStore(), provider)
	teams := appteams.NewService(domainteams.NFL(), provider)
	return NewRouter(handlers.NewHandler(games, teams, nil, 2023, nil))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		path   string
		status int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/games?week=1", http.StatusOK},
		{"/games/today", http.StatusOK},
		{"/games/find?date=20240115&team=chargers", http.StatusOK},
		{"/games/foo", http.StatusNotFound}, // known route with missing game
		{"/games/fixture-401/boxscore", http.StatusOK},
		{"/games/fixture-401/odds", http.StatusOK},
		{"/teams", http.StatusOK},
		{"/teams/resolve?q=chargers", http.StatusOK},
		{"/teams/24/schedule", http.StatusOK},
	}

	for _, tt := range cases {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != tt.status {
			t.Fatalf("route %s expected status %d, got %d", tt.path, tt.status, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}
