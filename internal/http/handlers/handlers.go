package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	appgames "nfl-data-service/internal/app/games"
	appteams "nfl-data-service/internal/app/teams"
	domainteams "nfl-data-service/internal/domain/teams"
	"nfl-data-service/internal/poller"
	"nfl-data-service/internal/providers"
	"nfl-data-service/internal/timeutil"
)

// Handler wires HTTP routes to the application services.
type Handler struct {
	games    *appgames.Service
	teams    *appteams.Service
	logger   *slog.Logger
	season   int
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. The season is the default used when a
// request does not name one.
func NewHandler(games *appgames.Service, teams *appteams.Service, logger *slog.Logger, season int, statusFn func() poller.Status) *Handler {
	return &Handler{
		games:    games,
		teams:    teams,
		logger:   logger,
		season:   season,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// GamesToday returns the polled scoreboard snapshot.
func (h *Handler) GamesToday(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	payload := h.games.Today()
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served snapshot games", "date", payload.Date, "count", len(payload.Games))
	}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// WeekGames returns all games of a season week.
func (h *Handler) WeekGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	week, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil || week < 1 {
		writeError(w, r, nethttp.StatusBadRequest, "week query parameter is required", h.logger)
		return
	}
	season := h.season
	if raw := r.URL.Query().Get("season"); raw != "" {
		season, err = strconv.Atoi(raw)
		if err != nil || season < 1 {
			writeError(w, r, nethttp.StatusBadRequest, "invalid season", h.logger)
			return
		}
	}

	payload, err := h.games.WeekGames(r.Context(), season, week)
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// FindGame locates the game a team plays on a date.
func (h *Handler) FindGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	date := r.URL.Query().Get("date")
	team := r.URL.Query().Get("team")
	if date == "" || team == "" {
		writeError(w, r, nethttp.StatusBadRequest, "date and team query parameters are required", h.logger)
		return
	}

	id, err := h.games.FindGame(r.Context(), date, team)
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"gameId": id}, h.logger)
}

// GameRoutes dispatches /games/{id}, /games/{id}/boxscore and /games/{id}/odds.
func (h *Handler) GameRoutes(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, rest, ok := splitResourcePath(r.URL.Path, "/games/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	switch rest {
	case "":
		game, found := h.games.GameByID(id)
		if !found {
			writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, game, h.logger)
	case "boxscore":
		entries, err := h.games.Boxscore(r.Context(), id)
		if err != nil {
			h.writeUpstreamError(w, r, err)
			return
		}
		writeJSON(w, nethttp.StatusOK, entries, h.logger)
	case "odds":
		payload, err := h.games.Odds(r.Context(), id)
		if err != nil {
			h.writeUpstreamError(w, r, err)
			return
		}
		writeJSON(w, nethttp.StatusOK, payload, h.logger)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Teams returns the upstream team list as flat identity records.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	records, err := h.teams.Teams(r.Context())
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, records, h.logger)
}

// ResolveTeam maps free-text team input to its reference row.
func (h *Handler) ResolveTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, r, nethttp.StatusBadRequest, "q query parameter is required", h.logger)
		return
	}

	ref, err := h.teams.Resolve(query)
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, ref, h.logger)
}

// TeamRoutes dispatches /teams/{id}/schedule. The segment accepts either an
// upstream team id or free-text team input, which resolves through the
// registry first.
func (h *Handler) TeamRoutes(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, rest, ok := splitResourcePath(r.URL.Path, "/teams/")
	if !ok || rest != "schedule" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}

	season := h.season
	if raw := r.URL.Query().Get("season"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, r, nethttp.StatusBadRequest, "invalid season", h.logger)
			return
		}
		season = parsed
	}

	fetch := h.teams.ScheduleByID
	if !allDigits(id) {
		fetch = h.teams.Schedule
	}
	entries, err := fetch(r.Context(), id, season)
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, entries, h.logger)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// writeUpstreamError translates domain and provider failures to HTTP statuses.
func (h *Handler) writeUpstreamError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	switch {
	case errors.Is(err, domainteams.ErrTeamNotFound):
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
	case errors.Is(err, providers.ErrGameNotFound):
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
	case errors.Is(err, providers.ErrProviderUnavailable):
		writeError(w, r, nethttp.StatusServiceUnavailable, "provider unavailable", h.logger)
	default:
		if ambErr, ok := domainteams.AsAmbiguousCityError(err); ok {
			writeError(w, r, nethttp.StatusBadRequest, ambErr.Error(), h.logger)
			return
		}
		var fmtErr *timeutil.FormatError
		if errors.As(err, &fmtErr) {
			writeError(w, r, nethttp.StatusBadRequest, fmtErr.Error(), h.logger)
			return
		}
		if _, ok := providers.AsRateLimitError(err); ok {
			writeError(w, r, nethttp.StatusServiceUnavailable, "upstream rate limited", h.logger)
			return
		}
		if logger := loggerFromContext(r, h.logger); logger != nil {
			logger.Error("upstream request failed", "err", err)
		}
		writeError(w, r, nethttp.StatusBadGateway, "upstream unavailable", h.logger)
	}
}

// splitResourcePath extracts the id and trailing sub-resource from a path
// like /games/{id}/boxscore.
func splitResourcePath(path, prefix string) (id, rest string, ok bool) {
	raw := strings.TrimPrefix(path, prefix)
	if raw == "" || raw == "/" {
		return "", "", false
	}
	unescaped, err := url.PathUnescape(raw)
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(unescaped, "/", 2)
	id = parts[0]
	if strings.TrimSpace(id) == "" {
		return "", "", false
	}
	if len(parts) == 2 {
		rest = strings.TrimSuffix(parts[1], "/")
	}
	return id, rest, true
}
