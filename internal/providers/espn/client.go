package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nfl-data-service/internal/domain/games"
	"nfl-data-service/internal/domain/odds"
	"nfl-data-service/internal/domain/teams"
	"nfl-data-service/internal/providers"
	"nfl-data-service/internal/timeutil"
)

// Config controls how the ESPN client reaches the upstream API.
type Config struct {
	SiteBaseURL string
	CoreBaseURL string
	HTTPClient  *http.Client
}

// Client fetches NFL data from the ESPN web API and flattens it into
// canonical records. Every operation issues one fetch, except FetchWeekGames
// which resolves the week window first. Operations surface upstream failures
// unretried; retry policy belongs to callers.
type Client struct {
	siteBaseURL string
	coreBaseURL string
	httpClient  httpDoer
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		siteBaseURL: normalizeBaseURL(cfg.SiteBaseURL, defaultSiteBaseURL),
		coreBaseURL: normalizeBaseURL(cfg.CoreBaseURL, defaultCoreBaseURL),
		httpClient:  resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchWeekWindow resolves the date span of a regular-season week.
func (c *Client) FetchWeekWindow(ctx context.Context, season, week int) (games.WeekWindow, error) {
	endpoint := c.coreBaseURL + fmt.Sprintf(weekEndpointFormat, season, regularSeason, week)

	var payload weekResponse
	if err := c.get(ctx, endpoint, nil, &payload); err != nil {
		return games.WeekWindow{}, err
	}
	return mapWeekWindow(payload)
}

// FetchWeekGames retrieves all games of a season week. The window's
// "{start}-{end}" key range is passed verbatim as the dates parameter.
func (c *Client) FetchWeekGames(ctx context.Context, season, week int) ([]games.GameSummary, error) {
	window, err := c.FetchWeekWindow(ctx, season, week)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(scoreboardLimit))
	query.Set("dates", window.Range())

	var payload scoreboardResponse
	if err := c.get(ctx, c.siteBaseURL+scoreboardEndpoint, query, &payload); err != nil {
		return nil, err
	}
	return mapGameSummaries(payload.Events, week)
}

// FetchGamesByDate retrieves the scoreboard for a single YYYYMMDD date key.
// The summaries carry week 0: a date query does not identify a week.
func (c *Client) FetchGamesByDate(ctx context.Context, dateKey string) ([]games.GameSummary, error) {
	key, err := timeutil.NormalizeDateKey(dateKey)
	if err != nil {
		return nil, err
	}

	payload, err := c.fetchScoreboard(ctx, key)
	if err != nil {
		return nil, err
	}
	return mapGameSummaries(payload.Events, 0)
}

// FetchBoxscore retrieves per-team statistics for a game.
func (c *Client) FetchBoxscore(ctx context.Context, gameID string) ([]games.BoxscoreEntry, error) {
	query := url.Values{}
	query.Set("event", gameID)

	var payload summaryResponse
	if err := c.get(ctx, c.siteBaseURL+summaryEndpoint, query, &payload); err != nil {
		return nil, err
	}
	return mapBoxscore(gameID, payload)
}

// FindGameID locates the game a team plays on a date. The team parameter
// accepts a full name, partial name or abbreviation.
func (c *Client) FindGameID(ctx context.Context, dateKey, team string) (string, error) {
	key, err := timeutil.NormalizeDateKey(dateKey)
	if err != nil {
		return "", err
	}

	payload, err := c.fetchScoreboard(ctx, key)
	if err != nil {
		return "", err
	}

	id, ok := matchGameID(payload.Events, team)
	if !ok {
		return "", providers.ErrGameNotFound
	}
	return id, nil
}

// FetchTeamSchedule retrieves a team's schedule for a season.
func (c *Client) FetchTeamSchedule(ctx context.Context, teamID string, season int) ([]games.ScheduleEntry, error) {
	endpoint := c.siteBaseURL + fmt.Sprintf(scheduleEndpointFmt, teamID)

	query := url.Values{}
	if season > 0 {
		query.Set("season", strconv.Itoa(season))
	}

	var payload scheduleResponse
	if err := c.get(ctx, endpoint, query, &payload); err != nil {
		return nil, err
	}
	return mapScheduleEntries(payload)
}

// FetchTeams retrieves the league team list as flat identity records.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.TeamRecord, error) {
	var payload teamsResponse
	if err := c.get(ctx, c.siteBaseURL+teamsEndpoint, nil, &payload); err != nil {
		return nil, err
	}
	return mapTeamRecords(payload)
}

// FetchOdds retrieves betting lines for a game. The odds resource lives on
// the core host under the event's competition, which shares the event id.
func (c *Client) FetchOdds(ctx context.Context, gameID string) ([]odds.Entry, error) {
	endpoint := c.coreBaseURL + fmt.Sprintf(oddsEndpointFormat, gameID, gameID)

	var payload oddsResponse
	if err := c.get(ctx, endpoint, nil, &payload); err != nil {
		return nil, err
	}
	return mapOdds(gameID, payload), nil
}

func (c *Client) fetchScoreboard(ctx context.Context, dateKey string) (scoreboardResponse, error) {
	query := url.Values{}
	query.Set("dates", dateKey)

	var payload scoreboardResponse
	if err := c.get(ctx, c.siteBaseURL+scoreboardEndpoint, query, &payload); err != nil {
		return scoreboardResponse{}, err
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return 0
}
