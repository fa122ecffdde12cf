package providers

import (
	"context"

	domaingames "nfl-data-service/internal/domain/games"
	"nfl-data-service/internal/domain/odds"
	"nfl-data-service/internal/domain/teams"
)

// GameProvider defines how upstream scoreboard data is fetched and normalized.
// The dateKey parameter is a YYYYMMDD string naming which day's games to fetch.
type GameProvider interface {
	FetchGamesByDate(ctx context.Context, dateKey string) ([]domaingames.GameSummary, error)
}

// WeekProvider resolves week windows and fetches a week's games.
type WeekProvider interface {
	FetchWeekWindow(ctx context.Context, season, week int) (domaingames.WeekWindow, error)
	FetchWeekGames(ctx context.Context, season, week int) ([]domaingames.GameSummary, error)
}

// BoxscoreProvider fetches per-team statistics for a finished or live game.
type BoxscoreProvider interface {
	FetchBoxscore(ctx context.Context, gameID string) ([]domaingames.BoxscoreEntry, error)
}

// ScheduleProvider fetches a team's season schedule.
type ScheduleProvider interface {
	FetchTeamSchedule(ctx context.Context, teamID string, season int) ([]domaingames.ScheduleEntry, error)
}

// TeamProvider fetches the upstream team list as flat identity records.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.TeamRecord, error)
}

// OddsProvider fetches betting lines for a game.
type OddsProvider interface {
	FetchOdds(ctx context.Context, gameID string) ([]odds.Entry, error)
}

// GameFinder locates a single game id for a team on a date.
// A search that exhausts the day's events returns ErrGameNotFound.
type GameFinder interface {
	FindGameID(ctx context.Context, dateKey, team string) (string, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GameProvider
	WeekProvider
	BoxscoreProvider
	ScheduleProvider
	TeamProvider
	OddsProvider
	GameFinder
}
