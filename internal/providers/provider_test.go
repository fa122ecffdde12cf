package providers

import (
	"context"
	"testing"

	domaingames "nfl-data-service/internal/domain/games"
	"nfl-data-service/internal/domain/odds"
	"nfl-data-service/internal/domain/teams"
)

type testProvider struct{}

func (t *testProvider) FetchGamesByDate(ctx context.Context, dateKey string) ([]domaingames.GameSummary, error) {
	return nil, nil
}

func (t *testProvider) FetchWeekWindow(ctx context.Context, season, week int) (domaingames.WeekWindow, error) {
	return domaingames.WeekWindow{}, nil
}

func (t *testProvider) FetchWeekGames(ctx context.Context, season, week int) ([]domaingames.GameSummary, error) {
	return nil, nil
}

func (t *testProvider) FetchBoxscore(ctx context.Context, gameID string) ([]domaingames.BoxscoreEntry, error) {
	return nil, nil
}

func (t *testProvider) FetchTeamSchedule(ctx context.Context, teamID string, season int) ([]domaingames.ScheduleEntry, error) {
	return nil, nil
}

func (t *testProvider) FetchTeams(ctx context.Context) ([]teams.TeamRecord, error) {
	return nil, nil
}

func (t *testProvider) FetchOdds(ctx context.Context, gameID string) ([]odds.Entry, error) {
	return nil, nil
}

func (t *testProvider) FindGameID(ctx context.Context, dateKey, team string) (string, error) {
	return "", ErrGameNotFound
}

func TestDataProviderInterfaceImplemented(t *testing.T) {
	var _ DataProvider = (*testProvider)(nil)
	var _ GameProvider = (*testProvider)(nil)
	var _ GameFinder = (*testProvider)(nil)
}
