package games

import (
	"context"

	domaingames "nfl-data-service/internal/domain/games"
	"nfl-data-service/internal/domain/odds"
	"nfl-data-service/internal/providers"
)

// Store defines the contract for the polled scoreboard snapshot.
type Store interface {
	ListGames() (string, []domaingames.GameSummary)
	GetGame(id string) (domaingames.GameSummary, bool)
	SetGames(date string, games []domaingames.GameSummary)
}

// Fetcher is the per-request upstream surface the service depends on.
type Fetcher interface {
	providers.WeekProvider
	providers.BoxscoreProvider
	providers.OddsProvider
	providers.GameFinder
}

// Service coordinates game operations: snapshot reads come from the Store,
// everything else goes straight to the upstream provider.
type Service struct {
	store   Store
	fetcher Fetcher
}

// NewService constructs a Service with the provided Store and Fetcher.
func NewService(store Store, fetcher Fetcher) *Service {
	return &Service{store: store, fetcher: fetcher}
}

// Today returns the polled snapshot as a response payload.
func (s *Service) Today() domaingames.TodayResponse {
	date, list := s.store.ListGames()
	return domaingames.NewTodayResponse(date, list)
}

// GameByID returns a single snapshot game if present.
func (s *Service) GameByID(id string) (domaingames.GameSummary, bool) {
	return s.store.GetGame(id)
}

// ReplaceGames swaps the snapshot with a new date's games.
func (s *Service) ReplaceGames(date string, games []domaingames.GameSummary) {
	s.store.SetGames(date, games)
}

// WeekGames fetches all games of a season week.
func (s *Service) WeekGames(ctx context.Context, season, week int) (domaingames.WeekResponse, error) {
	if s.fetcher == nil {
		return domaingames.WeekResponse{}, providers.ErrProviderUnavailable
	}
	list, err := s.fetcher.FetchWeekGames(ctx, season, week)
	if err != nil {
		return domaingames.WeekResponse{}, err
	}
	return domaingames.WeekResponse{Season: season, Week: week, Games: list}, nil
}

// Boxscore fetches per-team statistics for a game.
func (s *Service) Boxscore(ctx context.Context, gameID string) ([]domaingames.BoxscoreEntry, error) {
	if s.fetcher == nil {
		return nil, providers.ErrProviderUnavailable
	}
	return s.fetcher.FetchBoxscore(ctx, gameID)
}

// Odds fetches betting lines for a game.
func (s *Service) Odds(ctx context.Context, gameID string) (odds.Response, error) {
	if s.fetcher == nil {
		return odds.Response{}, providers.ErrProviderUnavailable
	}
	lines, err := s.fetcher.FetchOdds(ctx, gameID)
	if err != nil {
		return odds.Response{}, err
	}
	return odds.Response{GameID: gameID, Lines: lines}, nil
}

// FindGame locates the game a team plays on a date.
func (s *Service) FindGame(ctx context.Context, dateKey, team string) (string, error) {
	if s.fetcher == nil {
		return "", providers.ErrProviderUnavailable
	}
	return s.fetcher.FindGameID(ctx, dateKey, team)
}
