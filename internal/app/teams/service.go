package teams

import (
	"context"

	domaingames "nfl-data-service/internal/domain/games"
	domainteams "nfl-data-service/internal/domain/teams"
	"nfl-data-service/internal/providers"
)

// Fetcher is the upstream surface the service depends on.
type Fetcher interface {
	providers.TeamProvider
	providers.ScheduleProvider
}

// Service coordinates team operations: identity resolution against the
// static registry, upstream team list and schedule fetches.
type Service struct {
	registry domainteams.Registry
	fetcher  Fetcher
}

// NewService constructs a Service with the provided registry and Fetcher.
func NewService(registry domainteams.Registry, fetcher Fetcher) *Service {
	return &Service{registry: registry, fetcher: fetcher}
}

// Registry exposes the reference table for read-only use.
func (s *Service) Registry() domainteams.Registry {
	return s.registry
}

// Resolve maps free-text team input to its reference row.
func (s *Service) Resolve(input string) (domainteams.TeamRef, error) {
	id, err := s.registry.Resolve(input)
	if err != nil {
		return domainteams.TeamRef{}, err
	}
	ref, ok := s.registry.Get(id)
	if !ok {
		return domainteams.TeamRef{}, domainteams.ErrTeamNotFound
	}
	return ref, nil
}

// Teams fetches the upstream team list as flat identity records.
func (s *Service) Teams(ctx context.Context) ([]domainteams.TeamRecord, error) {
	if s.fetcher == nil {
		return nil, providers.ErrProviderUnavailable
	}
	return s.fetcher.FetchTeams(ctx)
}

// Schedule resolves a team query and fetches that team's season schedule.
func (s *Service) Schedule(ctx context.Context, team string, season int) ([]domaingames.ScheduleEntry, error) {
	if s.fetcher == nil {
		return nil, providers.ErrProviderUnavailable
	}
	id, err := s.registry.Resolve(team)
	if err != nil {
		return nil, err
	}
	return s.fetcher.FetchTeamSchedule(ctx, id, season)
}

// ScheduleByID fetches a schedule for an already-resolved team id.
func (s *Service) ScheduleByID(ctx context.Context, teamID string, season int) ([]domaingames.ScheduleEntry, error) {
	if s.fetcher == nil {
		return nil, providers.ErrProviderUnavailable
	}
	return s.fetcher.FetchTeamSchedule(ctx, teamID, season)
}
