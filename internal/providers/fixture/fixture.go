package fixture

import (
	"context"
	"strings"
	"time"

	domaingames "nfl-data-service/internal/domain/games"
	"nfl-data-service/internal/domain/odds"
	"nfl-data-service/internal/domain/teams"
	"nfl-data-service/internal/providers"
	"nfl-data-service/internal/timeutil"
)

// Provider returns a static set of NFL data useful for local boot and tests.
// It implements the full DataProvider surface with deterministic records.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchGamesByDate returns a deterministic pair of example games for the date key.
func (p *Provider) FetchGamesByDate(ctx context.Context, dateKey string) ([]domaingames.GameSummary, error) {
	_ = ctx

	day := p.now().UTC()
	if dateKey != "" {
		if parsed, err := time.Parse(timeutil.DateKeyLayout, dateKey); err == nil {
			day = parsed
		}
	}

	kickoff := time.Date(day.Year(), day.Month(), day.Day(), 17, 0, 0, 0, time.UTC)
	return []domaingames.GameSummary{
		{
			ID:        "fixture-401",
			DateTime:  kickoff.Format(timeutil.CanonicalLayout),
			Name:      "Kansas City Chiefs at Los Angeles Chargers",
			ShortName: "KC @ LAC",
		},
		{
			ID:        "fixture-402",
			DateTime:  kickoff.Add(3 * time.Hour).Format(timeutil.CanonicalLayout),
			Name:      "Buffalo Bills at New York Jets",
			ShortName: "BUF @ NYJ",
		},
	}, nil
}

// FetchWeekWindow returns a three-day window anchored on the current date.
func (p *Provider) FetchWeekWindow(ctx context.Context, season, week int) (domaingames.WeekWindow, error) {
	_ = ctx
	_ = season
	_ = week

	start := p.now().UTC()
	return domaingames.WeekWindow{
		StartKey: timeutil.DateKey(start),
		EndKey:   timeutil.DateKey(start.AddDate(0, 0, 2)),
	}, nil
}

// FetchWeekGames returns the example games stamped with the requested week.
func (p *Provider) FetchWeekGames(ctx context.Context, season, week int) ([]domaingames.GameSummary, error) {
	_ = season

	games, err := p.FetchGamesByDate(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range games {
		games[i].Week = week
	}
	return games, nil
}

// FetchBoxscore returns a deterministic two-team stat sheet.
func (p *Provider) FetchBoxscore(ctx context.Context, gameID string) ([]domaingames.BoxscoreEntry, error) {
	_ = ctx

	away := domaingames.NewStatLines()
	away.Set("totalYards", "389")
	away.Set("turnovers", "1")

	home := domaingames.NewStatLines()
	home.Set("totalYards", "310")
	home.Set("turnovers", "2")

	return []domaingames.BoxscoreEntry{
		{GameID: gameID, TeamID: "12", Stats: away},
		{GameID: gameID, TeamID: "24", Stats: home},
	}, nil
}

// FindGameID matches against the deterministic game set.
func (p *Provider) FindGameID(ctx context.Context, dateKey, team string) (string, error) {
	games, err := p.FetchGamesByDate(ctx, dateKey)
	if err != nil {
		return "", err
	}
	registry := teams.NFL()
	id, err := registry.Resolve(team)
	if err != nil {
		return "", providers.ErrGameNotFound
	}
	ref, _ := registry.Get(id)
	for i := len(games) - 1; i >= 0; i-- {
		if containsFold(games[i].Name, ref.Name) || containsFold(games[i].ShortName, ref.Abbreviation) {
			return games[i].ID, nil
		}
	}
	return "", providers.ErrGameNotFound
}

// FetchTeamSchedule returns one played and one upcoming game.
func (p *Provider) FetchTeamSchedule(ctx context.Context, teamID string, season int) ([]domaingames.ScheduleEntry, error) {
	_ = ctx
	_ = teamID

	played := 24.0
	conceded := 17.0
	day := p.now().UTC()
	first := time.Date(day.Year(), day.Month(), day.Day(), 17, 0, 0, 0, time.UTC)

	return []domaingames.ScheduleEntry{
		{
			GameID:         "fixture-401",
			DateTime:       first.Format(timeutil.CanonicalLayout),
			Name:           "Kansas City Chiefs at Los Angeles Chargers",
			ShortName:      "KC @ LAC",
			HomeTeam:       "Los Angeles Chargers",
			HomeTeamScore:  &conceded,
			AwayTeam:       "Kansas City Chiefs",
			AwayTeamScore:  &played,
			Season:         season,
			SeasonType:     "2",
			SeasonTypeName: "Regular Season",
			Week:           1,
		},
		{
			GameID:         "fixture-402",
			DateTime:       first.AddDate(0, 0, 7).Format(timeutil.CanonicalLayout),
			Name:           "Los Angeles Chargers at Tennessee Titans",
			ShortName:      "LAC @ TEN",
			HomeTeam:       "Tennessee Titans",
			AwayTeam:       "Los Angeles Chargers",
			Season:         season,
			SeasonType:     "2",
			SeasonTypeName: "Regular Season",
			Week:           2,
		},
	}, nil
}

// FetchTeams returns identity records derived from the static registry.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.TeamRecord, error) {
	_ = ctx

	refs := teams.NFL().List()
	records := make([]teams.TeamRecord, 0, len(refs))
	for _, ref := range refs {
		records = append(records, teams.TeamRecord{
			ID:               ref.ID,
			Location:         ref.Location,
			Name:             ref.Name,
			Nickname:         ref.Name,
			Abbreviation:     ref.Abbreviation,
			DisplayName:      ref.DisplayName(),
			ShortDisplayName: ref.Name,
		})
	}
	return records, nil
}

// FetchOdds returns one deterministic line with the home side absent.
func (p *Provider) FetchOdds(ctx context.Context, gameID string) ([]odds.Entry, error) {
	_ = ctx

	overUnder := 47.5
	spread := -3.0
	awayMoneyLine := 135
	awaySpreadOdds := -110.0

	return []odds.Entry{
		{
			GameID:             gameID,
			ProviderID:         "fixture",
			ProviderName:       "Fixture Book",
			OverUnder:          &overUnder,
			Spread:             &spread,
			AwayTeamMoneyLine:  &awayMoneyLine,
			AwayTeamSpreadOdds: &awaySpreadOdds,
		},
	}, nil
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
