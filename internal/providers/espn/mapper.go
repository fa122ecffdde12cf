package espn

import (
	"nfl-data-service/internal/domain/games"
	"nfl-data-service/internal/domain/odds"
	"nfl-data-service/internal/domain/teams"
	"nfl-data-service/internal/providers"
	"nfl-data-service/internal/timeutil"
)

func mapWeekWindow(raw weekResponse) (games.WeekWindow, error) {
	start, err := timeutil.ParseUpstream(raw.StartDate)
	if err != nil {
		return games.WeekWindow{}, err
	}
	end, err := timeutil.ParseUpstream(raw.EndDate)
	if err != nil {
		return games.WeekWindow{}, err
	}
	return games.WeekWindow{
		StartKey: timeutil.DateKey(start),
		EndKey:   timeutil.DateKey(end),
	}, nil
}

// mapGameSummaries flattens scoreboard events. The week number is the
// caller's value: the windowed scoreboard query does not echo it back.
func mapGameSummaries(events []eventResponse, week int) ([]games.GameSummary, error) {
	summaries := make([]games.GameSummary, 0, len(events))
	for _, ev := range events {
		if ev.ID == "" {
			return nil, &providers.UpstreamShapeError{Provider: providerName, Field: "events[].id"}
		}
		dateTime, err := timeutil.ToCanonicalDateTime(ev.Date)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, games.GameSummary{
			ID:        ev.ID,
			DateTime:  dateTime,
			Name:      ev.Name,
			ShortName: ev.ShortName,
			Week:      week,
		})
	}
	return summaries, nil
}

// mapBoxscore folds each team's statistics list into an ordered collection.
// Duplicate stat names overwrite in place, keeping the first position.
func mapBoxscore(gameID string, raw summaryResponse) ([]games.BoxscoreEntry, error) {
	entries := make([]games.BoxscoreEntry, 0, len(raw.Boxscore.Teams))
	for _, team := range raw.Boxscore.Teams {
		if team.Team.ID == "" {
			return nil, &providers.UpstreamShapeError{Provider: providerName, Field: "boxscore.teams[].team.id"}
		}
		stats := games.NewStatLines()
		for _, stat := range team.Statistics {
			stats.Set(stat.Name, stat.DisplayValue)
		}
		entries = append(entries, games.BoxscoreEntry{
			GameID: gameID,
			TeamID: team.Team.ID,
			Stats:  stats,
		})
	}
	return entries, nil
}

func mapScheduleEntries(raw scheduleResponse) ([]games.ScheduleEntry, error) {
	entries := make([]games.ScheduleEntry, 0, len(raw.Events))
	for _, ev := range raw.Events {
		if ev.ID == "" {
			return nil, &providers.UpstreamShapeError{Provider: providerName, Field: "events[].id"}
		}
		if len(ev.Competitions) == 0 {
			return nil, &providers.UpstreamShapeError{Provider: providerName, Field: "events[].competitions"}
		}
		home, away, err := splitCompetitors(ev.Competitions[0].Competitors)
		if err != nil {
			return nil, err
		}
		dateTime, err := timeutil.ToCanonicalDateTime(ev.Date)
		if err != nil {
			return nil, err
		}
		entries = append(entries, games.ScheduleEntry{
			GameID:         ev.ID,
			DateTime:       dateTime,
			Name:           ev.Name,
			ShortName:      ev.ShortName,
			HomeTeam:       home.Team.DisplayName,
			HomeTeamScore:  scoreValue(home.Score),
			AwayTeam:       away.Team.DisplayName,
			AwayTeamScore:  scoreValue(away.Score),
			Season:         ev.Season.Year,
			SeasonType:     ev.SeasonType.ID,
			SeasonTypeName: ev.SeasonType.Name,
			Week:           ev.Week.Number,
		})
	}
	return entries, nil
}

// splitCompetitors partitions a competitor list by its homeAway tag. A list
// without exactly one home and one away side is malformed upstream data.
func splitCompetitors(competitors []competitorResponse) (competitorResponse, competitorResponse, error) {
	var home, away *competitorResponse
	for i := range competitors {
		switch competitors[i].HomeAway {
		case "home":
			if home != nil {
				return competitorResponse{}, competitorResponse{}, &providers.UpstreamShapeError{
					Provider: providerName,
					Field:    "competitors[].homeAway",
					Message:  "more than one home competitor",
				}
			}
			home = &competitors[i]
		case "away":
			if away != nil {
				return competitorResponse{}, competitorResponse{}, &providers.UpstreamShapeError{
					Provider: providerName,
					Field:    "competitors[].homeAway",
					Message:  "more than one away competitor",
				}
			}
			away = &competitors[i]
		}
	}
	if home == nil || away == nil {
		return competitorResponse{}, competitorResponse{}, &providers.UpstreamShapeError{
			Provider: providerName,
			Field:    "competitors[].homeAway",
			Message:  "expected one home and one away competitor",
		}
	}
	return *home, *away, nil
}

func scoreValue(score *scoreResponse) *float64 {
	if score == nil {
		return nil
	}
	return score.Value
}

func mapTeamRecords(raw teamsResponse) ([]teams.TeamRecord, error) {
	records := make([]teams.TeamRecord, 0, 32)
	for _, sport := range raw.Sports {
		for _, league := range sport.Leagues {
			for _, wrapper := range league.Teams {
				t := wrapper.Team
				if t.ID == "" {
					return nil, &providers.UpstreamShapeError{Provider: providerName, Field: "sports[].leagues[].teams[].team.id"}
				}
				records = append(records, teams.TeamRecord{
					ID:               t.ID,
					Slug:             t.Slug,
					Location:         t.Location,
					Name:             t.Name,
					Nickname:         t.Nickname,
					Abbreviation:     t.Abbreviation,
					DisplayName:      t.DisplayName,
					ShortDisplayName: t.ShortDisplayName,
				})
			}
		}
	}
	return records, nil
}

// mapOdds emits one fixed-shape entry per provider item. A missing side
// object degrades its fields to nil rather than failing.
func mapOdds(gameID string, raw oddsResponse) []odds.Entry {
	entries := make([]odds.Entry, 0, len(raw.Items))
	for _, item := range raw.Items {
		entry := odds.Entry{
			GameID:       gameID,
			ProviderID:   item.Provider.ID,
			ProviderName: item.Provider.Name,
			OverUnder:    item.OverUnder,
			OverOdds:     item.OverOdds,
			UnderOdds:    item.UnderOdds,
			Spread:       item.Spread,
		}
		if item.AwayTeamOdds != nil {
			entry.AwayTeamMoneyLine = item.AwayTeamOdds.MoneyLine
			entry.AwayTeamSpreadOdds = item.AwayTeamOdds.SpreadOdds
		}
		if item.HomeTeamOdds != nil {
			entry.HomeTeamMoneyLine = item.HomeTeamOdds.MoneyLine
			entry.HomeTeamSpreadOdds = item.HomeTeamOdds.SpreadOdds
		}
		entries = append(entries, entry)
	}
	return entries
}
