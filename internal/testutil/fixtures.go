package testutil

import (
	domaingames "nfl-data-service/internal/domain/games"
)

// SampleGame returns a minimal game summary fixture with the provided id.
func SampleGame(id string) domaingames.GameSummary {
	return domaingames.GameSummary{
		ID:        id,
		DateTime:  "23-09-10 17:00:00",
		Name:      "Kansas City Chiefs at Los Angeles Chargers",
		ShortName: "KC @ LAC",
		Week:      1,
	}
}

// SampleTodayResponse builds a TodayResponse with a single sample game and date.
func SampleTodayResponse(date string, id string) domaingames.TodayResponse {
	return domaingames.NewTodayResponse(date, []domaingames.GameSummary{SampleGame(id)})
}
