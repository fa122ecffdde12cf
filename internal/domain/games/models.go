package games

// WeekWindow is the date span of a regular-season week, already rendered as
// YYYYMMDD query keys. Derived per (season, week) pair and never persisted.
type WeekWindow struct {
	StartKey string `json:"startDate"`
	EndKey   string `json:"endDate"`
}

// Range renders the window as the "{start}-{end}" form the scoreboard
// endpoint expects in its dates parameter.
func (w WeekWindow) Range() string {
	return w.StartKey + "-" + w.EndKey
}

// GameSummary is one scoreboard event flattened to the canonical shape.
// Week carries the caller-supplied week number; the upstream window query
// does not echo it back.
type GameSummary struct {
	ID        string `json:"id"`
	DateTime  string `json:"dateTime"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Week      int    `json:"week"`
}

// ScheduleEntry is one game of a team's season schedule.
// Score pointers stay nil before kickoff.
type ScheduleEntry struct {
	GameID         string   `json:"gameId"`
	DateTime       string   `json:"dateTime"`
	Name           string   `json:"name"`
	ShortName      string   `json:"shortName"`
	HomeTeam       string   `json:"homeTeam"`
	HomeTeamScore  *float64 `json:"homeTeamScore"`
	AwayTeam       string   `json:"awayTeam"`
	AwayTeamScore  *float64 `json:"awayTeamScore"`
	Season         int      `json:"season"`
	SeasonType     string   `json:"seasonType"`
	SeasonTypeName string   `json:"seasonTypeName"`
	Week           int      `json:"week"`
}

// BoxscoreEntry holds one team's statistics for a game, in upstream emission order.
type BoxscoreEntry struct {
	GameID string    `json:"gameId"`
	TeamID string    `json:"teamId"`
	Stats  StatLines `json:"stats"`
}

// WeekResponse is the payload returned by /games?season&week.
type WeekResponse struct {
	Season int           `json:"season"`
	Week   int           `json:"week"`
	Games  []GameSummary `json:"games"`
}

// TodayResponse is the payload returned by /games/today.
type TodayResponse struct {
	Date  string        `json:"date"`
	Games []GameSummary `json:"games"`
}

// NewTodayResponse builds a TodayResponse payload.
func NewTodayResponse(date string, games []GameSummary) TodayResponse {
	return TodayResponse{
		Date:  date,
		Games: games,
	}
}
