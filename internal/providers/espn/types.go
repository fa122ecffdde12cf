package espn

// Wire shapes for the upstream resources. Field names are upstream contract.

type weekResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Name         string                `json:"name"`
	ShortName    string                `json:"shortName"`
	Season       seasonResponse        `json:"season"`
	SeasonType   seasonTypeResponse    `json:"seasonType"`
	Week         weekNumberResponse    `json:"week"`
	Competitions []competitionResponse `json:"competitions"`
}

type seasonResponse struct {
	Year int `json:"year"`
}

type seasonTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type weekNumberResponse struct {
	Number int `json:"number"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
}

type competitorResponse struct {
	HomeAway string           `json:"homeAway"`
	ID       string           `json:"id"`
	Team     teamNameResponse `json:"team"`
	Score    *scoreResponse   `json:"score"`
}

type teamNameResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Score is absent before kickoff; the pointer keeps that distinguishable from zero.
type scoreResponse struct {
	Value *float64 `json:"value"`
}

type summaryResponse struct {
	Boxscore boxscoreResponse `json:"boxscore"`
}

type boxscoreResponse struct {
	Teams []boxscoreTeamResponse `json:"teams"`
}

type boxscoreTeamResponse struct {
	Team       teamNameResponse `json:"team"`
	Statistics []statResponse   `json:"statistics"`
}

type statResponse struct {
	Name         string `json:"name"`
	DisplayValue string `json:"displayValue"`
}

type scheduleResponse struct {
	Events []eventResponse `json:"events"`
}

type teamsResponse struct {
	Sports []sportResponse `json:"sports"`
}

type sportResponse struct {
	Leagues []leagueResponse `json:"leagues"`
}

type leagueResponse struct {
	Teams []teamWrapperResponse `json:"teams"`
}

type teamWrapperResponse struct {
	Team teamDetailResponse `json:"team"`
}

type teamDetailResponse struct {
	ID               string `json:"id"`
	Slug             string `json:"slug"`
	Location         string `json:"location"`
	Name             string `json:"name"`
	Nickname         string `json:"nickname"`
	Abbreviation     string `json:"abbreviation"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
}

type oddsResponse struct {
	Items []oddsItemResponse `json:"items"`
}

type oddsItemResponse struct {
	Provider     oddsProviderResponse `json:"provider"`
	OverUnder    *float64             `json:"overUnder"`
	OverOdds     *float64             `json:"overOdds"`
	UnderOdds    *float64             `json:"underOdds"`
	Spread       *float64             `json:"spread"`
	AwayTeamOdds *sideOddsResponse    `json:"awayTeamOdds"`
	HomeTeamOdds *sideOddsResponse    `json:"homeTeamOdds"`
}

type oddsProviderResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type sideOddsResponse struct {
	MoneyLine  *int     `json:"moneyLine"`
	SpreadOdds *float64 `json:"spreadOdds"`
}
