package odds

// Entry is one betting line flattened from the upstream odds resource.
// Fields a provider does not offer are null in JSON, never omitted.
type Entry struct {
	GameID             string   `json:"gameId"`
	ProviderID         string   `json:"providerId"`
	ProviderName       string   `json:"providerName"`
	OverUnder          *float64 `json:"overUnder"`
	OverOdds           *float64 `json:"overOdds"`
	UnderOdds          *float64 `json:"underOdds"`
	Spread             *float64 `json:"spread"`
	AwayTeamMoneyLine  *int     `json:"awayTeamMoneyLine"`
	AwayTeamSpreadOdds *float64 `json:"awayTeamSpreadOdds"`
	HomeTeamMoneyLine  *int     `json:"homeTeamMoneyLine"`
	HomeTeamSpreadOdds *float64 `json:"homeTeamSpreadOdds"`
}

// Response is the payload returned by /games/{id}/odds.
type Response struct {
	GameID string  `json:"gameId"`
	Lines  []Entry `json:"lines"`
}
