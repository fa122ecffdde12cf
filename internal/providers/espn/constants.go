package espn

import "time"

const providerName = "espn"

const (
	defaultSiteBaseURL = "https://site.api.espn.com"
	defaultCoreBaseURL = "https://sports.core.api.espn.com"
	defaultHTTPTimeout = 10 * time.Second

	// scoreboardLimit covers a full week of events in one page.
	scoreboardLimit = 1000

	// regularSeason is the upstream season type used for week windows.
	// 1 is preseason, 2 regular season, 3 postseason.
	regularSeason = 2
)

const (
	weekEndpointFormat = "/v2/sports/football/leagues/nfl/seasons/%d/types/%d/weeks/%d"
	oddsEndpointFormat = "/v2/sports/football/leagues/nfl/events/%s/competitions/%s/odds"

	scoreboardEndpoint  = "/apis/site/v2/sports/football/nfl/scoreboard"
	summaryEndpoint     = "/apis/site/v2/sports/football/nfl/summary"
	teamsEndpoint       = "/apis/site/v2/sports/football/nfl/teams"
	scheduleEndpointFmt = "/apis/site/v2/sports/football/nfl/teams/%s/schedule"
)
