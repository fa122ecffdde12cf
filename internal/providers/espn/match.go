package espn

import (
	"regexp"
	"strings"
)

var nonWordRun = regexp.MustCompile(`\W+`)

// matchGameID locates the game for a team query among a day's events.
// Events are scanned last-to-first and the first match wins; the scan order
// mirrors the reference feed behavior and is not a ranking.
func matchGameID(events []eventResponse, team string) (string, bool) {
	query := strings.ToLower(strings.TrimSpace(team))
	if query == "" {
		return "", false
	}
	for i := len(events) - 1; i >= 0; i-- {
		if eventMatches(events[i], query) {
			return events[i].ID, true
		}
	}
	return "", false
}

// eventMatches tests two independent predicates: the query as a substring or
// whole token of the display name, or the query as a token of the short name
// ("chargers" matches "Kansas City Chiefs at Los Angeles Chargers", "lac"
// matches "KC @ LAC").
func eventMatches(ev eventResponse, query string) bool {
	name := strings.ToLower(ev.Name)
	if strings.Contains(name, query) {
		return true
	}
	if hasToken(name, query) {
		return true
	}
	return hasToken(strings.ToLower(ev.ShortName), query)
}

func hasToken(text, query string) bool {
	for _, token := range nonWordRun.Split(text, -1) {
		if token != "" && token == query {
			return true
		}
	}
	return false
}
