package teams

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTeamNotFound reports that a resolution scan exhausted the registry.
// It is a non-fatal outcome; callers decide how to surface it.
var ErrTeamNotFound = errors.New("team not found")

// AmbiguousCityError reports a team query that names a multi-team city
// without further qualification.
type AmbiguousCityError struct {
	City string
}

func (e *AmbiguousCityError) Error() string {
	return fmt.Sprintf("ambiguous team query %q: city hosts more than one team, qualify with the team name", e.City)
}

// AsAmbiguousCityError attempts to unwrap an error into an AmbiguousCityError.
func AsAmbiguousCityError(err error) (*AmbiguousCityError, bool) {
	var ambErr *AmbiguousCityError
	if errors.As(err, &ambErr) {
		return ambErr, true
	}
	return nil, false
}

// ambiguousCities are bare city tokens that cannot identify a single team.
var ambiguousCities = map[string]struct{}{
	"los angeles": {},
	"new york":    {},
}

// Registry is the insertion-ordered team reference table.
type Registry struct {
	refs []TeamRef
	byID map[string]int
}

// NewRegistry builds a registry, preserving insertion order. It rejects
// duplicate ids and duplicate abbreviations (two entries may share a location).
func NewRegistry(refs ...TeamRef) (Registry, error) {
	byID := make(map[string]int, len(refs))
	byAbbr := make(map[string]struct{}, len(refs))
	for i, ref := range refs {
		if ref.ID == "" {
			return Registry{}, fmt.Errorf("team ref at position %d has no id", i)
		}
		if _, ok := byID[ref.ID]; ok {
			return Registry{}, fmt.Errorf("duplicate team id %q", ref.ID)
		}
		abbr := strings.ToLower(ref.Abbreviation)
		if _, ok := byAbbr[abbr]; ok {
			return Registry{}, fmt.Errorf("duplicate team abbreviation %q", ref.Abbreviation)
		}
		byID[ref.ID] = i
		byAbbr[abbr] = struct{}{}
	}
	return Registry{refs: refs, byID: byID}, nil
}

// Len reports the number of teams in the registry.
func (r Registry) Len() int {
	return len(r.refs)
}

// List returns the reference rows in insertion order.
func (r Registry) List() []TeamRef {
	out := make([]TeamRef, len(r.refs))
	copy(out, r.refs)
	return out
}

// Get returns a team by canonical id.
func (r Registry) Get(id string) (TeamRef, bool) {
	pos, ok := r.byID[id]
	if !ok {
		return TeamRef{}, false
	}
	return r.refs[pos], true
}

// Resolve maps free-text team input (full name, city fragment or
// abbreviation) to a canonical team id. The scan walks the table in
// insertion order and the first alias containing the input wins; there is no
// scoring. Bare multi-team city tokens fail with AmbiguousCityError and
// exhaustion yields ErrTeamNotFound.
func (r Registry) Resolve(input string) (string, error) {
	query := strings.ToLower(strings.TrimSpace(input))
	if query == "" {
		return "", ErrTeamNotFound
	}
	if _, ok := ambiguousCities[query]; ok {
		return "", &AmbiguousCityError{City: query}
	}

	for _, ref := range r.refs {
		for _, alias := range ref.Aliases {
			if strings.Contains(alias, query) {
				return ref.ID, nil
			}
		}
	}
	return "", ErrTeamNotFound
}
