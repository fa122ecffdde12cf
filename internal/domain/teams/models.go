package teams

import "strings"

// TeamRef is one row of the static team reference table. Reference data is
// loaded once at startup and never mutated; resolution happens against the
// lower-cased alias strings.
type TeamRef struct {
	ID           string   `json:"id"`
	Location     string   `json:"location"`
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation"`
	Aliases      []string `json:"-"`
}

// NewTeamRef builds a TeamRef with its alias set derived from the identity
// fields: full display name, nickname, abbreviation and location.
func NewTeamRef(id, location, name, abbreviation string) TeamRef {
	return TeamRef{
		ID:           id,
		Location:     location,
		Name:         name,
		Abbreviation: abbreviation,
		Aliases: []string{
			strings.ToLower(location + " " + name),
			strings.ToLower(name),
			strings.ToLower(abbreviation),
			strings.ToLower(location),
		},
	}
}

// DisplayName renders the full "Location Name" form.
func (t TeamRef) DisplayName() string {
	return t.Location + " " + t.Name
}

// TeamRecord is the flat identity record produced from the upstream team
// list. Unlike TeamRef it carries upstream display fields verbatim.
type TeamRecord struct {
	ID               string `json:"id"`
	Slug             string `json:"slug"`
	Location         string `json:"location"`
	Name             string `json:"name"`
	Nickname         string `json:"nickname"`
	Abbreviation     string `json:"abbreviation"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
}
