package teams

// nflRefs is the static NFL reference table, keyed by ESPN team ids.
// Ordered alphabetically by location; resolution scans in this order.
var nflRefs = []TeamRef{
	NewTeamRef("22", "Arizona", "Cardinals", "ARI"),
	NewTeamRef("1", "Atlanta", "Falcons", "ATL"),
	NewTeamRef("33", "Baltimore", "Ravens", "BAL"),
	NewTeamRef("2", "Buffalo", "Bills", "BUF"),
	NewTeamRef("29", "Carolina", "Panthers", "CAR"),
	NewTeamRef("3", "Chicago", "Bears", "CHI"),
	NewTeamRef("4", "Cincinnati", "Bengals", "CIN"),
	NewTeamRef("5", "Cleveland", "Browns", "CLE"),
	NewTeamRef("6", "Dallas", "Cowboys", "DAL"),
	NewTeamRef("7", "Denver", "Broncos", "DEN"),
	NewTeamRef("8", "Detroit", "Lions", "DET"),
	NewTeamRef("9", "Green Bay", "Packers", "GB"),
	NewTeamRef("34", "Houston", "Texans", "HOU"),
	NewTeamRef("11", "Indianapolis", "Colts", "IND"),
	NewTeamRef("30", "Jacksonville", "Jaguars", "JAX"),
	NewTeamRef("12", "Kansas City", "Chiefs", "KC"),
	NewTeamRef("13", "Las Vegas", "Raiders", "LV"),
	NewTeamRef("24", "Los Angeles", "Chargers", "LAC"),
	NewTeamRef("14", "Los Angeles", "Rams", "LAR"),
	NewTeamRef("15", "Miami", "Dolphins", "MIA"),
	NewTeamRef("16", "Minnesota", "Vikings", "MIN"),
	NewTeamRef("17", "New England", "Patriots", "NE"),
	NewTeamRef("18", "New Orleans", "Saints", "NO"),
	NewTeamRef("19", "New York", "Giants", "NYG"),
	NewTeamRef("20", "New York", "Jets", "NYJ"),
	NewTeamRef("21", "Philadelphia", "Eagles", "PHI"),
	NewTeamRef("23", "Pittsburgh", "Steelers", "PIT"),
	NewTeamRef("26", "Seattle", "Seahawks", "SEA"),
	NewTeamRef("25", "San Francisco", "49ers", "SF"),
	NewTeamRef("27", "Tampa Bay", "Buccaneers", "TB"),
	NewTeamRef("10", "Tennessee", "Titans", "TEN"),
	NewTeamRef("28", "Washington", "Commanders", "WSH"),
}

// NFL returns the static NFL registry.
func NFL() Registry {
	registry, err := NewRegistry(nflRefs...)
	if err != nil {
		// The table is compile-time data; a bad row is a programming error.
		panic(err)
	}
	return registry
}
