package nbacdn

import (
	"fmt"

	"nba-companion-service/internal/domain/teams"
)

const logoURLTemplate = "https://cdn.nba.com/logos/nba/%d/global/L/logo.svg"

type franchise struct {
	name    string
	city    string
	tricode string
}

// franchiseTable maps the stable numeric franchise IDs used by the CDN feeds
// to display metadata. Read-only, loaded once; never mutated.
var franchiseTable = map[int64]franchise{
	1610612737: {"Hawks", "Atlanta", "ATL"},
	1610612738: {"Celtics", "Boston", "BOS"},
	1610612739: {"Cavaliers", "Cleveland", "CLE"},
	1610612740: {"Pelicans", "New Orleans", "NOP"},
	1610612741: {"Bulls", "Chicago", "CHI"},
	1610612742: {"Mavericks", "Dallas", "DAL"},
	1610612743: {"Nuggets", "Denver", "DEN"},
	1610612744: {"Warriors", "Golden State", "GSW"},
	1610612745: {"Rockets", "Houston", "HOU"},
	1610612746: {"Clippers", "Los Angeles", "LAC"},
	1610612747: {"Lakers", "Los Angeles", "LAL"},
	1610612748: {"Heat", "Miami", "MIA"},
	1610612749: {"Bucks", "Milwaukee", "MIL"},
	1610612750: {"Timberwolves", "Minnesota", "MIN"},
	1610612751: {"Nets", "Brooklyn", "BKN"},
	1610612752: {"Knicks", "New York", "NYK"},
	1610612753: {"Magic", "Orlando", "ORL"},
	1610612754: {"Pacers", "Indiana", "IND"},
	1610612755: {"76ers", "Philadelphia", "PHI"},
	1610612756: {"Suns", "Phoenix", "PHX"},
	1610612757: {"Trail Blazers", "Portland", "POR"},
	1610612758: {"Kings", "Sacramento", "SAC"},
	1610612759: {"Spurs", "San Antonio", "SAS"},
	1610612760: {"Thunder", "Oklahoma City", "OKC"},
	1610612761: {"Raptors", "Toronto", "TOR"},
	1610612762: {"Jazz", "Utah", "UTA"},
	1610612763: {"Grizzlies", "Memphis", "MEM"},
	1610612764: {"Wizards", "Washington", "WAS"},
	1610612765: {"Pistons", "Detroit", "DET"},
	1610612766: {"Hornets", "Charlotte", "CHA"},
}

// resolveTeam maps a numeric franchise ID to a canonical team. Unknown IDs
// produce a sentinel rather than failing the record.
func resolveTeam(id int64) teams.Team {
	f, ok := franchiseTable[id]
	if !ok {
		return teams.Team{
			ID:           fmt.Sprintf("%d", id),
			Name:         "Unknown",
			Abbreviation: "UNK",
		}
	}
	return teams.Team{
		ID:           fmt.Sprintf("%d", id),
		Name:         f.name,
		City:         f.city,
		Abbreviation: f.tricode,
		LogoURL:      LogoURL(id),
	}
}

// LogoURL derives the deterministic logo location for a franchise ID.
func LogoURL(id int64) string {
	return fmt.Sprintf(logoURLTemplate, id)
}
