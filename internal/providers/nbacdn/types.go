package nbacdn

// The scoreboard feed identifies teams by numeric franchise ID only; display
// fields come from the static franchise table.

type scoreboardResponse struct {
	Scoreboard scoreboardBody `json:"scoreboard"`
}

type scoreboardBody struct {
	GameDate string           `json:"gameDate"`
	Games    []scoreboardGame `json:"games"`
}

type scoreboardGame struct {
	GameID         string         `json:"gameId"`
	GameStatus     int            `json:"gameStatus"`
	GameStatusText string         `json:"gameStatusText"`
	Period         int            `json:"period"`
	GameClock      string         `json:"gameClock"`
	GameTimeUTC    string         `json:"gameTimeUTC"`
	HomeTeam       scoreboardTeam `json:"homeTeam"`
	AwayTeam       scoreboardTeam `json:"awayTeam"`
}

type scoreboardTeam struct {
	TeamID int64 `json:"teamId"`
	Wins   int   `json:"wins"`
	Losses int   `json:"losses"`
	Score  int   `json:"score"`
}

// The odds feed organizes lines as markets -> books -> tagged outcomes.

type oddsResponse struct {
	Games []oddsGame `json:"games"`
}

type oddsGame struct {
	GameID     string   `json:"gameId"`
	HomeTeamID int64    `json:"homeTeamId"`
	AwayTeamID int64    `json:"awayTeamId"`
	Markets    []market `json:"markets"`
}

type market struct {
	Name  string `json:"name"`
	Books []book `json:"books"`
}

type book struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Outcomes []outcome `json:"outcomes"`
}

type outcome struct {
	Type  string `json:"type"`
	Odds  string `json:"odds"`
	Value string `json:"value"`
}
