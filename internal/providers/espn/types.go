package espn

// Team directory (/teams) and team detail (/teams/{id}).

type teamsResponse struct {
	Sports []sportEntry `json:"sports"`
}

type sportEntry struct {
	Leagues []leagueEntry `json:"leagues"`
}

type leagueEntry struct {
	Teams []teamEntry `json:"teams"`
}

type teamEntry struct {
	Team teamDetail `json:"team"`
}

type teamDetailResponse struct {
	Team teamDetail `json:"team"`
}

type teamDetail struct {
	ID           string      `json:"id"`
	Location     string      `json:"location"`
	Name         string      `json:"name"`
	DisplayName  string      `json:"displayName"`
	Abbreviation string      `json:"abbreviation"`
	Logos        []logo      `json:"logos"`
	Record       recordBlock `json:"record"`
}

type logo struct {
	Href string `json:"href"`
}

type recordBlock struct {
	Items []recordItem `json:"items"`
}

type recordItem struct {
	Type    string      `json:"type"`
	Summary string      `json:"summary"`
	Stats   []statEntry `json:"stats"`
}

type statEntry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Roster (/teams/{id}/roster).

type rosterResponse struct {
	Athletes []athlete `json:"athletes"`
}

type athlete struct {
	ID            string      `json:"id"`
	DisplayName   string      `json:"displayName"`
	Jersey        string      `json:"jersey"`
	DisplayHeight string      `json:"displayHeight"`
	DisplayWeight string      `json:"displayWeight"`
	Position      positionRef `json:"position"`
}

type positionRef struct {
	Abbreviation string `json:"abbreviation"`
}

// Dated scoreboard (/scoreboard?dates=) and game summary (/summary?event=).

type scoreboardResponse struct {
	Events []event `json:"events"`
}

type summaryResponse struct {
	Header summaryHeader `json:"header"`
}

type summaryHeader struct {
	ID           string        `json:"id"`
	Competitions []competition `json:"competitions"`
}

type event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Status       eventStatus   `json:"status"`
	Competitions []competition `json:"competitions"`
}

type eventStatus struct {
	Type         statusType `json:"type"`
	DisplayClock string     `json:"displayClock"`
	Period       int        `json:"period"`
}

type statusType struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

type competition struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"`
	Status      eventStatus  `json:"status"`
	Competitors []competitor `json:"competitors"`
	Odds        []oddsEntry  `json:"odds"`
}

type competitor struct {
	HomeAway string          `json:"homeAway"`
	Score    string          `json:"score"`
	Team     eventTeam       `json:"team"`
	Records  []recordSummary `json:"records"`
}

type eventTeam struct {
	ID           string `json:"id"`
	Location     string `json:"location"`
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
	Logo         string `json:"logo"`
	Logos        []logo `json:"logos"`
}

type recordSummary struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

type oddsEntry struct {
	Details      string   `json:"details"`
	OverUnder    float64  `json:"overUnder"`
	Spread       float64  `json:"spread"`
	OverOdds     int      `json:"overOdds"`
	UnderOdds    int      `json:"underOdds"`
	HomeTeamOdds teamOdds `json:"homeTeamOdds"`
	AwayTeamOdds teamOdds `json:"awayTeamOdds"`
}

type teamOdds struct {
	Moneyline  int `json:"moneyline"`
	SpreadOdds int `json:"spreadOdds"`
}

// News (/news).

type newsResponse struct {
	Articles []article `json:"articles"`
}

type article struct {
	DataSourceIdentifier string     `json:"dataSourceIdentifier"`
	Headline             string     `json:"headline"`
	Description          string     `json:"description"`
	Published            string     `json:"published"`
	Images               []image    `json:"images"`
	Categories           []category `json:"categories"`
	Links                links      `json:"links"`
}

type image struct {
	URL string `json:"url"`
}

type category struct {
	Description string `json:"description"`
}

type links struct {
	Web webLink `json:"web"`
}

type webLink struct {
	Href string `json:"href"`
}
