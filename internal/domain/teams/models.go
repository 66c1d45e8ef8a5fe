package teams

// Record captures a team's win/loss tally when the upstream provides one.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Standing captures conference/division placement when the upstream provides one.
type Standing struct {
	ConferenceRank int `json:"conferenceRank"`
	DivisionRank   int `json:"divisionRank"`
}

// Team is the normalized team shape shared by every feed variant.
// Identity is ID; the same ID must always resolve to the same display fields.
type Team struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	Abbreviation string    `json:"abbreviation"`
	LogoURL      string    `json:"logoUrl,omitempty"`
	Conference   string    `json:"conference,omitempty"`
	Division     string    `json:"division,omitempty"`
	Record       *Record   `json:"record,omitempty"`
	Standing     *Standing `json:"standing,omitempty"`
}
