package odds

import "strconv"

// Spread holds the point spread for each side, signed ("-3.5" / "+3.5").
type Spread struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// MoneyLine holds American moneyline prices for each side.
type MoneyLine struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// Total holds the over/under line and the price on each side.
type Total struct {
	Points string `json:"points"`
	Over   string `json:"over"`
	Under  string `json:"under"`
}

// Line is the set of markets offered for one upcoming game.
// A nil market means no book offered a line for it, not zero.
type Line struct {
	Spread    *Spread    `json:"pointSpread,omitempty"`
	MoneyLine *MoneyLine `json:"moneyLine,omitempty"`
	Total     *Total     `json:"overUnder,omitempty"`
}

// Empty reports whether no market is present at all.
func (l Line) Empty() bool {
	return l.Spread == nil && l.MoneyLine == nil && l.Total == nil
}

// FormatAmerican renders an American odds value for display.
// Positive values gain a "+" prefix; zero and negatives pass through.
func FormatAmerican(v int) string {
	if v > 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
