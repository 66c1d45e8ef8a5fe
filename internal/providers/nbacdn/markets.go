package nbacdn

import (
	"strconv"
	"strings"

	"nba-companion-service/internal/domain/odds"
)

const (
	marketMoneyLine = "2way"
	marketSpread    = "spread"
	marketTotals    = "totals"

	outcomeHome  = "home"
	outcomeAway  = "away"
	outcomeOver  = "over"
	outcomeUnder = "under"
)

// mapOdds normalizes the market-structured odds payload into lines keyed by
// game ID. Records without a game ID are dropped and counted; a missing
// market or book simply yields no line for that market.
func mapOdds(payload oddsResponse) (map[string]odds.Line, int) {
	lines := make(map[string]odds.Line, len(payload.Games))
	dropped := 0

	for _, g := range payload.Games {
		if strings.TrimSpace(g.GameID) == "" {
			dropped++
			continue
		}
		line := mapLine(g.Markets)
		if line.Empty() {
			continue
		}
		lines[g.GameID] = line
	}

	return lines, dropped
}

func mapLine(markets []market) odds.Line {
	var line odds.Line
	for _, m := range markets {
		// Policy: take the first book in the list. Nothing guarantees it is
		// the best price; it is simply the feed's leading entry.
		b, ok := firstBook(m)
		if !ok {
			continue
		}
		switch m.Name {
		case marketMoneyLine:
			line.MoneyLine = mapMoneyLine(b)
		case marketSpread:
			line.Spread = mapSpread(b)
		case marketTotals:
			line.Total = mapTotal(b)
		}
	}
	return line
}

func firstBook(m market) (book, bool) {
	if len(m.Books) == 0 {
		return book{}, false
	}
	return m.Books[0], true
}

func mapMoneyLine(b book) *odds.MoneyLine {
	home, okHome := americanOdds(b, outcomeHome)
	away, okAway := americanOdds(b, outcomeAway)
	if !okHome || !okAway {
		return nil
	}
	return &odds.MoneyLine{Home: home, Away: away}
}

func mapSpread(b book) *odds.Spread {
	home, okHome := signedPoints(b, outcomeHome)
	away, okAway := signedPoints(b, outcomeAway)
	if !okHome || !okAway {
		return nil
	}
	return &odds.Spread{Home: home, Away: away}
}

func mapTotal(b book) *odds.Total {
	over, okOver := findOutcome(b, outcomeOver)
	under, okUnder := findOutcome(b, outcomeUnder)
	if !okOver || !okUnder {
		return nil
	}
	overOdds, okOverOdds := formatAmericanString(over.Odds)
	underOdds, okUnderOdds := formatAmericanString(under.Odds)
	if !okOverOdds || !okUnderOdds || strings.TrimSpace(over.Value) == "" {
		return nil
	}
	return &odds.Total{
		Points: strings.TrimSpace(over.Value),
		Over:   overOdds,
		Under:  underOdds,
	}
}

func findOutcome(b book, typ string) (outcome, bool) {
	for _, o := range b.Outcomes {
		if o.Type == typ {
			return o, true
		}
	}
	return outcome{}, false
}

func americanOdds(b book, typ string) (string, bool) {
	o, ok := findOutcome(b, typ)
	if !ok {
		return "", false
	}
	return formatAmericanString(o.Odds)
}

func formatAmericanString(raw string) (string, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return odds.FormatAmerican(v), true
}

func signedPoints(b book, typ string) (string, bool) {
	o, ok := findOutcome(b, typ)
	if !ok {
		return "", false
	}
	raw := strings.TrimSpace(o.Value)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", false
	}
	if v > 0 && !strings.HasPrefix(raw, "+") {
		return "+" + raw, true
	}
	return raw, true
}
