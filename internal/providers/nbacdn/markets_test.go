package nbacdn

import "testing"

func fullMarkets() []market {
	return []market{
		{
			Name: marketMoneyLine,
			Books: []book{
				{ID: "lead", Outcomes: []outcome{
					{Type: outcomeHome, Odds: "-180"},
					{Type: outcomeAway, Odds: "155"},
				}},
				{ID: "second", Outcomes: []outcome{
					{Type: outcomeHome, Odds: "-200"},
					{Type: outcomeAway, Odds: "170"},
				}},
			},
		},
		{
			Name: marketSpread,
			Books: []book{
				{ID: "lead", Outcomes: []outcome{
					{Type: outcomeHome, Odds: "-110", Value: "-4.5"},
					{Type: outcomeAway, Odds: "-110", Value: "4.5"},
				}},
			},
		},
		{
			Name: marketTotals,
			Books: []book{
				{ID: "lead", Outcomes: []outcome{
					{Type: outcomeOver, Odds: "-110", Value: "224.5"},
					{Type: outcomeUnder, Odds: "-110", Value: "224.5"},
				}},
			},
		},
	}
}

func TestMapOddsFullLine(t *testing.T) {
	payload := oddsResponse{Games: []oddsGame{{GameID: "0022400123", Markets: fullMarkets()}}}

	lines, dropped := mapOdds(payload)
	if dropped != 0 {
		t.Fatalf("expected no dropped records, got %d", dropped)
	}
	line, ok := lines["0022400123"]
	if !ok {
		t.Fatal("expected line for game")
	}

	if line.MoneyLine == nil || line.MoneyLine.Home != "-180" || line.MoneyLine.Away != "+155" {
		t.Fatalf("unexpected money line %+v", line.MoneyLine)
	}
	if line.Spread == nil || line.Spread.Home != "-4.5" || line.Spread.Away != "+4.5" {
		t.Fatalf("unexpected spread %+v", line.Spread)
	}
	if line.Total == nil || line.Total.Points != "224.5" || line.Total.Over != "-110" || line.Total.Under != "-110" {
		t.Fatalf("unexpected total %+v", line.Total)
	}
}

func TestMapOddsTakesFirstBook(t *testing.T) {
	payload := oddsResponse{Games: []oddsGame{{GameID: "g1", Markets: fullMarkets()}}}

	lines, _ := mapOdds(payload)
	if lines["g1"].MoneyLine.Home != "-180" {
		t.Fatalf("expected leading book's price, got %q", lines["g1"].MoneyLine.Home)
	}
}

func TestMapOddsDropsRecordsWithoutID(t *testing.T) {
	payload := oddsResponse{Games: []oddsGame{
		{GameID: "", Markets: fullMarkets()},
		{GameID: "g1", Markets: fullMarkets()},
	}}

	lines, dropped := mapOdds(payload)
	if dropped != 1 {
		t.Fatalf("expected 1 dropped record, got %d", dropped)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
}

func TestMapOddsSkipsEmptyLines(t *testing.T) {
	payload := oddsResponse{Games: []oddsGame{{GameID: "g1", Markets: nil}}}

	lines, dropped := mapOdds(payload)
	if dropped != 0 {
		t.Fatalf("expected no dropped records, got %d", dropped)
	}
	if _, ok := lines["g1"]; ok {
		t.Fatal("expected no line for game without markets")
	}
}

func TestMapOddsPartialBookYieldsNilMarket(t *testing.T) {
	payload := oddsResponse{Games: []oddsGame{{GameID: "g1", Markets: []market{
		{Name: marketMoneyLine, Books: []book{
			{ID: "lead", Outcomes: []outcome{{Type: outcomeHome, Odds: "-180"}}},
		}},
		{Name: marketSpread, Books: []book{
			{ID: "lead", Outcomes: []outcome{
				{Type: outcomeHome, Odds: "-110", Value: "-4.5"},
				{Type: outcomeAway, Odds: "-110", Value: "4.5"},
			}},
		}},
	}}}}

	lines, _ := mapOdds(payload)
	line := lines["g1"]
	if line.MoneyLine != nil {
		t.Fatalf("expected nil money line for one-sided book, got %+v", line.MoneyLine)
	}
	if line.Spread == nil {
		t.Fatal("expected spread to survive")
	}
}

func TestSignedPoints(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"4.5", "+4.5", true},
		{"+4.5", "+4.5", true},
		{"-4.5", "-4.5", true},
		{"0", "0", true},
		{"pick", "", false},
	}

	for _, tt := range tests {
		b := book{Outcomes: []outcome{{Type: outcomeHome, Value: tt.raw}}}
		got, ok := signedPoints(b, outcomeHome)
		if ok != tt.ok {
			t.Fatalf("signedPoints(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
		}
		if got != tt.want {
			t.Fatalf("signedPoints(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFormatAmericanString(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"150", "+150", true},
		{"-110", "-110", true},
		{"0", "0", true},
		{" 155 ", "+155", true},
		{"evens", "", false},
	}

	for _, tt := range tests {
		got, ok := formatAmericanString(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("formatAmericanString(%q) = %q, %v; want %q, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}
