package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CompactLayout defines the 8-digit date token (YYYYMMDD) used by the
// dated scoreboard endpoint.
const CompactLayout = "20060102"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatCompact formats a time as YYYYMMDD in its current location.
func FormatCompact(t time.Time) string {
	return t.Format(CompactLayout)
}

// ExpandCompact converts a YYYYMMDD token to YYYY-MM-DD, returning the
// input unchanged when it does not parse.
func ExpandCompact(token string) string {
	t, err := time.Parse(CompactLayout, token)
	if err != nil {
		return token
	}
	return t.Format(DateLayout)
}
