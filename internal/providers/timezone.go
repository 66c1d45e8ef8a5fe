package providers

import "time"

// ResolveTimezone loads the zone the schedule window's calendar runs in
// (SCHEDULE_TIMEZONE). Empty or unknown zones return nil, which callers
// treat as server-local time.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}
