package locale

import "time"

// LoadTimezone resolves a timezone name ("America/Lima", "UTC") against the
// tzdata database. Returns false for empty or unknown names.
func LoadTimezone(name string) (*time.Location, bool) {
	if name == "" {
		return nil, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}
	return loc, true
}

// ToUserTime converts a time into the user's timezone. A nil location is
// treated as UTC.
func ToUserTime(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc)
}

// ToUTC converts a time back to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}
