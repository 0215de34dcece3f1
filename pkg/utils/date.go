package utils

import "time"

// ParseDate parses an optional YYYY-MM-DD value. An empty string returns nil.
func ParseDate(dateStr string, loc *time.Location) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	if loc == nil {
		loc = time.Local
	}

	date, err := time.ParseInLocation(time.DateOnly, dateStr, loc)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// EndOfDay returns the last second of the given date, used when a report is
// requested "as of" a past day.
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())
}
