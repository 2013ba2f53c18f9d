package domain

import "time"

// Date format constants
const (
	// DateFormat is the fixed MM-DD-YYYY pattern used on both the
	// interactive surface and in storage
	DateFormat = "01-02-2006"

	// ISODateFormat is used only by the JSON export
	ISODateFormat = "2006-01-02"
)

// MinLeadDays is the minimum number of calendar days between the booking
// action and the reserved date
const MinLeadDays = 2

// ParseDate converts MM-DD-YYYY text into a calendar date (midnight UTC)
func ParseDate(text string) (time.Time, error) {
	d, err := time.ParseInLocation(DateFormat, text, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return d, nil
}

// FormatDate renders a calendar date in the fixed MM-DD-YYYY pattern
func FormatDate(d time.Time) string {
	return d.Format(DateFormat)
}

// DateOnly truncates a timestamp to its calendar date (midnight UTC)
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MinBookableDate returns the earliest date a reservation may target,
// evaluated against the given current time
func MinBookableDate(now time.Time) time.Time {
	return DateOnly(now).AddDate(0, 0, MinLeadDays)
}

// IsSunday reports whether the date falls on a Sunday
func IsSunday(d time.Time) bool {
	return d.Weekday() == time.Sunday
}

// NextMonday returns the following Monday for a Sunday date, or the same
// date otherwise
func NextMonday(d time.Time) time.Time {
	if IsSunday(d) {
		return d.AddDate(0, 0, 1)
	}
	return d
}
