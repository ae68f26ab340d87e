package domain

import "time"

// DateLayout is the calendar-day format used for every visit, expense and approval date.
const DateLayout = "2006-01-02"

// MonthLayout is the calendar-month format used by monthly filters.
const MonthLayout = "2006-01"

// ParseDate parses a calendar-day string. The result is midnight UTC so that
// comparisons never depend on the server time zone.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t as a calendar day in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CalendarDay returns the calendar day of now as observed in loc.
func CalendarDay(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(DateLayout)
}

// AddDays shifts a calendar day by n days. Malformed input yields false.
func AddDays(date string, n int) (string, bool) {
	t, ok := ParseDate(date)
	if !ok {
		return "", false
	}
	return t.AddDate(0, 0, n).Format(DateLayout), true
}

// ValidDate reports whether s is a well-formed calendar day.
func ValidDate(s string) bool {
	_, ok := ParseDate(s)
	return ok
}

// ValidMonth reports whether s is a well-formed YYYY-MM month.
func ValidMonth(s string) bool {
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}

// TimeLayout is the clock-time format of visit and task times.
const TimeLayout = "15:04"

// ValidTime reports whether s is a well-formed HH:MM clock time.
func ValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
