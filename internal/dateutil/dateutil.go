// Package dateutil implements day arithmetic on calendar-date strings.
// Dates travel through the whole system as zero-padded YYYY-MM-DD strings
// and compare lexicographically.
package dateutil

import "time"

const Layout = "2006-01-02"

// Valid reports whether s is a well-formed YYYY-MM-DD date.
func Valid(s string) bool {
	_, err := time.Parse(Layout, s)
	return err == nil
}

// AddDays shifts a date string by n calendar days. n may be negative.
// Malformed input is returned unchanged; callers validate dates before
// doing arithmetic on them.
func AddDays(s string, n int) string {
	d, err := time.Parse(Layout, s)
	if err != nil {
		return s
	}
	return d.AddDate(0, 0, n).Format(Layout)
}

// NextDay is AddDays(s, 1), the default cascade step between phases.
func NextDay(s string) string {
	return AddDays(s, 1)
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
// Empty or malformed input is not a weekend.
func IsWeekend(s string) bool {
	d, err := time.Parse(Layout, s)
	if err != nil {
		return false
	}
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Format renders a time.Time as a calendar-date string.
func Format(t time.Time) string {
	return t.Format(Layout)
}
