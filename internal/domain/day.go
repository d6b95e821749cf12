package domain

import "time"

// Day represents a day with stored lesson summaries
type Day struct {
	Date         time.Time
	SummaryCount int
}

// DateString returns date in YYYYMMDD format
func (d Day) DateString() string {
	return d.Date.Format("20060102")
}

// DisplayString returns user-friendly date string
func (d Day) DisplayString() string {
	now := time.Now()
	date := d.Date

	if sameDay(date, now) {
		return "Today"
	}
	if sameDay(date, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}

	return date.Format("Jan 2, 2006")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
