// Package dates holds the calendar arithmetic shared by the compliance
// engine: date-only values, ISO formatting, month rollover, and whole-day
// differences. All values are normalized to midnight UTC so comparisons
// ignore time of day.
package dates

import (
	"errors"
	"time"
)

const ISOLayout = "2006-01-02"

var ErrInvalidDate = errors.New("dates: invalid date")

// Day truncates t to its calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ISO formats t as YYYY-MM-DD.
func ISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// ParseISO parses a YYYY-MM-DD string into a midnight-UTC date.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return Day(t), nil
}

// DaysBetween returns the whole calendar days from one date to another,
// negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)).Hours() / 24)
}

// AddMonths shifts a year/month pair by delta months, rolling the year over
// in either direction. December plus one month lands on January of the
// following year.
func AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	idx := year*12 + int(month) - 1 + delta
	return idx / 12, time.Month(idx%12 + 1)
}

// DueOn builds the date for a given day of a year/month pair.
func DueOn(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth reports how many days the given month has.
func DaysInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// MonthLabel renders a human period label such as "July 2024".
func MonthLabel(year int, month time.Month) string {
	return month.String() + " " + DueOn(year, month, 1).Format("2006")
}
