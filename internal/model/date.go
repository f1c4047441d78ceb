package model

import (
	"fmt"
	"time"
)

// Date is a calendar date without a time zone.
type Date struct {
	Year  int
	Month int
	Day   int
}

const dateLayout = "2006-01-02"

// DateFromGotime returns the date of t in t's location.
func DateFromGotime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// DateFromString parses a date in the "YYYY-MM-DD" format.
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("'%s' is not a valid YYYY-MM-DD date (%w)", s, err)
	}
	return DateFromGotime(t), nil
}

// ToString returns the date in the "YYYY-MM-DD" format.
func (d Date) ToString() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// AddDays returns the date n days after d (before, for negative n).
func (d Date) AddDays(n int) Date {
	return DateFromGotime(time.Date(d.Year, time.Month(d.Month), d.Day+n, 12, 0, 0, 0, time.UTC))
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.ToGotime(time.UTC).Weekday()
}

// WeekBounds returns the Monday and Sunday of the week d is in.
func (d Date) WeekBounds() (monday Date, sunday Date) {
	daysSinceMonday := (int(d.Weekday()) + 6) % 7
	monday = d.AddDays(-daysSinceMonday)
	return monday, monday.AddDays(6)
}

// ToGotime returns the start of the day (midnight) in loc.
func (d Date) ToGotime(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}
