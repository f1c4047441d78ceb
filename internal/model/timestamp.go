package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp is a wall-clock time of day with minute resolution.
type Timestamp struct {
	Hour, Minute int
}

// TimestampOf returns the time of day of t in t's location.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp{Hour: t.Hour(), Minute: t.Minute()}
}

// NewTimestamp parses a timestamp in the strict HH:MM format.
func NewTimestamp(s string) (Timestamp, error) {
	hStr, mStr, found := strings.Cut(s, ":")
	if !found || len(hStr) != 2 || len(mStr) != 2 {
		return Timestamp{}, fmt.Errorf("'%s' does not fit the HH:MM format", s)
	}
	h, errH := strconv.Atoi(hStr)
	m, errM := strconv.Atoi(mStr)
	if errH != nil || errM != nil {
		return Timestamp{}, fmt.Errorf("'%s' does not fit the HH:MM format", s)
	}
	ts := Timestamp{Hour: h, Minute: m}
	if !ts.legal() {
		return Timestamp{}, fmt.Errorf("timestamp '%s' out of range", s)
	}
	return ts, nil
}

// ToString returns the timestamp in the HH:MM format.
func (t Timestamp) ToString() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// IsBefore returns whether t is strictly earlier in the day than b.
func (t Timestamp) IsBefore(b Timestamp) bool { return t.minutes() < b.minutes() }

// IsAfter returns whether t is strictly later in the day than b.
func (t Timestamp) IsAfter(b Timestamp) bool { return t.minutes() > b.minutes() }

// Snap rounds the timestamp to the nearest multiple of interval minutes into
// the day; ties round up.
//
// Snapping 23:55 to 10 minutes yields 24:00, which is not a valid time of day;
// code working on instants should apply SnapOffset instead.
func (t Timestamp) Snap(interval int) Timestamp {
	m := t.minutes() + t.SnapOffset(interval)
	return Timestamp{Hour: m / 60, Minute: m % 60}
}

// SnapOffset returns the offset in minutes that Snap applies.
func (t Timestamp) SnapOffset(interval int) int {
	if interval <= 1 {
		return 0
	}
	down := t.minutes() % interval
	if up := interval - down; up <= down {
		return up
	}
	return -down
}

func (t Timestamp) legal() bool {
	return t.Hour >= 0 && t.Hour < 24 && t.Minute >= 0 && t.Minute < 60
}

func (t Timestamp) minutes() int {
	return t.Hour*60 + t.Minute
}

// ParseDateAndTime parses "YYYY-MM-DD", "YYYY-MM-DD HH:MM" or an RFC 3339
// string. Inputs without an explicit offset are interpreted in loc.
func ParseDateAndTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}

	components := strings.Fields(s)
	if len(components) != 1 && len(components) != 2 {
		return time.Time{}, fmt.Errorf("cannot parse '%s' as a date and time", s)
	}

	d, err := DateFromString(components[0])
	if err != nil {
		return time.Time{}, err
	}
	var ts Timestamp
	if len(components) == 2 {
		if ts, err = NewTimestamp(components[1]); err != nil {
			return time.Time{}, err
		}
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, ts.Hour, ts.Minute, 0, 0, loc), nil
}
