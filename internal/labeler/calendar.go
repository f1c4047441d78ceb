package labeler

import (
	"fmt"
	"time"

	"github.com/ja-he/dayslider/internal/model"
	"github.com/ja-he/dayslider/internal/timeview"
)

// calendarUnit is a unit of wall-clock calendar time.
type calendarUnit int

const (
	unitYear calendarUnit = iota
	unitMonth
	unitWeek
	unitDay
)

// calendarLabeler labels calendar units (years, months, Monday-based weeks,
// days) in its location.
//
// Units are stepped from their start via time.Date normalization, so months of
// different lengths and days of 23 or 25 hours tile without gaps.
type calendarLabeler struct {
	unit     calendarUnit
	format   string
	location *time.Location
	w, h     int
	view     viewKind
}

// start returns the start of the unit containing t.
func (l *calendarLabeler) start(t time.Time) time.Time {
	switch l.unit {
	case unitYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, l.location)
	case unitMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, l.location)
	case unitWeek:
		monday, _ := model.DateFromGotime(t).WeekBounds()
		return monday.ToGotime(l.location)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, l.location)
	}
}

// advance returns the start of the unit k units after the one starting at
// start.
func (l *calendarLabeler) advance(start time.Time, k int) time.Time {
	y, m, d := start.Date()
	switch l.unit {
	case unitYear:
		return time.Date(y+k, time.January, 1, 0, 0, 0, 0, l.location)
	case unitMonth:
		return time.Date(y, m+time.Month(k), 1, 0, 0, 0, 0, l.location)
	case unitWeek:
		return time.Date(y, m, d+7*k, 0, 0, 0, 0, l.location)
	default:
		return time.Date(y, m, d+k, 0, 0, 0, 0, l.location)
	}
}

func (l *calendarLabeler) label(start time.Time) string {
	if l.unit == unitWeek {
		_, week := start.ISOWeek()
		return fmt.Sprintf(l.format, week)
	}
	return start.Format(l.format)
}

func (l *calendarLabeler) LabelContaining(t time.Time) model.TimeObject {
	return l.StepAndLabel(t, 0)
}

func (l *calendarLabeler) StepAndLabel(t time.Time, units int) model.TimeObject {
	representable(t)
	start := l.start(t.In(l.location))
	if units != 0 {
		start = l.advance(start, units)
	}
	return objectFor(l.label(start), start, l.advance(start, 1))
}

// Shift moves t by the given number of units, keeping the same place on the
// calendar (e.g. the day of the month and time of day), clamped into the
// target unit where that place does not exist in it.
func (l *calendarLabeler) Shift(t time.Time, units int) time.Time {
	t = t.In(l.location)
	var shifted time.Time
	switch l.unit {
	case unitYear:
		shifted = t.AddDate(units, 0, 0)
	case unitMonth:
		shifted = t.AddDate(0, units, 0)
	case unitWeek:
		shifted = t.AddDate(0, 0, 7*units)
	default:
		shifted = t.AddDate(0, 0, units)
	}
	target := l.StepAndLabel(t, units)
	switch {
	case shifted.Before(target.Start):
		return target.Start
	case shifted.After(target.End):
		return target.End
	}
	return shifted
}

func (l *calendarLabeler) PreferredSize() (w, h int) { return l.w, l.h }

func (l *calendarLabeler) CreateView(isCenter bool) timeview.TimeView {
	return createView(l.view, isCenter, nil)
}
