// Package labeler maps instants to labeled time intervals of a fixed
// granularity (years, months, weeks, days, hours, minute buckets).
package labeler

import (
	"fmt"
	"time"

	"github.com/ja-he/dayslider/internal/model"
	"github.com/ja-he/dayslider/internal/timeview"
)

// Labeler partitions the timeline into consecutive intervals of one
// granularity and labels them.
//
// Implementations must be consistent: the interval LabelContaining(t) returns
// contains t, StepAndLabel(t, 0) equals LabelContaining(t), and stepping by
// one from the end of an interval yields the directly following interval
// (tiling without gap or overlap).
type Labeler interface {
	// LabelContaining returns the interval containing t.
	LabelContaining(t time.Time) model.TimeObject
	// StepAndLabel returns the interval `units` intervals away from the one
	// containing t (negative is earlier).
	StepAndLabel(t time.Time, units int) model.TimeObject
	// PreferredSize returns the slot size (in cells) the labels fit in.
	PreferredSize() (w, h int)
	// CreateView returns a new slot suited to display this labeler's
	// intervals.
	CreateView(isCenter bool) timeview.TimeView
}

// MinuteBucketer is a labeler whose intervals are buckets of a number of
// minutes.
type MinuteBucketer interface {
	Labeler

	// MinuteInterval returns the bucket size in minutes.
	MinuteInterval() int
	// WithMinuteInterval returns a copy of the labeler with the given bucket
	// size.
	WithMinuteInterval(n int) (Labeler, error)
}

// Shifter is a Labeler that can move an instant by whole units while keeping
// its place within the unit on the calendar.
type Shifter interface {
	Shift(t time.Time, units int) time.Time
}

// Shift moves t by the given number of units of l, if l is a Shifter.
// Returns false otherwise.
func Shift(l Labeler, t time.Time, units int) (time.Time, bool) {
	if c, ok := l.(*checked); ok {
		l = c.inner
	}
	s, ok := l.(Shifter)
	if !ok {
		return time.Time{}, false
	}
	return s.Shift(t, units), true
}

// ValidMinuteInterval returns whether n can be used as a minute interval.
// Intervals must divide an hour, so that buckets never cross the top of the
// hour.
func ValidMinuteInterval(n int) bool {
	return n >= 1 && n <= 60 && 60%n == 0
}

// WithMinuteInterval returns the labeler to use after the minute interval
// changed to n. Labelers that do not bucket minutes are returned as they are.
func WithMinuteInterval(l Labeler, n int) (Labeler, error) {
	if !ValidMinuteInterval(n) {
		return nil, fmt.Errorf("minute interval %d does not divide 60", n)
	}
	switch l := l.(type) {
	case *checked:
		inner, err := WithMinuteInterval(l.inner, n)
		if err != nil {
			return nil, err
		}
		return &checked{inner: inner, debug: l.debug}, nil
	case MinuteBucketer:
		return l.WithMinuteInterval(n)
	default:
		return l, nil
	}
}

// representable panics if t lies outside of the years the labelers handle.
func representable(t time.Time) {
	if y := t.Year(); y < 1 || y > 9999 {
		panic(fmt.Sprintf("instant %s outside of the representable years", t.Format(model.MillisLayout)))
	}
}

// objectFor returns the interval that starts at start and ends right before
// next.
func objectFor(label string, start, next time.Time) model.TimeObject {
	return model.TimeObject{
		Label: label,
		Start: start,
		End:   next.Add(-time.Millisecond),
	}
}

// viewKind selects the slot type a labeler creates.
type viewKind int

const (
	textView viewKind = iota
	accentTextView
	twoRowView
	weekdayView
)

// createView creates a slot of the given kind, decorated with daylight
// information if sunTimes is non-nil.
func createView(kind viewKind, isCenter bool, sunTimes timeview.SunTimesFunc) timeview.TimeView {
	var v timeview.StyledView
	switch kind {
	case accentTextView:
		v = timeview.NewTextView(isCenter, true)
	case twoRowView:
		v = timeview.NewTwoRowView(isCenter)
	case weekdayView:
		v = timeview.NewWeekdayView(timeview.NewTwoRowView(isCenter))
	default:
		v = timeview.NewTextView(isCenter, false)
	}
	if sunTimes != nil {
		return timeview.NewDaylightView(v, sunTimes)
	}
	return v
}
