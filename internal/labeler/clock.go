package labeler

import (
	"fmt"
	"time"

	"github.com/ja-he/dayslider/internal/model"
	"github.com/ja-he/dayslider/internal/timeview"
)

// clockLabeler labels fixed-duration units of wall-clock time: hours, or
// buckets of a number of minutes.
//
// A unit starts where the wall clock shows a multiple of the unit, e.g. at
// 10:15 for 15-minute buckets. Steps are fixed durations, so an hour wheel
// shows the repeated hour of a DST change twice.
type clockLabeler struct {
	// minutes per unit; 60 for hour labelers
	minutes int
	hourly  bool

	format   string
	location *time.Location
	w, h     int
	view     viewKind
	sunTimes timeview.SunTimesFunc
}

// start returns the start of the unit containing t.
func (l *clockLabeler) start(t time.Time) time.Time {
	into := time.Duration(t.Minute()%l.minutes)*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
	return t.Add(-into)
}

func (l *clockLabeler) unit() time.Duration {
	return time.Duration(l.minutes) * time.Minute
}

func (l *clockLabeler) LabelContaining(t time.Time) model.TimeObject {
	return l.StepAndLabel(t, 0)
}

// StepAndLabel steps in milliseconds since the epoch, as a time.Duration only
// spans about 292 years. The stepped instant is aligned to the wall clock
// again, which only moves it where the zone's offset changed in between.
func (l *clockLabeler) StepAndLabel(t time.Time, units int) model.TimeObject {
	representable(t)
	start := l.start(t.In(l.location))
	if units != 0 {
		ms := start.UnixMilli() + int64(units)*l.unit().Milliseconds()
		start = l.start(time.UnixMilli(ms).In(l.location))
	}
	return objectFor(start.Format(l.format), start, start.Add(l.unit()))
}

func (l *clockLabeler) PreferredSize() (w, h int) { return l.w, l.h }

func (l *clockLabeler) CreateView(isCenter bool) timeview.TimeView {
	return createView(l.view, isCenter, l.sunTimes)
}

func (l *clockLabeler) MinuteInterval() int {
	if l.hourly {
		return 1
	}
	return l.minutes
}

// WithMinuteInterval returns a copy with buckets of n minutes. Hour labelers
// are unaffected by the minute interval and return themselves.
func (l *clockLabeler) WithMinuteInterval(n int) (Labeler, error) {
	if !ValidMinuteInterval(n) {
		return nil, fmt.Errorf("minute interval %d does not divide 60", n)
	}
	if l.hourly {
		return l, nil
	}
	c := *l
	c.minutes = n
	return &c, nil
}
