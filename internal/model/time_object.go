package model

import (
	"fmt"
	"time"
)

// TimeObject is a labeled time interval.
//
// Both Start and End are inclusive and have millisecond resolution, so the
// object directly following this one starts at End + 1ms.
type TimeObject struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains returns whether t lies within [Start, End].
func (o TimeObject) Contains(t time.Time) bool {
	return !t.Before(o.Start) && !t.After(o.End)
}

// Length returns the duration between Start and End.
func (o TimeObject) Length() time.Duration {
	return o.End.Sub(o.Start)
}

// Valid returns whether Start is not after End.
func (o TimeObject) Valid() bool {
	return !o.Start.After(o.End)
}

// Precedes returns whether next starts exactly one millisecond after the
// receiver ends, i.e. whether the two tile the timeline without gap or overlap.
func (o TimeObject) Precedes(next TimeObject) bool {
	return o.End.Add(time.Millisecond).Equal(next.Start)
}

// ToString returns a string representation for debugging and logging.
func (o TimeObject) ToString() string {
	return fmt.Sprintf("'%s' [%s, %s]", o.Label, o.Start.Format(MillisLayout), o.End.Format(MillisLayout))
}

// MillisLayout formats a time with millisecond precision and offset.
const MillisLayout = "2006-01-02T15:04:05.000Z07:00"

// FromMillis returns the instant at the given number of milliseconds since the
// Unix epoch in loc.
func FromMillis(ms int64, loc *time.Location) time.Time {
	return time.UnixMilli(ms).In(loc)
}
