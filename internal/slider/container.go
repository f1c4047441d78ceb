// Package slider coordinates the wheels of a picker, so that all of them show
// the same instant.
package slider

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/dayslider/internal/labeler"
	"github.com/ja-he/dayslider/internal/model"
	"github.com/ja-he/dayslider/internal/scroll"
)

// Container holds the canonical instant of a picker and keeps its wheels in
// line with it.
//
// Whenever one wheel is scrolled, every other wheel is set to the instant it
// reported and the OnTimeChange observer is notified exactly once.
// Like the wheels, a container is owned by a single goroutine.
type Container struct {
	wheels []*scroll.Layout

	time    time.Time
	hasTime bool

	minTime, maxTime *time.Time
	minuteInterval   int

	onTimeChange func(time.Time)

	// arranging is set while wheels are being set, to drop reports the
	// wheels might make in response.
	arranging bool
}

// NewContainer returns a container coordinating the given wheels.
// The container takes over the wheels' scroll listeners.
func NewContainer(wheels ...*scroll.Layout) *Container {
	c := &Container{minuteInterval: 1}
	for i, w := range wheels {
		c.add(i, w)
	}
	return c
}

func (c *Container) add(index int, w *scroll.Layout) {
	c.wheels = append(c.wheels, w)
	w.SetOnScrollListener(func(t time.Time) { c.onWheelScrolled(index, t) })
}

// Wheels returns the coordinated wheels in order.
func (c *Container) Wheels() []*scroll.Layout { return c.wheels }

// OnTimeChange sets the observer notified of every change of the instant.
func (c *Container) OnTimeChange(f func(time.Time)) {
	c.onTimeChange = f
}

func (c *Container) onWheelScrolled(source int, t time.Time) {
	if c.arranging {
		log.Warn().Int("wheel", source).Msg("dropping report of wheel scrolled while arranging")
		return
	}
	c.time = t
	c.hasTime = true
	c.arrange(source)
	c.notify()
}

// arrange sets every wheel but the one at index skip (-1 for none) to the
// canonical instant.
func (c *Container) arrange(skip int) {
	c.arranging = true
	defer func() { c.arranging = false }()
	for i, w := range c.wheels {
		if i != skip {
			w.SetTime(c.time)
		}
	}
}

func (c *Container) notify() {
	if c.onTimeChange != nil {
		c.onTimeChange(c.time)
	}
}

// SetTime sets the instant, clamped into the bounds, on all wheels and
// notifies the observer.
func (c *Container) SetTime(t time.Time) {
	c.time = c.clamp(t)
	c.hasTime = true
	c.arrange(-1)
	c.notify()
}

// Time returns the instant.
func (c *Container) Time() time.Time { return c.time }

// HasTime returns whether an instant was set.
func (c *Container) HasTime() bool { return c.hasTime }

// SetMinTime sets the earliest selectable instant.
// It is an error to set bounds before the instant or to set a minimum after
// the maximum. An instant before the new minimum is moved onto it.
func (c *Container) SetMinTime(t time.Time) error {
	if !c.hasTime {
		return fmt.Errorf("cannot set minimum before an instant was set")
	}
	if c.maxTime != nil && t.After(*c.maxTime) {
		return fmt.Errorf("minimum %s after maximum %s", t.Format(model.MillisLayout), c.maxTime.Format(model.MillisLayout))
	}
	c.minTime = &t
	for _, w := range c.wheels {
		w.SetMinTime(t)
	}
	if c.time.Before(t) {
		c.SetTime(t)
	}
	return nil
}

// SetMaxTime sets the latest selectable instant.
// It is an error to set bounds before the instant or to set a maximum before
// the minimum. An instant after the new maximum is moved onto it.
func (c *Container) SetMaxTime(t time.Time) error {
	if !c.hasTime {
		return fmt.Errorf("cannot set maximum before an instant was set")
	}
	if c.minTime != nil && t.Before(*c.minTime) {
		return fmt.Errorf("maximum %s before minimum %s", t.Format(model.MillisLayout), c.minTime.Format(model.MillisLayout))
	}
	c.maxTime = &t
	for _, w := range c.wheels {
		w.SetMaxTime(t)
	}
	if c.time.After(t) {
		c.SetTime(t)
	}
	return nil
}

// Bounds returns the minimum and maximum, nil where unset.
func (c *Container) Bounds() (min, max *time.Time) { return c.minTime, c.maxTime }

// SetMinuteInterval switches all minute wheels to buckets of n minutes, which
// must divide 60.
// The instant is moved to the nearest bucket boundary (ties move it forward),
// and all wheels are re-derived around it.
func (c *Container) SetMinuteInterval(n int) error {
	if !labeler.ValidMinuteInterval(n) {
		return fmt.Errorf("minute interval %d does not divide 60", n)
	}
	for i, w := range c.wheels {
		if err := w.SetMinuteInterval(n); err != nil {
			return fmt.Errorf("could not set minute interval on wheel %d (%w)", i, err)
		}
	}
	c.minuteInterval = n
	if c.hasTime {
		c.SetTime(SnapToInterval(c.time, n))
	}
	return nil
}

// MinuteInterval returns the minute interval.
func (c *Container) MinuteInterval() int { return c.minuteInterval }

// Tick advances all flinging wheels to now.
// Returns whether any wheel wants further ticks.
func (c *Container) Tick(now time.Time) bool {
	animating := false
	for _, w := range c.wheels {
		if w.Tick(now) {
			animating = true
		}
	}
	return animating
}

// SnapToInterval returns t moved to the nearest instant whose minute is a
// multiple of n, dropping seconds. Ties are moved forward.
func SnapToInterval(t time.Time, n int) time.Time {
	minuteStart := t.Truncate(time.Minute)
	if t.Second() >= 30 {
		minuteStart = minuteStart.Add(time.Minute)
	}
	offset := model.TimestampOf(minuteStart).SnapOffset(n)
	return minuteStart.Add(time.Duration(offset) * time.Minute)
}

func (c *Container) clamp(t time.Time) time.Time {
	if c.minTime != nil && t.Before(*c.minTime) {
		return *c.minTime
	}
	if c.maxTime != nil && t.After(*c.maxTime) {
		return *c.maxTime
	}
	return t
}
