package labeler

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/dayslider/internal/model"
	"github.com/ja-he/dayslider/internal/timeview"
)

// Checked wraps a labeler, verifying every interval it produces.
//
// An interval that is malformed, or does not lie where it was asked for, is a
// programming error in the labeler. In debug mode this panics; otherwise a
// warning is logged and a one-millisecond interval at the asked instant is
// returned instead, which keeps the wheel consistent.
func Checked(l Labeler, debug bool) Labeler {
	if c, ok := l.(*checked); ok {
		return &checked{inner: c.inner, debug: debug}
	}
	return &checked{inner: l, debug: debug}
}

type checked struct {
	inner Labeler
	debug bool
}

func (c *checked) LabelContaining(t time.Time) model.TimeObject {
	o := c.inner.LabelContaining(t)
	if !o.Valid() || !o.Contains(t) {
		return c.violation(o, t, "does not contain the asked instant")
	}
	return o
}

func (c *checked) StepAndLabel(t time.Time, units int) model.TimeObject {
	o := c.inner.StepAndLabel(t, units)
	switch {
	case !o.Valid():
		return c.violation(o, t, "ends before it starts")
	case units > 0 && !o.Start.After(t):
		return c.violation(o, t, fmt.Sprintf("does not start after the instant it was stepped %d from", units))
	case units < 0 && !o.End.Before(t):
		return c.violation(o, t, fmt.Sprintf("does not end before the instant it was stepped %d from", units))
	case units == 0 && !o.Contains(t):
		return c.violation(o, t, "does not contain the asked instant")
	}
	return o
}

func (c *checked) violation(o model.TimeObject, t time.Time, problem string) model.TimeObject {
	msg := fmt.Sprintf("labeler produced %s which %s (%s)", o.ToString(), problem, t.Format(model.MillisLayout))
	if c.debug {
		panic(msg)
	}
	log.Warn().Str("object", o.ToString()).Time("instant", t).Msg("labeler inconsistency: " + problem)
	at := t.Truncate(time.Millisecond)
	return model.TimeObject{Label: o.Label, Start: at, End: at}
}

func (c *checked) PreferredSize() (w, h int) { return c.inner.PreferredSize() }

func (c *checked) CreateView(isCenter bool) timeview.TimeView {
	return c.inner.CreateView(isCenter)
}

// Unwrap returns the checked labeler.
func (c *checked) Unwrap() Labeler { return c.inner }
