// Package scroll implements the horizontally scrolling wheel of time slots.
//
// A Layout keeps a fixed, odd number of slots. When it is scrolled by more than
// half a slot, slots are recycled: their contents shift along by whole slots
// and only the slots that enter the wheel at an edge get new time objects from
// the labeler. The wheel thereby shows an effectively infinite timeline.
package scroll

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/dayslider/internal/labeler"
	"github.com/ja-he/dayslider/internal/model"
	"github.com/ja-he/dayslider/internal/timeview"
)

// State is the interaction state of a Layout.
type State int

const (
	_ State = iota
	// Idle is at rest.
	Idle
	// Dragging follows a pointer.
	Dragging
	// Flinging continues a released drag, decelerating.
	Flinging
	// Settling positions the wheel on a given instant.
	Settling
)

// ToString returns the name of the state.
func (s State) ToString() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Flinging:
		return "flinging"
	case Settling:
		return "settling"
	}
	return "[unknown]"
}

// Physics configures how a released drag continues.
//
// Velocities are in cells per second, the deceleration in cells per second
// squared.
type Physics struct {
	Deceleration     float64
	MinFlingVelocity float64
	MaxFlingVelocity float64
}

// DefaultPhysics returns the physics used when none are configured.
func DefaultPhysics() Physics {
	return Physics{
		Deceleration:     120,
		MinFlingVelocity: 8,
		MaxFlingVelocity: 400,
	}
}

// Params are the parameters for constructing a Layout.
type Params struct {
	// Name identifies the wheel in logs.
	Name    string
	Labeler labeler.Labeler

	// ViewportWidth is the width (in cells) the wheel is shown in.
	ViewportWidth int
	// SlotWidth and SlotHeight override the labeler's preferred size, if
	// non-zero.
	SlotWidth, SlotHeight int

	// Time is the instant the wheel initially shows.
	Time time.Time

	// Physics default to DefaultPhysics.
	Physics Physics
	// Now defaults to time.Now.
	Now func() time.Time
}

// maxSettleCorrections is how many corrections without progress settling
// makes before giving up on an instant the center slot does not reach.
const maxSettleCorrections = 3

// Layout is a wheel of time slots.
//
// It is not safe for concurrent use; the owner delivers all input, ticks and
// settle requests from a single goroutine.
type Layout struct {
	labeler labeler.Labeler
	slots   []timeview.TimeView

	slotWidth, slotHeight int
	viewportWidth         int

	// offset is the distance (in cells) of the viewport's center from the
	// center slot's center, positive towards later times; it is kept within
	// [-slotWidth/2, slotWidth/2].
	offset int
	// lastPos is the scroll coordinate applied last; targetPos the one the
	// wheel is moving to. Both only ever change by the same amounts as offset
	// (modulo recycling).
	lastPos, targetPos int

	currentTime      time.Time
	minTime, maxTime *time.Time

	scroller *Scroller
	physics  Physics
	state    State
	now      func() time.Time

	listener func(time.Time)

	log zerolog.Logger
}

// NewLayout constructs a new Layout showing the given instant.
func NewLayout(p Params) (*Layout, error) {
	if p.Labeler == nil {
		return nil, fmt.Errorf("no labeler given")
	}
	if p.ViewportWidth <= 0 {
		return nil, fmt.Errorf("non-positive viewport width %d", p.ViewportWidth)
	}
	sw, sh := p.Labeler.PreferredSize()
	if p.SlotWidth != 0 {
		sw = p.SlotWidth
	}
	if p.SlotHeight != 0 {
		sh = p.SlotHeight
	}
	if sw < 2 || sh < 1 {
		return nil, fmt.Errorf("slot size %dx%d too small", sw, sh)
	}

	physics := p.Physics
	if physics == (Physics{}) {
		physics = DefaultPhysics()
	}
	if physics.Deceleration <= 0 || physics.MinFlingVelocity < 0 || physics.MaxFlingVelocity < physics.MinFlingVelocity {
		return nil, fmt.Errorf("invalid scroll physics %+v", physics)
	}

	now := p.Now
	if now == nil {
		now = time.Now
	}

	l := &Layout{
		labeler:       p.Labeler,
		slotWidth:     sw,
		slotHeight:    sh,
		viewportWidth: p.ViewportWidth,
		currentTime:   p.Time,
		scroller:      NewScroller(physics.Deceleration),
		physics:       physics,
		state:         Idle,
		now:           now,
		log:           log.With().Str("wheel", p.Name).Logger(),
	}
	l.slots = l.createSlots(slotCount(p.ViewportWidth, sw))
	l.populate()
	l.SetTime(p.Time)

	l.log.Debug().Int("slots", len(l.slots)).Int("slot-width", sw).Msg("created wheel")
	return l, nil
}

// slotCount returns the odd number of slots needed to cover the viewport.
func slotCount(viewportWidth, slotWidth int) int {
	n := viewportWidth / slotWidth
	if viewportWidth%slotWidth != 0 {
		n++
	}
	if n%2 == 0 {
		n++
	}
	return n
}

func (l *Layout) createSlots(n int) []timeview.TimeView {
	slots := make([]timeview.TimeView, n)
	for i := range slots {
		slots[i] = l.labeler.CreateView(i == n/2)
	}
	return slots
}

// populate fills all slots outward from the center, which gets the interval
// containing the current time.
func (l *Layout) populate() {
	c := l.CenterIndex()
	l.slots[c].Adopt(l.labeler.LabelContaining(l.currentTime))
	for i := c + 1; i < len(l.slots); i++ {
		l.slots[i].Adopt(l.labeler.StepAndLabel(l.slots[i-1].End(), 1))
	}
	for i := c - 1; i >= 0; i-- {
		l.slots[i].Adopt(l.labeler.StepAndLabel(l.slots[i+1].End(), -1))
	}
	l.refreshBounds()
}

// SetOnScrollListener sets the function notified of the instant the wheel
// was scrolled to by drags, flings and ScrollUnits.
func (l *Layout) SetOnScrollListener(f func(time.Time)) {
	l.listener = f
}

// SetTime positions the wheel on t.
// Any fling is aborted; the listener is not notified.
func (l *Layout) SetTime(t time.Time) {
	previous := l.state
	l.abortFling()
	l.state = Settling
	l.settle(t)
	if previous == Dragging {
		l.state = Dragging
	} else {
		l.state = Idle
	}
}

// settle recycles the slots until the center one contains t, then scrolls
// to t's place within it.
//
// Each correction moves by an estimate of the units between the center and t.
// Only corrections that do not shrink the estimate count towards giving up.
func (l *Layout) settle(t time.Time) {
	l.currentTime = t
	remaining := math.MaxInt
	stalled := 0
	for {
		center := l.slots[l.CenterIndex()].TimeObject()
		if center.Contains(t) {
			goal := float64(t.Sub(center.Start)) / float64(unitLength(center))
			half := l.slotWidth / 2
			desired := clamp(int(math.Round(goal*float64(l.span())))-half, -half, half)
			l.targetPos += desired - l.offset
			l.reScrollTo(l.targetPos, false)
			return
		}

		steps := l.unitsTo(t, center)
		distance := steps
		if distance < 0 {
			distance = -distance
		}
		if distance >= remaining {
			stalled++
		}
		if stalled >= maxSettleCorrections {
			l.log.Warn().
				Str("instant", t.Format(model.MillisLayout)).
				Str("center", center.ToString()).
				Msg("could not settle on instant, leaving wheel at nearest position")
			return
		}
		remaining = distance
		l.moveElements(-steps)
	}
}

// unitsTo estimates how many units t lies away from the center slot, using
// the average unit length across all slots.
// Never zero for an instant outside of the center.
func (l *Layout) unitsTo(t time.Time, center model.TimeObject) int {
	n := int64(len(l.slots))
	first, last := l.slots[0].TimeObject(), l.slots[n-1].TimeObject()
	unit := (last.End.UnixMilli() + 1 - first.Start.UnixMilli()) / n
	if unit < 1 {
		unit = center.End.UnixMilli() + 1 - center.Start.UnixMilli()
	}
	if unit < 1 {
		unit = 1
	}

	start, end := center.Start.UnixMilli(), center.End.UnixMilli()
	middle := start + (end-start)/2
	steps := int(math.Round(float64(t.UnixMilli()-middle) / float64(unit)))
	if steps == 0 {
		if t.Before(center.Start) {
			return -1
		}
		return 1
	}
	return steps
}

// DragStart starts following a pointer, aborting any fling.
func (l *Layout) DragStart() {
	l.abortFling()
	l.state = Dragging
}

// DragMove scrolls by the pointer having moved dx cells (positive to the
// right, which reveals earlier times).
func (l *Layout) DragMove(dx int) {
	if l.state != Dragging {
		l.DragStart()
	}
	l.targetPos -= dx
	l.reScrollTo(l.targetPos, true)
}

// DragEnd releases the pointer at the given velocity (cells per second,
// positive to the right).
// Returns whether the wheel is now flinging and wants ticks.
func (l *Layout) DragEnd(velocity float64) bool {
	if l.state != Dragging {
		return l.state == Flinging
	}
	velocity = math.Max(-l.physics.MaxFlingVelocity, math.Min(l.physics.MaxFlingVelocity, velocity))
	if math.Abs(velocity) <= l.physics.MinFlingVelocity {
		l.state = Idle
		return false
	}
	l.scroller.Fling(l.targetPos, -velocity, l.now())
	l.state = Flinging
	l.log.Trace().Float64("velocity", velocity).Int("final", l.scroller.FinalX()).Msg("fling")
	return true
}

// Tick advances a fling to now.
// Returns whether further ticks are wanted.
func (l *Layout) Tick(now time.Time) bool {
	if l.state != Flinging {
		return false
	}
	if l.scroller.ComputeScrollOffset(now) {
		l.targetPos = l.scroller.CurrX()
		l.reScrollTo(l.targetPos, true)
	}
	if l.scroller.IsFinished() {
		l.state = Idle
		return false
	}
	return l.state == Flinging
}

// ScrollUnits moves the wheel by k units (negative is earlier), keeping the
// place within the unit where possible, and notifies the listener.
// Calendar units keep the place on the calendar, other units the time into
// the unit.
// This is what keyboard stepping uses.
func (l *Layout) ScrollUnits(k int) {
	l.abortFling()
	if l.state != Dragging {
		l.state = Idle
	}
	if k == 0 {
		return
	}

	target := l.labeler.StepAndLabel(l.currentTime, k)
	t, ok := labeler.Shift(l.labeler, l.currentTime, k)
	if !ok {
		center := l.slots[l.CenterIndex()].TimeObject()
		into := l.currentTime.Sub(center.Start)
		if into < 0 {
			into = 0
		}
		t = target.Start.Add(into)
	}
	switch {
	case t.Before(target.Start):
		t = target.Start
	case t.After(target.End):
		t = target.End
	}
	t = l.clampToBounds(t)

	l.settle(t)
	l.notify(t)
}

// reScrollTo applies the scroll coordinate x.
//
// When notifying, movement that would cross a bound is scaled down to end at
// it (aborting a fling), and the listener is told the instant the wheel now
// points at.
func (l *Layout) reScrollTo(x int, notify bool) {
	scrollDiff := x - l.lastPos

	if notify && scrollDiff != 0 {
		var bound *time.Time
		switch {
		case scrollDiff < 0 && l.minTime != nil:
			bound = l.minTime
		case scrollDiff > 0 && l.maxTime != nil:
			bound = l.maxTime
		}
		if bound != nil {
			estimate := l.pointedAt(l.fraction() + float64(scrollDiff)/float64(l.span()))
			if (scrollDiff < 0 && estimate.Before(*bound)) || (scrollDiff > 0 && estimate.After(*bound)) {
				scaled := 0
				if toEstimate := estimate.Sub(l.currentTime); toEstimate != 0 {
					scaled = int(math.Round(float64(bound.Sub(l.currentTime)) / float64(toEstimate) * float64(scrollDiff)))
				}
				deviation := scrollDiff - scaled
				x -= deviation
				l.targetPos -= deviation
				scrollDiff = scaled
				l.abortFling()
			}
		}
	}

	l.offset += scrollDiff
	half := l.slotWidth / 2
	switch {
	case l.offset > half:
		steps := (l.offset - half + l.slotWidth - 1) / l.slotWidth
		l.moveElements(-steps)
		l.offset -= steps * l.slotWidth
	case -l.offset > half:
		steps := (-l.offset - half + l.slotWidth - 1) / l.slotWidth
		l.moveElements(steps)
		l.offset += steps * l.slotWidth
	}

	if notify {
		l.notify(l.clampToBounds(l.pointedAt(l.fraction())))
	}
	l.lastPos = x
}

func (l *Layout) notify(t time.Time) {
	l.currentTime = t
	if l.listener != nil {
		l.listener(t)
	}
}

// moveElements shifts the slots' contents by steps slots: positive steps move
// contents towards higher indices, revealing earlier intervals at index 0.
// Slots whose new content is already held by another slot copy it; only the
// slots entering at the edge consult the labeler.
func (l *Layout) moveElements(steps int) {
	if steps == 0 {
		return
	}
	n := len(l.slots)
	update := func(i int) {
		slot := l.slots[i]
		if src := i - steps; src >= 0 && src < n {
			slot.AdoptView(l.slots[src])
		} else {
			slot.Adopt(l.labeler.StepAndLabel(slot.End(), -steps))
		}
		l.updateBounds(slot)
	}
	if steps < 0 {
		for i := 0; i < n; i++ {
			update(i)
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			update(i)
		}
	}
	l.log.Trace().Int("steps", steps).Str("center", l.slots[l.CenterIndex()].TimeObject().ToString()).Msg("recycled slots")
}

// span is the number of cells the offset travels across the center slot.
func (l *Layout) span() int {
	return 2 * (l.slotWidth / 2)
}

// fraction returns how far (0..1) across the center slot the viewport's center
// is.
func (l *Layout) fraction() float64 {
	return float64(l.slotWidth/2+l.offset) / float64(l.span())
}

// pointedAt returns the instant at the given fraction of the center slot's
// unit, which may lie outside of the slot for fractions outside of [0,1).
func (l *Layout) pointedAt(f float64) time.Time {
	center := l.slots[l.CenterIndex()].TimeObject()
	ms := math.Round(f * float64(unitLength(center).Milliseconds()))
	t := center.Start.Add(time.Duration(ms) * time.Millisecond)
	if f >= 0 && f <= 1 && t.After(center.End) {
		return center.End
	}
	return t
}

// unitLength returns the time from the object's start to the start of the
// object following it.
func unitLength(o model.TimeObject) time.Duration {
	return o.Length() + time.Millisecond
}

func (l *Layout) clampToBounds(t time.Time) time.Time {
	if l.minTime != nil && t.Before(*l.minTime) {
		return *l.minTime
	}
	if l.maxTime != nil && t.After(*l.maxTime) {
		return *l.maxTime
	}
	return t
}

func (l *Layout) abortFling() {
	l.scroller.AbortAnimation()
	if l.state == Flinging {
		l.state = Idle
	}
}

func (l *Layout) updateBounds(slot timeview.TimeView) {
	slot.SetOutOfBounds(
		(l.minTime != nil && slot.End().Before(*l.minTime)) ||
			(l.maxTime != nil && slot.Start().After(*l.maxTime)),
	)
}

func (l *Layout) refreshBounds() {
	for _, slot := range l.slots {
		l.updateBounds(slot)
	}
}

// SetMinTime sets the earliest instant the wheel scrolls to.
func (l *Layout) SetMinTime(t time.Time) {
	l.minTime = &t
	l.refreshBounds()
}

// SetMaxTime sets the latest instant the wheel scrolls to.
func (l *Layout) SetMaxTime(t time.Time) {
	l.maxTime = &t
	l.refreshBounds()
}

// ClearBounds removes the minimum and maximum.
func (l *Layout) ClearBounds() {
	l.minTime, l.maxTime = nil, nil
	l.refreshBounds()
}

// SetMinuteInterval switches minute-bucketing labelers to buckets of n
// minutes and re-derives all slots around the current time. Other labelers
// are unaffected.
// The wheel is not re-positioned; callers follow up with SetTime.
func (l *Layout) SetMinuteInterval(n int) error {
	derived, err := labeler.WithMinuteInterval(l.labeler, n)
	if err != nil {
		return err
	}
	l.labeler = derived
	l.populate()
	return nil
}

// SetViewportWidth adapts the wheel to a new width, creating the slots
// needed to cover it and re-settling on the current time if their number
// changes.
func (l *Layout) SetViewportWidth(w int) {
	if w <= 0 || w == l.viewportWidth {
		return
	}
	l.viewportWidth = w
	if n := slotCount(w, l.slotWidth); n != len(l.slots) {
		l.slots = l.createSlots(n)
		l.offset = 0
		l.populate()
		l.SetTime(l.currentTime)
	}
}

// SlotX returns the left edge of slot i relative to the viewport's left edge.
func (l *Layout) SlotX(i int) int {
	return l.viewportWidth/2 - l.slotWidth/2 - l.offset + (i-l.CenterIndex())*l.slotWidth
}

// SlotAt returns the index of the slot covering the given cell (relative to
// the viewport's left edge), or -1.
func (l *Layout) SlotAt(x int) int {
	for i := range l.slots {
		if left := l.SlotX(i); x >= left && x < left+l.slotWidth {
			return i
		}
	}
	return -1
}

// Time returns the instant the wheel points at.
func (l *Layout) Time() time.Time { return l.currentTime }

// State returns the interaction state.
func (l *Layout) State() State { return l.state }

// Slots returns the slots, ordered from earliest to latest.
// The slice must not be modified.
func (l *Layout) Slots() []timeview.TimeView { return l.slots }

// CenterIndex returns the index of the center slot.
func (l *Layout) CenterIndex() int { return len(l.slots) / 2 }

// Offset returns the distance of the viewport's center from the center
// slot's center.
func (l *Layout) Offset() int { return l.offset }

// SlotSize returns the size of each slot.
func (l *Layout) SlotSize() (w, h int) { return l.slotWidth, l.slotHeight }

// ViewportWidth returns the width the wheel is laid out for.
func (l *Layout) ViewportWidth() int { return l.viewportWidth }

// Labeler returns the labeler currently in use.
func (l *Layout) Labeler() labeler.Labeler { return l.labeler }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
