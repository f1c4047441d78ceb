package scroll_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/ja-he/dayslider/internal/labeler"
	"github.com/ja-he/dayslider/internal/scroll"
	"github.com/ja-he/dayslider/internal/timeview"
)

// fakeClock is advanced manually by tests.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func utc(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

// newDayLayout returns a 40 cell wide wheel of 8 cell wide day slots (i.e. 5
// slots) showing the given instant.
func newDayLayout(t *testing.T, at time.Time, clock *fakeClock) *scroll.Layout {
	t.Helper()
	l, err := labeler.New("day", labeler.Options{Location: time.UTC})
	if err != nil {
		t.Fatal(err.Error())
	}
	params := scroll.Params{
		Name:          "day",
		Labeler:       labeler.Checked(l, true),
		ViewportWidth: 40,
		SlotWidth:     8,
		Time:          at,
	}
	if clock != nil {
		params.Now = clock.Now
	}
	layout, err := scroll.NewLayout(params)
	if err != nil {
		t.Fatal(err.Error())
	}
	return layout
}

func labels(slots []timeview.TimeView) []string {
	result := make([]string, len(slots))
	for i, slot := range slots {
		result[i] = slot.Label()
	}
	return result
}

func expectLabels(t *testing.T, l *scroll.Layout, expected ...string) {
	t.Helper()
	actual := labels(l.Slots())
	if len(actual) != len(expected) {
		t.Fatalf("got %d slots %v, expected %v", len(actual), actual, expected)
	}
	for i := range actual {
		if actual[i] != expected[i] {
			t.Errorf("got slots %v, expected %v", actual, expected)
			return
		}
	}
}

func expectConsistent(t *testing.T, l *scroll.Layout) {
	t.Helper()
	slots := l.Slots()
	if len(slots)%2 != 1 {
		t.Errorf("even number of slots (%d)", len(slots))
	}
	for i := 0; i+1 < len(slots); i++ {
		if !slots[i].TimeObject().Precedes(slots[i+1].TimeObject()) {
			t.Errorf("slot %d (%s) is not followed by slot %d (%s)", i, slots[i].TimeObject().ToString(), i+1, slots[i+1].TimeObject().ToString())
		}
	}
	for i, slot := range slots {
		if slot.IsCenter() != (i == l.CenterIndex()) {
			t.Errorf("slot %d has center flag %t", i, slot.IsCenter())
		}
	}
	w, _ := l.SlotSize()
	if o := l.Offset(); o < -w/2 || o > w/2 {
		t.Errorf("offset %d outside of half a slot", o)
	}
}

func TestNewLayout(t *testing.T) {
	l := newDayLayout(t, utc(2024, time.March, 12, 12, 0), nil)
	expectLabels(t, l, "10", "11", "12", "13", "14")
	expectConsistent(t, l)
	if l.Offset() != 0 {
		t.Error("noon is not shown in the middle of the center slot, offset", l.Offset())
	}
	if l.State() != scroll.Idle {
		t.Error("new layout not idle but", l.State().ToString())
	}
	if !l.Time().Equal(utc(2024, time.March, 12, 12, 0)) {
		t.Error("unexpected time", l.Time())
	}

	t.Run("slot count is odd and covers the viewport", func(t *testing.T) {
		lab, _ := labeler.New("day", labeler.Options{Location: time.UTC})
		for width, expected := range map[int]int{1: 1, 8: 1, 9: 3, 16: 3, 33: 5, 80: 11} {
			l, err := scroll.NewLayout(scroll.Params{Labeler: lab, ViewportWidth: width, SlotWidth: 8, Time: utc(2024, time.March, 12, 12, 0)})
			if err != nil {
				t.Fatal(err.Error())
			}
			if len(l.Slots()) != expected {
				t.Errorf("width %d: %d slots, expected %d", width, len(l.Slots()), expected)
			}
		}
	})

	t.Run("invalid parameters", func(t *testing.T) {
		lab, _ := labeler.New("day", labeler.Options{Location: time.UTC})
		for name, p := range map[string]scroll.Params{
			"no labeler":    {ViewportWidth: 40},
			"no width":      {Labeler: lab},
			"tiny slots":    {Labeler: lab, ViewportWidth: 40, SlotWidth: 1},
			"bad physics":   {Labeler: lab, ViewportWidth: 40, Physics: scroll.Physics{Deceleration: -1}},
			"min above max": {Labeler: lab, ViewportWidth: 40, Physics: scroll.Physics{Deceleration: 1, MinFlingVelocity: 10, MaxFlingVelocity: 5}},
		} {
			if _, err := scroll.NewLayout(p); err == nil {
				t.Errorf("%s: no error", name)
			}
		}
	})
}

func TestDrag(t *testing.T) {

	t.Run("recycles by one slot", func(t *testing.T) {
		l := newDayLayout(t, utc(2024, time.March, 12, 12, 0), nil)
		var reported []time.Time
		l.SetOnScrollListener(func(t time.Time) { reported = append(reported, t) })

		l.DragStart()
		if l.State() != scroll.Dragging {
			t.Error("not dragging after drag start")
		}
		l.DragMove(-8)
		expectLabels(t, l, "11", "12", "13", "14", "15")
		expectConsistent(t, l)
		if len(reported) != 1 || !reported[0].Equal(utc(2024, time.March, 13, 12, 0)) {
			t.Error("unexpected reports", reported)
		}
		if !l.Time().Equal(utc(2024, time.March, 13, 12, 0)) {
			t.Error("unexpected time", l.Time())
		}
	})

	t.Run("partial slot", func(t *testing.T) {
		l := newDayLayout(t, utc(2024, time.March, 12, 12, 0), nil)
		l.DragMove(-2)
		expectLabels(t, l, "10", "11", "12", "13", "14")
		if l.Offset() != 2 {
			t.Error("unexpected offset", l.Offset())
		}
		if !l.Time().Equal(utc(2024, time.March, 12, 18, 0)) {
			t.Error("unexpected time", l.Time())
		}
		l.DragMove(-3)
		expectLabels(t, l, "11", "12", "13", "14", "15")
		if l.Offset() != -3 {
			t.Error("unexpected offset after crossing half a slot", l.Offset())
		}
		if !l.Time().Equal(utc(2024, time.March, 13, 3, 0)) {
			t.Error("unexpected time", l.Time())
		}
	})

	t.Run("backwards", func(t *testing.T) {
		l := newDayLayout(t, utc(2024, time.March, 12, 12, 0), nil)
		l.DragMove(16)
		expectLabels(t, l, "8", "9", "10", "11", "12")
		expectConsistent(t, l)
	})

	t.Run("further than the wheel is wide", func(t *testing.T) {
		l := newDayLayout(t, utc(2024, time.March, 12, 12, 0), nil)
		l.DragMove(-80)
		expectLabels(t, l, "20", "21", "22", "23", "24")
		expectConsistent(t, l)
		l.DragMove(8 * 31)
		expectLabels(t, l, "18", "19", "20", "21", "22")
		expectConsistent(t, l)
		if l.Slots()[l.CenterIndex()].Start().Month() != time.February {
			t.Error("expected to be in february after dragging back a month")
		}
	})

	t.Run("random drags keep the wheel consistent", func(t *testing.T) {
		l := newDayLayout(t, utc(2024, time.March, 12, 12, 0), nil)
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 500; i++ {
			l.DragMove(rng.Intn(61) - 30)
			expectConsistent(t, l)
			if !l.Slots()[l.CenterIndex()].TimeObject().Contains(l.Time()) {
				t.Fatalf("center slot %s does not contain reported %s", l.Slots()[l.CenterIndex()].TimeObject().ToString(), l.Time())
			}
		}
	})

	t.Run("slow release does not fling", func(t *testing.T) {
		l := newDayLayout(t, utc(2024, time.March, 12, 12, 0), nil)
		l.DragStart()
		l.DragMove(-3)
		if l.DragEnd(5) {
			t.Error("flinging below the minimum velocity")
		}
		if l.State() != scroll.Idle {
			t.Error("not idle after slow release but", l.State().ToString())
		}
	})
}

func TestBounds(t *testing.T) {

	t.Run("drag stops at min", func(t *testing.T) {
		l := newDayLayout(t, utc(2024, time.March, 12, 12, 0), nil)
		min := utc(2024, time.March, 11, 0, 0)
		l.SetMinTime(min)
		if !l.Slots()[0].OutOfBounds() || l.Slots()[1].OutOfBounds() {
			t.Error("unexpected out-of-bounds flags after setting min", l.Slots()[0].OutOfBounds(), l.Slots()[1].OutOfBounds())
		}

		var reported []time.Time
		l.SetOnScrollListener(func(t time.Time) { reported = append(reported, t) })
		l.DragMove(24)
		if !l.Time().Equal(min) {
			t.Error("drag past min did not stop at min but at", l.Time())
		}
		expectLabels(t, l, "9", "10", "11", "12", "13")
		expectConsistent(t, l)
		if !l.Slots()[0].OutOfBounds() || !l.Slots()[1].OutOfBounds() || l.Slots()[2].OutOfBounds() {
			t.Error("unexpected out-of-bounds flags after drag")
		}

		l.DragMove(8)
		if !l.Time().Equal(min) {
			t.Error("second drag past min moved to", l.Time())
		}
		for _, r := range reported {
			if r.Before(min) {
				t.Error("reported instant before min:", r)
			}
		}

		l.DragMove(-8)
		if !l.Time().After(min) {
			t.Error("could not drag away from min")
		}
	})

	t.Run("fling stops at max", func(t *testing.T) {
		clock := &fakeClock{now: utc(2024, time.March, 1, 0, 0)}
		l := newDayLayout(t, utc(2024, time.March, 12, 12, 0), clock)
		max := utc(2024, time.March, 14, 6, 0)
		l.SetMaxTime(max)
		if l.Slots()[4].OutOfBounds() {
			t.Error("day 14 out of bounds despite starting before max")
		}

		l.DragStart()
		l.DragMove(-1)
		if !l.DragEnd(-400) {
			t.Fatal("not flinging")
		}
		for i := 0; i < 1000 && l.Tick(clock.now); i++ {
			clock.now = clock.now.Add(16 * time.Millisecond)
			if l.Time().After(max) {
				t.Fatal("fling went past max to", l.Time())
			}
		}
		if l.State() != scroll.Idle {
			t.Error("not idle after fling hit max but", l.State().ToString())
		}
		if !l.Time().Equal(max) {
			t.Error("fling did not stop at max but at", l.Time())
		}
		if !l.Slots()[l.CenterIndex()].TimeObject().Contains(max) {
			t.Error("center does not show max")
		}
		if !l.Slots()[4].OutOfBounds() {
			t.Error("slot after max not out of bounds")
		}

		l.ClearBounds()
		for i, slot := range l.Slots() {
			if slot.OutOfBounds() {
				t.Errorf("slot %d out of bounds after clearing bounds", i)
			}
		}
	})
}

func TestFling(t *testing.T) {
	clock := &fakeClock{now: utc(2024, time.March, 1, 0, 0)}
	l := newDayLayout(t, utc(2024, time.March, 12, 12, 0), clock)
	reports := 0
	l.SetOnScrollListener(func(time.Time) { reports++ })

	l.DragStart()
	l.DragMove(-2)
	before := l.Time()
	if !l.DragEnd(-100) {
		t.Fatal("not flinging after fast release")
	}
	if l.State() != scroll.Flinging {
		t.Error("not in flinging state but", l.State().ToString())
	}

	ticks := 0
	for l.Tick(clock.now) {
		clock.now = clock.now.Add(16 * time.Millisecond)
		ticks++
		if ticks > 1000 {
			t.Fatal("fling did not come to rest")
		}
		expectConsistent(t, l)
	}
	if l.State() != scroll.Idle {
		t.Error("not idle after fling but", l.State().ToString())
	}
	if !l.Time().After(before.Add(3 * 24 * time.Hour)) {
		t.Error("fling moved too little, to", l.Time())
	}
	if reports < 2 {
		t.Error("listener not notified during fling")
	}
	if l.Tick(clock.now) {
		t.Error("ticks wanted after rest")
	}

	t.Run("drag start aborts", func(t *testing.T) {
		l.DragStart()
		l.DragMove(-1)
		l.DragEnd(-300)
		l.Tick(clock.now.Add(16 * time.Millisecond))
		l.DragStart()
		if l.State() != scroll.Dragging {
			t.Error("not dragging after interrupting fling")
		}
		if l.Tick(clock.now.Add(32 * time.Millisecond)) {
			t.Error("still ticking after interrupting fling")
		}
	})

	t.Run("set time aborts", func(t *testing.T) {
		l.DragStart()
		l.DragMove(-1)
		l.DragEnd(-300)
		l.SetTime(utc(2024, time.June, 1, 12, 0))
		if l.State() != scroll.Idle {
			t.Error("not idle after set time interrupted fling")
		}
		if !l.Time().Equal(utc(2024, time.June, 1, 12, 0)) {
			t.Error("unexpected time", l.Time())
		}
	})
}

func TestSetTime(t *testing.T) {
	l := newDayLayout(t, utc(2024, time.March, 12, 12, 0), nil)
	reports := 0
	l.SetOnScrollListener(func(time.Time) { reports++ })

	rng := rand.New(rand.NewSource(7))
	base := utc(2024, time.March, 12, 12, 0)
	for i := 0; i < 200; i++ {
		at := base.Add(time.Duration(rng.Int63n(int64(4000*24*time.Hour))) - 2000*24*time.Hour)
		l.SetTime(at)
		center := l.Slots()[l.CenterIndex()]
		if !center.TimeObject().Contains(at) {
			t.Fatalf("center %s does not contain %s", center.TimeObject().ToString(), at)
		}
		if !l.Time().Equal(at) {
			t.Fatalf("time %s after setting %s", l.Time(), at)
		}
		expectConsistent(t, l)

		// the center cell of the viewport lies within the center slot, at the
		// instant's relative position
		w, _ := l.SlotSize()
		left := l.SlotX(l.CenterIndex())
		if mid := l.ViewportWidth() / 2; mid < left || mid > left+w {
			t.Fatalf("viewport center %d outside of center slot [%d,%d]", mid, left, left+w)
		}
	}
	if reports != 0 {
		t.Error("listener notified by SetTime")
	}

	t.Run("start and end of the unit", func(t *testing.T) {
		l.SetTime(utc(2024, time.March, 12, 0, 0))
		if l.Offset() != -4 {
			t.Error("start of day not at left edge, offset", l.Offset())
		}
		l.SetTime(utc(2024, time.March, 12, 23, 59))
		if l.Offset() != 4 {
			t.Error("end of day not at right edge, offset", l.Offset())
		}
	})
}

func TestSetTimeAcrossCenturies(t *testing.T) {
	instants := []time.Time{
		utc(1900, time.August, 31, 23, 59),
		utc(9000, time.January, 1, 0, 0),
		utc(1700, time.March, 20, 10, 0),
		utc(3, time.February, 28, 12, 0),
		utc(9990, time.December, 31, 23, 59),
		utc(2024, time.March, 12, 12, 0),
	}
	for _, granularity := range []string{"year", "month", "week", "daydate", "hour", "time", "minute"} {
		t.Run(granularity, func(t *testing.T) {
			l, err := labeler.New(granularity, labeler.Options{Location: time.UTC})
			if err != nil {
				t.Fatal(err.Error())
			}
			layout, err := scroll.NewLayout(scroll.Params{
				Name:          granularity,
				Labeler:       labeler.Checked(l, true),
				ViewportWidth: 40,
				SlotWidth:     8,
				Time:          utc(2124, time.February, 15, 10, 30),
			})
			if err != nil {
				t.Fatal(err.Error())
			}

			for _, at := range instants {
				layout.SetTime(at)
				if center := layout.Slots()[layout.CenterIndex()].TimeObject(); !center.Contains(at) {
					t.Fatalf("center %s does not contain %s", center.ToString(), at)
				}
				if !layout.Time().Equal(at) {
					t.Errorf("time %s after setting %s", layout.Time(), at)
				}
				expectConsistent(t, layout)
			}
		})
	}
}

func TestScrollUnits(t *testing.T) {
	l := newDayLayout(t, utc(2024, time.March, 12, 10, 15), nil)
	var reported []time.Time
	l.SetOnScrollListener(func(t time.Time) { reported = append(reported, t) })

	l.ScrollUnits(1)
	if !l.Time().Equal(utc(2024, time.March, 13, 10, 15)) {
		t.Error("unexpected time after stepping forward", l.Time())
	}
	expectLabels(t, l, "11", "12", "13", "14", "15")
	l.ScrollUnits(-3)
	if !l.Time().Equal(utc(2024, time.March, 10, 10, 15)) {
		t.Error("unexpected time after stepping back", l.Time())
	}
	expectConsistent(t, l)
	if len(reported) != 2 || !reported[1].Equal(l.Time()) {
		t.Error("unexpected reports", reported)
	}

	t.Run("at the end of the unit", func(t *testing.T) {
		l.SetTime(utc(2024, time.March, 12, 23, 30))
		l.ScrollUnits(1)
		if !l.Time().Equal(utc(2024, time.March, 13, 23, 30)) {
			t.Error("stepping from late in the day went to", l.Time())
		}
	})

	t.Run("into a shorter month", func(t *testing.T) {
		lab, _ := labeler.New("month", labeler.Options{Location: time.UTC})
		months, err := scroll.NewLayout(scroll.Params{Labeler: lab, ViewportWidth: 40, SlotWidth: 8, Time: utc(2024, time.January, 31, 10, 0)})
		if err != nil {
			t.Fatal(err.Error())
		}
		months.ScrollUnits(1)
		if months.Time().Month() != time.February {
			t.Error("stepping from january 31st left february:", months.Time())
		}
		months.ScrollUnits(12)
		if months.Time().Month() != time.February || months.Time().Year() != 2025 {
			t.Error("stepping a year went to", months.Time())
		}

		months.SetTime(utc(2024, time.March, 15, 10, 0))
		months.ScrollUnits(1)
		if !months.Time().Equal(utc(2024, time.April, 15, 10, 0)) {
			t.Error("stepping a month did not keep the day of the month:", months.Time())
		}
	})

	t.Run("clamps to bounds", func(t *testing.T) {
		max := utc(2024, time.March, 14, 0, 0)
		l.SetMaxTime(max)
		l.SetTime(utc(2024, time.March, 12, 10, 15))
		l.ScrollUnits(5)
		if !l.Time().Equal(max) {
			t.Error("stepping past max went to", l.Time())
		}
	})
}

func TestSetMinuteInterval(t *testing.T) {
	lab, err := labeler.New("time", labeler.Options{Location: time.UTC})
	if err != nil {
		t.Fatal(err.Error())
	}
	l, err := scroll.NewLayout(scroll.Params{Labeler: lab, ViewportWidth: 40, SlotWidth: 8, Time: utc(2024, time.March, 12, 10, 7)})
	if err != nil {
		t.Fatal(err.Error())
	}
	expectLabels(t, l, "09:30", "09:45", "10:00", "10:15", "10:30")

	if err := l.SetMinuteInterval(5); err != nil {
		t.Fatal(err.Error())
	}
	l.SetTime(utc(2024, time.March, 12, 10, 5))
	expectLabels(t, l, "09:55", "10:00", "10:05", "10:10", "10:15")
	expectConsistent(t, l)
	for _, slot := range l.Slots() {
		if slot.TimeObject().Length() != 5*time.Minute-time.Millisecond {
			t.Error("slot with unexpected length", slot.TimeObject().ToString())
		}
	}

	if err := l.SetMinuteInterval(7); err == nil {
		t.Error("no error for minute interval 7")
	}
}

func TestSetViewportWidth(t *testing.T) {
	l := newDayLayout(t, utc(2024, time.March, 12, 12, 0), nil)
	l.SetViewportWidth(80)
	if len(l.Slots()) != 11 {
		t.Error("unexpected slot count after widening", len(l.Slots()))
	}
	expectConsistent(t, l)
	if !l.Slots()[l.CenterIndex()].TimeObject().Contains(utc(2024, time.March, 12, 12, 0)) {
		t.Error("center moved on resize")
	}
	if l.SlotAt(l.ViewportWidth()/2) != l.CenterIndex() {
		t.Error("viewport center not on center slot")
	}
	if l.SlotAt(-100) != -1 {
		t.Error("slot found far outside of the viewport")
	}
}
