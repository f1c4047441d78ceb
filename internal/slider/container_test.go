package slider_test

import (
	"testing"
	"time"

	"github.com/ja-he/dayslider/internal/config"
	"github.com/ja-he/dayslider/internal/scroll"
	"github.com/ja-he/dayslider/internal/slider"
)

func utc(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func newSlider(t *testing.T, preset string, at time.Time) *slider.Slider {
	t.Helper()
	s, err := slider.New(slider.Params{
		Config:        config.Slider{Preset: preset, Location: "UTC"},
		ViewportWidth: 40,
		Initial:       at,
		Debug:         true,
	})
	if err != nil {
		t.Fatalf("unexpected error building slider: %s", err.Error())
	}
	return s
}

func centerLabels(s *slider.Slider) []string {
	var result []string
	for _, w := range s.Wheels() {
		result = append(result, w.Slots()[w.CenterIndex()].Label())
	}
	return result
}

func expectCenters(t *testing.T, s *slider.Slider, expected ...string) {
	t.Helper()
	actual := centerLabels(s)
	if len(actual) != len(expected) {
		t.Fatalf("got centers %v, expected %v", actual, expected)
	}
	for i := range actual {
		if actual[i] != expected[i] {
			t.Errorf("got centers %v, expected %v", actual, expected)
			return
		}
	}
}

func expectAllAt(t *testing.T, s *slider.Slider, expected time.Time) {
	t.Helper()
	if !s.Time().Equal(expected) {
		t.Errorf("container at %s, expected %s", s.Time(), expected)
	}
	for i, w := range s.Wheels() {
		if !w.Time().Equal(expected) {
			t.Errorf("wheel %d at %s, expected %s", i, w.Time(), expected)
		}
	}
}

func TestFanOut(t *testing.T) {
	t.Run("set time moves all wheels and notifies once", func(t *testing.T) {
		s := newSlider(t, "default", utc(2024, time.March, 15, 10, 30))
		expectCenters(t, s, "2024", "Mar", "Fri 15")

		notified := []time.Time{}
		s.OnTimeChange(func(at time.Time) { notified = append(notified, at) })

		s.SetTime(utc(2025, time.July, 4, 12, 0))
		expectCenters(t, s, "2025", "Jul", "Fri 4")
		expectAllAt(t, s, utc(2025, time.July, 4, 12, 0))
		if len(notified) != 1 {
			t.Errorf("notified %d times, expected once", len(notified))
		}
	})

	t.Run("stepping one wheel moves its siblings", func(t *testing.T) {
		s := newSlider(t, "default", utc(2024, time.March, 31, 10, 30))
		notified := 0
		s.OnTimeChange(func(time.Time) { notified++ })

		days := s.Wheels()[2]
		days.ScrollUnits(1)
		expectCenters(t, s, "2024", "Apr", "Mon 1")
		expectAllAt(t, s, utc(2024, time.April, 1, 10, 30))
		if notified != 1 {
			t.Errorf("notified %d times, expected once", notified)
		}

		years := s.Wheels()[0]
		years.ScrollUnits(-1)
		expectCenters(t, s, "2023", "Apr", "Sat 1")
		expectAllAt(t, s, utc(2023, time.April, 1, 10, 30))
		if notified != 2 {
			t.Errorf("notified %d times, expected twice", notified)
		}
	})

	t.Run("month step clamps to the end of a shorter month", func(t *testing.T) {
		s := newSlider(t, "default", utc(2024, time.January, 31, 10, 30))
		s.Wheels()[1].ScrollUnits(1)
		expectCenters(t, s, "2024", "Feb", "Thu 29")
		if s.Time().Month() != time.February || s.Time().Day() != 29 {
			t.Errorf("expected end of february, got %s", s.Time())
		}
	})

	t.Run("dragging one wheel moves its siblings", func(t *testing.T) {
		s := newSlider(t, "default", utc(2024, time.March, 15, 12, 0))
		days := s.Wheels()[2]
		w, _ := days.SlotSize()

		days.DragStart()
		for i := 0; i < w; i++ {
			days.DragMove(-1)
		}
		days.DragEnd(0)

		if days.State() != scroll.Idle {
			t.Errorf("expected idle wheel after slow release, got %s", days.State().ToString())
		}
		expectCenters(t, s, "2024", "Mar", "Sat 16")
		for i, wheel := range s.Wheels() {
			if !wheel.Time().Equal(s.Time()) {
				t.Errorf("wheel %d at %s, container at %s", i, wheel.Time(), s.Time())
			}
		}
	})
}

func TestBounds(t *testing.T) {
	t.Run("bounds before time are an error", func(t *testing.T) {
		c := slider.NewContainer()
		if err := c.SetMinTime(utc(2024, time.January, 1, 0, 0)); err == nil {
			t.Error("expected error setting minimum before time")
		}
		if err := c.SetMaxTime(utc(2024, time.January, 1, 0, 0)); err == nil {
			t.Error("expected error setting maximum before time")
		}
	})

	t.Run("inverted bounds are an error", func(t *testing.T) {
		s := newSlider(t, "default", utc(2024, time.March, 15, 10, 30))
		if err := s.SetMinTime(utc(2024, time.March, 1, 0, 0)); err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if err := s.SetMaxTime(utc(2024, time.February, 1, 0, 0)); err == nil {
			t.Error("expected error setting maximum before minimum")
		}
		if err := s.SetMaxTime(utc(2024, time.April, 1, 0, 0)); err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if err := s.SetMinTime(utc(2024, time.May, 1, 0, 0)); err == nil {
			t.Error("expected error setting minimum after maximum")
		}
	})

	t.Run("setting a bound clamps the time", func(t *testing.T) {
		s := newSlider(t, "default", utc(2024, time.March, 15, 10, 30))
		notified := 0
		s.OnTimeChange(func(time.Time) { notified++ })

		max := utc(2024, time.March, 10, 8, 0)
		if err := s.SetMaxTime(max); err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		expectAllAt(t, s, max)
		if notified != 1 {
			t.Errorf("notified %d times, expected once", notified)
		}

		s.SetTime(utc(2030, time.January, 1, 0, 0))
		expectAllAt(t, s, max)
	})

	t.Run("stepping stops at the bound", func(t *testing.T) {
		s := newSlider(t, "default", utc(2024, time.March, 15, 10, 30))
		min := utc(2024, time.March, 14, 12, 0)
		if err := s.SetMinTime(min); err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		s.Wheels()[2].ScrollUnits(-3)
		expectAllAt(t, s, min)
		expectCenters(t, s, "2024", "Mar", "Thu 14")

		min2, max2 := s.Bounds()
		if min2 == nil || !min2.Equal(min) || max2 != nil {
			t.Errorf("unexpected bounds %v, %v", min2, max2)
		}
	})

	t.Run("out of bounds slots are marked", func(t *testing.T) {
		s := newSlider(t, "default", utc(2024, time.March, 15, 10, 30))
		if err := s.SetMaxTime(utc(2024, time.March, 15, 23, 0)); err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		days := s.Wheels()[2]
		for i, slot := range days.Slots() {
			expected := i > days.CenterIndex()
			if slot.OutOfBounds() != expected {
				t.Errorf("slot %d (%s) out of bounds: %t, expected %t", i, slot.Label(), slot.OutOfBounds(), expected)
			}
		}
	})
}

func TestMinuteInterval(t *testing.T) {
	t.Run("invalid intervals are rejected", func(t *testing.T) {
		s := newSlider(t, "time", utc(2024, time.March, 15, 10, 31))
		for _, n := range []int{0, -5, 7, 25, 61} {
			if err := s.SetMinuteInterval(n); err == nil {
				t.Errorf("expected error for interval %d", n)
			}
		}
		if s.MinuteInterval() != 1 {
			t.Errorf("interval changed to %d", s.MinuteInterval())
		}
	})

	t.Run("snaps to the nearest bucket and re-derives slots", func(t *testing.T) {
		s := newSlider(t, "time", utc(2024, time.March, 15, 10, 38))
		expectCenters(t, s, "10h", "38")

		if err := s.SetMinuteInterval(15); err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		expectAllAt(t, s, utc(2024, time.March, 15, 10, 45))
		expectCenters(t, s, "10h", "45")

		minutes := s.Wheels()[1]
		for i, slot := range minutes.Slots() {
			if slot.Start().Minute()%15 != 0 {
				t.Errorf("slot %d (%s) does not start on a bucket boundary", i, slot.TimeObject().ToString())
			}
			if slot.TimeObject().Length() != 15*time.Minute-time.Millisecond {
				t.Errorf("slot %d (%s) is not a 15 minute bucket", i, slot.TimeObject().ToString())
			}
		}
	})

	t.Run("snapping crosses the hour", func(t *testing.T) {
		s := newSlider(t, "time", utc(2024, time.March, 15, 23, 55))
		if err := s.SetMinuteInterval(10); err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		expectAllAt(t, s, utc(2024, time.March, 16, 0, 0))
		expectCenters(t, s, "00h", "00")
	})

	t.Run("preset interval rounds the initial time", func(t *testing.T) {
		s := newSlider(t, "datetime", utc(2024, time.March, 15, 10, 7))
		if s.MinuteInterval() != 15 {
			t.Errorf("expected preset interval 15, got %d", s.MinuteInterval())
		}
		expectAllAt(t, s, utc(2024, time.March, 15, 10, 0))
		expectCenters(t, s, "Fri 15", "10:00")
	})
}

func TestSnapToInterval(t *testing.T) {
	for _, tc := range []struct {
		in       time.Time
		n        int
		expected time.Time
	}{
		{in: utc(2024, 1, 1, 10, 7), n: 15, expected: utc(2024, 1, 1, 10, 0)},
		{in: utc(2024, 1, 1, 10, 8), n: 15, expected: utc(2024, 1, 1, 10, 15)},
		{in: utc(2024, 1, 1, 10, 5), n: 10, expected: utc(2024, 1, 1, 10, 10)},
		{in: utc(2024, 1, 1, 10, 5).Add(40 * time.Second), n: 1, expected: utc(2024, 1, 1, 10, 6)},
		{in: utc(2024, 12, 31, 23, 59), n: 30, expected: utc(2025, 1, 1, 0, 0)},
	} {
		actual := slider.SnapToInterval(tc.in, tc.n)
		if !actual.Equal(tc.expected) {
			t.Errorf("snapping %s to %d: got %s, expected %s", tc.in, tc.n, actual, tc.expected)
		}
	}
}

func TestSetTimeAcrossCenturies(t *testing.T) {
	instants := []time.Time{
		utc(1700, time.March, 20, 10, 0),
		utc(9000, time.January, 1, 0, 0),
		utc(1900, time.August, 31, 23, 59),
		utc(3, time.February, 28, 12, 0),
		utc(9990, time.December, 31, 23, 59),
	}
	for _, preset := range slider.PresetNames() {
		t.Run(preset, func(t *testing.T) {
			s := newSlider(t, preset, utc(2124, time.February, 15, 10, 30))
			for _, at := range instants {
				s.SetTime(at)
				expectAllAt(t, s, at)
				for i, w := range s.Wheels() {
					slots := w.Slots()
					if center := slots[w.CenterIndex()].TimeObject(); !center.Contains(at) {
						t.Errorf("wheel %d centered on %s after setting %s", i, center.ToString(), at)
					}
					for j := 0; j+1 < len(slots); j++ {
						if !slots[j].TimeObject().Precedes(slots[j+1].TimeObject()) {
							t.Errorf("wheel %d: slot %d (%s) not followed by slot %d (%s)", i, j, slots[j].TimeObject().ToString(), j+1, slots[j+1].TimeObject().ToString())
						}
					}
				}
			}
		})
	}
}
