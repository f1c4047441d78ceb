package scroll

import "time"

// VelocityTracker estimates the velocity of a pointer from its recent
// positions.
type VelocityTracker struct {
	window  time.Duration
	samples []sample
}

type sample struct {
	x  int
	at time.Time
}

// NewVelocityTracker returns a tracker considering the positions of the given
// time window before the latest one.
func NewVelocityTracker(window time.Duration) *VelocityTracker {
	return &VelocityTracker{window: window}
}

// Clear forgets all positions.
func (v *VelocityTracker) Clear() {
	v.samples = v.samples[:0]
}

// AddMovement records the pointer being at x at the given time.
func (v *VelocityTracker) AddMovement(x int, at time.Time) {
	v.samples = append(v.samples, sample{x: x, at: at})
	cutoff := at.Add(-v.window)
	drop := 0
	for drop < len(v.samples)-1 && v.samples[drop].at.Before(cutoff) {
		drop++
	}
	v.samples = v.samples[drop:]
}

// Velocity returns the pointer's velocity in cells per second, positive when
// moving right.
// Returns 0 with fewer than two positions in the window.
func (v *VelocityTracker) Velocity() float64 {
	if len(v.samples) < 2 {
		return 0
	}
	first, last := v.samples[0], v.samples[len(v.samples)-1]
	elapsed := last.at.Sub(first.at).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(last.x-first.x) / elapsed
}
