package scroll

import (
	"math"
	"time"
)

// Scroller simulates a fling: a movement starting at some velocity and
// decelerating at a constant rate until it comes to rest.
type Scroller struct {
	deceleration float64

	startX    int
	startTime time.Time
	speed     float64
	direction float64
	duration  float64
	distance  float64

	currX    int
	finished bool
}

// NewScroller returns a finished scroller decelerating at the given rate (in
// cells per second squared).
func NewScroller(deceleration float64) *Scroller {
	if deceleration <= 0 {
		panic("non-positive deceleration")
	}
	return &Scroller{deceleration: deceleration, finished: true}
}

// Fling starts a fling at startX with the given velocity (cells per second,
// signed).
func (s *Scroller) Fling(startX int, velocity float64, now time.Time) {
	s.startX = startX
	s.currX = startX
	s.startTime = now
	s.speed = math.Abs(velocity)
	s.direction = 1
	if velocity < 0 {
		s.direction = -1
	}
	s.duration = s.speed / s.deceleration
	s.distance = s.speed * s.speed / (2 * s.deceleration)
	s.finished = s.speed == 0
}

// ComputeScrollOffset advances the simulation to now.
// Returns false, if the scroller had already finished; the last position is
// reported with true, after which the scroller is finished.
func (s *Scroller) ComputeScrollOffset(now time.Time) bool {
	if s.finished {
		return false
	}
	elapsed := now.Sub(s.startTime).Seconds()
	if elapsed >= s.duration {
		s.currX = s.startX + int(math.Round(s.direction*s.distance))
		s.finished = true
		return true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	travelled := s.speed*elapsed - s.deceleration*elapsed*elapsed/2
	s.currX = s.startX + int(math.Round(s.direction*travelled))
	return true
}

// CurrX returns the position computed last.
func (s *Scroller) CurrX() int { return s.currX }

// FinalX returns the position the fling comes to rest at.
func (s *Scroller) FinalX() int { return s.startX + int(math.Round(s.direction*s.distance)) }

// IsFinished returns whether the fling has come to rest or was aborted.
func (s *Scroller) IsFinished() bool { return s.finished }

// AbortAnimation stops the fling where it currently is.
func (s *Scroller) AbortAnimation() { s.finished = true }
