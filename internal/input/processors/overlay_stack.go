// Package processors contains input processors composing the simple
// processors of package input.
package processors

import (
	"fmt"

	"github.com/ja-he/dayslider/internal/input"
)

// OverlayStack is a processor which hands every key to the topmost of a stack
// of overlays, or to its base if there are none.
//
// The picker uses it to put the help overlay, which swallows all keys but the
// ones closing it, over the wheel bindings.
type OverlayStack struct {
	base     input.Processor
	overlays []input.Processor
}

// NewOverlayStack returns a stack without overlays over the given base.
func NewOverlayStack(base input.Processor) *OverlayStack {
	return &OverlayStack{base: base}
}

// Push puts the overlay on top and returns the resulting depth.
func (s *OverlayStack) Push(overlay input.Processor) int {
	s.overlays = append(s.overlays, overlay)
	return len(s.overlays)
}

// Pop removes the topmost overlay.
func (s *OverlayStack) Pop() error {
	if len(s.overlays) == 0 {
		return fmt.Errorf("no overlay to pop")
	}
	s.overlays[len(s.overlays)-1] = nil
	s.overlays = s.overlays[:len(s.overlays)-1]
	return nil
}

// Depth returns the number of overlays currently applied.
func (s *OverlayStack) Depth() int { return len(s.overlays) }

func (s *OverlayStack) top() input.Processor {
	if len(s.overlays) == 0 {
		return s.base
	}
	return s.overlays[len(s.overlays)-1]
}

// ProcessInput hands k to the topmost processor.
func (s *OverlayStack) ProcessInput(k input.Key) bool { return s.top().ProcessInput(k) }

// CapturesInput reports whether the topmost processor captures input.
func (s *OverlayStack) CapturesInput() bool { return s.top().CapturesInput() }

// GetHelp returns the help of the topmost processor only, as nothing beneath
// it is reachable.
func (s *OverlayStack) GetHelp() input.Help { return s.top().GetHelp() }
