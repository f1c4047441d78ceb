// Package timeview contains the slots a wheel is made of. A slot displays one
// time object at a time and is re-assigned new ones as the wheel scrolls.
package timeview

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/dayslider/internal/model"
	"github.com/ja-he/dayslider/internal/styling"
	"github.com/ja-he/dayslider/internal/ui"
)

// TimeView is a slot of a wheel.
//
// A slot's interval is always that of the time object last assigned to it,
// whether via Adopt or AdoptView. Whether a slot is the center slot is fixed
// at construction.
type TimeView interface {
	// Adopt assigns the given time object to the slot.
	Adopt(o model.TimeObject)
	// AdoptView assigns the time object currently shown by the other slot,
	// without consulting any labeler.
	AdoptView(other TimeView)

	TimeObject() model.TimeObject
	Label() string
	Start() time.Time
	End() time.Time

	IsCenter() bool
	OutOfBounds() bool
	SetOutOfBounds(bool)

	// Draw draws the slot into the given box.
	Draw(r ui.Renderer, s *styling.Stylesheet, x, y, w, h int)
}

// StyledView is a TimeView whose style can be decided by a decorator.
type StyledView interface {
	TimeView

	// Style returns the style the slot would draw itself in.
	Style(s *styling.Stylesheet) styling.DrawStyling
	// DrawStyled draws the slot into the given box in the given style.
	DrawStyled(r ui.Renderer, style styling.DrawStyling, x, y, w, h int)
}

// slot is the state all views share.
type slot struct {
	obj         model.TimeObject
	center      bool
	outOfBounds bool
}

func (v *slot) Adopt(o model.TimeObject)        { v.obj = o }
func (v *slot) TimeObject() model.TimeObject    { return v.obj }
func (v *slot) Label() string                   { return v.obj.Label }
func (v *slot) Start() time.Time                { return v.obj.Start }
func (v *slot) End() time.Time                  { return v.obj.End }
func (v *slot) IsCenter() bool                  { return v.center }
func (v *slot) OutOfBounds() bool               { return v.outOfBounds }
func (v *slot) SetOutOfBounds(outOfBounds bool) { v.outOfBounds = outOfBounds }

// baseStyle is the style for a slot without any accents.
func (v *slot) baseStyle(s *styling.Stylesheet) styling.DrawStyling {
	switch {
	case v.outOfBounds:
		return s.WheelOutOfBounds
	case v.center:
		return s.WheelCenter
	default:
		return s.WheelNormal
	}
}

// drawCentered draws the given lines centered within the box, filling the box
// in the style first.
func drawCentered(r ui.Renderer, style styling.DrawStyling, x, y, w, h int, lines ...string) {
	r.DrawBox(x, y, w, h, style)
	if h <= 0 || w <= 0 {
		return
	}
	if len(lines) > h {
		lines = []string{strings.Join(lines, " ")}
	}
	top := y + (h-len(lines))/2
	for i, line := range lines {
		line = runewidth.Truncate(line, w, "")
		pad := (w - runewidth.StringWidth(line)) / 2
		r.DrawText(x+pad, top+i, w-pad, 1, style, line)
	}
}
