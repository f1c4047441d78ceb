package timeview

import (
	"github.com/ja-he/dayslider/internal/styling"
	"github.com/ja-he/dayslider/internal/ui"
)

// TextView shows its label on a single line.
//
// An accented text view uses the accent style for its in-bounds label, which
// is how week wheels set themselves apart from day wheels.
type TextView struct {
	slot
	accent bool
}

// NewTextView returns a new text view.
func NewTextView(isCenter, accent bool) *TextView {
	return &TextView{slot: slot{center: isCenter}, accent: accent}
}

// AdoptView assigns the time object shown by other.
func (v *TextView) AdoptView(other TimeView) { v.Adopt(other.TimeObject()) }

// Style returns the style the view draws itself in.
func (v *TextView) Style(s *styling.Stylesheet) styling.DrawStyling {
	if v.accent && !v.outOfBounds {
		if v.center {
			return s.WheelAccent.Bolded()
		}
		return s.WheelAccent
	}
	return v.baseStyle(s)
}

// Draw draws the view into the given box.
func (v *TextView) Draw(r ui.Renderer, s *styling.Stylesheet, x, y, w, h int) {
	v.DrawStyled(r, v.Style(s), x, y, w, h)
}

// DrawStyled draws the view into the given box in the given style.
func (v *TextView) DrawStyled(r ui.Renderer, style styling.DrawStyling, x, y, w, h int) {
	drawCentered(r, style, x, y, w, h, v.obj.Label)
}
