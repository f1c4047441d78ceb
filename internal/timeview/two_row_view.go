package timeview

import (
	"strings"

	"github.com/ja-he/dayslider/internal/styling"
	"github.com/ja-he/dayslider/internal/ui"
)

// TwoRowView shows its label on two rows, split at the first space, e.g.
// "Mon" above "17".
// Labels without a space are shown on a single row.
type TwoRowView struct {
	slot
}

// NewTwoRowView returns a new two-row view.
func NewTwoRowView(isCenter bool) *TwoRowView {
	return &TwoRowView{slot: slot{center: isCenter}}
}

// AdoptView assigns the time object shown by other.
func (v *TwoRowView) AdoptView(other TimeView) { v.Adopt(other.TimeObject()) }

// Rows returns the label split into the top and bottom row.
func (v *TwoRowView) Rows() (top, bottom string) {
	top, bottom, _ = strings.Cut(v.obj.Label, " ")
	return top, bottom
}

// Style returns the style the view draws itself in.
func (v *TwoRowView) Style(s *styling.Stylesheet) styling.DrawStyling {
	return v.baseStyle(s)
}

// Draw draws the view into the given box.
func (v *TwoRowView) Draw(r ui.Renderer, s *styling.Stylesheet, x, y, w, h int) {
	v.DrawStyled(r, v.Style(s), x, y, w, h)
}

// DrawStyled draws the view into the given box in the given style.
func (v *TwoRowView) DrawStyled(r ui.Renderer, style styling.DrawStyling, x, y, w, h int) {
	top, bottom := v.Rows()
	if bottom == "" {
		drawCentered(r, style, x, y, w, h, top)
		return
	}
	drawCentered(r, style, x, y, w, h, top, bottom)
}
