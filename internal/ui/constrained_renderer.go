package ui

import (
	"github.com/mattn/go-runewidth"

	"github.com/ja-he/dayslider/internal/styling"
)

// CR is a renderer that clips all drawing to a box, e.g. a wheel pane's
// area, so that slots scrolled partially out of the pane are cut off at its
// edges.
type CR struct {
	renderer Renderer

	constraint func() (x, y, w, h int)
}

// NewConstrainedRenderer returns a renderer drawing through the given
// renderer, but only within the dimensions the constraint returns at the time
// of each draw call.
func NewConstrainedRenderer(
	renderer ConstrainedRenderer,
	constraint func() (x, y, w, h int),
) *CR {
	return &CR{
		renderer:   renderer,
		constraint: constraint,
	}
}

// Dimensions returns the current constraint.
func (r *CR) Dimensions() (x, y, w, h int) {
	return r.constraint()
}

// DrawText draws the given text, within the given dimensions, constrained by
// the set constraint, in the given style.
//
// Text whose box starts left of the constraint loses the leading cells that
// fall outside it, so that partially visible wheel slots keep their labels in
// place instead of shifting them into view.
func (r *CR) DrawText(x, y, w, h int, style styling.DrawStyling, text string) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	if cx > x && h == 1 {
		text = dropLeadingCells(text, cx-x)
	}
	r.renderer.DrawText(cx, cy, cw, ch, style, text)
}

// DrawBox draws a box of the given dimensions, constrained by the set
// constraint, in the given style.
func (r *CR) DrawBox(x, y, w, h int, sty styling.DrawStyling) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	r.renderer.DrawBox(cx, cy, cw, ch, sty)
}

// constrain intersects the box with the constraint. Width or height are
// non-positive if there is no intersection.
func (r *CR) constrain(x, y, w, h int) (cx, cy, cw, ch int) {
	boundX, boundY, boundW, boundH := r.constraint()
	cx, cy = max(x, boundX), max(y, boundY)
	cw = min(x+w, boundX+boundW) - cx
	ch = min(y+h, boundY+boundH) - cy
	return cx, cy, cw, ch
}

// dropLeadingCells removes as many leading runes from text as needed to free
// up n cells.
func dropLeadingCells(text string, n int) string {
	dropped := 0
	for i, r := range text {
		if dropped >= n {
			return text[i:]
		}
		dropped += runewidth.RuneWidth(r)
	}
	return ""
}
