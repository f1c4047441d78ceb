package ui

import (
	"github.com/ja-he/dayslider/internal/styling"
)

// LeafPane holds what every pane that draws directly needs. Panes embed it and
// implement Draw and GetPositionInfo themselves.
//
// The ID has to be assigned on construction, see GeneratePaneID.
type LeafPane struct {
	ID         PaneID
	Renderer   ConstrainedRenderer
	Dims       func() (x, y, w, h int)
	Stylesheet *styling.Stylesheet
}

// Identify returns the pane's ID.
// Panics if none was assigned.
func (p *LeafPane) Identify() PaneID {
	if p.ID == NonePaneID {
		panic("pane has not been assigned an ID")
	}
	return p.ID
}

// Dimensions returns the pane's current dimensions.
func (p *LeafPane) Dimensions() (x, y, w, h int) {
	return p.Dims()
}
