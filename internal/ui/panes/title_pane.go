package panes

import (
	"github.com/mattn/go-runewidth"

	"github.com/ja-he/dayslider/internal/styling"
	"github.com/ja-he/dayslider/internal/ui"
)

// TitlePane shows the picked instant, centered.
type TitlePane struct {
	ui.LeafPane

	title func() string
}

// Draw draws this pane.
func (p *TitlePane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Title)

	title := runewidth.Truncate(p.title(), w, "…")
	pad := (w - runewidth.StringWidth(title)) / 2
	p.Renderer.DrawText(x+pad, y+h/2, w-pad, 1, p.Stylesheet.Title, title)
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *TitlePane) GetPositionInfo(x, y int) ui.PositionInfo {
	return ui.SimplePositionInfo{Type: ui.TitlePaneType}
}

// NewTitlePane constructs and returns a new TitlePane.
func NewTitlePane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	title func() string,
) *TitlePane {
	return &TitlePane{
		LeafPane: ui.LeafPane{
			ID:         ui.GeneratePaneID(),
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		title: title,
	}
}
