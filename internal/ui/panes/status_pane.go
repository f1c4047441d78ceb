package panes

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/dayslider/internal/potatolog"
	"github.com/ja-he/dayslider/internal/styling"
	"github.com/ja-he/dayslider/internal/ui"
)

// StatusPane is a status bar showing some state of the picker on the left and
// the latest warning or error logged on the right.
type StatusPane struct {
	ui.LeafPane

	status func() string
	log    potatolog.LogReader
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Status)

	status := runewidth.Truncate(p.status(), w, "…")
	p.Renderer.DrawText(x, y, w, 1, p.Stylesheet.Status, status)

	if p.log == nil {
		return
	}
	entry := p.log.LatestAtLeast("warn", "error")
	if entry == nil {
		return
	}
	msg := fmt.Sprintf("%v: %v", entry["level"], entry["message"])
	remaining := w - runewidth.StringWidth(status) - 2
	if remaining <= 0 {
		return
	}
	msg = runewidth.Truncate(msg, remaining, "…")
	msgWidth := runewidth.StringWidth(msg)
	p.Renderer.DrawText(x+w-msgWidth, y, msgWidth, 1, p.Stylesheet.Status.Italicized(), msg)
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *StatusPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return ui.SimplePositionInfo{Type: ui.StatusPaneType}
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	status func() string,
	log potatolog.LogReader,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			ID:         ui.GeneratePaneID(),
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		status: status,
		log:    log,
	}
}
