package panes

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/dayslider/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle and invoking the subpanes' rendering.
//
// Subpanes are drawn in order; the help pane, if visible, is drawn on top.
type RootPane struct {
	ID ui.PaneID

	renderer   ui.RenderOrchestratorControl
	dimensions func() (x, y, w, h int)

	subpanes []ui.Pane

	helpPane    ui.Pane
	helpVisible func() bool

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// Identify returns the pane's ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

func (p *RootPane) activePanesInOrder() []ui.Pane {
	active := make([]ui.Pane, 0, len(p.subpanes)+1)
	active = append(active, p.subpanes...)
	if p.helpPane != nil && p.helpVisible() {
		active = append(active, p.helpPane)
	}
	return active
}

// GetPositionInfo returns information on a requested position, as given by
// the topmost pane containing it.
func (p *RootPane) GetPositionInfo(x, y int) ui.PositionInfo {
	active := p.activePanesInOrder()
	pos := ui.MouseCursorPos{X: x, Y: y}
	for i := len(active) - 1; i >= 0; i-- {
		if pos.Within(active[i].Dimensions()) {
			return active[i].GetPositionInfo(x, y)
		}
	}
	return ui.NoPanePositionInfo{}
}

// Draw draws this pane.
func (p *RootPane) Draw() {
	p.renderer.Clear()
	for _, pane := range p.activePanesInOrder() {
		p.log.Trace().Msgf("drawing %d...", pane.Identify())
		pane.Draw()
	}
	p.renderer.Show()
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	dimensions func() (x, y, w, h int),
	subpanes []ui.Pane,
	helpPane ui.Pane,
	helpVisible func() bool,
) *RootPane {
	return &RootPane{
		ID:          ui.GeneratePaneID(),
		renderer:    renderer,
		dimensions:  dimensions,
		subpanes:    subpanes,
		helpPane:    helpPane,
		helpVisible: helpVisible,
		log:         log.With().Str("component", "root-pane").Logger(),
	}
}
