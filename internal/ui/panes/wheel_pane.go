// Package panes contains the panes the picker's UI is made of.
package panes

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/dayslider/internal/scroll"
	"github.com/ja-he/dayslider/internal/styling"
	"github.com/ja-he/dayslider/internal/timeview"
	"github.com/ja-he/dayslider/internal/ui"
)

// WheelPane draws a single wheel: a header row with the wheel's name and a
// marker above the center slot, below which the slots are laid out side by
// side.
//
// Slots further from the center are faded.
type WheelPane struct {
	ui.LeafPane

	wheel   *scroll.Layout
	index   int
	name    string
	focused func() bool
}

// maxFade is the fade percentage of a slot at the edge of the wheel.
const maxFade = 60

// Draw draws this pane.
func (p *WheelPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)

	headerStyle := p.Stylesheet.Normal.Emphasized()
	if p.focused() {
		headerStyle = p.Stylesheet.WheelFocusMarker
		p.Renderer.DrawBox(x, y, w, 1, headerStyle)
	}
	p.Renderer.DrawText(x+1, y, w-1, 1, headerStyle, runewidth.Truncate(p.name, w-1, ""))

	p.Renderer.DrawText(x+p.wheel.ViewportWidth()/2, y, 1, 1, headerStyle, "▾")

	sw, _ := p.wheel.SlotSize()
	for i, slot := range p.wheel.Slots() {
		sx := x + p.wheel.SlotX(i)
		p.drawSlot(slot, sx, y+1, sw, h-1, p.fadePercentage(sx+sw/2-x, w))
	}
}

func (p *WheelPane) drawSlot(slot timeview.TimeView, x, y, w, h, fade int) {
	styled, ok := slot.(timeview.StyledView)
	if !ok || fade == 0 {
		slot.Draw(p.Renderer, p.Stylesheet, x, y, w, h)
		return
	}
	styled.DrawStyled(p.Renderer, styled.Style(p.Stylesheet).Faded(fade), x, y, w, h)
}

// fadePercentage returns how much to fade a slot whose middle lies at the
// given column of a wheel of width w.
func (p *WheelPane) fadePercentage(column, w int) int {
	half := float64(w) / 2
	if half <= 0 {
		return 0
	}
	distance := math.Abs(float64(column)-half) / half
	return int(math.Round(math.Min(distance, 1) * maxFade))
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *WheelPane) GetPositionInfo(x, y int) ui.PositionInfo {
	px, py, _, _ := p.Dimensions()
	slot := -1
	if y > py {
		slot = p.wheel.SlotAt(x - px)
	}
	return ui.WheelPanePositionInfo{Wheel: p.index, Slot: slot}
}

// Wheel returns the wheel this pane draws.
func (p *WheelPane) Wheel() *scroll.Layout { return p.wheel }

// NewWheelPane constructs and returns a new WheelPane.
func NewWheelPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	wheel *scroll.Layout,
	index int,
	name string,
	focused func() bool,
) *WheelPane {
	return &WheelPane{
		LeafPane: ui.LeafPane{
			ID:         ui.GeneratePaneID(),
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		wheel:   wheel,
		index:   index,
		name:    name,
		focused: focused,
	}
}
