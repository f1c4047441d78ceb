package panes

import (
	"github.com/mattn/go-runewidth"

	"github.com/ja-he/dayslider/internal/styling"
	"github.com/ja-he/dayslider/internal/ui"
)

// ButtonsPane is the row of buttons below the wheels, right-aligned.
type ButtonsPane struct {
	ui.LeafPane

	focused func() ui.Button
}

var buttons = []struct {
	button ui.Button
	text   string
}{
	{ui.NowButton, "Now"},
	{ui.CancelButton, "Cancel"},
	{ui.ConfirmButton, "OK"},
}

const buttonPad = 2
const buttonGap = 1

// boxes calls f with the horizontal extent of each button, left to right.
func (p *ButtonsPane) boxes(f func(b ui.Button, text string, bx, bw int)) {
	x, _, w, _ := p.Dimensions()
	total := 0
	for _, b := range buttons {
		total += runewidth.StringWidth(b.text) + 2*buttonPad + buttonGap
	}
	bx := x + w - total
	for _, b := range buttons {
		bw := runewidth.StringWidth(b.text) + 2*buttonPad
		f(b.button, b.text, bx, bw)
		bx += bw + buttonGap
	}
}

// Draw draws this pane.
func (p *ButtonsPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)

	p.boxes(func(b ui.Button, text string, bx, bw int) {
		style := p.Stylesheet.Button
		if b == p.focused() {
			style = p.Stylesheet.ButtonFocused
		}
		p.Renderer.DrawBox(bx, y, bw, h, style)
		p.Renderer.DrawText(bx+buttonPad, y+h/2, bw-buttonPad, 1, style, text)
	})
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *ButtonsPane) GetPositionInfo(x, y int) ui.PositionInfo {
	result := ui.NoButton
	p.boxes(func(b ui.Button, _ string, bx, bw int) {
		if x >= bx && x < bx+bw {
			result = b
		}
	})
	return ui.ButtonsPanePositionInfo{Button: result}
}

// NewButtonsPane constructs and returns a new ButtonsPane.
func NewButtonsPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	focused func() ui.Button,
) *ButtonsPane {
	return &ButtonsPane{
		LeafPane: ui.LeafPane{
			ID:         ui.GeneratePaneID(),
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		focused: focused,
	}
}
