package panes

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/dayslider/internal/input"
	"github.com/ja-he/dayslider/internal/styling"
	"github.com/ja-he/dayslider/internal/ui"
)

// A HelpPane is a pane that displays a help popup listing the key mappings
// and their actions.
type HelpPane struct {
	ui.LeafPane

	Content func() input.Help
}

// Draw draws the help popup.
func (p *HelpPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)

	const border = 1
	const pad = 1
	entries := groupByAction(p.Content())

	keyWidth := 0
	for _, e := range entries {
		if kw := runewidth.StringWidth(e.keys); kw > keyWidth {
			keyWidth = kw
		}
	}
	if maxKeyWidth := w / 2; keyWidth > maxKeyWidth {
		keyWidth = maxKeyWidth
	}
	descriptionOffset := x + border + keyWidth + pad

	for i, e := range entries {
		row := y + border + i
		if row >= y+h-border {
			break
		}
		keys := runewidth.Truncate(e.keys, keyWidth, "…")
		kw := runewidth.StringWidth(keys)
		p.Renderer.DrawText(x+border+keyWidth-kw, row, kw, 1, p.Stylesheet.Help.Emphasized().Bolded(), keys)
		p.Renderer.DrawText(descriptionOffset, row, x+w-border-descriptionOffset, 1, p.Stylesheet.Help.Italicized(), e.action)
	}
}

type keysAndAction struct {
	keys   string
	action string
}

// groupByAction joins all sequences mapped to the same explanation, ordered
// by explanation.
func groupByAction(h input.Help) []keysAndAction {
	sequences := map[string][]string{}
	for _, seq := range input.SortedSequences(h) {
		sequences[h[seq]] = append(sequences[h[seq]], seq)
	}
	result := make([]keysAndAction, 0, len(sequences))
	for action, seqs := range sequences {
		result = append(result, keysAndAction{keys: strings.Join(seqs, " "), action: action})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].action < result[j].action })
	return result
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *HelpPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return ui.SimplePositionInfo{Type: ui.HelpPaneType}
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	content func() input.Help,
) *HelpPane {
	return &HelpPane{
		LeafPane: ui.LeafPane{
			ID:         ui.GeneratePaneID(),
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		Content: content,
	}
}
