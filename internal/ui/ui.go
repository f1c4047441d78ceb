package ui

import (
	"github.com/ja-he/dayslider/internal/styling"
)

// Pane is a UI pane.
//
// Panes are drawn by the root pane in a fixed order; each pane draws only
// within its Dimensions, which it recomputes from the screen size on every
// call.
type Pane interface {
	Draw()
	Dimensions() (x, y, w, h int)
	GetPositionInfo(x, y int) PositionInfo
	Identify() PaneID
}

// PaneType is the type of the bottommost meaningful UI pane.
type PaneType int

const (
	_ PaneType = iota
	// NoPane describes anything that is not on a meaningful UI Pane, perhaps in
	// padding space.
	NoPane
	// TitlePaneType represents the title bar showing the picked instant.
	TitlePaneType
	// WheelPaneType represents a single scrolling wheel.
	WheelPaneType
	// ButtonsPaneType represents the confirm/cancel button row.
	ButtonsPaneType
	// StatusPaneType represents a status pane (or status bar).
	StatusPaneType
	// HelpPaneType represents the (overlay) help pane.
	HelpPaneType
)

var paneTypeNames = map[PaneType]string{
	NoPane:          "NoPane",
	TitlePaneType:   "TitlePaneType",
	WheelPaneType:   "WheelPaneType",
	ButtonsPaneType: "ButtonsPaneType",
	StatusPaneType:  "StatusPaneType",
	HelpPaneType:    "HelpPaneType",
}

// ToString returns the name of the pane type, for logging.
func (t PaneType) ToString() string {
	if name, ok := paneTypeNames[t]; ok {
		return name
	}
	return "[UNKNOWN]"
}

// PaneID uniquely identifies a pane. No two panes must ever share a PaneID.
type PaneID uint

// NonePaneID is the zero PaneID, never handed out by GeneratePaneID.
const NonePaneID PaneID = 0

var id = NonePaneID

// GeneratePaneID generates a new unique pane ID.
var GeneratePaneID = func() PaneID {
	id++
	return id
}

// Renderer is what panes draw with.
type Renderer interface {
	// DrawBox fills the box with the style's background.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// DrawText draws text into the box, wrapping at its width and cutting off
	// at its height.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a Renderer that only draws within its Dimensions.
type ConstrainedRenderer interface {
	Renderer
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl lets the root pane start and finish a frame.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// MouseCursorPos represents the position of a mouse cursor on the UI's
// x-y-plane, which has its origin 0,0 in the top left.
type MouseCursorPos struct {
	X, Y int
}

// Within returns whether the position lies within the given box.
func (p MouseCursorPos) Within(x, y, w, h int) bool {
	return p.X >= x && p.X < x+w && p.Y >= y && p.Y < y+h
}
