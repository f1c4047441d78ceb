package ui

// PositionInfo describes a position in the user interface.
//
// Retrievers should initially check for the type of pane they are receiving
// information on and can then retrieve the relevant additional information from
// whatever they got.
type PositionInfo interface {
	PaneType() PaneType
}

// NoPanePositionInfo is (no) information about no position.
type NoPanePositionInfo struct{}

// PaneType returns NoPane.
func (NoPanePositionInfo) PaneType() PaneType { return NoPane }

// WheelPanePositionInfo provides information on a position on a wheel.
type WheelPanePositionInfo struct {
	// Wheel is the index of the wheel among the picker's wheels.
	Wheel int
	// Slot is the index of the slot under the position, -1 if none.
	Slot int
}

// PaneType returns WheelPaneType.
func (WheelPanePositionInfo) PaneType() PaneType { return WheelPaneType }

// Button identifies one of the picker's buttons.
type Button int

const (
	// NoButton is no button.
	NoButton Button = iota
	// ConfirmButton accepts the picked instant.
	ConfirmButton
	// NowButton jumps to the current instant.
	NowButton
	// CancelButton dismisses the picker.
	CancelButton
)

// ButtonsPanePositionInfo provides information on a position in the button
// row, importantly the button at that position.
type ButtonsPanePositionInfo struct {
	Button Button
}

// PaneType returns ButtonsPaneType.
func (ButtonsPanePositionInfo) PaneType() PaneType { return ButtonsPaneType }

// SimplePositionInfo is the information on a position in any pane that has no
// further meaningful information to provide.
type SimplePositionInfo struct {
	Type PaneType
}

// PaneType returns the type the info was constructed with.
func (i SimplePositionInfo) PaneType() PaneType { return i.Type }
