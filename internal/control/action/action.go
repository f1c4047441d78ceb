package action

// Action is something the user can trigger, typically by a key sequence.
type Action interface {
	// Do performs the action.
	Do()

	// Undo reverts a previous Do, if Undoable.
	Undo()
	// Undoable returns whether Undo has any effect.
	Undoable() bool

	// Explain returns a short description of what Do does, for help displays.
	Explain() string
}
