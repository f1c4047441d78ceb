package action

// Simple is an action that cannot be undone, e.g. moving the wheel focus.
type Simple struct {
	f           func()
	explanation string
}

// NewSimple returns an action calling f on Do.
func NewSimple(explanation string, f func()) *Simple {
	return &Simple{f: f, explanation: explanation}
}

// Do calls the action's function.
func (a *Simple) Do() { a.f() }

// Undoable is always false.
func (a *Simple) Undoable() bool { return false }

// Undo does nothing.
func (a *Simple) Undo() {}

// Explain returns the explanation given on construction.
func (a *Simple) Explain() string { return a.explanation }
