package action

// Revertible is an undoable action, which captures some state before doing
// its work and restores that state on Undo.
//
// A typical use is stepping the picker while remembering the instant it
// showed before.
type Revertible[S any] struct {
	capture     func() S
	action      func()
	restore     func(S)
	explanation string

	captured []S
}

// NewRevertible returns a pointer to a new revertible action.
// On each Do, capture is called before action and its result pushed; each Undo
// pops the most recent capture and passes it to restore.
func NewRevertible[S any](explanation string, capture func() S, action func(), restore func(S)) *Revertible[S] {
	return &Revertible[S]{
		capture:     capture,
		action:      action,
		restore:     restore,
		explanation: explanation,
	}
}

// Do captures the current state and performs the action.
func (a *Revertible[S]) Do() {
	a.captured = append(a.captured, a.capture())
	a.action()
}

// Undoable returns whether there is a captured state to restore.
func (a *Revertible[S]) Undoable() bool { return len(a.captured) > 0 }

// Undo restores the state captured by the latest Do.
// Does nothing, if not Undoable.
func (a *Revertible[S]) Undo() {
	if !a.Undoable() {
		return
	}
	last := a.captured[len(a.captured)-1]
	a.captured = a.captured[:len(a.captured)-1]
	a.restore(last)
}

// Explain returns the explanation given on construction.
func (a *Revertible[S]) Explain() string { return a.explanation }
