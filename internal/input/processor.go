package input

// Processor consumes keys, one at a time.
type Processor interface {
	// ProcessInput reports whether k was used, i.e. it triggered an action or
	// continued a partial sequence.
	ProcessInput(k Key) bool

	// CapturesInput reports whether a sequence is in progress, during which
	// other processors should not see the keys.
	CapturesInput() bool

	// GetHelp lists what the processor currently responds to.
	GetHelp() Help
}
