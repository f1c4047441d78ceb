package input

// Keyspec is a key sequence in configuration notation, e.g. "<c-a>x".
type Keyspec string

// Actionspec names a picker action in configuration, e.g. "step-forward".
type Actionspec string

// InputConfig maps key sequences to picker actions, overriding or extending
// the default bindings.
type InputConfig struct {
	Picker map[Keyspec]Actionspec `yaml:"picker,omitempty"`
}

// Unbound is the action spec that removes a binding.
const Unbound Actionspec = "none"

// AugmentWith returns the bindings of the receiver, overridden by those of
// augment. Sequences bound to Unbound are removed.
func (base InputConfig) AugmentWith(augment InputConfig) InputConfig {
	result := InputConfig{Picker: make(map[Keyspec]Actionspec, len(base.Picker)+len(augment.Picker))}
	for k, a := range base.Picker {
		result.Picker[k] = a
	}
	for k, a := range augment.Picker {
		if a == Unbound {
			delete(result.Picker, k)
			continue
		}
		result.Picker[k] = a
	}
	return result
}
