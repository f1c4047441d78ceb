package input

import "sort"

// Help maps key sequences (in configuration notation) to explanations of what
// they do.
type Help = map[string]string

// GetHelp returns the input help map for this tree.
func (t *Tree) GetHelp() Help {
	return t.Root.GetHelp()
}

// GetHelp returns the help for all sequences below (and including) this node,
// relative to it.
func (n *Node) GetHelp() Help {
	result := Help{}

	if n.Action != nil {
		result[""] = n.Action.Explain()
	} else {
		for k, c := range n.Children {
			for partialCombo, explanation := range c.GetHelp() {
				result[ToConfigIdentifierString(k)+partialCombo] = explanation
			}
		}
	}

	return result
}

// SortedSequences returns the key sequences of the given help in a stable
// display order (shorter first, then lexically).
func SortedSequences(h Help) []string {
	result := make([]string, 0, len(h))
	for seq := range h {
		result = append(result, seq)
	}
	sort.Slice(result, func(i, j int) bool {
		if len(result[i]) != len(result[j]) {
			return len(result[i]) < len(result[j])
		}
		return result[i] < result[j]
	})
	return result
}
