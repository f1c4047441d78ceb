package input

import (
	"fmt"

	"github.com/ja-he/dayslider/internal/control/action"
)

// Node is a node in a Tree: either a leaf holding an action or an inner node
// with children, never both.
type Node struct {
	Children map[Key]*Node
	Action   action.Action
}

// NewNode returns a new inner node without children.
func NewNode() *Node {
	return &Node{Children: make(map[Key]*Node)}
}

// Child returns the child for k, or nil.
func (n *Node) Child(k Key) *Node {
	return n.Children[k]
}

// insert adds a leaf for a at the end of the path sequence.
// The path must neither run through nor end at an existing leaf, and must not
// end at an inner node.
func (n *Node) insert(sequence []Key, a action.Action) error {
	if len(sequence) == 0 {
		return fmt.Errorf("empty sequence")
	}
	if n.Action != nil {
		return fmt.Errorf("extends a shorter mapped sequence")
	}

	head, rest := sequence[0], sequence[1:]
	next, exists := n.Children[head]
	if len(rest) == 0 {
		if exists {
			return fmt.Errorf("is mapped twice or prefixes another sequence")
		}
		n.Children[head] = &Node{Action: a}
		return nil
	}
	if !exists {
		next = NewNode()
		n.Children[head] = next
	}
	return next.insert(rest, a)
}
