package input_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/dayslider/internal/control/action"
	"github.com/ja-he/dayslider/internal/input"
)

func runeKey(r rune) input.Key { return input.Key{Key: tcell.KeyRune, Ch: r} }

func TestConfigKeyspecToKeys(t *testing.T) {

	t.Run("valid", func(t *testing.T) {
		for spec, expected := range map[input.Keyspec][]input.Key{
			"":             {},
			"l":            {runeKey('l')},
			"<c-a>":        {{Key: tcell.KeyCtrlA}},
			"<space>":      {runeKey(' ')},
			"<CR>":         {{Key: tcell.KeyEnter}},
			"gg":           {runeKey('g'), runeKey('g')},
			"g<left>l":     {runeKey('g'), {Key: tcell.KeyLeft}, runeKey('l')},
			"<s-tab><tab>": {{Key: tcell.KeyBacktab}, {Key: tcell.KeyTab}},
		} {
			keys, err := input.ConfigKeyspecToKeys(spec)
			if err != nil {
				t.Errorf("unexpected error on valid spec '%s': %s", spec, err.Error())
				continue
			}
			if keys == nil {
				t.Errorf("unexpected nil keys on valid spec '%s'", spec)
			}
			if len(keys) != len(expected) {
				t.Errorf("expected %d keys for '%s', got %d", len(expected), spec, len(keys))
				continue
			}
			for i := range keys {
				if keys[i] != expected[i] {
					t.Errorf("key %d of '%s' is %s, expected %s", i, spec, keys[i].ToDebugString(), expected[i].ToDebugString())
				}
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, spec := range []input.Keyspec{
			"c-w>",
			"<c-w",
			"<c-w<c-a>",
			"<c+a>",
			"<nonsense>",
		} {
			keys, err := input.ConfigKeyspecToKeys(spec)
			if err == nil {
				t.Errorf("unexpectedly no err on invalid spec '%s'", spec)
			}
			if keys != nil {
				t.Errorf("unexpected key seq on invalid spec '%s': %v", spec, keys)
			}
		}
	})

}

func TestToConfigIdentifierString(t *testing.T) {
	for _, spec := range []input.Keyspec{"l", "<space>", "<cr>", "<tab>", "<c-t>", "<left>", "<esc>"} {
		keys, err := input.ConfigKeyspecToKeys(spec)
		if err != nil || len(keys) != 1 {
			t.Fatalf("could not convert '%s' for round trip", spec)
		}
		if actual := input.ToConfigIdentifierString(keys[0]); actual != string(spec) {
			t.Errorf("'%s' described as '%s'", spec, actual)
		}
	}
}

func TestConstructInputTree(t *testing.T) {

	t.Run("empty map produces single-node tree", func(t *testing.T) {
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{})
		if err != nil {
			t.Fatal(err.Error())
		}
		validateNewlyCreatedTree(t, tree)
		if len(tree.Root.Children) != 0 {
			t.Error("empty tree's root node should be the only one, but has children:", tree.Root.Children)
		}
		if tree.ProcessInput(runeKey('x')) {
			t.Error("empty tree claims to apply (non-added) input")
		}
	})

	t.Run("sequences", func(t *testing.T) {
		steps := 0
		jumped := false
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"l":  &DummyAction{F: func() { steps++ }},
			"gt": &DummyAction{F: func() { jumped = true }},
		})
		if err != nil {
			t.Fatal(err.Error())
		}
		validateNewlyCreatedTree(t, tree)

		if !tree.ProcessInput(runeKey('l')) || steps != 1 {
			t.Error("single key action not applied")
		}
		if tree.CapturesInput() {
			t.Error("tree captures input after a complete sequence")
		}

		if !tree.ProcessInput(runeKey('g')) {
			t.Error("tree fails to process sequence start")
		}
		if !tree.CapturesInput() {
			t.Error("tree fails to capture input in the middle of a sequence")
		}
		if tree.ProcessInput(runeKey('l')) {
			t.Error("tree processes unmapped continuation")
		}
		if steps != 1 {
			t.Error("unmapped continuation triggered the root mapping")
		}
		if tree.CapturesInput() {
			t.Error("tree still captures after unmapped continuation")
		}

		tree.ProcessInput(runeKey('g'))
		if !tree.ProcessInput(runeKey('t')) || !jumped {
			t.Error("two key action not applied")
		}
	})

	t.Run("invalid keyspec errors", func(t *testing.T) {
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{"<asdf": &DummyAction{}})
		if err == nil {
			t.Error("nil error despite invalid keyspec")
		}
		if tree != nil {
			t.Error("non-nil tree despite invalid keyspec")
		}
	})

	t.Run("prefix conflict errors", func(t *testing.T) {
		_, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"g":  &DummyAction{},
			"gg": &DummyAction{},
		})
		if err == nil {
			t.Error("nil error despite one sequence prefixing another")
		}
	})

	t.Run("aliased keys error", func(t *testing.T) {
		_, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"<tab>": &DummyAction{},
			"<c-i>": &DummyAction{},
		})
		if err == nil {
			t.Error("nil error despite two specs mapping the same key")
		}
	})

}

func TestGetHelp(t *testing.T) {
	tree, err := input.ConstructInputTree(
		map[input.Keyspec]action.Action{
			"l":    &DummyAction{S: "step forward"},
			"gt":   &DummyAction{S: "jump to now"},
			"<cr>": &DummyAction{S: "confirm"},
		},
	)
	if err != nil {
		t.Fatal("unexpectedly tree construction failed while testing help")
	}
	help := tree.GetHelp()
	if len(help) != 3 {
		t.Error("got help with unexpected amount of entries:", len(help))
	}
	for seq, expected := range map[string]string{"l": "step forward", "gt": "jump to now", "<cr>": "confirm"} {
		if actual, ok := help[seq]; !ok || actual != expected {
			t.Errorf("got help '%s' for '%s', expected '%s'", actual, seq, expected)
		}
	}

	sorted := input.SortedSequences(help)
	if len(sorted) != 3 || sorted[0] != "l" || sorted[1] != "gt" || sorted[2] != "<cr>" {
		t.Error("unexpected help order:", sorted)
	}

	if len(input.NewNode().GetHelp()) != 0 {
		t.Error("got non-empty help from empty node")
	}
}

func validateNewlyCreatedTree(t *testing.T, newlyCreated *input.Tree) {
	t.Helper()

	if newlyCreated.Root == nil || newlyCreated.Current == nil {
		t.Error("either root or current is nil on newly created tree:", newlyCreated.Root, ",", newlyCreated.Current)
	}
	if newlyCreated.Root != newlyCreated.Current {
		t.Error("root and current differ on newly created tree:", newlyCreated.Root, ",", newlyCreated.Current)
	}
	if newlyCreated.CapturesInput() {
		t.Error("newly created tree claims to capture input")
	}
}

// to avoid depending on 'action' functions
type DummyAction struct {
	F func()
	S string
}

func (d *DummyAction) Do() {
	if d.F != nil {
		d.F()
	}
}
func (d *DummyAction) Undo()           {}
func (d *DummyAction) Undoable() bool  { return false }
func (d *DummyAction) Explain() string { return d.S }

func TestKeyFromTcell(t *testing.T) {
	for _, tc := range []struct {
		event    *tcell.EventKey
		expected string
	}{
		{event: tcell.NewEventKey(tcell.KeyRune, 'L', tcell.ModShift), expected: "L"},
		{event: tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), expected: "<c-r>"},
		{event: tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), expected: "<s-tab>"},
		{event: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), expected: "<cr>"},
	} {
		actual := input.ToConfigIdentifierString(input.KeyFromTcell(tc.event))
		if actual != tc.expected {
			t.Errorf("got '%s', expected '%s'", actual, tc.expected)
		}
	}
}
