package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key press as delivered by the terminal, reduced to what
// input trees match on.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// KeyFromTcell converts the given tcell key event to a Key.
//
// The modifier mask is dropped, as terminals report it inconsistently and
// control combinations already have keys of their own.
func KeyFromTcell(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}

// ToDebugString returns a verbose representation of the key for logging.
func (k Key) ToDebugString() string {
	return fmt.Sprintf(
		"(%s (%d),'%s'(%d),mod:%d)",
		tcell.KeyNames[k.Key],
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
		int(k.Mod),
	)
}
