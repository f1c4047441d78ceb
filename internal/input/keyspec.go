package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	specR := []rune(string(spec))
	keys := make([][]rune, 0)
	specialContext := false

	for pos, r := range specR {
		switch r {

		case '<':
			if specialContext {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			specialContext = true
			keys = append(keys, []rune{r})

		case '>':
			if !specialContext {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			specialContext = false
			keys[len(keys)-1] = append(keys[len(keys)-1], r)

		default:
			if specialContext {
				if !unicode.IsLetter(r) && r != '-' {
					return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
				}
				keys[len(keys)-1] = append(keys[len(keys)-1], r)
			} else {
				keys = append(keys, []rune{r})
			}

		}
	}
	if specialContext {
		return nil, fmt.Errorf("unclosed special context in '%s'", spec)
	}

	result := make([]Key, 0, len(keys))
	for _, keyIdentifier := range keys {
		if keyIdentifier[0] == '<' {
			key, err := KeyIdentifierToKey(string(keyIdentifier[1 : len(keyIdentifier)-1]))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '%s' to key (%w)", string(keyIdentifier), err)
			}
			result = append(result, key)
		} else {
			result = append(result, Key{Key: tcell.KeyRune, Ch: keyIdentifier[0]})
		}
	}

	return result, nil
}

// specialKeys maps the identifiers usable between '<' and '>' in keyspecs to
// keys. The control-letter combinations are added in init.
var specialKeys = map[string]Key{
	"space":   {Key: tcell.KeyRune, Ch: ' '},
	"cr":      {Key: tcell.KeyEnter},
	"esc":     {Key: tcell.KeyESC},
	"del":     {Key: tcell.KeyDelete},
	"bs":      {Key: tcell.KeyBackspace2},
	"tab":     {Key: tcell.KeyTab},
	"s-tab":   {Key: tcell.KeyBacktab},
	"left":    {Key: tcell.KeyLeft},
	"right":   {Key: tcell.KeyRight},
	"up":      {Key: tcell.KeyUp},
	"down":    {Key: tcell.KeyDown},
	"home":    {Key: tcell.KeyHome},
	"end":     {Key: tcell.KeyEnd},
	"pgup":    {Key: tcell.KeyPgUp},
	"pgdn":    {Key: tcell.KeyPgDn},
	"c-space": {Key: tcell.KeyCtrlSpace},
	"c-bs":    {Key: tcell.KeyBackspace},
}

// specialIdentifiers is the inverse of specialKeys.
var specialIdentifiers = map[Key]string{}

func init() {
	for i := 0; i < 26; i++ {
		specialKeys[fmt.Sprintf("c-%c", 'a'+i)] = Key{Key: tcell.KeyCtrlA + tcell.Key(i)}
	}
	for identifier, key := range specialKeys {
		specialIdentifiers[key] = identifier
	}
	// some control combinations share their codes with named keys
	specialIdentifiers[Key{Key: tcell.KeyTab}] = "tab"
	specialIdentifiers[Key{Key: tcell.KeyEnter}] = "cr"
	specialIdentifiers[Key{Key: tcell.KeyBackspace}] = "c-h"
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := specialKeys[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its configuration
// identfier.
func ToConfigIdentifierString(k Key) string {
	identifier, ok := specialIdentifiers[k]
	switch {
	case ok:
		return "<" + identifier + ">"
	case k.Key == tcell.KeyRune:
		return string(k.Ch)
	default:
		panic(fmt.Sprintf("undescribable key %s", k.ToDebugString()))
	}
}
