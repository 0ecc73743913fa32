package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Tab, Enter, Esc)
	Keys map[tcell.Key]Intent

	// Printable runes
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		Keys: map[tcell.Key]Intent{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyUp:     IntentMoveUp,
			tcell.KeyDown:   IntentMoveDown,
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
			tcell.KeyTab:    IntentToggleMode,
			tcell.KeyEnter:  IntentRestart,
		},
		Runes: map[rune]Intent{
			' ': IntentToggleFire,
			'1': IntentWeapon1,
			'2': IntentWeapon2,
			'3': IntentWeapon3,
			'4': IntentWeapon4,
		},
	}

	// Letters bind in both cases so caps lock does not break controls
	letters := map[rune]Intent{
		'w': IntentMoveUp,
		's': IntentMoveDown,
		'a': IntentMoveLeft,
		'd': IntentMoveRight,
		'r': IntentRotate,
		'q': IntentPlaceWall,
		'e': IntentUseMedkit,
	}
	for r, i := range letters {
		kt.Runes[r] = i
		kt.Runes[r-'a'+'A'] = i
	}
	return kt
}

// Lookup returns the intent bound to a key event, IntentNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}
