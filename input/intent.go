package input

// Intent is the game meaning of a key, independent of which key produced it
type Intent uint8

const (
	IntentNone Intent = iota

	// Held directions
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight

	// Discrete actions
	IntentToggleFire
	IntentToggleMode
	IntentRotate
	IntentPlaceWall
	IntentUseMedkit
	IntentWeapon1
	IntentWeapon2
	IntentWeapon3
	IntentWeapon4
	IntentRestart

	// Host
	IntentQuit
)

// direction returns the held direction for movement intents
func (i Intent) direction() (direction, bool) {
	switch i {
	case IntentMoveUp:
		return dirUp, true
	case IntentMoveDown:
		return dirDown, true
	case IntentMoveLeft:
		return dirLeft, true
	case IntentMoveRight:
		return dirRight, true
	}
	return 0, false
}

// weapon returns the catalog slot for weapon intents
func (i Intent) weapon() (int, bool) {
	if i >= IntentWeapon1 && i <= IntentWeapon4 {
		return int(i - IntentWeapon1), true
	}
	return 0, false
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}
