package input

// intentRegistry maps canonical action names to intents
// Used by the keymap loader to resolve config action strings
var intentRegistry = map[string]Intent{
	// Unbind sentinel
	"none": IntentNone,

	"move_up":     IntentMoveUp,
	"move_down":   IntentMoveDown,
	"move_left":   IntentMoveLeft,
	"move_right":  IntentMoveRight,
	"toggle_fire": IntentToggleFire,
	"toggle_mode": IntentToggleMode,
	"rotate":      IntentRotate,
	"place_wall":  IntentPlaceWall,
	"use_medkit":  IntentUseMedkit,
	"weapon_1":    IntentWeapon1,
	"weapon_2":    IntentWeapon2,
	"weapon_3":    IntentWeapon3,
	"weapon_4":    IntentWeapon4,
	"restart":     IntentRestart,
	"quit":        IntentQuit,
}

// intentNames is the reverse of intentRegistry
var intentNames = func() map[Intent]string {
	m := make(map[Intent]string, len(intentRegistry))
	for name, i := range intentRegistry {
		m[i] = name
	}
	return m
}()

// IntentByName resolves a canonical action name
func IntentByName(name string) (Intent, bool) {
	i, ok := intentRegistry[name]
	return i, ok
}

// IntentNames returns every bindable action name
func IntentNames() []string {
	names := make([]string, 0, len(intentRegistry))
	for name := range intentRegistry {
		names = append(names, name)
	}
	return names
}
