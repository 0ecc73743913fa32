package parameter

import "time"

// Terminal input
const (
	// KeyLatch is how long a direction stays held after its last key event
	// Terminals report presses and auto-repeat but never releases
	KeyLatch = 250 * time.Millisecond

	// AimDefaultOffset places the aim point ahead of the player until the mouse moves
	AimDefaultOffset = 100.0
)

// Terminal layout
const (
	// HUDRows is the stats line above the arena
	HUDRows = 1

	// StatusRows is the weapon and mode line below the arena
	StatusRows = 1

	// GridSpacing is the world distance between ground grid lines
	GridSpacing = 100.0
)
