package engine

// Input is the continuous control state sampled every tick
type Input struct {
	Up, Down, Left, Right bool

	// Fire is true while the primary input is held
	Fire bool

	// AimX, AimY is the aim target in world coordinates
	AimX, AimY float64
}

// ActionKind enumerates discrete player commands
type ActionKind uint8

const (
	ActionToggleMode ActionKind = iota
	ActionToggleRotation
	ActionPlaceWall
	ActionUseMedkit
	ActionSelectWeapon
	ActionRestart
)

func (k ActionKind) String() string {
	switch k {
	case ActionToggleMode:
		return "toggle_mode"
	case ActionToggleRotation:
		return "toggle_rotation"
	case ActionPlaceWall:
		return "place_wall"
	case ActionUseMedkit:
		return "use_medkit"
	case ActionSelectWeapon:
		return "select_weapon"
	case ActionRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Action is a discrete command; Index is only read by ActionSelectWeapon
type Action struct {
	Kind  ActionKind
	Index int
}

// SelectWeapon builds a weapon selection action
func SelectWeapon(index int) Action {
	return Action{Kind: ActionSelectWeapon, Index: index}
}
