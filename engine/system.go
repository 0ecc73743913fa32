package engine

// System is a per-tick stage of the simulation
type System interface {
	Name() string
	Update(dt float64)
}

// Resetter is implemented by systems that repopulate or clear state when a match begins
type Resetter interface {
	Reset()
}

// ActionHandler is implemented by systems that consume discrete player actions
// The return value reports whether the action changed state
type ActionHandler interface {
	HandleAction(a Action) bool
}
