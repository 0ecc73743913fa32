package engine

// MatchState is the overall match phase
type MatchState uint8

const (
	StateRunning MatchState = iota
	StateWon
	StateLost
)

func (s MatchState) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "running"
	}
}

// Terminal reports whether the match has ended
func (s MatchState) Terminal() bool {
	return s != StateRunning
}
