package component

// Bot is an AI opponent with a square hit-box
type Bot struct {
	X, Y  float64
	Size  float64
	Speed float64

	Health    float64
	MaxHealth float64

	// ShootTimer and BuildTimer count down every tick
	ShootTimer float64
	BuildTimer float64

	// MoveTimer accumulates movement time toward the next strafe flip
	MoveTimer float64

	// StrafeDir is +1 or -1
	StrafeDir float64
}

func (b *Bot) Center() (float64, float64) { return b.X, b.Y }

// HitRadius is half the hit-box side
func (b *Bot) HitRadius() float64 { return b.Size / 2 }

func (b *Bot) Alive() bool { return b.Health > 0 }

func (b *Bot) TakeDamage(amount float64) {
	b.Health = clampHealth(b.Health - amount)
}
