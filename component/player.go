package component

// PlayerMode selects what the fire input does
type PlayerMode uint8

const (
	ModeCombat PlayerMode = iota
	ModeBuild
)

func (m PlayerMode) String() string {
	if m == ModeBuild {
		return "build"
	}
	return "combat"
}

// Player is the single human-controlled entity
type Player struct {
	X, Y   float64
	Speed  float64
	Radius float64

	Health    float64
	MaxHealth float64

	Materials    int
	MaxMaterials int
	Medkits      int

	// BuildCooldown is seconds until the next wall placement is allowed
	BuildCooldown float64

	// BuildRotation is 0 for a vertical preview wall, 1 for horizontal
	BuildRotation int

	Mode PlayerMode

	// DamageFlash decays toward 0; read by the renderer and readable by gameplay
	DamageFlash float64

	Kills int

	// Weapon is the selected catalog slot
	Weapon int

	// ShootCooldown is seconds until the weapon can fire again
	ShootCooldown float64
}

func (p *Player) Center() (float64, float64) { return p.X, p.Y }

func (p *Player) HitRadius() float64 { return p.Radius }

func (p *Player) Alive() bool { return p.Health > 0 }

func (p *Player) TakeDamage(amount float64) {
	p.Health = clampHealth(p.Health - amount)
}

// Heal adds health up to the maximum
func (p *Player) Heal(amount float64) {
	p.Health = min(p.MaxHealth, p.Health+amount)
}

// AddMaterials adds materials up to the cap
func (p *Player) AddMaterials(n int) {
	p.Materials = min(p.MaxMaterials, p.Materials+n)
}
