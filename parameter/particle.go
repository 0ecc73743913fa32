package parameter

// Particle Entity
const (
	// ParticleLifetime is the seconds a particle lives
	ParticleLifetime = 0.5

	// ParticleSpread is the full range of initial per-axis velocity
	ParticleSpread = 200.0

	// ParticleGravity is downward acceleration per second
	ParticleGravity = 400.0
)

// Burst sizes
const (
	ParticlesMuzzle = 5
	ParticlesImpact = 3
	ParticlesHit    = 8
	ParticlesDebris = 8
	ParticlesDeath  = 15

	// MuzzleOffset is the distance ahead of the player where muzzle particles spawn
	MuzzleOffset = 20.0
)
