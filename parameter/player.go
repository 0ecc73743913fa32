package parameter

// Player Entity
const (
	// PlayerSpeed is movement per second per held direction
	PlayerSpeed = 250.0

	// PlayerRadius is the collision circle radius
	PlayerRadius = 15.0

	// PlayerMaxHealth is starting and maximum health
	PlayerMaxHealth = 100.0

	// PlayerStartMaterials is the material count after spawn or restart
	PlayerStartMaterials = 100

	// PlayerMaxMaterials caps materials gained from wall refunds
	PlayerMaxMaterials = 999

	// PlayerStartMedkits is the medkit count after spawn or restart
	PlayerStartMedkits = 3
)

// Player Consumables
const (
	MedkitHeal = 50.0

	// DamageFlashOnHit is the flash level set when a bot bullet connects
	DamageFlashOnHit = 1.0

	// DamageFlashOnStorm is the flash level set while outside the safe zone
	DamageFlashOnStorm = 0.5

	// DamageFlashDecayRate is flash units removed per second
	DamageFlashDecayRate = 3.0
)

// Player Building
const (
	// BuildCost is materials spent per placed wall
	BuildCost = 10

	// BuildCooldown is the delay between player wall placements in seconds
	BuildCooldown = 0.25

	// BuildReach is the distance from player center to preview center
	BuildReach = 60.0

	// BuildThickness and BuildLength are the preview wall sides; rotation swaps them
	BuildThickness = 20.0
	BuildLength    = 80.0
)
