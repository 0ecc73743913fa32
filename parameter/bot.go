package parameter

// Bot Entity
const (
	// BotSize is the square hit-box side; the hit radius is half of it
	BotSize = 20.0

	// BotSpeed is movement per second
	BotSpeed = 100.0

	// BotMaxHealth is starting and maximum health
	BotMaxHealth = 100.0
)

// Bot spawn placement
const (
	// BotSpawnMargin keeps spawn candidates away from the arena edge
	BotSpawnMargin = 100.0

	// BotSpawnMinPlayerDist rejects candidates this close to the player
	BotSpawnMinPlayerDist = 200.0

	// BotSpawnMaxRetries is the number of rejected candidates before one is accepted unconditionally
	BotSpawnMaxRetries = 20
)

// Bot behavior bands (distance to player)
const (
	// BotEngageRange is the distance under which bots move
	BotEngageRange = 500.0

	// BotRetreatRange is the distance under which bots back off while strafing
	BotRetreatRange = 200.0

	// BotApproachRange is the distance over which bots close in directly
	BotApproachRange = 350.0

	// BotRetreatStrafeWeight scales the lateral component while retreating
	BotRetreatStrafeWeight = 0.5

	// BotStrafeFlipInterval is movement time between strafe direction flips
	BotStrafeFlipInterval = 2.0
)

// Bot building
const (
	BotBuildRange = 250.0

	// BotBuildReach is the forward offset of the placed wall
	BotBuildReach = 30.0

	BotBuildWidth  = 20.0
	BotBuildHeight = 60.0

	// BotBuildTimerInitMin/Max bound the first build timer after spawn
	BotBuildTimerInitMin = 2.0
	BotBuildTimerInitMax = 4.0

	// BotBuildTimerMin/Max bound the build timer after each attempt
	BotBuildTimerMin = 3.0
	BotBuildTimerMax = 5.0
)

// Bot shooting
const (
	BotShootRange = 400.0

	// BotShotJitter is the half-width of the aim jitter in radians
	BotShotJitter = 0.1

	BotShotSpeed  = 450.0
	BotShotDamage = 12.0

	// BotShootTimerInitMin/Max bound the first shoot timer after spawn
	BotShootTimerInitMin = 0.5
	BotShootTimerInitMax = 1.5

	// BotShootTimerMin/Max bound the shoot timer after each shot
	BotShootTimerMin = 1.2
	BotShootTimerMax = 1.8
)
