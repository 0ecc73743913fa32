package parameter

// Arena dimensions (world units)
const (
	// MapWidth is the default arena width
	MapWidth = 5000.0

	// MapHeight is the default arena height
	MapHeight = 5000.0

	// ViewWidth is the default viewport width used for camera focus
	ViewWidth = 1280.0

	// ViewHeight is the default viewport height used for camera focus
	ViewHeight = 720.0
)

// Game Loop Timing
const (
	// MaxStep is the largest simulated step in seconds; longer frames are clamped
	MaxStep = 0.1

	// FrameRate is the default host frame rate
	FrameRate = 60

	// BotCount is the number of bots populated on init and restart
	BotCount = 40
)
