package parameter

// Wall Entity
const (
	// WallDurability is initial and maximum durability of every wall
	WallDurability = 150.0

	// WallRefund is materials returned when a player bullet destroys a wall
	WallRefund = 10

	// WallRefundChance is the probability of the refund
	WallRefundChance = 0.5
)
