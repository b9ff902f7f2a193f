package parameter

// World scale and movement, in blocks and seconds; Derive converts them to pixels per tick
const (
	// BlockSize is the edge of one world block in pixels
	BlockSize = 10.0

	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond = 28.0

	GravityBlocks       = 50.0
	TerminalSpeedBlocks = 100.0
	MoveSpeedBlocks     = 15.0
	JumpSpeedBlocks     = 30.0

	// PatrolSpeedDivisor slows melee enemy patrols relative to player walking speed
	PatrolSpeedDivisor = 9.0

	// CollisionTolerancePixels is the allowed gap for standing on a surface
	CollisionTolerancePixels = 1.0
)
