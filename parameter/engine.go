package parameter

import "time"

// Driver timing
const (
	// FrameUpdateInterval is the rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// AutoHaltDelay stops horizontal movement when no move key repeats arrive; terminals report no key release
	AutoHaltDelay = 300 * time.Millisecond
)

// EventBufferCapacity is the initial per-step event buffer size; it grows past this when needed
const EventBufferCapacity = 32
