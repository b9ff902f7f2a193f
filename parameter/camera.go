package parameter

// World pixels per terminal cell; cells are roughly twice as tall as wide
const (
	CellWidthPx  = 5.0
	CellHeightPx = 10.0
)

// Camera dead zone configuration
// The camera only scrolls once the player's center enters the margin
const (
	// CameraDeadZoneMarginX is horizontal margin in cells from viewport edge
	CameraDeadZoneMarginX = 16

	// CameraDeadZoneMarginY is vertical margin in cells from viewport edge
	CameraDeadZoneMarginY = 6
)
