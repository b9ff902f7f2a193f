package visual

import "github.com/gdamore/tcell/v2"

// Scene colors
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbGround      = tcell.NewRGBColor(110, 90, 70)
	RgbSpikes      = tcell.NewRGBColor(200, 200, 210)
	RgbPlayer      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbPlayerHurt  = tcell.NewRGBColor(255, 120, 120)
	RgbMelee       = tcell.NewRGBColor(255, 80, 80)
	RgbTurret      = tcell.NewRGBColor(255, 165, 0)
	RgbPlayerShot  = tcell.NewRGBColor(255, 255, 0)
	RgbEnemyShot   = tcell.NewRGBColor(255, 0, 255)
	RgbKnifeSwing  = tcell.NewRGBColor(255, 255, 255)
	RgbAmmoPickup  = tcell.NewRGBColor(20, 200, 20)
	RgbUnknownKind = tcell.NewRGBColor(128, 128, 128)
)

// HUD colors
var (
	RgbStatusBar    = tcell.NewRGBColor(255, 255, 255)
	RgbStatusText   = tcell.NewRGBColor(0, 0, 0)
	RgbHealth       = tcell.NewRGBColor(255, 60, 60)
	RgbSlotSelected = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbSlotIdle     = tcell.NewRGBColor(180, 180, 180)
	RgbGameOverBg   = tcell.NewRGBColor(200, 50, 50)
)
