package parameter

// Weapons
const (
	KnifeReloadSeconds = 0.5
	KnifeSwingSeconds  = 0.05

	PistolReloadSeconds = 1.0
	PistolStartAmmo     = 10

	BulletSpeedBlocks = 20.0
	BulletSizePixels  = 5.0

	// MaxWeapons bounds weapon slots
	MaxWeapons = 10
)

// Enemies
const (
	TurretSizeBlocks    = 2.0
	TurretHealth        = 3
	TurretReloadSeconds = 2.0

	MeleeWidthBlocks  = 2.0
	MeleeHeightBlocks = 3.0

	// ContactDamage is dealt by every hazard, enemy touch and bullet
	ContactDamage = 1
)

// EffectMarginBlocks is how far outside the level extent effects may travel before being dropped
const EffectMarginBlocks = 40.0
