package parameter

// Player entity
const (
	PlayerWidthBlocks  = 2.0
	PlayerHeightBlocks = 3.0
	PlayerHealth       = 3

	// PlayerHitImmunitySeconds is how long damage is ignored after a hit lands
	PlayerHitImmunitySeconds = 1.0
)
