package visual

// Glyphs per drawable kind
const (
	GlyphGround      = '█'
	GlyphPlayer      = '@'
	GlyphFacingLeft  = '◀'
	GlyphFacingRight = '▶'
	GlyphMelee       = 'M'
	GlyphTurret      = '▣'
	GlyphBullet      = '•'
	GlyphSwing       = '/'
	GlyphAmmo        = '≡'

	GlyphSpikeUp    = '▲'
	GlyphSpikeDown  = '▼'
	GlyphSpikeLeft  = '◀'
	GlyphSpikeRight = '▶'
)
