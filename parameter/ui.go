package parameter

// Layout
const (
	// BottomMargin is the HUD height in rows
	BottomMargin = 1
)

// HUD text
const (
	HealthFull  = '♥'
	HealthEmpty = '♡'
	MutedStr    = " mute"
	AudioStr    = " ♫"

	GameOverText = " GAME OVER  q to quit "
	PausedText   = " PAUSED "
)
