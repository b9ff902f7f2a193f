package audio

// Cue is a short sound effect tied to a game event
type Cue int

const (
	CueJump Cue = iota
	CueShot
	CueSwing
	CuePlayerHit
	CueEnemyHit
	CueEnemyKilled
	CuePickup
	CueDeath
	cueCount
)

var cueNames = [cueCount]string{
	CueJump:        "jump",
	CueShot:        "shot",
	CueSwing:       "swing",
	CuePlayerHit:   "player_hit",
	CueEnemyHit:    "enemy_hit",
	CueEnemyKilled: "enemy_killed",
	CuePickup:      "pickup",
	CueDeath:       "death",
}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// ParseCue maps a String form back to its cue
func ParseCue(name string) (Cue, bool) {
	for c := Cue(0); c < cueCount; c++ {
		if cueNames[c] == name {
			return c, true
		}
	}
	return 0, false
}
