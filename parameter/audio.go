package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioDefaultVolume is the master volume when nothing overrides it
	AudioDefaultVolume = 0.6
)

// Cue envelopes: total length, attack and release
const (
	JumpCueDuration = 120 * time.Millisecond
	JumpCueAttack   = 5 * time.Millisecond
	JumpCueRelease  = 80 * time.Millisecond

	ShotCueDuration = 90 * time.Millisecond
	ShotCueAttack   = 2 * time.Millisecond
	ShotCueRelease  = 70 * time.Millisecond

	SwingCueDuration = 140 * time.Millisecond
	SwingCueAttack   = 60 * time.Millisecond
	SwingCueRelease  = 70 * time.Millisecond

	HitCueDuration = 160 * time.Millisecond
	HitCueAttack   = 5 * time.Millisecond
	HitCueRelease  = 60 * time.Millisecond

	KillCueNote1Duration = 70 * time.Millisecond
	KillCueNote2Duration = 200 * time.Millisecond
	KillCueAttack        = 5 * time.Millisecond
	KillCueNote1Release  = 30 * time.Millisecond
	KillCueNote2Release  = 150 * time.Millisecond

	PickupCueDuration = 400 * time.Millisecond
	PickupCueAttack   = 5 * time.Millisecond
	PickupCueRelease  = 350 * time.Millisecond

	DeathCueDuration = 900 * time.Millisecond
	DeathCueAttack   = 10 * time.Millisecond
	DeathCueRelease  = 600 * time.Millisecond
)
