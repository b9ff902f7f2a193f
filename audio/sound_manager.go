package audio

import (
	"io"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/william-cutler/platformer/event"
	"github.com/william-cutler/platformer/parameter"
)

// SoundManager plays cues for game events through a single speaker mixer.
// All methods are safe to call before Initialize; playback is then a no-op.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	log         logrus.FieldLogger
	initialized bool
	muted       bool
}

// NewSoundManager creates a manager for cfg; nil selects DefaultConfig
func NewSoundManager(cfg *Config, log logrus.FieldLogger) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		log:   log.WithField("component", "audio"),
	}
}

// Initialize opens the speaker; disabled configs skip it
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.WithField("sample_rate", sm.cfg.SampleRate).Info("audio initialized")
	return nil
}

// Cleanup silences everything; beep has no speaker close so the mixer is just emptied
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles playback without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues c on the mixer; returns false when nothing was queued
func (sm *SoundManager) Play(c Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	s := CreateCue(c, sm.cfg)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// HandleEvent implements event.Listener
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	if c, ok := CueFor(ev); ok {
		sm.Play(c)
	}
}

// CueFor picks the cue for an event; events without a sound report false
func CueFor(ev event.GameEvent) (Cue, bool) {
	switch ev.Type {
	case event.EventPlayerJumped:
		return CueJump, true
	case event.EventPlayerHit:
		return CuePlayerHit, true
	case event.EventPlayerDied:
		return CueDeath, true
	case event.EventAmmoCollected:
		return CuePickup, true
	case event.EventEnemyHit:
		return CueEnemyHit, true
	case event.EventEnemyKilled:
		return CueEnemyKilled, true
	case event.EventWeaponFired:
		if p, ok := ev.Payload.(*event.WeaponFiredPayload); ok && p.Weapon == "knife" {
			return CueSwing, true
		}
		return CueShot, true
	}
	return 0, false
}
