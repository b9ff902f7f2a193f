package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/william-cutler/platformer/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sliding linearly from freq to freqEnd
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one pitch to another over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		freqEnd:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.freqEnd-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps a linear level onto beep's log-scale volume; zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func shaped(osc beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(osc, duration, attack, release, rate)
}

// CreateCue synthesizes the streamer for c at the configured volume; nil for unknown cues
func CreateCue(c Cue, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	var s beep.Streamer

	switch c {
	case CueJump:
		s = shaped(NewSweep(300, 700, parameter.JumpCueDuration, WaveSine, rate),
			parameter.JumpCueDuration, parameter.JumpCueAttack, parameter.JumpCueRelease, rate)

	case CueShot:
		crack := shaped(NewOscillator(0, parameter.ShotCueDuration, WaveNoise, rate),
			parameter.ShotCueDuration, parameter.ShotCueAttack, parameter.ShotCueRelease, rate)
		body := shaped(NewSweep(320, 110, parameter.ShotCueDuration, WaveSquare, rate),
			parameter.ShotCueDuration, parameter.ShotCueAttack, parameter.ShotCueRelease, rate)
		s = beep.Mix(newVolume(crack, 0.6), newVolume(body, 0.3))

	case CueSwing:
		s = shaped(NewOscillator(0, parameter.SwingCueDuration, WaveNoise, rate),
			parameter.SwingCueDuration, parameter.SwingCueAttack, parameter.SwingCueRelease, rate)

	case CuePlayerHit:
		s = shaped(NewOscillator(100, parameter.HitCueDuration, WaveSaw, rate),
			parameter.HitCueDuration, parameter.HitCueAttack, parameter.HitCueRelease, rate)

	case CueEnemyHit:
		s = shaped(NewOscillator(440, parameter.HitCueDuration/2, WaveSquare, rate),
			parameter.HitCueDuration/2, parameter.HitCueAttack, parameter.HitCueRelease/2, rate)

	case CueEnemyKilled:
		n1 := shaped(NewOscillator(659.25, parameter.KillCueNote1Duration, WaveSquare, rate),
			parameter.KillCueNote1Duration, parameter.KillCueAttack, parameter.KillCueNote1Release, rate)
		n2 := shaped(NewOscillator(987.77, parameter.KillCueNote2Duration, WaveSquare, rate),
			parameter.KillCueNote2Duration, parameter.KillCueAttack, parameter.KillCueNote2Release, rate)
		s = beep.Seq(n1, n2)

	case CuePickup:
		fund := shaped(NewOscillator(880, parameter.PickupCueDuration, WaveSine, rate),
			parameter.PickupCueDuration, parameter.PickupCueAttack, parameter.PickupCueRelease, rate)
		over := shaped(NewOscillator(1760, parameter.PickupCueDuration, WaveSine, rate),
			parameter.PickupCueDuration, parameter.PickupCueAttack, parameter.PickupCueRelease/2, rate)
		s = beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))

	case CueDeath:
		s = shaped(NewSweep(220, 55, parameter.DeathCueDuration, WaveSaw, rate),
			parameter.DeathCueDuration, parameter.DeathCueAttack, parameter.DeathCueRelease, rate)

	default:
		return nil
	}

	return newVolume(s, cfg.CueVolumes[c]*cfg.MasterVolume)
}
