package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/william-cutler/platformer/parameter"
)

// Config holds mixer settings; volumes are linear in [0, 1]
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
	CueVolumes   [cueCount]float64
}

// DefaultConfig enables audio at the default volume with every cue at full level
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioDefaultVolume,
	}
	for i := range cfg.CueVolumes {
		cfg.CueVolumes[i] = 1.0
	}
	// gunfire repeats a lot
	cfg.CueVolumes[CueShot] = 0.5
	return cfg
}

// LoadConfig applies environment overrides to DefaultConfig
//
//	PLATFORMER_AUDIO_ENABLED   bool
//	PLATFORMER_MASTER_VOLUME   0-100
//	PLATFORMER_CUE_VOLUMES     JSON object of cue name to 0.0-1.0
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("PLATFORMER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("PLATFORMER_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	if cueVols := os.Getenv("PLATFORMER_CUE_VOLUMES"); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for name, v := range volumes {
				if c, ok := ParseCue(name); ok {
					cfg.CueVolumes[c] = clamp01(v)
				}
			}
		}
	}

	return cfg
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
