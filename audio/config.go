package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/hexworth/blockfolio/core"
	"github.com/hexworth/blockfolio/parameter"
)

// Config holds audio engine settings
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	EffectVolumes map[core.SoundType]float64
}

// DefaultConfig returns the baseline audio configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: parameter.AudioDefaultVolume,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundSelect:  0.6,
			core.SoundDenied:  0.8,
			core.SoundJump:    0.7,
			core.SoundLand:    0.5,
			core.SoundFall:    0.9,
			core.SoundBreak:   0.8,
			core.SoundToast:   0.6,
			core.SoundLevelUp: 1.0,
			core.SoundWin:     1.0,
		},
	}
}

// effectNames maps config keys to sound types for env overrides
var effectNames = map[string]core.SoundType{
	"select":  core.SoundSelect,
	"denied":  core.SoundDenied,
	"jump":    core.SoundJump,
	"land":    core.SoundLand,
	"fall":    core.SoundFall,
	"break":   core.SoundBreak,
	"toast":   core.SoundToast,
	"levelup": core.SoundLevelUp,
	"win":     core.SoundWin,
}

// LoadConfig loads audio configuration from environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("BLOCKFOLIO_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume as 0-100
	if volume := os.Getenv("BLOCKFOLIO_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// Per-effect volumes from JSON, e.g. {"jump":0.5,"win":1.0}
	if effectVols := os.Getenv("BLOCKFOLIO_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := effectNames[name]; ok {
					cfg.EffectVolumes[st] = clampVolume(v)
				}
			}
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
