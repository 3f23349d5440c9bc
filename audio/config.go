package audio

import (
	"os"
	"strconv"
)

// Config controls the sound effects
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
}

// DefaultConfig returns the built-in audio settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
}

// LoadConfig overlays environment variables on the defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("TEXTRIS_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("TEXTRIS_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if sampleRate := os.Getenv("TEXTRIS_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
