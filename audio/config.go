package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

// Config controls whether sound plays and how loud each effect is.
type Config struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[Sound]float64
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		SampleRate:   44100,
		MasterVolume: 0.5,
		EffectVolumes: map[Sound]float64{
			SoundLock:      0.4,
			SoundLineClear: 0.8,
			SoundTetris:    1.0,
			SoundLevelUp:   0.8,
			SoundHold:      0.4,
			SoundGameOver:  0.9,
			SoundPause:     0.3,
		},
	}
}

// Volume returns the effective volume of an effect in [0,1].
func (c *Config) Volume(s Sound) float64 {
	return clamp01(c.EffectVolumes[s] * c.MasterVolume)
}

// LoadConfig reads overrides from the environment:
//
//	BLOCKFALL_AUDIO_ENABLED  true/false
//	BLOCKFALL_MASTER_VOLUME  0-100
//	BLOCKFALL_SFX_VOLUMES    JSON object of effect name to 0.0-1.0,
//	                         e.g. {"tetris":1,"lock":0.2}
//	BLOCKFALL_SAMPLE_RATE    Hz
//
// Malformed values are ignored.
func LoadConfig() *Config {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) *Config {
	cfg := DefaultConfig()

	if enabled := getenv("BLOCKFALL_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := getenv("BLOCKFALL_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	if effectVols := getenv("BLOCKFALL_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for _, s := range Sounds {
				if v, ok := volumes[strings.ToLower(s.String())]; ok {
					cfg.EffectVolumes[s] = clamp01(v)
				}
			}
		}
	}

	if sampleRate := getenv("BLOCKFALL_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
