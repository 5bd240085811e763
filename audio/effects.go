package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType selects the waveform of a tone.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// NewOscillator returns a wave that ends after duration. Periodic waves come
// from beep's generators; a frequency the rate cannot carry yields silence.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	n := rate.N(duration)

	var (
		s   beep.Streamer
		err error
	)
	switch wave {
	case WaveSine:
		s, err = generators.SineTone(rate, freq)
	case WaveSquare:
		s, err = generators.SquareTone(rate, freq)
	case WaveSaw:
		s, err = generators.SawtoothTone(rate, freq)
	default:
		s = whiteNoise{}
	}
	if err != nil {
		return beep.Silence(n)
	}
	return beep.Take(n, s)
}

// whiteNoise streams uniform samples in [-1, 1) forever.
type whiteNoise struct{}

func (whiteNoise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := rand.Float64()*2 - 1
		samples[i] = [2]float64{v, v}
	}
	return len(samples), true
}

func (whiteNoise) Err() error { return nil }

// NewEnvelope fades s in over attack and out over the last release of
// duration. Gain is linear in both ramps and 1 in between.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	in := rate.N(attack)
	out := rate.N(release)

	gain := func(pos int) float64 {
		g := 1.0
		if pos < in {
			g = float64(pos) / float64(in)
		}
		if left := total - pos; left < out {
			g = min(g, float64(left)/float64(out))
		}
		return g
	}

	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n, ok := s.Stream(samples[:min(len(samples), total-pos)])
		for i := range n {
			g := gain(pos)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok || n > 0
	})
}

// math.Log2(0) is -Inf, so zero volume is made silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a shaped note of a single wave.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// arpeggio plays the notes one after another.
func arpeggio(freqs []float64, each time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(f, each, wave, rate)
	}
	return beep.Seq(notes...)
}

// CreateLockSound is a short low click.
func CreateLockSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	click := beep.Mix(
		newVolume(tone(110, 40*time.Millisecond, WaveSquare, rate), 0.6),
		newVolume(tone(0, 25*time.Millisecond, WaveNoise, rate), 0.3),
	)
	return newVolume(click, cfg.Volume(SoundLock))
}

// CreateLineClearSound is a rising two-note chime.
func CreateLineClearSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	chime := beep.Mix(
		newVolume(arpeggio([]float64{659.25, 987.77}, 70*time.Millisecond, WaveSquare, rate), 0.6),
		newVolume(tone(1318.51, 140*time.Millisecond, WaveSine, rate), 0.3),
	)
	return newVolume(chime, cfg.Volume(SoundLineClear))
}

// CreateTetrisSound is a four-note fanfare for clearing four lines at once.
func CreateTetrisSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	fanfare := arpeggio([]float64{523.25, 659.25, 783.99, 1046.50}, 80*time.Millisecond, WaveSquare, rate)
	return newVolume(fanfare, cfg.Volume(SoundTetris))
}

// CreateLevelUpSound is a bright sine sweep up an octave.
func CreateLevelUpSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	sweep := beep.Seq(
		tone(440, 60*time.Millisecond, WaveSine, rate),
		tone(554.37, 60*time.Millisecond, WaveSine, rate),
		tone(659.25, 60*time.Millisecond, WaveSine, rate),
		tone(880, 120*time.Millisecond, WaveSine, rate),
	)
	return newVolume(sweep, cfg.Volume(SoundLevelUp))
}

// CreateHoldSound is a soft blip.
func CreateHoldSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(tone(587.33, 50*time.Millisecond, WaveSine, rate), cfg.Volume(SoundHold))
}

// CreateGameOverSound is a falling saw line.
func CreateGameOverSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	fall := arpeggio([]float64{392, 329.63, 261.63, 196}, 150*time.Millisecond, WaveSaw, rate)
	return newVolume(fall, cfg.Volume(SoundGameOver))
}

// CreatePauseSound is a single mid tone.
func CreatePauseSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(tone(440, 60*time.Millisecond, WaveSine, rate), cfg.Volume(SoundPause))
}

// GetSoundEffect returns a fresh streamer for the effect, or nil for an
// unknown one.
func GetSoundEffect(s Sound, cfg *Config) beep.Streamer {
	switch s {
	case SoundLock:
		return CreateLockSound(cfg)
	case SoundLineClear:
		return CreateLineClearSound(cfg)
	case SoundTetris:
		return CreateTetrisSound(cfg)
	case SoundLevelUp:
		return CreateLevelUpSound(cfg)
	case SoundHold:
		return CreateHoldSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	case SoundPause:
		return CreatePauseSound(cfg)
	default:
		return nil
	}
}
