// Package audio synthesizes sound effects for session events with beep. The
// engine never plays sound itself; a Player subscribes to it instead.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/tetris"
)

// Subscriber is the part of a session a Player listens to.
type Subscriber interface {
	Subscribe(kind tetris.EventKind, h tetris.Handler)
}

// Player mixes effects into a single speaker stream.
type Player struct {
	mu     sync.Mutex
	cfg    *Config
	mixer  *beep.Mixer
	output func(func())
	muted  bool
	played map[Sound]int
}

// NewPlayer initializes the speaker and starts the mixer. A disabled config
// yields a silent player and no error.
func NewPlayer(cfg *Config) (*Player, error) {
	p := newPlayer(cfg, func(f func()) {
		speaker.Lock()
		defer speaker.Unlock()
		f()
	})
	if !cfg.Enabled {
		p.muted = true
		return p, nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	speaker.Play(p.mixer)
	return p, nil
}

// newPlayer builds a player whose mixer changes run through output.
func newPlayer(cfg *Config, output func(func())) *Player {
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		output: output,
		played: make(map[Sound]int),
	}
}

// Bind plays an effect for every event the session raises.
func (p *Player) Bind(sub Subscriber) {
	for _, kind := range []tetris.EventKind{
		tetris.EventPieceLocked, tetris.EventLinesCleared, tetris.EventLevelUp,
		tetris.EventHoldSwapped, tetris.EventGameOver, tetris.EventPauseToggled,
	} {
		sub.Subscribe(kind, p.HandleEvent)
	}
}

// HandleEvent plays the effect mapped to e, if any.
func (p *Player) HandleEvent(e tetris.Event) {
	if s, ok := ForEvent(e); ok {
		p.Play(s)
	}
}

// Play starts an effect. It returns at once; the mixer streams it.
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return
	}
	streamer := GetSoundEffect(s, p.cfg)
	if streamer == nil {
		return
	}
	p.played[s]++
	p.output(func() {
		p.mixer.Add(streamer)
	})
}

// SetMuted silences or restores playback. Muting drops queued effects.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	if muted {
		p.output(p.mixer.Clear)
	}
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Played returns how many times an effect was started.
func (p *Player) Played(s Sound) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[s]
}

// Close stops every effect.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.output(p.mixer.Clear)
	p.muted = true
}
