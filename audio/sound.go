package audio

import "github.com/plus3/blockfall/tetris"

//go:generate go tool stringer -type=Sound -trimprefix=Sound

// Sound is one of the synthesized effects.
type Sound int

const (
	SoundLock Sound = iota
	SoundLineClear
	SoundTetris
	SoundLevelUp
	SoundHold
	SoundGameOver
	SoundPause
)

// Sounds lists every effect in declaration order.
var Sounds = [...]Sound{SoundLock, SoundLineClear, SoundTetris, SoundLevelUp, SoundHold, SoundGameOver, SoundPause}

// ForEvent returns the effect for a session event. Resets play nothing.
func ForEvent(e tetris.Event) (Sound, bool) {
	switch e.Kind {
	case tetris.EventPieceLocked:
		return SoundLock, true
	case tetris.EventLinesCleared:
		if e.Lines >= 4 {
			return SoundTetris, true
		}
		return SoundLineClear, true
	case tetris.EventLevelUp:
		return SoundLevelUp, true
	case tetris.EventHoldSwapped:
		return SoundHold, true
	case tetris.EventGameOver:
		return SoundGameOver, true
	case tetris.EventPauseToggled:
		return SoundPause, true
	}
	return 0, false
}
