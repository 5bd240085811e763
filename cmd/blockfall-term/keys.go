package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

// mapKey translates a terminal key into an action. r is only read for
// KeyRune.
func mapKey(key tcell.Key, r rune) (tetris.Action, bool) {
	switch key {
	case tcell.KeyLeft:
		return tetris.ActionMoveLeft, true
	case tcell.KeyRight:
		return tetris.ActionMoveRight, true
	case tcell.KeyDown:
		return tetris.ActionSoftDrop, true
	case tcell.KeyUp:
		return tetris.ActionRotateRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return tetris.ActionExit, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch r {
	case 'a', 'h':
		return tetris.ActionMoveLeft, true
	case 'd', 'l':
		return tetris.ActionMoveRight, true
	case 's', 'j':
		return tetris.ActionSoftDrop, true
	case ' ':
		return tetris.ActionHardDrop, true
	case 'z':
		return tetris.ActionRotateLeft, true
	case 'x', 'w', 'k':
		return tetris.ActionRotateRight, true
	case 'c':
		return tetris.ActionHold, true
	case 'p':
		return tetris.ActionPause, true
	case 'r':
		return tetris.ActionReset, true
	case 'q':
		return tetris.ActionExit, true
	}
	return 0, false
}

// heldKeys turns the press events a terminal sends into held state. A
// terminal reports no releases, only the initial press and the auto-repeats
// that follow, so an action counts as held until window has passed since
// its last event.
type heldKeys struct {
	window   time.Duration
	lastSeen map[tetris.Action]time.Time
}

func newHeldKeys(window time.Duration) *heldKeys {
	return &heldKeys{
		window:   window,
		lastSeen: make(map[tetris.Action]time.Time),
	}
}

func (h *heldKeys) Press(a tetris.Action, now time.Time) {
	h.lastSeen[a] = now
}

// Intents returns the actions still held at now.
func (h *heldKeys) Intents(now time.Time) tetris.Intents {
	var in tetris.Intents
	for a, seen := range h.lastSeen {
		if now.Sub(seen) < h.window {
			in.Set(a, true)
		} else {
			delete(h.lastSeen, a)
		}
	}
	return in
}
