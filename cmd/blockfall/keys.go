package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/tetris"
)

var keyBindings = map[tetris.Action][]ebiten.Key{
	tetris.ActionMoveLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	tetris.ActionMoveRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	tetris.ActionSoftDrop:    {ebiten.KeyArrowDown, ebiten.KeyS},
	tetris.ActionHardDrop:    {ebiten.KeySpace},
	tetris.ActionRotateLeft:  {ebiten.KeyZ, ebiten.KeyControlLeft},
	tetris.ActionRotateRight: {ebiten.KeyArrowUp, ebiten.KeyX, ebiten.KeyW},
	tetris.ActionHold:        {ebiten.KeyC, ebiten.KeyShiftLeft},
	tetris.ActionPause:       {ebiten.KeyP},
	tetris.ActionReset:       {ebiten.KeyR},
	tetris.ActionExit:        {ebiten.KeyEscape},
}

// readIntents reports every action whose key is down. Repeat timing is the
// session's job, so only the held state matters here.
func readIntents(pressed func(ebiten.Key) bool) tetris.Intents {
	var in tetris.Intents
	for _, action := range tetris.Actions {
		for _, key := range keyBindings[action] {
			if pressed(key) {
				in.Set(action, true)
				break
			}
		}
	}
	return in
}
