package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/debugui"
	debugui_ebiten "github.com/plus3/blockfall/tetris/debugui/ebiten"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 720
	CellSize     = 30
)

func main() {
	seed := flag.Uint64("seed", 0, "Seed for the piece bag. Zero picks one from the clock.")
	level := flag.Int("level", 0, "The level each game starts at.")
	debug := flag.Bool("debug", false, "Open the inspector overlay at start. F1 toggles it.")
	mute := flag.Bool("mute", false, "Disable sound effects.")
	flag.Parse()

	cfg := tetris.DefaultConfig()
	cfg.Seed = *seed
	cfg.StartLevel = *level
	session, err := tetris.NewSession(cfg)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	log.Printf("Starting blockfall (seed %d, level %d)", session.Seed(), session.Level())

	audioCfg := audio.LoadConfig()
	if *mute {
		audioCfg.Enabled = false
	}
	player, err := audio.NewPlayer(audioCfg)
	if err != nil {
		log.Printf("Audio disabled: %v", err)
	} else {
		player.Bind(session)
		defer player.Close()
	}

	session.Subscribe(tetris.EventGameOver, func(e tetris.Event) {
		log.Printf("Game over: score %d, level %d, lines %d", e.Score, e.Level, e.Lines)
	})

	backend := debugui_ebiten.NewImguiBackend("Blockfall", ScreenWidth, ScreenHeight)
	ebiten.SetTPS(tetris.TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	overlay := debugui_ebiten.NewOverlay(backend, debugui.NewInspector(session))
	if *debug {
		overlay.Toggle()
	}

	game := &Game{
		session:  session,
		overlay:  overlay,
		renderer: newRenderer(session.Config(), CellSize),
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
	log.Printf("Final score %d", session.Score())
}
