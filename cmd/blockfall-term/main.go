package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	seed := flag.Uint64("seed", 0, "Seed for the piece bag. Zero picks one from the clock.")
	level := flag.Int("level", 0, "The level each game starts at.")
	mute := flag.Bool("mute", false, "Disable sound effects.")
	hold := flag.Duration("hold", 120*time.Millisecond, "How long a key counts as held after its last key event.")
	logFile := flag.String("log", "", "Write the log to this file instead of discarding it.")
	flag.Parse()

	// The terminal owns stdout and stderr while the game runs.
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := tetris.DefaultConfig()
	cfg.Seed = *seed
	cfg.StartLevel = *level
	session, err := tetris.NewSession(cfg)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	log.Printf("Starting blockfall (seed %d, level %d)", session.Seed(), session.Level())

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialise screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	audioCfg := audio.LoadConfig()
	if *mute {
		audioCfg.Enabled = false
	}
	if player, err := audio.NewPlayer(audioCfg); err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("Audio initialization failed: %v", err)
	} else {
		player.Bind(session)
		defer player.Close()
	}

	session.Subscribe(tetris.EventGameOver, func(e tetris.Event) {
		log.Printf("Game over: score %d, level %d, lines %d", e.Score, e.Level, e.Lines)
	})

	run(screen, session, newHeldKeys(*hold))
	log.Printf("Final score %d", session.Score())
}

// run ticks the session at the tick rate, feeding it the keys held at each
// tick, until an exit intent arrives.
func run(screen tcell.Screen, session *tetris.Session, keys *heldKeys) {
	ticker := time.NewTicker(time.Second / tetris.TickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	cfg := session.Config()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if action, ok := mapKey(ev.Key(), ev.Rune()); ok {
					keys.Press(action, ev.When())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			session.Tick(keys.Intents(now))
			if session.Exited() {
				return
			}
			drawSnapshot(screen, cfg, session.Snapshot())
		}
	}
}
