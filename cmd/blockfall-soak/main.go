package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	tps := flag.Int("tps", 0, "Ticks per second. Zero ticks as fast as possible.")
	seed := flag.Uint64("seed", 1, "Seed for the bag and the input generator.")
	level := flag.Int("level", 0, "The level each game starts at.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting blockfall soak run...")

	cfg := tetris.DefaultConfig()
	cfg.Seed = *seed
	cfg.StartLevel = *level
	session, err := tetris.NewSession(cfg)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	report := &Report{
		Duration:       *duration,
		TicksPerSecond: *tps,
		Seed:           session.Seed(),
		StartLevel:     *level,
		GCPauseMetrics: *gcPauseMetrics,
	}
	session.SubscribeAll(report.Record)

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s (seed %d)...\n", *duration, session.Seed())
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	input := newInputSource(*seed)
	startTime := time.Now()

	if *tps > 0 {
		session.Run(ctx, time.Second/time.Duration(*tps), func() tetris.Intents {
			return soakTick(session, input, report)
		})
	} else {
	Loop:
		for {
			select {
			case <-ctx.Done():
				break Loop
			default:
				session.Tick(soakTick(session, input, report))
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Finish(session)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak run finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// soakTick restarts finished games and times the previous tick. With a fixed
// rate it also supplies the next intents.
func soakTick(session *tetris.Session, input *inputSource, report *Report) tetris.Intents {
	report.Sample()
	if session.GameOver() {
		session.Reset()
	}
	return input.Next()
}

// inputSource produces held-key patterns that look like a player: keys stay
// down for a few ticks at a time and hard drops are frequent enough to keep
// pieces moving.
type inputSource struct {
	rng     *rand.Rand
	current tetris.Intents
	left    int
}

func newInputSource(seed uint64) *inputSource {
	return &inputSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

var soakActions = []tetris.Action{
	tetris.ActionMoveLeft, tetris.ActionMoveRight, tetris.ActionSoftDrop,
	tetris.ActionHardDrop, tetris.ActionRotateLeft, tetris.ActionRotateRight,
	tetris.ActionHold,
}

func (s *inputSource) Next() tetris.Intents {
	if s.left > 0 {
		s.left--
		return s.current
	}

	s.current = tetris.Intents{}
	if s.rng.IntN(4) > 0 {
		for range 1 + s.rng.IntN(2) {
			s.current.Set(soakActions[s.rng.IntN(len(soakActions))], true)
		}
	}
	s.left = 1 + s.rng.IntN(12)
	return s.current
}
