package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/require"
)

// uniformConfig gives every kind the same shape so tests can predict what
// spawns next.
func uniformConfig(width, height int, rows ...string) tetris.Config {
	cfg := tetris.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = 1
	cfg.Shapes = make(map[tetris.Cell]tetris.Shape, len(tetris.Kinds))
	for _, kind := range tetris.Kinds {
		cfg.Shapes[kind] = tetris.MustParseShape(kind, rows...)
	}
	return cfg
}

var (
	square       = []string{"##", "##"}
	flatBar      = []string{"####", "....", "....", "...."}
	uprightBar   = []string{"#...", "#...", "#...", "#..."}
	noIntents    = tetris.Intents{}
	hardDrop     = tetris.Intents{HardDrop: true}
	moveLeft     = tetris.Intents{MoveLeft: true}
	moveRight    = tetris.Intents{MoveRight: true}
	softDrop     = tetris.Intents{SoftDrop: true}
	holdPiece    = tetris.Intents{Hold: true}
	pauseSession = tetris.Intents{Pause: true}
)

func newSession(t testing.TB, cfg tetris.Config) *tetris.Session {
	t.Helper()
	s, err := tetris.NewSession(cfg)
	require.NoError(t, err)
	return s
}

// press holds the intents for one tick and releases them on the next.
func press(s *tetris.Session, in tetris.Intents) {
	s.Tick(in)
	s.Tick(noIntents)
}

func filled(snap tetris.Snapshot) int {
	n := 0
	for _, row := range snap.Board {
		for _, cell := range row {
			if cell != tetris.Empty {
				n++
			}
		}
	}
	return n
}

type recorder struct {
	events []tetris.Event
}

func record(s *tetris.Session) *recorder {
	r := &recorder{}
	s.SubscribeAll(func(e tetris.Event) {
		r.events = append(r.events, e)
	})
	return r
}

func (r *recorder) kinds() []tetris.EventKind {
	kinds := make([]tetris.EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func (r *recorder) find(kind tetris.EventKind) []tetris.Event {
	var found []tetris.Event
	for _, e := range r.events {
		if e.Kind == kind {
			found = append(found, e)
		}
	}
	return found
}

func (r *recorder) reset() {
	r.events = r.events[:0]
}

func gravityInterval(s *tetris.Session) int {
	for _, st := range s.Timers() {
		if st.ID == tetris.TimerGravity {
			return st.Interval
		}
	}
	return 0
}
