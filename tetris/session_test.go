package tetris_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.QueueDepth = 0
	s, err := tetris.NewSession(cfg)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
}

func TestSessionStart(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = 1
	s := newSession(t, cfg)

	snap := s.Snapshot()
	assert.Equal(t, uint64(0), snap.Tick)
	assert.True(t, snap.Active.Kind.IsPiece())
	assert.Len(t, snap.Queue, 7)
	assert.Equal(t, tetris.Empty, snap.Hold)
	assert.True(t, snap.CanHold)
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Level)
	assert.Zero(t, filled(snap))
	assert.False(t, snap.GameOver)

	size := len(snap.Active.Shape)
	assert.Equal(t, (10-size)/2, snap.Active.Position.X)
	assert.Equal(t, uint64(1), s.Seed())
}

func TestSessionTimeSeed(t *testing.T) {
	s := newSession(t, tetris.DefaultConfig())
	assert.NotZero(t, s.Seed())
}

func TestSessionGravity(t *testing.T) {
	s := newSession(t, uniformConfig(10, 20, square...))
	start := s.Active().Position()

	for range 47 {
		s.Tick(noIntents)
	}
	assert.Equal(t, start, s.Active().Position())

	s.Tick(noIntents)
	assert.Equal(t, start.Y+1, s.Active().Position().Y)
}

func TestSessionHardDropLocks(t *testing.T) {
	s := newSession(t, uniformConfig(10, 20, square...))
	rec := record(s)

	s.Tick(hardDrop)

	snap := s.Snapshot()
	assert.Equal(t, 4, filled(snap))
	for _, row := range []int{18, 19} {
		for _, col := range []int{4, 5} {
			assert.NotEqual(t, tetris.Empty, snap.Board[row][col])
		}
	}
	assert.True(t, snap.LockDelay)
	assert.Equal(t, tetris.Point{X: 4, Y: -1}, snap.Active.Position)

	require.Equal(t, []tetris.EventKind{tetris.EventPieceLocked}, rec.kinds())
	assert.Equal(t, uint64(1), rec.events[0].Tick)
}

func TestSessionHeldHardDropRepeatsSlowly(t *testing.T) {
	s := newSession(t, uniformConfig(10, 20, square...))
	for range 20 {
		s.Tick(hardDrop)
	}
	assert.Equal(t, 4, filled(s.Snapshot()))

	s.Tick(hardDrop)
	assert.Equal(t, 8, filled(s.Snapshot()))
}

func TestSessionLockDelayHoldsGravity(t *testing.T) {
	cfg := uniformConfig(10, 20, square...)
	cfg.GravityTable = []int{1}
	cfg.LockDelay = 30
	s := newSession(t, cfg)

	s.Tick(hardDrop)
	spawn := s.Active().Position()

	for range 29 {
		s.Tick(noIntents)
		require.True(t, s.LockDelayActive())
		require.Equal(t, spawn, s.Active().Position())
	}

	s.Tick(noIntents)
	assert.False(t, s.LockDelayActive())
	assert.Equal(t, spawn.Y+1, s.Active().Position().Y)
}

func TestSessionSoftDropWaitsForLockDelay(t *testing.T) {
	cfg := uniformConfig(10, 6, square...)
	cfg.LockDelay = 30
	s := newSession(t, cfg)

	s.Tick(hardDrop)
	require.Equal(t, 4, filled(s.Snapshot()))

	// The second piece reaches the stack quickly but must not lock while
	// the delay runs.
	for range 29 {
		s.Tick(softDrop)
		require.Equal(t, 4, filled(s.Snapshot()))
	}
	assert.Equal(t, 2, s.Active().Position().Y)

	for range 10 {
		s.Tick(softDrop)
	}
	assert.Equal(t, 8, filled(s.Snapshot()))
	assert.False(t, s.GameOver())
}

func TestSessionMovementRepeat(t *testing.T) {
	s := newSession(t, uniformConfig(10, 20, square...))
	start := s.Active().Position().X

	s.Tick(moveLeft)
	assert.Equal(t, start-1, s.Active().Position().X, "moves on press")

	for range 9 {
		s.Tick(moveLeft)
	}
	assert.Equal(t, start-1, s.Active().Position().X, "waits out the DAS delay")

	s.Tick(moveLeft)
	assert.Equal(t, start-2, s.Active().Position().X)

	for range 10 {
		s.Tick(moveLeft)
	}
	assert.Equal(t, 0, s.Active().Position().X, "stops at the wall")
}

func TestSessionClearsLinesAndScores(t *testing.T) {
	s := newSession(t, uniformConfig(4, 4, square...))
	rec := record(s)

	s.Tick(tetris.Intents{MoveLeft: true, HardDrop: true})
	s.Tick(noIntents)
	s.Tick(tetris.Intents{MoveRight: true, HardDrop: true})

	snap := s.Snapshot()
	assert.Equal(t, 100, snap.Score)
	assert.Equal(t, 2, snap.Lines)
	assert.Zero(t, filled(snap))

	cleared := rec.find(tetris.EventLinesCleared)
	require.Len(t, cleared, 1)
	assert.Equal(t, 2, cleared[0].Lines)
	assert.Equal(t, 100, cleared[0].Score)
	assert.Equal(t, 0, cleared[0].Level)
}

func TestSessionFourLinesAtLevelZero(t *testing.T) {
	s := newSession(t, uniformConfig(4, 5, uprightBar...))

	for col := range 4 {
		for range col {
			press(s, moveRight)
		}
		require.Equal(t, col, s.Active().Position().X)
		press(s, hardDrop)
	}

	assert.Equal(t, 1200, s.Score())
	assert.Equal(t, 4, s.Lines())
	assert.Zero(t, filled(s.Snapshot()))
}

func TestSessionSingleAtLevelTwo(t *testing.T) {
	cfg := uniformConfig(4, 4, flatBar...)
	cfg.StartLevel = 2
	s := newSession(t, cfg)

	press(s, hardDrop)
	assert.Equal(t, 120, s.Score())
	assert.Equal(t, 2, s.Level())
}

func TestSessionLevelUp(t *testing.T) {
	cfg := uniformConfig(4, 4, flatBar...)
	cfg.LinesPerLevel = []int{1}
	cfg.GravityTable = []int{48, 20, 10}
	cfg.MaxLevel = 2
	s := newSession(t, cfg)
	rec := record(s)

	press(s, hardDrop)
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 20, gravityInterval(s))
	assert.Zero(t, s.LevelLines())

	press(s, hardDrop)
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, 10, gravityInterval(s))

	press(s, hardDrop)
	assert.Equal(t, 2, s.Level(), "capped at the max level")
	assert.Equal(t, 1, s.LevelLines())

	// Each clear is scored at the level it happened on.
	assert.Equal(t, 40*1+40*2+40*3, s.Score())
	assert.Equal(t, 3, s.Lines())

	levels := rec.find(tetris.EventLevelUp)
	require.Len(t, levels, 2)
	assert.Equal(t, 1, levels[0].Level)
	assert.Equal(t, 2, levels[1].Level)
}

func TestSessionHold(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = 1
	s := newSession(t, cfg)
	rec := record(s)

	first := s.Active().Kind()
	queue := s.Queue()

	s.Tick(holdPiece)
	assert.Equal(t, first, s.HoldKind())
	assert.Equal(t, queue[0], s.Active().Kind())
	assert.Equal(t, queue[1:], s.Queue()[:6])
	assert.False(t, s.CanHold())

	held := rec.find(tetris.EventHoldSwapped)
	require.Len(t, held, 1)
	assert.Equal(t, first, held[0].Piece)

	// Held key does not repeat, and a second press is refused until a lock.
	for range 30 {
		s.Tick(holdPiece)
	}
	s.Tick(noIntents)
	s.Tick(holdPiece)
	assert.Equal(t, queue[0], s.Active().Kind())
	assert.Len(t, rec.find(tetris.EventHoldSwapped), 1)

	press(s, hardDrop)
	assert.True(t, s.CanHold())
	third := s.Active().Kind()

	s.Tick(holdPiece)
	assert.Equal(t, first, s.Active().Kind())
	assert.Equal(t, third, s.HoldKind())

	// The swapped-in piece starts from the spawn position.
	board := tetris.NewBoard(10, 20)
	p := tetris.NewPiece(first, tetris.ShapeOf(first))
	p.Reset(board)
	assert.Equal(t, p.Position(), s.Active().Position())
	assert.Equal(t, p.Shape(), s.Active().Shape())
}

func TestSessionSpawnCollisionEndsGame(t *testing.T) {
	s := newSession(t, uniformConfig(4, 4, square...))
	rec := record(s)

	press(s, hardDrop)
	assert.False(t, s.GameOver())
	press(s, hardDrop)

	assert.True(t, s.GameOver())
	assert.Equal(t, 8, filled(s.Snapshot()))
	require.Len(t, rec.find(tetris.EventGameOver), 1)

	// Nothing moves after the game ends.
	before := s.Snapshot()
	for range 100 {
		s.Tick(moveLeft)
	}
	after := s.Snapshot()
	assert.Equal(t, before.Board, after.Board)
	assert.Equal(t, before.Active.Position, after.Active.Position)
}

func TestSessionLockOutEndsGame(t *testing.T) {
	s := newSession(t, uniformConfig(4, 5, uprightBar...))
	rec := record(s)

	press(s, hardDrop)
	require.False(t, s.GameOver())

	press(s, hardDrop)
	assert.True(t, s.GameOver())
	assert.Equal(t, 4, filled(s.Snapshot()), "a piece above the board is not locked")
	assert.Len(t, rec.find(tetris.EventPieceLocked), 1)
	assert.Len(t, rec.find(tetris.EventGameOver), 1)
}

func TestSessionResetIntent(t *testing.T) {
	s := newSession(t, uniformConfig(4, 4, square...))
	press(s, hardDrop)
	press(s, hardDrop)
	require.True(t, s.GameOver())

	rec := record(s)
	for range 10 {
		s.Tick(tetris.Intents{Reset: true})
	}

	assert.False(t, s.GameOver())
	assert.Zero(t, filled(s.Snapshot()))
	assert.Zero(t, s.Score())
	assert.Len(t, s.Queue(), 7)
	assert.Equal(t, []tetris.EventKind{tetris.EventSessionReset}, rec.kinds(), "a held reset fires once")
}

func TestSessionReset(t *testing.T) {
	s := newSession(t, uniformConfig(10, 20, square...))
	rec := record(s)
	press(s, holdPiece)
	press(s, hardDrop)

	s.Reset()
	snap := s.Snapshot()
	assert.Zero(t, filled(snap))
	assert.Equal(t, tetris.Empty, snap.Hold)
	assert.True(t, snap.CanHold)
	assert.False(t, snap.LockDelay)
	assert.Equal(t, tetris.EventSessionReset, rec.events[len(rec.events)-1].Kind)
}

func TestSessionPause(t *testing.T) {
	s := newSession(t, uniformConfig(10, 20, square...))
	rec := record(s)

	for range 10 {
		s.Tick(pauseSession)
	}
	require.True(t, s.Paused())

	pos := s.Active().Position()
	for range 100 {
		s.Tick(moveLeft)
	}
	assert.Equal(t, pos, s.Active().Position())

	s.Tick(pauseSession)
	assert.False(t, s.Paused())
	s.Tick(moveLeft)
	assert.Equal(t, pos.X-1, s.Active().Position().X)

	toggles := rec.find(tetris.EventPauseToggled)
	require.Len(t, toggles, 2)
	assert.True(t, toggles[0].Paused)
	assert.False(t, toggles[1].Paused)
}

func TestSessionExit(t *testing.T) {
	s := newSession(t, tetris.DefaultConfig())
	s.Tick(tetris.Intents{Exit: true})
	assert.True(t, s.Exited())
}

func TestSessionRunStopsOnExit(t *testing.T) {
	s := newSession(t, tetris.DefaultConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	polls := 0
	s.Run(ctx, time.Millisecond, func() tetris.Intents {
		polls++
		return tetris.Intents{Exit: polls >= 3}
	})

	assert.True(t, s.Exited())
	assert.Equal(t, 3, polls)
	assert.NoError(t, ctx.Err())
}

func TestSessionRunStopsOnCancel(t *testing.T) {
	s := newSession(t, tetris.DefaultConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	s.Run(ctx, time.Millisecond, func() tetris.Intents { return noIntents })
	assert.False(t, s.Exited())
	assert.Error(t, ctx.Err())
}

func TestSessionEventsSeeEndOfTickState(t *testing.T) {
	s := newSession(t, uniformConfig(4, 4, square...))

	var seen tetris.Snapshot
	s.Subscribe(tetris.EventLinesCleared, func(tetris.Event) {
		seen = s.Snapshot()
	})

	s.Tick(tetris.Intents{MoveLeft: true, HardDrop: true})
	s.Tick(noIntents)
	s.Tick(tetris.Intents{MoveRight: true, HardDrop: true})

	assert.Equal(t, s.Snapshot(), seen)
}

func TestSessionDeterministic(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = 77
	a := newSession(t, cfg)
	b := newSession(t, cfg)

	script := []tetris.Intents{moveLeft, noIntents, hardDrop, noIntents, holdPiece, softDrop, moveRight, hardDrop}
	for i := range 600 {
		in := script[i%len(script)]
		a.Tick(in)
		b.Tick(in)
	}
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestSessionSnapshotIsCopy(t *testing.T) {
	s := newSession(t, uniformConfig(10, 20, square...))
	snap := s.Snapshot()
	snap.Board[19][0] = tetris.T
	snap.Queue[0] = tetris.Empty
	snap.Active.Cells[0] = tetris.Point{X: 9, Y: 19}

	again := s.Snapshot()
	assert.Equal(t, tetris.Empty, again.Board[19][0])
	assert.NotEqual(t, tetris.Empty, again.Queue[0])
	assert.Equal(t, tetris.Point{X: 4, Y: -1}, again.Active.Cells[0])
}

func TestSnapshotCellAndGhost(t *testing.T) {
	s := newSession(t, uniformConfig(10, 20, square...))
	snap := s.Snapshot()
	kind := snap.Active.Kind

	assert.Equal(t, tetris.Point{X: 4, Y: 18}, snap.Active.Ghost)
	assert.Equal(t, kind, snap.Cell(0, 4))
	assert.Equal(t, kind, snap.Cell(0, 5))
	assert.Equal(t, tetris.Empty, snap.Cell(0, 3))
	assert.Equal(t, tetris.Empty, snap.Cell(-1, 4), "spawn buffer is off the grid")

	assert.True(t, snap.IsGhost(18, 4))
	assert.True(t, snap.IsGhost(19, 5))
	assert.False(t, snap.IsGhost(0, 4))
	assert.False(t, snap.IsGhost(17, 4))
}

func TestSessionStats(t *testing.T) {
	s := newSession(t, uniformConfig(10, 20, square...))
	s.Tick(noIntents)
	s.Tick(pauseSession)
	s.Tick(noIntents)

	stats := s.Stats()
	require.Equal(t, 4, stats.StageCount)
	assert.Equal(t, int64(3), stats.TotalTicks)

	names := make([]string, len(stats.Stages))
	for i, st := range stats.Stages {
		names[i] = st.Name
	}
	assert.Equal(t, []string{"ControlStage", "LockDelayStage", "InputStage", "GravityStage"}, names)
	assert.Equal(t, int64(3), stats.Stages[0].ExecutionCount)
	assert.Equal(t, int64(1), stats.Stages[2].ExecutionCount, "paused ticks stop after control")
}

func TestSessionActiveIsValue(t *testing.T) {
	s := newSession(t, uniformConfig(10, 20, square...))

	active := s.Active()
	assert.True(t, active.AboveBoard(), "spawns with its top row in the buffer")
	assert.ElementsMatch(t, []tetris.Point{{X: 4, Y: -1}, {X: 5, Y: -1}, {X: 4, Y: 0}, {X: 5, Y: 0}}, s.Active().Cells())
	assert.Equal(t, 2, s.Active().Shape().Size())

	for range 48 {
		s.Tick(noIntents)
	}
	assert.Equal(t, tetris.Point{X: 4, Y: -1}, active.Position(), "earlier copy does not follow the session")
	assert.Equal(t, tetris.Point{X: 4, Y: 0}, s.Active().Position())
	assert.False(t, s.Active().AboveBoard())
}

func TestSessionHardDropLocksDuringLockDelay(t *testing.T) {
	s := newSession(t, uniformConfig(10, 20, square...))

	press(s, hardDrop)
	require.True(t, s.LockDelayActive())
	require.Equal(t, 4, filled(s.Snapshot()))

	s.Tick(hardDrop)
	assert.Equal(t, 8, filled(s.Snapshot()), "hard drop is an explicit lock and ignores the delay")
	assert.True(t, s.LockDelayActive(), "the delay is armed again for the next piece")
}

func TestSessionResetClearsExit(t *testing.T) {
	s := newSession(t, tetris.DefaultConfig())
	s.Tick(tetris.Intents{Exit: true})
	require.True(t, s.Exited())

	s.Reset()
	assert.False(t, s.Exited())

	polls := 0
	s.Run(context.Background(), time.Millisecond, func() tetris.Intents {
		polls++
		return tetris.Intents{Exit: polls == 5}
	})
	assert.Equal(t, 5, polls)
	assert.True(t, s.Exited())
}

func TestSessionOwnsConfigTables(t *testing.T) {
	cfg := uniformConfig(10, 20, square...)
	s := newSession(t, cfg)

	for _, kind := range tetris.Kinds {
		cfg.Shapes[kind] = tetris.MustParseShape(kind, flatBar...)
	}
	cfg.GravityTable[0] = 1

	returned := s.Config()
	returned.Shapes[tetris.O] = tetris.MustParseShape(tetris.O, flatBar...)
	returned.GravityTable[0] = 2

	assert.Equal(t, 48, s.Config().GravityInterval(0))
	start := s.Active().Position()
	for range 47 {
		s.Tick(noIntents)
	}
	assert.Equal(t, start, s.Active().Position())

	press(s, hardDrop)
	assert.Equal(t, 2, s.Active().Shape().Size())
	assert.Equal(t, tetris.MustParseShape(tetris.O, square...).Rows(), s.Config().ShapeOf(tetris.O).Rows())
}
