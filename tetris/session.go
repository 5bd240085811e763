package tetris

import (
	"context"
	"time"
)

// gameplayTimers are reset when a session restarts. Pause and reset keep
// their state so a held key does not fire again straight after a restart.
var gameplayTimers = []TimerID{
	TimerGravity, TimerSoftDrop, TimerMoveLeft, TimerMoveRight,
	TimerRotateLeft, TimerRotateRight, TimerHardDrop, TimerHold, TimerLockDelay,
}

// Session is one game: the board, the active piece, hold, queue, score and
// the timers that drive them. It advances only when ticked and must be used
// from a single goroutine; other goroutines should work from Snapshots.
type Session struct {
	cfg  Config
	seed uint64

	board  *Board
	bag    *Bag
	queue  *Queue
	hold   Hold
	active *Piece

	score      int
	level      int
	lines      int
	levelLines int

	timers    *Timers
	lockDelay bool
	gameOver  bool
	paused    bool
	exited    bool
	tick      uint64

	scheduler *Scheduler
	bus       *Bus
}

// NewSession validates cfg and starts a game with the first piece spawned.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.clone()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &Session{
		cfg:    cfg,
		seed:   seed,
		board:  NewBoard(cfg.Width, cfg.Height),
		bag:    NewBag(seed),
		timers: NewTimers(),
		bus:    NewBus(),
	}
	s.queue = NewQueue(s.bag, cfg.QueueDepth)

	gravity := cfg.GravityInterval(cfg.StartLevel)
	s.timers.Add(TimerGravity, NewCounter(gravity, gravity, gravity))
	s.timers.Add(TimerSoftDrop, NewCounter(1, cfg.SoftDropInterval, cfg.SoftDropInterval))
	s.timers.Add(TimerMoveLeft, NewCounter(1, cfg.DASDelay, cfg.ARRInterval))
	s.timers.Add(TimerMoveRight, NewCounter(1, cfg.DASDelay, cfg.ARRInterval))
	s.timers.Add(TimerRotateLeft, NewCounter(1, cfg.RotateRepeat, cfg.RotateRepeat))
	s.timers.Add(TimerRotateRight, NewCounter(1, cfg.RotateRepeat, cfg.RotateRepeat))
	s.timers.Add(TimerHardDrop, NewCounter(1, cfg.HardDropRepeat, cfg.HardDropRepeat))
	s.timers.Add(TimerHold, NewOneShot(1))
	s.timers.Add(TimerLockDelay, NewOneShot(cfg.LockDelay))
	s.timers.Add(TimerPause, NewOneShot(1))
	s.timers.Add(TimerReset, NewOneShot(1))

	s.scheduler = NewScheduler(s)
	s.scheduler.Register(ControlStage{})
	s.scheduler.Register(LockDelayStage{})
	s.scheduler.Register(InputStage{})
	s.scheduler.Register(GravityStage{})

	s.reset(newEvents(s.tick))
	return s, nil
}

// Tick advances the session by one tick.
func (s *Session) Tick(intents Intents) {
	s.scheduler.Once(intents)
}

// Run ticks the session at a fixed interval until ctx is cancelled or an
// exit intent arrives. poll supplies the intents of each tick.
func (s *Session) Run(ctx context.Context, interval time.Duration, poll func() Intents) {
	s.scheduler.Run(ctx, interval, poll)
}

// Reset starts a new game on the same session and clears a previous exit.
// Subscribers receive a SessionReset event.
func (s *Session) Reset() {
	events := newEvents(s.tick)
	s.reset(events)
	events.Flush(s.bus)
}

// Subscribe registers h for events of the given kind.
func (s *Session) Subscribe(kind EventKind, h Handler) {
	s.bus.Subscribe(kind, h)
}

// SubscribeAll registers h for every event.
func (s *Session) SubscribeAll(h Handler) {
	s.bus.SubscribeAll(h)
}

func (s *Session) reset(events *Events) {
	s.board.Reset()
	s.bag.Empty()
	s.queue.Refill()
	s.hold.Clear()

	s.score = 0
	s.lines = 0
	s.levelLines = 0
	s.level = s.cfg.StartLevel

	s.lockDelay = false
	s.gameOver = false
	s.paused = false
	s.exited = false

	s.timers.Get(TimerGravity).SetInterval(s.cfg.GravityInterval(s.level))
	s.timers.Reset(gameplayTimers...)

	events.Emit(Event{Kind: EventSessionReset, Level: s.level})
	s.spawn(s.queue.Next(), events)
}

// spawn makes kind the active piece at the spawn position. A piece that does
// not fit there ends the game.
func (s *Session) spawn(kind Cell, events *Events) bool {
	s.active = NewPiece(kind, s.cfg.ShapeOf(kind))
	s.active.Reset(s.board)
	s.timers.Get(TimerGravity).Reset()

	if !s.active.Fits(s.board, s.active.Position(), s.active.Shape()) {
		s.endGame(events)
		return false
	}
	return true
}

func (s *Session) endGame(events *Events) {
	s.gameOver = true
	events.Emit(Event{Kind: EventGameOver, Score: s.score, Level: s.level, Lines: s.lines})
}

// softDrop moves the piece down one row, locking it when it cannot move and
// no lock delay is running.
func (s *Session) softDrop(events *Events) {
	if s.active.Move(s.board, Down) || s.lockDelay {
		return
	}
	s.lockAndAdvance(events)
}

// hardDrop drops the piece to its resting row and locks it at once.
func (s *Session) hardDrop(events *Events) {
	s.active.HardDrop(s.board)
	s.lockAndAdvance(events)
}

// lockAndAdvance locks the active piece, clears lines, updates score and
// level, and brings in the next piece.
func (s *Session) lockAndAdvance(events *Events) {
	if s.active.AboveBoard() {
		s.endGame(events)
		return
	}

	kind := s.active.Kind()
	s.active.Lock(s.board)
	events.Emit(Event{Kind: EventPieceLocked, Piece: kind})

	cleared := s.board.ClearRows(s.board.FindCompleteRows())
	if cleared > 0 {
		s.score += LineScore(cleared, s.level)
		s.lines += cleared
		s.levelLines += cleared
		events.Emit(Event{Kind: EventLinesCleared, Lines: cleared, Level: s.level, Score: s.score})

		if s.level < s.cfg.MaxLevel && s.levelLines >= s.cfg.LinesToLevelUp(s.level) {
			s.level++
			s.levelLines = 0
			s.timers.Get(TimerGravity).SetInterval(s.cfg.GravityInterval(s.level))
			events.Emit(Event{Kind: EventLevelUp, Level: s.level})
		}
	}

	s.hold.Allow()
	s.lockDelay = true
	s.timers.Get(TimerLockDelay).Reset()

	s.spawn(s.queue.Next(), events)
}

// swapHold exchanges the active piece with the hold slot. An empty slot takes
// the active piece and the next queued piece comes in.
func (s *Session) swapHold(events *Events) {
	if !s.hold.CanSwap() {
		return
	}

	current := s.active.Kind()
	next := s.hold.Exchange(current)
	if next == Empty {
		next = s.queue.Next()
	}
	events.Emit(Event{Kind: EventHoldSwapped, Piece: current})
	s.spawn(next, events)
}

func (s *Session) Config() Config { return s.cfg.clone() }
func (s *Session) Seed() uint64 { return s.seed }
func (s *Session) Score() int { return s.score }
func (s *Session) Level() int { return s.level }
func (s *Session) Lines() int { return s.lines }
func (s *Session) LevelLines() int { return s.levelLines }
func (s *Session) GameOver() bool { return s.gameOver }
func (s *Session) Paused() bool { return s.paused }
func (s *Session) Exited() bool { return s.exited }
func (s *Session) LockDelayActive() bool { return s.lockDelay }
func (s *Session) Ticks() uint64 { return s.tick }
func (s *Session) HoldKind() Cell { return s.hold.Kind() }
func (s *Session) CanHold() bool { return s.hold.CanSwap() }
func (s *Session) Queue() []Cell { return s.queue.Items() }

// Active returns a copy of the active piece.
func (s *Session) Active() Piece { return *s.active }

// Timers returns the state of every session counter.
func (s *Session) Timers() []TimerState { return s.timers.States() }

// Stats returns per-stage tick timings.
func (s *Session) Stats() *SchedulerStats { return s.scheduler.GetStats() }
