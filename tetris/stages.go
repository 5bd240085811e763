package tetris

// ControlStage handles pause, reset and exit. While the session is paused or
// over it halts the tick so no other stage runs.
type ControlStage struct{}

func (ControlStage) Execute(frame *Frame) {
	s := frame.Session
	in := frame.Intents

	if in.Exit {
		s.exited = true
		frame.Halt()
		return
	}

	if s.timers.Get(TimerReset).RunOrReset(in.Reset) {
		s.reset(frame.Events)
		frame.Halt()
		return
	}

	if s.timers.Get(TimerPause).RunOrReset(in.Pause) && !s.gameOver {
		s.paused = !s.paused
		frame.Events.Emit(Event{Kind: EventPauseToggled, Paused: s.paused})
	}

	if s.paused || s.gameOver {
		frame.Halt()
	}
}

// LockDelayStage counts down the grace period that follows a lock.
type LockDelayStage struct{}

func (LockDelayStage) Execute(frame *Frame) {
	s := frame.Session
	if s.lockDelay && s.timers.Get(TimerLockDelay).Tick() {
		s.lockDelay = false
	}
}

// InputStage applies the held intents, each gated by its own repeat counter.
type InputStage struct{}

func (InputStage) Execute(frame *Frame) {
	s := frame.Session
	in := frame.Intents
	t := s.timers

	if t.Get(TimerMoveLeft).RunOrReset(in.MoveLeft) {
		s.active.Move(s.board, Left)
	}
	if t.Get(TimerMoveRight).RunOrReset(in.MoveRight) {
		s.active.Move(s.board, Right)
	}
	if t.Get(TimerSoftDrop).RunOrReset(in.SoftDrop) {
		s.softDrop(frame.Events)
	}
	if t.Get(TimerRotateLeft).RunOrReset(in.RotateLeft) {
		s.active.Rotate(s.board, CounterClockwise)
	}
	if t.Get(TimerRotateRight).RunOrReset(in.RotateRight) {
		s.active.Rotate(s.board, Clockwise)
	}
	if s.gameOver {
		frame.Halt()
		return
	}

	if t.Get(TimerHardDrop).RunOrReset(in.HardDrop) {
		s.hardDrop(frame.Events)
		if s.gameOver {
			frame.Halt()
			return
		}
	}

	if t.Get(TimerHold).RunOrReset(in.Hold) {
		s.swapHold(frame.Events)
		if s.gameOver {
			frame.Halt()
		}
	}
}

// GravityStage drops the active piece on its timer and locks it once it can
// fall no further. It does nothing while the lock delay is running.
type GravityStage struct{}

func (GravityStage) Execute(frame *Frame) {
	s := frame.Session
	if s.lockDelay {
		return
	}
	if s.timers.Get(TimerGravity).Tick() && !s.active.Move(s.board, Down) {
		s.lockAndAdvance(frame.Events)
	}
}
