package tetris

// ActiveView describes the falling piece for rendering.
type ActiveView struct {
	Kind     Cell
	Shape    [][]Cell
	Position Point
	Ghost    Point
	// Cells and GhostCells are board coordinates of the filled cells. Rows
	// may be negative while the piece is in the spawn buffer.
	Cells      []Point
	GhostCells []Point
}

// Snapshot is a read-only copy of the session state at the end of a tick.
// It shares no memory with the session, so it can be handed to render or
// audio goroutines.
type Snapshot struct {
	Tick   uint64
	Width  int
	Height int
	Board  [][]Cell

	Active  ActiveView
	Hold    Cell
	CanHold bool
	Queue   []Cell

	Score      int
	Level      int
	Lines      int
	LevelLines int

	LockDelay bool
	GameOver  bool
	Paused    bool
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	ghost := s.active.Ghost(s.board)
	offsets := s.active.Shape().Cells()
	ghostCells := make([]Point, len(offsets))
	for i, off := range offsets {
		ghostCells[i] = off.Add(ghost)
	}

	return Snapshot{
		Tick:   s.tick,
		Width:  s.board.Width(),
		Height: s.board.Height(),
		Board:  s.board.Rows(),
		Active: ActiveView{
			Kind:       s.active.Kind(),
			Shape:      s.active.Shape().Rows(),
			Position:   s.active.Position(),
			Ghost:      ghost,
			Cells:      s.active.Cells(),
			GhostCells: ghostCells,
		},
		Hold:       s.hold.Kind(),
		CanHold:    s.hold.CanSwap(),
		Queue:      s.queue.Items(),
		Score:      s.score,
		Level:      s.level,
		Lines:      s.lines,
		LevelLines: s.levelLines,
		LockDelay:  s.lockDelay,
		GameOver:   s.gameOver,
		Paused:     s.paused,
	}
}

// Cell returns the board cell at row, col with the active piece drawn over
// it. Out of range coordinates read as Empty.
func (snap Snapshot) Cell(row, col int) Cell {
	if row < 0 || row >= snap.Height || col < 0 || col >= snap.Width {
		return Empty
	}
	for _, p := range snap.Active.Cells {
		if p.Y == row && p.X == col {
			return snap.Active.Kind
		}
	}
	return snap.Board[row][col]
}

// IsGhost reports whether row, col is covered by the ghost but not by the
// active piece.
func (snap Snapshot) IsGhost(row, col int) bool {
	for _, p := range snap.Active.Cells {
		if p.Y == row && p.X == col {
			return false
		}
	}
	for _, p := range snap.Active.GhostCells {
		if p.Y == row && p.X == col {
			return true
		}
	}
	return false
}
