package tetris

// kicks are the offsets tried, in order, when a rotated shape does not fit in
// place. Up is a negative row offset.
var kicks = [...]Point{
	{X: 0, Y: 0},
	{X: 0, Y: -1},  // up
	{X: 0, Y: 1},   // down
	{X: -1, Y: 0},  // left
	{X: 1, Y: 0},   // right
	{X: -1, Y: -1}, // up-left
	{X: 1, Y: -1},  // up-right
	{X: -1, Y: 1},  // down-left
	{X: 1, Y: 1},   // down-right
}

// Piece is the active tetromino: its kind, current orientation and the board
// position of the top-left corner of its bounding box.
type Piece struct {
	kind  Cell
	spawn Shape
	shape Shape
	pos   Point
}

// NewPiece creates a piece in its spawn orientation at the origin. Call Reset
// to move it to the spawn position of a board.
func NewPiece(kind Cell, shape Shape) *Piece {
	return &Piece{
		kind:  kind,
		spawn: shape,
		shape: shape,
	}
}

func (p Piece) Kind() Cell      { return p.kind }
func (p Piece) Shape() Shape    { return p.shape }
func (p Piece) Position() Point { return p.pos }

// Fits reports whether shape placed at pos lies within the board walls and
// floor without overlapping a locked cell. Cells above row 0 are allowed.
func (p *Piece) Fits(board *Board, pos Point, shape Shape) bool {
	for _, cell := range shape.Cells() {
		col := pos.X + cell.X
		row := pos.Y + cell.Y
		if col < 0 || col >= board.Width() || row >= board.Height() {
			return false
		}
		if row >= 0 && !board.IsEmpty(row, col) {
			return false
		}
	}
	return true
}

// Move translates the piece one cell. The piece only moves when the new
// position fits.
func (p *Piece) Move(board *Board, dir Direction) bool {
	next := p.pos.Add(dir.Delta())
	if !p.Fits(board, next, p.shape) {
		return false
	}
	p.pos = next
	return true
}

// HardDrop moves the piece down until it rests and returns the number of rows
// travelled. The piece is not locked.
func (p *Piece) HardDrop(board *Board) int {
	rows := 0
	for p.Move(board, Down) {
		rows++
	}
	return rows
}

// Ghost returns where the piece would come to rest if dropped now.
func (p *Piece) Ghost(board *Board) Point {
	pos := p.pos
	for {
		next := pos.Add(Down.Delta())
		if !p.Fits(board, next, p.shape) {
			return pos
		}
		pos = next
	}
}

// Rotate turns the piece a quarter and tries each kick offset in turn. The
// first offset that fits is committed together with the new shape.
func (p *Piece) Rotate(board *Board, rot Rotation) bool {
	rotated := p.shape.Rotate(rot)
	for _, kick := range kicks {
		pos := p.pos.Add(kick)
		if p.Fits(board, pos, rotated) {
			p.shape = rotated
			p.pos = pos
			return true
		}
	}
	return false
}

// Cells returns the board coordinates of the filled cells.
func (p Piece) Cells() []Point {
	cells := p.shape.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(p.pos)
	}
	return cells
}

// AboveBoard reports whether any filled cell is still above row 0.
func (p Piece) AboveBoard() bool {
	for _, cell := range p.Cells() {
		if cell.Y < 0 {
			return true
		}
	}
	return false
}

// Lock writes the piece into the board. Every filled cell must be on the
// board; the caller checks AboveBoard first.
func (p *Piece) Lock(board *Board) {
	for _, cell := range p.Cells() {
		board.Set(cell.Y, cell.X, p.kind)
	}
}

// Reset restores the spawn orientation and centres the piece horizontally,
// with its lowest filled row on row 0 and the rest waiting above the board.
func (p *Piece) Reset(board *Board) {
	p.shape = p.spawn
	p.pos = Point{
		X: (board.Width() - p.shape.Size()) / 2,
		Y: -p.shape.Bottom(),
	}
}
