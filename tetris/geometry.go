package tetris

//go:generate go tool stringer -type=Direction

// Point is a board coordinate. X is the column and Y is the row, with row 0 at
// the top of the board. Pieces may sit at negative rows while they spawn.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction is a unit translation a piece can attempt.
type Direction int

const (
	Down Direction = iota
	Left
	Right
)

// Delta returns the unit vector for the direction.
func (d Direction) Delta() Point {
	switch d {
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	panic("tetris: unknown direction " + d.String())
}

// Rotation is a quarter turn in either direction.
type Rotation int

const (
	Clockwise        Rotation = 1
	CounterClockwise Rotation = -1
)

// Opposite returns the rotation that undoes r.
func (r Rotation) Opposite() Rotation {
	return -r
}
