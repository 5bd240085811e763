package tetris

import (
	"errors"
	"fmt"
)

// MaxShapeSize is the largest bounding box a shape may use.
const MaxShapeSize = 4

// ErrInvalidShape is wrapped by every ParseShape error.
var ErrInvalidShape = errors.New("tetris: invalid shape")

// Shape is one orientation of a tetromino: an NxN matrix of cells. Shapes are
// values, so rotating returns a new Shape and the canonical tables are never
// mutated.
type Shape struct {
	size  int
	cells [MaxShapeSize][MaxShapeSize]Cell
}

// ParseShape builds a shape from rows of text, where '#' marks a cell filled
// with kind and '.' marks an empty cell. The rows must form a square.
func ParseShape(kind Cell, rows ...string) (Shape, error) {
	var s Shape
	if !kind.IsPiece() {
		return s, fmt.Errorf("%w: kind %s is not a piece", ErrInvalidShape, kind)
	}
	n := len(rows)
	if n < 2 || n > MaxShapeSize {
		return s, fmt.Errorf("%w: size %d out of range", ErrInvalidShape, n)
	}

	s.size = n
	filled := 0
	for r, row := range rows {
		if len(row) != n {
			return Shape{}, fmt.Errorf("%w: row %d has width %d, want %d", ErrInvalidShape, r, len(row), n)
		}
		for c, ch := range row {
			switch ch {
			case '#':
				s.cells[r][c] = kind
				filled++
			case '.':
			default:
				return Shape{}, fmt.Errorf("%w: unexpected %q at row %d", ErrInvalidShape, ch, r)
			}
		}
	}
	if filled == 0 {
		return Shape{}, fmt.Errorf("%w: no filled cells", ErrInvalidShape)
	}
	return s, nil
}

// MustParseShape is like ParseShape but panics on error.
func MustParseShape(kind Cell, rows ...string) Shape {
	s, err := ParseShape(kind, rows...)
	if err != nil {
		panic(err)
	}
	return s
}

var canonicalShapes = map[Cell]Shape{
	Z: MustParseShape(Z, "##.", ".##", "..."),
	L: MustParseShape(L, "..#", "###", "..."),
	O: MustParseShape(O, "##", "##"),
	S: MustParseShape(S, ".##", "##.", "..."),
	I: MustParseShape(I, "....", "####", "....", "...."),
	J: MustParseShape(J, "#..", "###", "..."),
	T: MustParseShape(T, ".#.", "###", "..."),
}

// ShapeOf returns the spawn orientation of a tetromino kind.
func ShapeOf(kind Cell) Shape {
	s, ok := canonicalShapes[kind]
	if !ok {
		panic("tetris: no shape for " + kind.String())
	}
	return s
}

// Size returns the side length of the bounding box.
func (s Shape) Size() int {
	return s.size
}

// At returns the cell at row r, column c of the bounding box.
func (s Shape) At(r, c int) Cell {
	return s.cells[r][c]
}

// Kind returns the piece kind the shape is filled with.
func (s Shape) Kind() Cell {
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			if s.cells[r][c] != Empty {
				return s.cells[r][c]
			}
		}
	}
	return Empty
}

// Rotate returns the shape turned a quarter in the given direction.
func (s Shape) Rotate(rot Rotation) Shape {
	n := s.size
	rotated := Shape{size: n}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rot == Clockwise {
				rotated.cells[c][n-1-r] = s.cells[r][c]
			} else {
				rotated.cells[n-1-c][r] = s.cells[r][c]
			}
		}
	}
	return rotated
}

// Cells returns the offsets of the filled cells relative to the top-left
// corner of the bounding box, in row-major order.
func (s Shape) Cells() []Point {
	points := make([]Point, 0, 4)
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			if s.cells[r][c] != Empty {
				points = append(points, Point{X: c, Y: r})
			}
		}
	}
	return points
}

// Bottom returns the index of the lowest row holding a filled cell.
func (s Shape) Bottom() int {
	for r := s.size - 1; r >= 0; r-- {
		for c := 0; c < s.size; c++ {
			if s.cells[r][c] != Empty {
				return r
			}
		}
	}
	return -1
}

// Rows returns a copy of the matrix for rendering.
func (s Shape) Rows() [][]Cell {
	rows := make([][]Cell, s.size)
	for r := range rows {
		rows[r] = make([]Cell, s.size)
		copy(rows[r], s.cells[r][:s.size])
	}
	return rows
}
