package tetris

//go:generate go tool stringer -type=Cell

// Cell is the content of a single board square. Every tetromino kind is also a
// Cell, so a locked piece simply writes its kind into the board.
type Cell uint8

const (
	Empty Cell = iota
	Z
	L
	O
	S
	I
	J
	T
)

// Kinds lists the seven tetromino kinds in canonical order.
var Kinds = [...]Cell{Z, L, O, S, I, J, T}

// IsPiece reports whether c holds a tetromino kind.
func (c Cell) IsPiece() bool {
	return c >= Z && c <= T
}
