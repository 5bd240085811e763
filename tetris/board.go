package tetris

import "fmt"

// Board is the fixed-size playfield. Cells are stored row-major with row 0 at
// the top. Its dimensions never change after construction.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard creates an empty board of the given size.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width is the number of columns.
func (b *Board) Width() int { return b.width }

// Height is the number of rows.
func (b *Board) Height() int { return b.height }

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// At returns the cell at (row, col). Out of range coordinates panic.
func (b *Board) At(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

// IsEmpty reports whether (row, col) is on the board and holds no block.
func (b *Board) IsEmpty(row, col int) bool {
	return b.InBounds(row, col) && b.cells[row*b.width+col] == Empty
}

// Set writes a cell. Out of range coordinates panic.
func (b *Board) Set(row, col int, cell Cell) {
	b.cells[b.index(row, col)] = cell
}

func (b *Board) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("tetris: cell (%d,%d) outside %dx%d board", row, col, b.width, b.height))
	}
	return row*b.width + col
}

// FindCompleteRows returns, top to bottom, the rows with no empty cell.
func (b *Board) FindCompleteRows() []int {
	var rows []int
	for row := 0; row < b.height; row++ {
		if b.rowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func (b *Board) rowFull(row int) bool {
	for _, cell := range b.cells[row*b.width : (row+1)*b.width] {
		if cell == Empty {
			return false
		}
	}
	return true
}

// ClearRows removes the listed rows and inserts the same number of empty rows
// at the top. Remaining rows keep their relative order. It returns the number
// of rows removed.
func (b *Board) ClearRows(rows []int) int {
	if len(rows) == 0 {
		return 0
	}

	remove := make([]bool, b.height)
	cleared := 0
	for _, row := range rows {
		if row < 0 || row >= b.height {
			panic(fmt.Sprintf("tetris: row %d outside board of height %d", row, b.height))
		}
		if !remove[row] {
			remove[row] = true
			cleared++
		}
	}

	// Compact kept rows towards the bottom, walking upwards.
	write := b.height - 1
	for read := b.height - 1; read >= 0; read-- {
		if remove[read] {
			continue
		}
		if write != read {
			copy(b.cells[write*b.width:(write+1)*b.width], b.cells[read*b.width:(read+1)*b.width])
		}
		write--
	}
	clear(b.cells[:(write+1)*b.width])

	return cleared
}

// Reset wipes every cell back to Empty.
func (b *Board) Reset() {
	clear(b.cells)
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, cell := range b.cells {
		if cell != Empty {
			n++
		}
	}
	return n
}

// Rows returns a deep copy of the grid.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.height)
	for row := range rows {
		rows[row] = make([]Cell, b.width)
		copy(rows[row], b.cells[row*b.width:(row+1)*b.width])
	}
	return rows
}
