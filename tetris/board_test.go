package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow fills every column of row except those listed in gaps.
func fillRow(b *tetris.Board, row int, kind tetris.Cell, gaps ...int) {
	skip := make(map[int]bool, len(gaps))
	for _, col := range gaps {
		skip[col] = true
	}
	for col := 0; col < b.Width(); col++ {
		if !skip[col] {
			b.Set(row, col, kind)
		}
	}
}

func TestBoardIsEmpty(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	assert.True(t, b.IsEmpty(0, 0))
	assert.True(t, b.IsEmpty(19, 9))

	b.Set(19, 9, tetris.T)
	assert.False(t, b.IsEmpty(19, 9))
	assert.Equal(t, tetris.T, b.At(19, 9))

	// Out of bounds is never empty.
	assert.False(t, b.IsEmpty(-1, 0))
	assert.False(t, b.IsEmpty(20, 0))
	assert.False(t, b.IsEmpty(0, -1))
	assert.False(t, b.IsEmpty(0, 10))
}

func TestBoardSetOutOfBoundsPanics(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	assert.Panics(t, func() { b.Set(-1, 0, tetris.I) })
	assert.Panics(t, func() { b.Set(0, 10, tetris.I) })
	assert.Panics(t, func() { b.At(20, 0) })
	assert.Panics(t, func() { tetris.NewBoard(0, 20) })
}

func TestBoardFindCompleteRows(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	assert.Empty(t, b.FindCompleteRows())

	fillRow(b, 19, tetris.I)
	fillRow(b, 18, tetris.J, 3)
	fillRow(b, 10, tetris.O)

	assert.Equal(t, []int{10, 19}, b.FindCompleteRows())
}

func TestBoardClearRows(t *testing.T) {
	b := tetris.NewBoard(10, 8)

	// Rows 2 and 5 complete, every other row partially filled with a
	// marker kind per row so order can be checked afterwards.
	markers := []tetris.Cell{tetris.Z, tetris.L, tetris.Empty, tetris.S, tetris.J, tetris.Empty, tetris.T, tetris.O}
	for row, kind := range markers {
		if kind == tetris.Empty {
			fillRow(b, row, tetris.I)
			continue
		}
		fillRow(b, row, kind, row)
	}

	rows := b.FindCompleteRows()
	require.Equal(t, []int{2, 5}, rows)
	assert.Equal(t, 2, b.ClearRows(rows))
	assert.Empty(t, b.FindCompleteRows())

	grid := b.Rows()
	for col := 0; col < 10; col++ {
		assert.Equal(t, tetris.Empty, grid[0][col])
		assert.Equal(t, tetris.Empty, grid[1][col])
	}

	// Remaining rows keep their order, shifted down by the rows removed
	// beneath them.
	assert.Equal(t, tetris.Z, grid[2][1])
	assert.Equal(t, tetris.L, grid[3][0])
	assert.Equal(t, tetris.S, grid[4][0])
	assert.Equal(t, tetris.J, grid[5][0])
	assert.Equal(t, tetris.T, grid[6][0])
	assert.Equal(t, tetris.O, grid[7][0])

	// Gaps moved with their rows.
	assert.Equal(t, tetris.Empty, grid[2][0])
	assert.Equal(t, tetris.Empty, grid[3][1])
	assert.Equal(t, tetris.Empty, grid[7][7])
}

func TestBoardClearRowsDuplicatesAndEmpty(t *testing.T) {
	b := tetris.NewBoard(4, 4)
	fillRow(b, 3, tetris.I)

	assert.Equal(t, 0, b.ClearRows(nil))
	assert.Equal(t, 4, b.Filled())
	assert.Equal(t, 1, b.ClearRows([]int{3, 3}))
	assert.Equal(t, 0, b.Filled())
	assert.Panics(t, func() { b.ClearRows([]int{4}) })
}

func TestBoardRowsIsACopy(t *testing.T) {
	b := tetris.NewBoard(4, 4)
	grid := b.Rows()
	grid[0][0] = tetris.T
	assert.True(t, b.IsEmpty(0, 0))

	b.Set(1, 1, tetris.S)
	b.Reset()
	assert.Equal(t, 0, b.Filled())
}
