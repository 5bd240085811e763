// Package palette holds the block colours shared by the front-ends.
package palette

import (
	"image/color"

	"github.com/plus3/blockfall/tetris"
)

var (
	Background = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	Grid       = color.RGBA{R: 40, G: 40, B: 52, A: 255}
	Text       = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

var kinds = [...]color.RGBA{
	tetris.Empty: {R: 28, G: 28, B: 36, A: 255},
	tetris.Z:     {R: 230, G: 57, B: 70, A: 255},
	tetris.L:     {R: 244, G: 162, B: 97, A: 255},
	tetris.O:     {R: 250, G: 219, B: 95, A: 255},
	tetris.S:     {R: 106, G: 190, B: 48, A: 255},
	tetris.I:     {R: 72, G: 202, B: 228, A: 255},
	tetris.J:     {R: 58, G: 110, B: 220, A: 255},
	tetris.T:     {R: 168, G: 80, B: 200, A: 255},
}

// Of returns the colour of a cell.
func Of(c tetris.Cell) color.RGBA {
	if int(c) >= len(kinds) {
		return kinds[tetris.Empty]
	}
	return kinds[c]
}

// Ghost returns the dimmed colour used for the landing preview of kind.
func Ghost(c tetris.Cell) color.RGBA {
	base := Of(c)
	return color.RGBA{R: base.R / 3, G: base.G / 3, B: base.B / 3, A: 255}
}

// Float returns the colour as normalised RGBA components.
func Float(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
