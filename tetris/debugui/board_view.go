package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/tetris"
)

// BoardView draws the playfield with the active piece and its ghost.
type BoardView struct {
	cellSize  float32
	showGhost bool
	showCoord bool
}

func NewBoardView(cellSize float32) BoardView {
	return BoardView{
		cellSize:  cellSize,
		showGhost: true,
	}
}

func (bv *BoardView) Render(snap tetris.Snapshot) {
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Ghost", &bv.showGhost)
	imgui.SameLine()
	imgui.Checkbox("Coordinates", &bv.showCoord)
	imgui.Text(fmt.Sprintf("%dx%d, %d filled", snap.Width, snap.Height, countFilled(snap)))

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	size := bv.cellSize

	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			c := palette.Of(snap.Cell(row, col))
			if bv.showGhost && snap.IsGhost(row, col) {
				c = palette.Ghost(snap.Active.Kind)
			}
			r, g, b, a := palette.Float(c)

			topLeft := imgui.NewVec2(origin.X+float32(col)*size, origin.Y+float32(row)*size)
			bottomRight := imgui.NewVec2(topLeft.X+size-1, topLeft.Y+size-1)
			drawList.AddRectFilled(topLeft, bottomRight, imgui.ColorU32Vec4(imgui.NewVec4(r, g, b, a)))
		}
	}
	imgui.Dummy(imgui.NewVec2(float32(snap.Width)*size, float32(snap.Height)*size))

	if bv.showCoord {
		for _, p := range snap.Active.Cells {
			imgui.BulletText(fmt.Sprintf("(%d, %d)", p.X, p.Y))
		}
	}

	imgui.End()
}

func countFilled(snap tetris.Snapshot) int {
	n := 0
	for _, row := range snap.Board {
		for _, cell := range row {
			if cell != tetris.Empty {
				n++
			}
		}
	}
	return n
}
