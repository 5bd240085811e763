package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/tetris"
	debugui_ebiten "github.com/plus3/blockfall/tetris/debugui/ebiten"
)

// Game implements ebiten.Game. Ebiten calls Update at the session tick rate,
// so every Update is exactly one tick.
type Game struct {
	session  *tetris.Session
	overlay  *debugui_ebiten.Overlay
	renderer *renderer
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.Toggle()
	}

	var intents tetris.Intents
	if !g.overlay.CapturesKeyboard() {
		intents = readIntents(ebiten.IsKeyPressed)
	}
	g.session.Tick(intents)
	if g.session.Exited() {
		return ebiten.Termination
	}

	g.overlay.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session.Snapshot())
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// renderer draws a snapshot: the well with ghost and active piece, then the
// hold slot, the queue and the score panel to its right.
type renderer struct {
	cfg      tetris.Config
	cellSize float32
	originX  float32
	originY  float32
}

func newRenderer(cfg tetris.Config, cellSize int) *renderer {
	return &renderer{
		cfg:      cfg,
		cellSize: float32(cellSize),
		originX:  float32(cellSize),
		originY:  float32(cellSize),
	}
}

func (r *renderer) Draw(screen *ebiten.Image, snap tetris.Snapshot) {
	screen.Fill(palette.Background)

	wellW := float32(snap.Width) * r.cellSize
	wellH := float32(snap.Height) * r.cellSize
	vector.DrawFilledRect(screen, r.originX-2, r.originY-2, wellW+4, wellH+4, palette.Grid, false)

	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			cell := snap.Cell(row, col)
			clr := palette.Of(cell)
			if cell == tetris.Empty && snap.IsGhost(row, col) {
				clr = palette.Ghost(snap.Active.Kind)
			}
			r.cell(screen, r.originX, r.originY, row, col, clr)
		}
	}

	panelX := r.originX + wellW + r.cellSize
	y := r.originY

	ebitenutil.DebugPrintAt(screen, "HOLD", int(panelX), int(y))
	y += 16
	if snap.Hold != tetris.Empty {
		clr := palette.Of(snap.Hold)
		if !snap.CanHold {
			clr = palette.Ghost(snap.Hold)
		}
		r.preview(screen, panelX, y, snap.Hold, clr)
	}
	y += 4 * r.cellSize * 0.6

	ebitenutil.DebugPrintAt(screen, "NEXT", int(panelX), int(y))
	y += 16
	for _, kind := range snap.Queue[:min(5, len(snap.Queue))] {
		r.preview(screen, panelX, y, kind, palette.Of(kind))
		y += 3 * r.cellSize * 0.6
	}

	y += r.cellSize
	stats := fmt.Sprintf("SCORE %d\nLEVEL %d\nLINES %d", snap.Score, snap.Level, snap.Lines)
	ebitenutil.DebugPrintAt(screen, stats, int(panelX), int(y))

	switch {
	case snap.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nR to restart", int(r.originX+wellW/2-36), int(r.originY+wellH/2))
	case snap.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", int(r.originX+wellW/2-18), int(r.originY+wellH/2))
	}
}

func (r *renderer) cell(screen *ebiten.Image, x, y float32, row, col int, clr color.Color) {
	vector.DrawFilledRect(screen,
		x+float32(col)*r.cellSize+1, y+float32(row)*r.cellSize+1,
		r.cellSize-2, r.cellSize-2, clr, false)
}

// preview draws a spawn-orientation shape at 60% scale.
func (r *renderer) preview(screen *ebiten.Image, x, y float32, kind tetris.Cell, clr color.Color) {
	size := r.cellSize * 0.6
	shape := r.cfg.ShapeOf(kind)
	for _, p := range shape.Cells() {
		vector.DrawFilledRect(screen, x+float32(p.X)*size+1, y+float32(p.Y)*size+1, size-2, size-2, clr, false)
	}
}
