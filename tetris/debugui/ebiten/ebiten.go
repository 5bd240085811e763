// Package ebiten hosts the tetris debug inspector on the Ebiten Dear ImGui
// backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/tetris/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. imgui.ini persistence
// is disabled.
func NewImguiBackend(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: backend}
}

// Overlay draws an inspector on top of an Ebiten game and can be toggled at
// runtime. Call Update from Game.Update after ticking the session, Draw last
// in Game.Draw and Layout from Game.Layout.
type Overlay struct {
	backend   ImguiBackend
	inspector *debugui.Inspector
	visible   bool
}

func NewOverlay(backend ImguiBackend, inspector *debugui.Inspector) *Overlay {
	return &Overlay{
		backend:   backend,
		inspector: inspector,
	}
}

func (o *Overlay) Visible() bool { return o.visible }

// Toggle shows or hides the inspector.
func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

// CapturesKeyboard reports whether ImGui wants the keyboard, in which case
// the game should not read its own keys.
func (o *Overlay) CapturesKeyboard() bool {
	return o.visible && o.inspector.Input().WantCaptureKeyboard
}

func (o *Overlay) Update() {
	if !o.visible {
		return
	}
	o.backend.BeginFrame()
	o.inspector.Render()
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}
