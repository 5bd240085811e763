package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

type SessionPanel struct{}

func (sp *SessionPanel) Render(session *tetris.Session, snap tetris.Snapshot) {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Tick: %d", snap.Tick))
	imgui.Text(fmt.Sprintf("Seed: %d", session.Seed()))
	imgui.Separator()

	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Level: %d", snap.Level))
	imgui.Text(fmt.Sprintf("Lines: %d (%d this level, %d to go)",
		snap.Lines, snap.LevelLines, session.Config().LinesToLevelUp(snap.Level)-snap.LevelLines))
	imgui.Separator()

	imgui.Text(fmt.Sprintf("Active: %s at (%d, %d)", snap.Active.Kind, snap.Active.Position.X, snap.Active.Position.Y))
	imgui.Text(fmt.Sprintf("Ghost: (%d, %d)", snap.Active.Ghost.X, snap.Active.Ghost.Y))
	imgui.Text(fmt.Sprintf("Hold: %s", snap.Hold))
	imgui.SameLine()
	if snap.CanHold {
		imgui.Text("(swap ready)")
	} else {
		imgui.Text("(swap used)")
	}

	if imgui.TreeNodeStr("Queue") {
		for i, kind := range snap.Queue {
			imgui.BulletText(fmt.Sprintf("%d: %s", i+1, kind))
		}
		imgui.TreePop()
	}
	imgui.Separator()

	lockDelay, paused, gameOver := snap.LockDelay, snap.Paused, snap.GameOver
	imgui.Checkbox("Lock delay", &lockDelay)
	imgui.SameLine()
	imgui.Checkbox("Paused", &paused)
	imgui.SameLine()
	imgui.Checkbox("Game over", &gameOver)

	if imgui.Button("Reset Session") {
		session.Reset()
	}

	imgui.End()
}
