package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

type TimersPanel struct{}

func (tp *TimersPanel) Render(states []tetris.TimerState) {
	if !imgui.BeginV("Timers", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("TimersTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Timer")
		imgui.TableSetupColumn("Remaining")
		imgui.TableSetupColumn("Interval")
		imgui.TableSetupColumn("Fired")
		imgui.TableSetupColumn("Kind")
		imgui.TableHeadersRow()

		for _, st := range states {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(st.ID.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", st.Remaining))
			if st.Interval > 0 {
				barWidth := countdownFraction(st) * 60.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", st.Interval))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%t", st.Fired))

			imgui.TableNextColumn()
			if st.OneShot {
				imgui.Text("one-shot")
			} else {
				imgui.Text("repeat")
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

// countdownFraction is how far through its current wait a counter is, in
// [0,1].
func countdownFraction(st tetris.TimerState) float32 {
	if st.Interval <= 0 {
		return 0
	}
	f := 1 - float32(st.Remaining)/float32(st.Interval)
	return max(0, min(1, f))
}
