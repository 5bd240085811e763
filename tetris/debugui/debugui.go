// Package debugui provides Dear ImGui inspector windows for a running
// tetris session: live state, board, timers, stage timings, config and an
// event log.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// Item is an extra window rendered alongside the inspector panels.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Front-ends should ignore game keys while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Inspector owns every debug panel for one session. Render must be called
// between the backend's BeginFrame and EndFrame, on the goroutine that ticks
// the session.
type Inspector struct {
	session *tetris.Session

	Session     SessionPanel
	Board       BoardView
	Timers      TimersPanel
	Performance PerformanceStats
	Config      ConfigView
	Events      *EventLog

	items []Item
	input InputState
	timer *FrameTimer
}

// NewInspector creates the panels and subscribes the event log to session.
func NewInspector(session *tetris.Session) *Inspector {
	events := NewEventLog(256, 50)
	session.SubscribeAll(events.Record)

	return &Inspector{
		session:     session,
		Board:       NewBoardView(18),
		Performance: NewPerformanceStats(120),
		Events:      events,
		timer:       NewFrameTimer(),
	}
}

// Add registers an extra window.
func (in *Inspector) Add(item Item) {
	in.items = append(in.items, item)
}

// Input returns the capture state seen by the last Render.
func (in *Inspector) Input() InputState {
	return in.input
}

// Render draws every panel for the current frame.
func (in *Inspector) Render() {
	in.input.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	in.input.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	snap := in.session.Snapshot()
	in.Session.Render(in.session, snap)
	in.Board.Render(snap)
	in.Timers.Render(in.session.Timers())
	in.Performance.Render(in.session.Stats(), in.timer.GetDeltaTime())
	in.Config.Render(in.session.Config())
	in.Events.Render()

	for _, item := range in.items {
		item.Render()
	}
}
