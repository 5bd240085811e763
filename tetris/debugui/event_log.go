package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// EventLog keeps the most recent session events for browsing.
type EventLog struct {
	capacity      int
	perPage       int
	events        []tetris.Event
	next          int
	total         int
	filterText    string
	sortAscending bool
	currentPage   int
}

func NewEventLog(capacity, perPage int) *EventLog {
	return &EventLog{
		capacity: capacity,
		perPage:  perPage,
		events:   make([]tetris.Event, 0, capacity),
	}
}

// Record stores an event, dropping the oldest once the log is full. It has
// the tetris.Handler signature so it can be subscribed directly.
func (el *EventLog) Record(e tetris.Event) {
	el.total++
	if len(el.events) < el.capacity {
		el.events = append(el.events, e)
		return
	}
	el.events[el.next] = e
	el.next = (el.next + 1) % el.capacity
}

// Total returns how many events were recorded, including dropped ones.
func (el *EventLog) Total() int {
	return el.total
}

// Entries returns the retained events matching the filter, newest first
// unless ascending order was chosen.
func (el *EventLog) Entries() []tetris.Event {
	entries := make([]tetris.Event, 0, len(el.events))
	filterLower := strings.ToLower(el.filterText)
	for i := range el.events {
		e := el.events[(el.next+i)%len(el.events)]
		if filterLower != "" && !strings.Contains(strings.ToLower(describe(e)), filterLower) {
			continue
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if el.sortAscending {
			return entries[i].Tick < entries[j].Tick
		}
		return entries[i].Tick > entries[j].Tick
	})
	return entries
}

// SetFilter limits Entries to events whose description contains text.
func (el *EventLog) SetFilter(text string) {
	el.filterText = text
	el.currentPage = 0
}

func (el *EventLog) Render() {
	if !imgui.BeginV("Event Log", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##filter", "Filter...", &el.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		el.SetFilter("")
	}
	imgui.SameLine()
	imgui.Checkbox("Oldest first", &el.sortAscending)

	entries := el.Entries()
	totalPages := max(1, (len(entries)+el.perPage-1)/el.perPage)
	el.currentPage = min(el.currentPage, totalPages-1)
	start := el.currentPage * el.perPage
	end := min(start+el.perPage, len(entries))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EventTable", 3, tableFlags, imgui.NewVec2(0, 300), 0) {
		imgui.TableSetupColumn("Tick")
		imgui.TableSetupColumn("Event")
		imgui.TableSetupColumn("Details")
		imgui.TableHeadersRow()

		for _, e := range entries[start:end] {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", e.Tick))
			imgui.TableNextColumn()
			imgui.Text(e.Kind.String())
			imgui.TableNextColumn()
			imgui.Text(details(e))
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Page %d / %d (%d shown, %d recorded)", el.currentPage+1, totalPages, len(entries), el.total))
	imgui.SameLine()
	if imgui.Button("Prev") && el.currentPage > 0 {
		el.currentPage--
	}
	imgui.SameLine()
	if imgui.Button("Next") && el.currentPage < totalPages-1 {
		el.currentPage++
	}

	imgui.End()
}

func describe(e tetris.Event) string {
	return e.Kind.String() + " " + details(e)
}

func details(e tetris.Event) string {
	switch e.Kind {
	case tetris.EventPieceLocked, tetris.EventHoldSwapped:
		return e.Piece.String()
	case tetris.EventLinesCleared:
		return fmt.Sprintf("%d lines, score %d", e.Lines, e.Score)
	case tetris.EventLevelUp:
		return fmt.Sprintf("level %d", e.Level)
	case tetris.EventGameOver:
		return fmt.Sprintf("score %d, level %d, lines %d", e.Score, e.Level, e.Lines)
	case tetris.EventSessionReset:
		return fmt.Sprintf("start level %d", e.Level)
	case tetris.EventPauseToggled:
		if e.Paused {
			return "paused"
		}
		return "resumed"
	}
	return ""
}
