package tetris

import "github.com/kamstrup/intmap"

//go:generate go tool stringer -type=EventKind -trimprefix=Event

// EventKind identifies something that happened during a tick that audio or
// effects layers may want to react to.
type EventKind int

const (
	EventPieceLocked EventKind = iota
	EventLinesCleared
	EventLevelUp
	EventHoldSwapped
	EventGameOver
	EventSessionReset
	EventPauseToggled
)

const eventKindCount = int(EventPauseToggled) + 1

// Event carries the details of one occurrence. Only the fields relevant to
// the kind are set.
type Event struct {
	Kind  EventKind
	Tick  uint64
	Piece Cell // PieceLocked, HoldSwapped
	Lines int  // LinesCleared
	Level int  // LevelUp
	Score int
	// Paused is the new pause state for PauseToggled.
	Paused bool
}

// Handler receives published events.
type Handler func(Event)

// Bus fans events out to subscribers.
type Bus struct {
	handlers *intmap.Map[EventKind, []Handler]
}

func NewBus() *Bus {
	return &Bus{
		handlers: intmap.New[EventKind, []Handler](eventKindCount),
	}
}

// Subscribe registers h for events of the given kind.
func (b *Bus) Subscribe(kind EventKind, h Handler) {
	handlers, _ := b.handlers.Get(kind)
	b.handlers.Put(kind, append(handlers, h))
}

// SubscribeAll registers h for every kind of event.
func (b *Bus) SubscribeAll(h Handler) {
	for kind := EventKind(0); kind < EventKind(eventKindCount); kind++ {
		b.Subscribe(kind, h)
	}
}

// Publish delivers e to its subscribers in subscription order.
func (b *Bus) Publish(e Event) {
	handlers, _ := b.handlers.Get(e.Kind)
	for _, h := range handlers {
		h(e)
	}
}

// Events buffers the events raised while a tick runs. They are delivered
// after the last stage so subscribers only ever see end-of-tick state.
type Events struct {
	tick    uint64
	pending []Event
}

func newEvents(tick uint64) *Events {
	return &Events{tick: tick}
}

// Emit queues an event, stamping it with the current tick.
func (e *Events) Emit(ev Event) {
	ev.Tick = e.tick
	e.pending = append(e.pending, ev)
}

// Pending returns the queued events without delivering them.
func (e *Events) Pending() []Event {
	return e.pending
}

// Flush publishes every queued event to bus and empties the buffer.
func (e *Events) Flush(bus *Bus) {
	for _, ev := range e.pending {
		bus.Publish(ev)
	}
	e.pending = e.pending[:0]
}
