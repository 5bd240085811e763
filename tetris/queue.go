package tetris

// Queue is the fixed-depth preview of upcoming kinds. It is kept full from a
// Bag, so dequeuing never runs dry.
type Queue struct {
	bag   *Bag
	items []Cell
	depth int
}

// NewQueue creates a queue of the given depth and fills it from bag.
func NewQueue(bag *Bag, depth int) *Queue {
	if depth <= 0 {
		panic("tetris: queue depth must be positive")
	}
	q := &Queue{
		bag:   bag,
		items: make([]Cell, 0, depth),
		depth: depth,
	}
	q.fill()
	return q
}

func (q *Queue) fill() {
	for len(q.items) < q.depth {
		q.items = append(q.items, q.bag.Draw())
	}
}

// Next removes and returns the front kind, then tops the queue up.
func (q *Queue) Next() Cell {
	if len(q.items) == 0 {
		panic("tetris: queue underflow")
	}
	kind := q.items[0]
	copy(q.items, q.items[1:])
	q.items = q.items[:len(q.items)-1]
	q.fill()
	return kind
}

// Peek returns the front kind without removing it.
func (q *Queue) Peek() Cell {
	return q.items[0]
}

// Items returns the upcoming kinds in order.
func (q *Queue) Items() []Cell {
	items := make([]Cell, len(q.items))
	copy(items, q.items)
	return items
}

func (q *Queue) Len() int { return len(q.items) }

// Refill drops the queued kinds and draws a fresh set.
func (q *Queue) Refill() {
	q.items = q.items[:0]
	q.fill()
}

// Hold is the side slot a player can bank a piece in. Only one swap is allowed
// per lock.
type Hold struct {
	kind    Cell
	blocked bool
}

// Kind returns the held kind, or Empty.
func (h *Hold) Kind() Cell { return h.kind }

// CanSwap reports whether a swap is allowed before the next lock.
func (h *Hold) CanSwap() bool { return !h.blocked }

// Exchange stores kind and returns what was held before, which is Empty on
// the first use. Further swaps are refused until Allow is called.
func (h *Hold) Exchange(kind Cell) Cell {
	prev := h.kind
	h.kind = kind
	h.blocked = true
	return prev
}

// Allow re-enables swapping; called whenever a piece locks.
func (h *Hold) Allow() { h.blocked = false }

// Clear empties the slot and re-enables swapping.
func (h *Hold) Clear() {
	h.kind = Empty
	h.blocked = false
}
