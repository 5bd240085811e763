package tetris

import "github.com/kamstrup/intmap"

// Counter fires every interval ticks, with a distinct delay before the first
// repeat. It drives gravity, soft drop, auto-repeat movement and lock delay.
//
// A fresh counter fires after initial ticks. After its first firing it waits
// first ticks, then interval ticks between every later firing. A one-shot
// counter fires once and then stays quiet until Reset.
type Counter struct {
	initial  int
	first    int
	interval int
	once     bool

	remaining int
	firstCall bool
	fired     bool
}

// NewCounter creates a repeating counter.
func NewCounter(initial, first, interval int) *Counter {
	c := &Counter{
		initial:  initial,
		first:    first,
		interval: interval,
	}
	c.Reset()
	return c
}

// NewOneShot creates a counter that fires once, delay ticks after a reset.
func NewOneShot(delay int) *Counter {
	c := NewCounter(delay, delay, delay)
	c.once = true
	return c
}

// Tick advances the counter by one tick and reports whether it fired.
func (c *Counter) Tick() bool {
	if c.once && c.fired {
		return false
	}
	c.remaining--
	if c.remaining > 0 {
		return false
	}
	if c.firstCall {
		c.remaining = c.first
	} else {
		c.remaining = c.interval
	}
	c.firstCall = false
	c.fired = true
	return true
}

// Reset restores the counter to its freshly created state.
func (c *Counter) Reset() {
	c.remaining = c.initial
	c.firstCall = true
	c.fired = false
}

// RunOrReset ticks while cond holds and resets as soon as it does not. This is
// the auto-repeat policy for held inputs.
func (c *Counter) RunOrReset(cond bool) bool {
	if !cond {
		c.Reset()
		return false
	}
	return c.Tick()
}

// SetInterval retunes every delay of the counter to n ticks. The current
// countdown is shortened if it already exceeds n.
func (c *Counter) SetInterval(n int) {
	c.initial, c.first, c.interval = n, n, n
	if c.remaining > n {
		c.remaining = n
	}
}

func (c *Counter) Remaining() int { return c.remaining }
func (c *Counter) Interval() int  { return c.interval }
func (c *Counter) Fired() bool    { return c.fired }
func (c *Counter) OneShot() bool  { return c.once }

//go:generate go tool stringer -type=TimerID -trimprefix=Timer

// TimerID names one of the counters a session owns.
type TimerID int

const (
	TimerGravity TimerID = iota
	TimerSoftDrop
	TimerMoveLeft
	TimerMoveRight
	TimerRotateLeft
	TimerRotateRight
	TimerHardDrop
	TimerHold
	TimerLockDelay
	TimerPause
	TimerReset
)

// Timers is the named set of counters owned by a session.
type Timers struct {
	byID  *intmap.Map[TimerID, *Counter]
	order []TimerID
}

// NewTimers creates an empty timer set.
func NewTimers() *Timers {
	return &Timers{
		byID: intmap.New[TimerID, *Counter](16),
	}
}

// Add registers a counter under id, replacing any previous one.
func (t *Timers) Add(id TimerID, c *Counter) {
	if _, ok := t.byID.Get(id); !ok {
		t.order = append(t.order, id)
	}
	t.byID.Put(id, c)
}

// Get returns the counter registered under id. Unknown ids panic.
func (t *Timers) Get(id TimerID) *Counter {
	c, ok := t.byID.Get(id)
	if !ok {
		panic("tetris: no timer " + id.String())
	}
	return c
}

// Each calls fn for every counter in registration order.
func (t *Timers) Each(fn func(TimerID, *Counter)) {
	for _, id := range t.order {
		c, _ := t.byID.Get(id)
		fn(id, c)
	}
}

// Reset resets the listed counters.
func (t *Timers) Reset(ids ...TimerID) {
	for _, id := range ids {
		t.Get(id).Reset()
	}
}

// TimerState is a read-only view of one counter.
type TimerState struct {
	ID        TimerID
	Remaining int
	Interval  int
	Fired     bool
	OneShot   bool
}

// States returns the state of every counter in registration order.
func (t *Timers) States() []TimerState {
	states := make([]TimerState, 0, len(t.order))
	t.Each(func(id TimerID, c *Counter) {
		states = append(states, TimerState{
			ID:        id,
			Remaining: c.Remaining(),
			Interval:  c.Interval(),
			Fired:     c.Fired(),
			OneShot:   c.OneShot(),
		})
	})
	return states
}
