package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

// firings ticks c n times and returns the 1-based ticks it fired on.
func firings(c *tetris.Counter, n int, cond bool) []int {
	var fired []int
	for i := 1; i <= n; i++ {
		if c.RunOrReset(cond) {
			fired = append(fired, i)
		}
	}
	return fired
}

func TestCounterRepeat(t *testing.T) {
	c := tetris.NewCounter(1, 10, 2)
	assert.Equal(t, []int{1, 11, 13, 15, 17, 19}, firings(c, 20, true))
}

func TestCounterGravity(t *testing.T) {
	c := tetris.NewCounter(3, 3, 3)
	assert.Equal(t, []int{3, 6, 9}, firings(c, 10, true))
}

func TestCounterRunOrResetReleases(t *testing.T) {
	c := tetris.NewCounter(1, 10, 2)
	assert.True(t, c.RunOrReset(true))
	assert.False(t, c.RunOrReset(true))

	assert.False(t, c.RunOrReset(false))
	assert.Equal(t, 1, c.Remaining())
	assert.True(t, c.RunOrReset(true), "a fresh press fires at once")
}

func TestCounterOneShot(t *testing.T) {
	c := tetris.NewOneShot(3)
	assert.True(t, c.OneShot())
	assert.Equal(t, []int{3}, firings(c, 20, true))
	assert.True(t, c.Fired())

	c.Reset()
	assert.False(t, c.Fired())
	assert.Equal(t, []int{3}, firings(c, 10, true))
}

func TestCounterSetInterval(t *testing.T) {
	c := tetris.NewCounter(48, 48, 48)
	for range 10 {
		c.Tick()
	}
	assert.Equal(t, 38, c.Remaining())

	c.SetInterval(20)
	assert.Equal(t, 20, c.Remaining())
	assert.Equal(t, 20, c.Interval())

	c.SetInterval(30)
	assert.Equal(t, 20, c.Remaining(), "a longer interval does not extend the countdown")

	c.Reset()
	assert.Equal(t, 30, c.Remaining())
}

func TestTimers(t *testing.T) {
	timers := tetris.NewTimers()
	timers.Add(tetris.TimerGravity, tetris.NewCounter(5, 5, 5))
	timers.Add(tetris.TimerLockDelay, tetris.NewOneShot(2))

	assert.Panics(t, func() { timers.Get(tetris.TimerHold) })

	timers.Get(tetris.TimerGravity).Tick()
	timers.Get(tetris.TimerLockDelay).Tick()
	timers.Get(tetris.TimerLockDelay).Tick()

	states := timers.States()
	assert.Equal(t, []tetris.TimerState{
		{ID: tetris.TimerGravity, Remaining: 4, Interval: 5},
		{ID: tetris.TimerLockDelay, Remaining: 2, Interval: 2, Fired: true, OneShot: true},
	}, states)

	timers.Reset(tetris.TimerGravity, tetris.TimerLockDelay)
	for _, st := range timers.States() {
		assert.False(t, st.Fired)
		assert.Equal(t, st.Interval, st.Remaining)
	}

	assert.Equal(t, "LockDelay", tetris.TimerLockDelay.String())
}
