package fpsmeter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock advances by a fixed step on every Tick.
func fakeClock(m *Meter, step time.Duration) func() {
	current := time.Unix(0, 0)
	m.now = func() time.Time { return current }
	m.last = current
	return func() { current = current.Add(step) }
}

func TestMeterBeforeFirstTick(t *testing.T) {
	m := New()

	assert.Zero(t, m.AverageFPS())
	assert.Zero(t, m.InstantFPS())
}

func TestMeterSteadyRate(t *testing.T) {
	m := New()
	advance := fakeClock(m, 10*time.Millisecond)

	for i := 0; i < 5; i++ {
		advance()
		m.Tick()
	}

	assert.InDelta(t, 100.0, m.InstantFPS(), 1e-9)
	assert.InDelta(t, 100.0, m.AverageFPS(), 1e-9)
}

func TestMeterWindowTrimsOldSamples(t *testing.T) {
	m := NewWithWindow(3)

	// Three slow frames, then fast frames push them out of the window.
	slow := fakeClock(m, 100*time.Millisecond)
	for i := 0; i < 3; i++ {
		slow()
		m.Tick()
	}
	assert.InDelta(t, 10.0, m.AverageFPS(), 1e-9)

	fast := fakeClock(m, 10*time.Millisecond)
	for i := 0; i < 3; i++ {
		fast()
		m.Tick()
	}

	assert.Len(t, m.samples, 3)
	assert.InDelta(t, 100.0, m.AverageFPS(), 1e-9)
	assert.InDelta(t, 100.0, m.InstantFPS(), 1e-9)
}

func TestMeterMixedRates(t *testing.T) {
	m := New()
	advance := fakeClock(m, 10*time.Millisecond)
	advance()
	m.Tick()

	advance = fakeClock(m, 30*time.Millisecond)
	advance()
	m.Tick()

	// Average over 10ms and 30ms frames is 20ms -> 50 FPS; the instant
	// figure tracks only the latest frame.
	assert.InDelta(t, 50.0, m.AverageFPS(), 1e-9)
	assert.InDelta(t, 1000.0/30.0, m.InstantFPS(), 1e-9)
}

func TestWindowFloor(t *testing.T) {
	m := NewWithWindow(0)
	assert.Equal(t, 1, m.window)
}
