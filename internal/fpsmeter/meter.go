// Package fpsmeter measures frame throughput over a sliding window of
// recent frame times.
package fpsmeter

import (
	"time"
)

const defaultWindow = 100

// Meter records the time between consecutive Tick calls and derives average
// and instantaneous frames-per-second figures from the most recent samples.
// Not safe for concurrent use.
type Meter struct {
	samples []float64 // frame times in milliseconds, oldest first
	window  int
	last    time.Time
	now     func() time.Time
}

// New returns a meter averaging over the last 100 frames.
func New() *Meter {
	return NewWithWindow(defaultWindow)
}

// NewWithWindow returns a meter averaging over the last window frames.
func NewWithWindow(window int) *Meter {
	if window < 1 {
		window = 1
	}
	m := &Meter{window: window, now: time.Now}
	m.last = m.now()
	return m
}

// Tick records the completion of one frame.
func (m *Meter) Tick() {
	t := m.now()
	frameMillis := float64(t.Sub(m.last)) / float64(time.Millisecond)
	m.last = t

	m.samples = append(m.samples, frameMillis)
	if len(m.samples) > m.window {
		m.samples = m.samples[1:]
	}
}

// AverageFPS returns the frame rate averaged over the window, or 0 before
// the first Tick.
func (m *Meter) AverageFPS() float64 {
	if len(m.samples) == 0 {
		return 0
	}
	var total float64
	for _, s := range m.samples {
		total += s
	}
	avg := total / float64(len(m.samples))
	if avg == 0 {
		return 0
	}
	return 1000.0 / avg
}

// InstantFPS returns the frame rate implied by the most recent frame time,
// or 0 before the first Tick.
func (m *Meter) InstantFPS() float64 {
	if len(m.samples) == 0 {
		return 0
	}
	latest := m.samples[len(m.samples)-1]
	if latest == 0 {
		return 0
	}
	return 1000.0 / latest
}
