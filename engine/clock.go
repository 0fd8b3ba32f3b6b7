package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/museum/parameter"
)

// TimeSource abstracts wall time so tick deltas are testable
type TimeSource interface {
	Now() time.Time
}

type wallTime struct{}

func (wallTime) Now() time.Time { return time.Now() }

// NewTimeProvider returns the system clock
func NewTimeProvider() TimeSource { return wallTime{} }

// MockTimeProvider is a TimeSource that only moves when told to
type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (p *MockTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Advance moves the mock forward by d
func (p *MockTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	p.now = p.now.Add(d)
	p.mu.Unlock()
}

// Clock converts wall time into per-tick deltas
// Deltas are capped so a stalled host does not teleport the camera through a wall in one step
type Clock struct {
	source   TimeSource
	last     time.Time
	started  bool
	maxDelta time.Duration
}

// NewClock creates a clock over source; nil uses real time
func NewClock(source TimeSource) *Clock {
	if source == nil {
		source = NewTimeProvider()
	}
	return &Clock{source: source, maxDelta: parameter.MaxFrameDelta}
}

// Delta returns the time since the previous call, zero on the first call
func (c *Clock) Delta() time.Duration {
	now := c.source.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Reset forgets the previous reading, used after the host was suspended
func (c *Clock) Reset() {
	c.started = false
}

// Step reads the clock and ticks m once
func (c *Clock) Step(m *Museum) time.Duration {
	dt := c.Delta()
	m.Tick(dt)
	return dt
}
