package core

import "time"

// TimeSource reports monotonic time in milliseconds.
type TimeSource interface {
	Millis() int64
}

// SystemTime is a monotonic TimeSource counting from its creation.
type SystemTime struct {
	start time.Time
}

// NewSystemTime starts a new monotonic millisecond counter.
func NewSystemTime() *SystemTime {
	return &SystemTime{start: time.Now()}
}

// Millis returns milliseconds elapsed since the source was created.
func (s *SystemTime) Millis() int64 {
	return time.Since(s.start).Milliseconds()
}

// ManualTime is a TimeSource advanced by hand. Used by tests and replays.
type ManualTime struct {
	Now int64
}

// Millis returns the current manual time.
func (m *ManualTime) Millis() int64 {
	return m.Now
}

// Advance moves the manual time forward by ms milliseconds.
func (m *ManualTime) Advance(ms int64) {
	m.Now += ms
}

// Clock produces per-frame timestamps, the elapsed delta and a fixed-step
// accumulator. All times are milliseconds.
type Clock struct {
	source TimeSource

	StartTime         int64
	PreviousFrameTime int64
	StartFrameTime    int64
	ElapsedTime       int64

	DeltaTime        float64
	FixedAccumulator float64
	FixedStep        float64

	Ticks      int64
	FixedTicks int64
	FPS        int64
}

// NewClock creates a clock reading from src with the given fixed step.
func NewClock(src TimeSource, fixedStep time.Duration) *Clock {
	now := src.Millis()
	return &Clock{
		source:            src,
		StartTime:         now,
		PreviousFrameTime: now,
		FixedStep:         float64(fixedStep.Milliseconds()),
	}
}

// Tick advances the clock by one frame.
func (c *Clock) Tick() {
	c.PreviousFrameTime = c.StartFrameTime
	c.StartFrameTime = c.source.Millis()

	c.ElapsedTime = c.StartFrameTime - c.PreviousFrameTime
	c.DeltaTime = float64(c.ElapsedTime)
	c.FixedAccumulator += c.DeltaTime
	c.Ticks++

	if c.ElapsedTime != 0 {
		c.FPS = 1000 / c.ElapsedTime
	}
}

// DrainFixed consumes whole fixed steps from the accumulator, calling step
// (which may be nil) once per step. Returns the number of steps consumed.
func (c *Clock) DrainFixed(step func()) int {
	if c.FixedStep <= 0 {
		return 0
	}
	n := 0
	for c.FixedAccumulator >= c.FixedStep {
		c.FixedTicks++
		c.FixedAccumulator -= c.FixedStep
		if step != nil {
			step()
		}
		n++
	}
	return n
}

// Now returns the timestamp of the current frame.
func (c *Clock) Now() int64 {
	return c.StartFrameTime
}

// Uptime returns milliseconds between clock creation and the current frame.
func (c *Clock) Uptime() int64 {
	return c.StartFrameTime - c.StartTime
}

// AverageFPS returns ticks per second over the clock's lifetime.
func (c *Clock) AverageFPS() float64 {
	up := c.Uptime()
	if up <= 0 {
		return 0
	}
	return float64(c.Ticks) * 1000 / float64(up)
}
