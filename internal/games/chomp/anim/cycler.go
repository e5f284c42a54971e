// Package anim drives time-based sprite frame selection.
package anim

import "time"

// Clock is the part of core.Clock the cycler reads.
type Clock interface {
	Now() int64
}

// Cycler walks a frame list forwards then backwards (0,1,..,N-1,..,1,0,..)
// advancing at most one step per frame delay.
type Cycler[F any] struct {
	frames     []F
	counter    int
	frameDelay int64 // ms
	lastChange int64 // ms
	looping    bool
}

// New creates a stopped cycler over frames. frames must not be empty.
func New[F any](frames []F, frameDelay time.Duration) *Cycler[F] {
	return &Cycler[F]{
		frames:     frames,
		frameDelay: frameDelay.Milliseconds(),
	}
}

// Update advances the counter when at least one frame delay has passed
// since the last change. The change timestamp moves even while stopped,
// so a restart waits a full delay before the next step.
func (c *Cycler[F]) Update(clock Clock) {
	now := clock.Now()
	if now-c.lastChange < c.frameDelay {
		return
	}
	if c.looping {
		c.counter = (c.counter + 1) % (4 * len(c.frames))
	}
	c.lastChange = now
}

// SetFrameDelay changes the delay between steps.
func (c *Cycler[F]) SetFrameDelay(d time.Duration) {
	c.frameDelay = d.Milliseconds()
}

// FrameDelay returns the delay between steps.
func (c *Cycler[F]) FrameDelay() time.Duration {
	return time.Duration(c.frameDelay) * time.Millisecond
}

// Start resumes cycling.
func (c *Cycler[F]) Start() {
	c.looping = true
}

// Stop freezes the current frame.
func (c *Cycler[F]) Stop() {
	c.looping = false
}

// Reset rewinds to the first frame. Looping is left as is.
func (c *Cycler[F]) Reset() {
	c.counter = 0
	c.lastChange = 0
}

// Looping reports whether the cycler is running.
func (c *Cycler[F]) Looping() bool {
	return c.looping
}

// Counter returns the raw step counter.
func (c *Cycler[F]) Counter() int {
	return c.counter
}

// Len returns the number of frames.
func (c *Cycler[F]) Len() int {
	return len(c.frames)
}

// Index returns the index of the current frame.
func (c *Cycler[F]) Index() int {
	return PingPong(c.counter, len(c.frames)-1)
}

// Frame returns the current frame.
func (c *Cycler[F]) Frame() F {
	return c.frames[c.Index()]
}

// PingPong folds a counter onto [0, last] as a triangle wave with period
// 2*last. A single-frame list (last == 0) always yields 0.
func PingPong(counter, last int) int {
	if last <= 0 {
		return 0
	}
	period := 2 * last
	wrapped := counter % period
	if wrapped < 0 {
		wrapped += period
	}
	if wrapped < last {
		return wrapped
	}
	return period - wrapped
}
