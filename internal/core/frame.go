package core

import "time"

// FrameContext bundles the per-session timing and input state. The platform
// creates one per session and passes it to the game every frame.
type FrameContext struct {
	Clock *Clock
	Input *InputState
}

// NewFrameContext creates a frame context reading time from src.
func NewFrameContext(src TimeSource, fixedStep time.Duration) *FrameContext {
	return &FrameContext{
		Clock: NewClock(src, fixedStep),
		Input: NewInputState(),
	}
}

// Begin starts a new frame: the clock advances first, then the input state
// is rebuilt from the raw events collected since the previous frame.
func (f *FrameContext) Begin(events []KeyEvent) {
	f.Clock.Tick()
	f.Input.Refresh(events)
}

// Close tears the context down. Held keys are forgotten.
func (f *FrameContext) Close() {
	f.Input.Reset()
}
