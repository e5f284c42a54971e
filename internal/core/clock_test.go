package core

import (
	"testing"
	"time"
)

func TestClockTick(t *testing.T) {
	src := &ManualTime{Now: 0}
	c := NewClock(src, time.Second)

	src.Advance(16)
	c.Tick()

	if c.PreviousFrameTime != 0 {
		t.Errorf("PreviousFrameTime = %d, expected 0", c.PreviousFrameTime)
	}
	if c.StartFrameTime != 16 {
		t.Errorf("StartFrameTime = %d, expected 16", c.StartFrameTime)
	}
	if c.ElapsedTime != 16 || c.DeltaTime != 16 {
		t.Errorf("ElapsedTime/DeltaTime = %d/%v, expected 16/16", c.ElapsedTime, c.DeltaTime)
	}
	if c.Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", c.Ticks)
	}
	if c.Now() != 16 {
		t.Errorf("Now() = %d, expected 16", c.Now())
	}

	src.Advance(20)
	c.Tick()
	if c.PreviousFrameTime != 16 || c.ElapsedTime != 20 {
		t.Errorf("second frame previous/elapsed = %d/%d, expected 16/20", c.PreviousFrameTime, c.ElapsedTime)
	}
	if c.FixedAccumulator != 36 {
		t.Errorf("FixedAccumulator = %v, expected 36", c.FixedAccumulator)
	}
}

func TestClockFPS(t *testing.T) {
	src := &ManualTime{}
	c := NewClock(src, time.Second)

	src.Advance(16)
	c.Tick()
	if c.FPS != 62 {
		t.Fatalf("FPS = %d, expected 62", c.FPS)
	}

	// Zero elapsed time keeps the previous value
	c.Tick()
	if c.ElapsedTime != 0 {
		t.Fatalf("ElapsedTime = %d, expected 0", c.ElapsedTime)
	}
	if c.FPS != 62 {
		t.Errorf("FPS = %d after zero-length frame, expected 62", c.FPS)
	}

	src.Advance(33)
	c.Tick()
	if c.FPS != 30 {
		t.Errorf("FPS = %d, expected 30", c.FPS)
	}
}

func TestClockDrainFixed(t *testing.T) {
	src := &ManualTime{}
	c := NewClock(src, time.Second)

	calls := 0
	src.Advance(2500)
	c.Tick()

	n := c.DrainFixed(func() { calls++ })
	if n != 2 || calls != 2 {
		t.Errorf("DrainFixed() = %d (calls %d), expected 2", n, calls)
	}
	if c.FixedTicks != 2 {
		t.Errorf("FixedTicks = %d, expected 2", c.FixedTicks)
	}
	if c.FixedAccumulator != 500 {
		t.Errorf("FixedAccumulator = %v, expected 500", c.FixedAccumulator)
	}

	// Nil hook still consumes steps
	src.Advance(600)
	c.Tick()
	if n := c.DrainFixed(nil); n != 1 {
		t.Errorf("DrainFixed(nil) = %d, expected 1", n)
	}
	if c.FixedAccumulator != 100 {
		t.Errorf("FixedAccumulator = %v, expected 100", c.FixedAccumulator)
	}
}

func TestClockZeroFixedStep(t *testing.T) {
	src := &ManualTime{}
	c := NewClock(src, 0)
	src.Advance(100)
	c.Tick()

	if n := c.DrainFixed(nil); n != 0 {
		t.Errorf("DrainFixed() with zero step = %d, expected 0", n)
	}
}

func TestClockAverageFPS(t *testing.T) {
	src := &ManualTime{Now: 1000}
	c := NewClock(src, time.Second)

	for range 10 {
		src.Advance(100)
		c.Tick()
	}

	if got := c.AverageFPS(); got != 10 {
		t.Errorf("AverageFPS() = %v, expected 10", got)
	}
}

func TestFrameContextBegin(t *testing.T) {
	src := &ManualTime{}
	f := NewFrameContext(src, time.Second)

	src.Advance(10)
	f.Begin([]KeyEvent{Press(KeyUp)})
	if f.Clock.Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", f.Clock.Ticks)
	}
	if !f.Input.IsKeyDown(KeyUp) || !f.Input.IsKeyHeld(KeyUp) {
		t.Error("KeyUp should be down and held on the first frame")
	}

	src.Advance(10)
	f.Begin(nil)
	if f.Input.IsKeyDown(KeyUp) {
		t.Error("KeyUp should not be down on the second frame")
	}
	if !f.Input.IsKeyHeld(KeyUp) {
		t.Error("KeyUp should still be held on the second frame")
	}

	f.Close()
	if f.Input.IsKeyHeld(KeyUp) {
		t.Error("Close should forget held keys")
	}
}
