package anim

import (
	"testing"
	"time"
)

type fakeClock struct {
	now int64
}

func (f *fakeClock) Now() int64 { return f.now }

func TestPingPong(t *testing.T) {
	expected := []int{0, 1, 2, 1, 0, 1, 2, 1}
	for counter, want := range expected {
		if got := PingPong(counter, 2); got != want {
			t.Errorf("PingPong(%d, 2) = %d, expected %d", counter, got, want)
		}
	}
}

func TestPingPongEdgeCases(t *testing.T) {
	tests := []struct {
		name          string
		counter, last int
		expected      int
	}{
		{"single frame", 7, 0, 0},
		{"two frames", 3, 1, 1},
		{"two frames wrap", 4, 1, 0},
		{"negative counter", -1, 2, 1},
		{"large counter", 1001, 3, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PingPong(tc.counter, tc.last); got != tc.expected {
				t.Errorf("PingPong(%d, %d) = %d, expected %d", tc.counter, tc.last, got, tc.expected)
			}
		})
	}
}

func TestCyclerSequence(t *testing.T) {
	clock := &fakeClock{}
	c := New([]string{"a", "b", "c"}, 100*time.Millisecond)
	c.Start()

	var got []string
	for range 8 {
		got = append(got, c.Frame())
		clock.now += 100
		c.Update(clock)
	}

	expected := []string{"a", "b", "c", "b", "a", "b", "c", "b"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("frame %d = %q, expected %q", i, got[i], expected[i])
		}
	}
}

func TestCyclerWaitsForDelay(t *testing.T) {
	clock := &fakeClock{}
	c := New([]int{0, 1, 2}, 100*time.Millisecond)
	c.Start()

	clock.now = 99
	c.Update(clock)
	if c.Counter() != 0 {
		t.Errorf("Counter() = %d before the delay, expected 0", c.Counter())
	}

	clock.now = 100
	c.Update(clock)
	if c.Counter() != 1 {
		t.Errorf("Counter() = %d at the delay, expected 1", c.Counter())
	}

	// At most one step per update, however late it is.
	clock.now = 1000
	c.Update(clock)
	if c.Counter() != 2 {
		t.Errorf("Counter() = %d after a long gap, expected 2", c.Counter())
	}
}

func TestCyclerCounterWraps(t *testing.T) {
	clock := &fakeClock{}
	c := New([]int{0, 1, 2}, 10*time.Millisecond)
	c.Start()

	for range 12 {
		clock.now += 10
		c.Update(clock)
	}
	if c.Counter() != 0 {
		t.Errorf("Counter() = %d after 4N steps, expected 0", c.Counter())
	}
	if c.Index() != 0 {
		t.Errorf("Index() = %d, expected 0", c.Index())
	}
}

func TestCyclerStoppedStillTracksTime(t *testing.T) {
	clock := &fakeClock{}
	c := New([]int{0, 1, 2}, 100*time.Millisecond)

	clock.now = 150
	c.Update(clock)
	if c.Counter() != 0 {
		t.Errorf("stopped cycler advanced to %d", c.Counter())
	}

	// lastChange moved to 150, so 200 is too early after starting.
	c.Start()
	clock.now = 200
	c.Update(clock)
	if c.Counter() != 0 {
		t.Errorf("Counter() = %d, expected 0 before a full delay since 150", c.Counter())
	}

	clock.now = 250
	c.Update(clock)
	if c.Counter() != 1 {
		t.Errorf("Counter() = %d, expected 1", c.Counter())
	}

	c.Stop()
	if c.Looping() {
		t.Error("Looping() should be false after Stop")
	}
	clock.now = 400
	c.Update(clock)
	if c.Index() != 1 {
		t.Errorf("Index() = %d, expected frozen at 1", c.Index())
	}
}

func TestCyclerReset(t *testing.T) {
	clock := &fakeClock{now: 500}
	c := New([]int{0, 1, 2}, 100*time.Millisecond)
	c.Start()
	c.Update(clock)
	c.Update(&fakeClock{now: 600})

	c.Reset()
	if c.Counter() != 0 || c.Index() != 0 {
		t.Errorf("after Reset Counter/Index = %d/%d, expected 0/0", c.Counter(), c.Index())
	}
	if !c.Looping() {
		t.Error("Reset should not stop the cycler")
	}

	// lastChange is zero again, so any time past the delay advances.
	c.Update(&fakeClock{now: 100})
	if c.Counter() != 1 {
		t.Errorf("Counter() = %d after Reset, expected 1", c.Counter())
	}
}

func TestCyclerSingleFrame(t *testing.T) {
	clock := &fakeClock{}
	c := New([]rune{'o'}, 10*time.Millisecond)
	c.Start()

	for range 5 {
		clock.now += 10
		c.Update(clock)
		if c.Frame() != 'o' {
			t.Fatalf("Frame() = %q, expected 'o'", c.Frame())
		}
	}
}

func TestCyclerSetFrameDelay(t *testing.T) {
	clock := &fakeClock{}
	c := New([]int{0, 1}, 100*time.Millisecond)
	c.Start()
	c.SetFrameDelay(20 * time.Millisecond)

	if c.FrameDelay() != 20*time.Millisecond {
		t.Errorf("FrameDelay() = %v, expected 20ms", c.FrameDelay())
	}
	clock.now = 20
	c.Update(clock)
	if c.Counter() != 1 {
		t.Errorf("Counter() = %d, expected 1 with the shorter delay", c.Counter())
	}
}
