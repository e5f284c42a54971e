package tui

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/chomp/internal/core"
)

func TestHoldTrackerPressOnce(t *testing.T) {
	h := NewHoldTracker(300 * time.Millisecond)

	h.Report(core.KeyRight, 0)
	h.Report(core.KeyRight, 30)
	h.Report(core.KeyRight, 60)

	got := h.Flush(60)
	expected := []core.KeyEvent{core.Press(core.KeyRight)}
	if !slices.Equal(got, expected) {
		t.Errorf("Flush() = %v, expected %v", got, expected)
	}
	if !h.Held(core.KeyRight) {
		t.Error("Right should be held")
	}
}

func TestHoldTrackerReleasesAfterWindow(t *testing.T) {
	h := NewHoldTracker(300 * time.Millisecond)

	h.Report(core.KeyUp, 100)
	h.Flush(100)

	if got := h.Flush(400); len(got) != 0 {
		t.Errorf("Flush() at the window edge = %v, expected nothing", got)
	}

	got := h.Flush(401)
	expected := []core.KeyEvent{core.Release(core.KeyUp)}
	if !slices.Equal(got, expected) {
		t.Errorf("Flush() past the window = %v, expected %v", got, expected)
	}
	if h.Held(core.KeyUp) {
		t.Error("Up should no longer be held")
	}
}

func TestHoldTrackerRepeatExtendsHold(t *testing.T) {
	h := NewHoldTracker(300 * time.Millisecond)

	h.Report(core.KeyLeft, 0)
	h.Flush(0)
	h.Report(core.KeyLeft, 250)

	if got := h.Flush(500); len(got) != 0 {
		t.Errorf("Flush() = %v, expected the repeat to keep Left held", got)
	}
}

func TestHoldTrackerNewDirectionReleasesOthers(t *testing.T) {
	h := NewHoldTracker(300 * time.Millisecond)

	h.Report(core.KeyRight, 0)
	h.Flush(0)
	h.Report(core.KeyUp, 50)

	got := h.Flush(50)
	expected := []core.KeyEvent{core.Release(core.KeyRight), core.Press(core.KeyUp)}
	if !slices.Equal(got, expected) {
		t.Errorf("Flush() = %v, expected %v", got, expected)
	}
}

func TestHoldTrackerMomentaryKeys(t *testing.T) {
	h := NewHoldTracker(300 * time.Millisecond)

	h.Report(core.KeyRight, 0)
	h.Report(core.KeyPause, 10)
	h.Report(core.KeyNone, 20)

	got := h.Flush(20)
	expected := []core.KeyEvent{
		core.Press(core.KeyRight),
		core.Press(core.KeyPause),
		core.Release(core.KeyPause),
	}
	if !slices.Equal(got, expected) {
		t.Errorf("Flush() = %v, expected %v", got, expected)
	}
	if h.Held(core.KeyPause) {
		t.Error("Pause should not be held")
	}
}

func TestHoldTrackerFeedsInputState(t *testing.T) {
	h := NewHoldTracker(300 * time.Millisecond)
	in := core.NewInputState()

	h.Report(core.KeyDown, 0)
	in.Refresh(h.Flush(0))
	if !in.IsKeyDown(core.KeyDown) || !in.IsKeyHeld(core.KeyDown) {
		t.Error("Down should be pressed and held on the first frame")
	}

	h.Report(core.KeyDown, 30)
	in.Refresh(h.Flush(30))
	if in.IsKeyDown(core.KeyDown) || !in.IsKeyHeld(core.KeyDown) {
		t.Error("a repeat should keep Down held without a new press")
	}

	in.Refresh(h.Flush(1000))
	if !in.IsKeyUp(core.KeyDown) || in.IsKeyHeld(core.KeyDown) {
		t.Error("Down should be released once the repeats stop")
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := NewHoldTracker(time.Second)

	h.Report(core.KeyLeft, 0)
	got := h.ReleaseAll()
	expected := []core.KeyEvent{core.Press(core.KeyLeft), core.Release(core.KeyLeft)}
	if !slices.Equal(got, expected) {
		t.Errorf("ReleaseAll() = %v, expected %v", got, expected)
	}
	if h.Window() != time.Second {
		t.Errorf("Window() = %v, expected 1s", h.Window())
	}
}
