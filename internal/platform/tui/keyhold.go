package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/chomp/internal/core"
)

// HoldTracker turns terminal key reports into press and release events.
//
// Terminals only report key presses, repeated while a key is held down.
// A direction key counts as held from its first report until it goes
// unreported for longer than the hold window, or until another direction
// is pressed. Other keys are momentary: pressed and released in one frame.
type HoldTracker struct {
	window   int64 // ms
	lastSeen map[core.Key]int64
	pending  []core.KeyEvent
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window:   window.Milliseconds(),
		lastSeen: make(map[core.Key]int64),
	}
}

func isDirection(k core.Key) bool {
	switch k {
	case core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight:
		return true
	}
	return false
}

// Report records a key report received at now (ms).
func (h *HoldTracker) Report(k core.Key, now int64) {
	if k == core.KeyNone {
		return
	}
	if !isDirection(k) {
		h.pending = append(h.pending, core.Press(k), core.Release(k))
		return
	}

	if _, held := h.lastSeen[k]; held {
		h.lastSeen[k] = now
		return
	}

	// A terminal repeats only the last key, so a new direction ends the others.
	for _, other := range h.heldSorted() {
		delete(h.lastSeen, other)
		h.pending = append(h.pending, core.Release(other))
	}
	h.lastSeen[k] = now
	h.pending = append(h.pending, core.Press(k))
}

// Flush returns the events collected since the last flush followed by
// releases for keys that went quiet for longer than the window.
func (h *HoldTracker) Flush(now int64) []core.KeyEvent {
	events := h.pending
	h.pending = nil

	for _, k := range h.heldSorted() {
		if now-h.lastSeen[k] > h.window {
			delete(h.lastSeen, k)
			events = append(events, core.Release(k))
		}
	}
	return events
}

// ReleaseAll releases every held key, for focus loss or teardown.
func (h *HoldTracker) ReleaseAll() []core.KeyEvent {
	events := h.pending
	h.pending = nil
	for _, k := range h.heldSorted() {
		delete(h.lastSeen, k)
		events = append(events, core.Release(k))
	}
	return events
}

// Held reports whether the tracker considers k held.
func (h *HoldTracker) Held(k core.Key) bool {
	_, ok := h.lastSeen[k]
	return ok
}

// Window returns the hold window.
func (h *HoldTracker) Window() time.Duration {
	return time.Duration(h.window) * time.Millisecond
}

func (h *HoldTracker) heldSorted() []core.Key {
	keys := make([]core.Key, 0, len(h.lastSeen))
	for k := range h.lastSeen {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
