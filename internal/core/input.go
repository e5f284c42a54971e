package core

import "sort"

// Key is a physical key the platform can report. Keys are plain comparable
// values and can be used directly as map keys.
type Key int

const (
	KeyNone    Key = iota
	KeyUp          // Up arrow, W
	KeyDown        // Down arrow, S
	KeyLeft        // Left arrow, A
	KeyRight       // Right arrow, D
	KeyEscape      // Esc - close the game
	KeyPause       // P - pause/unpause
	KeyRestart     // R - respawn the player
	KeyConfirm     // Enter
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEscape:
		return "Escape"
	case KeyPause:
		return "Pause"
	case KeyRestart:
		return "Restart"
	case KeyConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}

// KeyEvent is a raw key transition reported by the platform.
type KeyEvent struct {
	Key     Key
	Pressed bool // false means released
}

// Press is shorthand for a key-pressed event.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k, Pressed: true}
}

// Release is shorthand for a key-released event.
func Release(k Key) KeyEvent {
	return KeyEvent{Key: k, Pressed: false}
}

// InputState is the per-frame view of the keyboard.
//
// Pressed and released sets are edge-triggered and only describe the current
// frame. The held set is level-triggered and survives across frames until
// the key is released.
type InputState struct {
	held     map[Key]bool
	pressed  map[Key]bool
	released map[Key]bool
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{
		held:     make(map[Key]bool),
		pressed:  make(map[Key]bool),
		released: make(map[Key]bool),
	}
}

// Clear drops the transient pressed/released sets for the next frame.
// Held keys are kept.
func (s *InputState) Clear() {
	clear(s.pressed)
	clear(s.released)
}

// Reset forgets every key, including held ones.
func (s *InputState) Reset() {
	clear(s.held)
	s.Clear()
}

// KeyPressed records a key transition to pressed.
func (s *InputState) KeyPressed(k Key) {
	s.pressed[k] = true
	s.held[k] = true
}

// KeyReleased records a key transition to released.
func (s *InputState) KeyReleased(k Key) {
	s.released[k] = true
	delete(s.held, k)
}

// Apply feeds raw events into the state in order.
func (s *InputState) Apply(events []KeyEvent) {
	for _, ev := range events {
		if ev.Pressed {
			s.KeyPressed(ev.Key)
		} else {
			s.KeyReleased(ev.Key)
		}
	}
}

// Refresh clears the transient sets and rebuilds them from this frame's events.
func (s *InputState) Refresh(events []KeyEvent) {
	s.Clear()
	s.Apply(events)
}

// IsKeyDown is true only on the frame the key went down.
func (s *InputState) IsKeyDown(k Key) bool {
	return s.pressed[k]
}

// IsKeyHeld is true on every frame the key is physically down.
func (s *InputState) IsKeyHeld(k Key) bool {
	return s.held[k]
}

// IsKeyUp is true only on the frame the key was released.
func (s *InputState) IsKeyUp(k Key) bool {
	return s.released[k]
}

// HeldKeys returns the held keys in ascending order.
func (s *InputState) HeldKeys() []Key {
	keys := make([]Key, 0, len(s.held))
	for k := range s.held {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
