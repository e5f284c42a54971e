package core

import "testing"

func TestInputStateEdges(t *testing.T) {
	s := NewInputState()

	s.Refresh([]KeyEvent{Press(KeyLeft)})
	if !s.IsKeyDown(KeyLeft) {
		t.Error("IsKeyDown(Left) should be true on press frame")
	}
	if !s.IsKeyHeld(KeyLeft) {
		t.Error("IsKeyHeld(Left) should be true on press frame")
	}
	if s.IsKeyUp(KeyLeft) {
		t.Error("IsKeyUp(Left) should be false on press frame")
	}

	s.Refresh(nil)
	if s.IsKeyDown(KeyLeft) {
		t.Error("IsKeyDown(Left) should be false after the press frame")
	}
	if !s.IsKeyHeld(KeyLeft) {
		t.Error("IsKeyHeld(Left) should persist until release")
	}

	s.Refresh([]KeyEvent{Release(KeyLeft)})
	if s.IsKeyHeld(KeyLeft) {
		t.Error("IsKeyHeld(Left) should be false after release")
	}
	if !s.IsKeyUp(KeyLeft) {
		t.Error("IsKeyUp(Left) should be true on release frame")
	}

	s.Refresh(nil)
	if s.IsKeyUp(KeyLeft) {
		t.Error("IsKeyUp(Left) should only last one frame")
	}
}

func TestInputStatePressAndReleaseSameFrame(t *testing.T) {
	s := NewInputState()
	s.Refresh([]KeyEvent{Press(KeyUp), Release(KeyUp)})

	if !s.IsKeyDown(KeyUp) || !s.IsKeyUp(KeyUp) {
		t.Error("a tap should report both down and up on the same frame")
	}
	if s.IsKeyHeld(KeyUp) {
		t.Error("a tap should not leave the key held")
	}
}

func TestInputStateHeldKeys(t *testing.T) {
	s := NewInputState()
	s.Apply([]KeyEvent{Press(KeyRight), Press(KeyUp), Press(KeyDown)})

	keys := s.HeldKeys()
	expected := []Key{KeyUp, KeyDown, KeyRight}
	if len(keys) != len(expected) {
		t.Fatalf("HeldKeys() = %v, expected %v", keys, expected)
	}
	for i := range keys {
		if keys[i] != expected[i] {
			t.Errorf("HeldKeys()[%d] = %v, expected %v", i, keys[i], expected[i])
		}
	}

	s.Reset()
	if len(s.HeldKeys()) != 0 {
		t.Error("Reset should clear held keys")
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{KeyNone, "None"},
		{KeyUp, "Up"},
		{KeyRight, "Right"},
		{KeyEscape, "Escape"},
		{Key(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.key.String(); got != tc.expected {
			t.Errorf("Key(%d).String() = %q, expected %q", int(tc.key), got, tc.expected)
		}
	}
}
