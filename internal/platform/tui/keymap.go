package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chomp/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Key
}

// NewKeyMapper creates a key mapper with arrow and WASD bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		bindings: map[string]core.Key{
			"up":    core.KeyUp,
			"w":     core.KeyUp,
			"down":  core.KeyDown,
			"s":     core.KeyDown,
			"left":  core.KeyLeft,
			"a":     core.KeyLeft,
			"right": core.KeyRight,
			"d":     core.KeyRight,
			"esc":   core.KeyEscape,
			"p":     core.KeyPause,
			"r":     core.KeyRestart,
			"enter": core.KeyConfirm,
		},
	}
}

// MapKey translates a key message to a game key.
// Returns the key (may be KeyNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.KeyNone, true
	}
	return km.bindings[msg.String()], false
}

// Bind adds or replaces a binding.
func (km *KeyMapper) Bind(key string, k core.Key) {
	km.bindings[key] = k
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionRuns
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionRuns
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
