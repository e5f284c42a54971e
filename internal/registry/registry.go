// Package registry maps mode IDs to game constructors. Modes add themselves
// from init, so the CLI and the SSH server only import them for effect.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/chomp/internal/core"
)

// Game is the core interface that every playable mode implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform owns the frame context, key mapping and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g., "chomp", "chomp_diagonal").
	// Used for CLI commands and the run log.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset loads assets and places the player at the level's spawn.
	// Called once before the first frame and again on restart. A non-nil
	// error means the game cannot start.
	Reset(cfg core.RuntimeConfig) error

	// Step runs one frame. The platform has already called f.Begin, so the
	// clock and input state describe the current frame.
	Step(f *core.FrameContext) core.StepResult

	// Render draws the current frame into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	build Factory
	title string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a mode. Registering the same ID twice panics.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{build: f, title: title}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new instance of mode id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.build(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
