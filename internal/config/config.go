// Package config provides YAML-based game configuration loading and
// difficulty management for chomp.
package config

import "time"

// ChompConfig contains all configuration for the maze game.
type ChompConfig struct {
	Grid       GridConfig       `yaml:"grid" json:"grid"`
	Movement   MovementConfig   `yaml:"movement" json:"movement"`
	Animation  AnimationConfig  `yaml:"animation" json:"animation"`
	Timing     TimingConfig     `yaml:"timing" json:"timing"`
	Input      InputConfig      `yaml:"input" json:"input"`
	Level      LevelConfig      `yaml:"level" json:"level"`
	Sprites    SpritesConfig    `yaml:"sprites" json:"sprites"`
	Difficulty DifficultyConfig `yaml:"difficulty" json:"difficulty"`
}

// GridConfig defines the tile grid.
type GridConfig struct {
	CellSize int `yaml:"cell_size" json:"cell_size" jsonschema:"description=World size of one tile; must be a power of two"`
}

// MovementConfig defines player movement.
type MovementConfig struct {
	Speed           float64 `yaml:"speed" json:"speed" jsonschema:"description=World units per millisecond"`
	HalfSize        float64 `yaml:"half_size" json:"half_size" jsonschema:"description=Half extent of the player's collision box"`
	SnapGranularity float64 `yaml:"snap_granularity" json:"snap_granularity" jsonschema:"description=Alignment applied when the player turns"`
}

// AnimationConfig defines sprite animation.
type AnimationConfig struct {
	FrameDelayMs int `yaml:"frame_delay_ms" json:"frame_delay_ms"`
}

// TimingConfig defines the frame loop.
type TimingConfig struct {
	FixedStepMs     int `yaml:"fixed_step_ms" json:"fixed_step_ms"`
	HUDRefreshTicks int `yaml:"hud_refresh_ticks" json:"hud_refresh_ticks" jsonschema:"description=Frames between HUD text updates"`
}

// InputConfig defines terminal key handling.
type InputConfig struct {
	HoldWindowMs int `yaml:"hold_window_ms" json:"hold_window_ms" jsonschema:"description=A key not repeated within this window counts as released"`
}

// LevelConfig defines where levels come from.
type LevelConfig struct {
	Dir     string `yaml:"dir" json:"dir,omitempty" jsonschema:"description=Extra directory scanned for level files"`
	Default string `yaml:"default" json:"default"`
}

// SpritesConfig defines the sprite sheet.
type SpritesConfig struct {
	Path string `yaml:"path" json:"path,omitempty" jsonschema:"description=Sprite sheet YAML; empty uses the built-in sheet"`
}

// FrameDelay returns the animation frame delay.
func (c ChompConfig) FrameDelay() time.Duration {
	return time.Duration(c.Animation.FrameDelayMs) * time.Millisecond
}

// FixedStep returns the fixed update interval.
func (c ChompConfig) FixedStep() time.Duration {
	return time.Duration(c.Timing.FixedStepMs) * time.Millisecond
}

// HoldWindow returns the synthetic key release window.
func (c ChompConfig) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldWindowMs) * time.Millisecond
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" json:"enabled"`
	InitialLevel float64           `yaml:"initial_level" json:"initial_level" jsonschema:"minimum=0,maximum=1"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" json:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" json:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" json:"type" jsonschema:"enum=time,enum=none"`
	MaxAt int    `yaml:"max_at" json:"max_at"` // Ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier" json:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	AnimationSpeedup float64 `yaml:"animation_speedup" json:"animation_speedup"` // Fraction of the frame delay removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name is normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
