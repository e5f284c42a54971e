package config

import (
	"math"
	"time"
)

// DifficultyManager calculates dynamic game parameters based on elapsed frames.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) after ticks frames.
func (d *DifficultyManager) Level(ticks int64) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "time" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(ticks)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the scaled movement speed.
func (d *DifficultyManager) Speed(baseSpeed float64, ticks int64) float64 {
	level := d.Level(ticks)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// FrameDelay returns the scaled animation delay, never below 10ms.
func (d *DifficultyManager) FrameDelay(base time.Duration, ticks int64) time.Duration {
	level := d.Level(ticks)
	speedup := clampF(level*d.cfg.Scaling.AnimationSpeedup, 0.0, 1.0)
	result := time.Duration(float64(base) * (1.0 - speedup))
	if result < 10*time.Millisecond { // Minimum visible delay
		result = 10 * time.Millisecond
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
