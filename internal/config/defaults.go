package config

import (
	_ "embed"
)

//go:embed defaults/chomp.yaml
var defaultChompYAML []byte

// DefaultChompConfig returns the default chomp configuration.
func DefaultChompConfig() ChompConfig {
	return ChompConfig{
		Grid: GridConfig{
			CellSize: 16,
		},
		Movement: MovementConfig{
			Speed:           0.08,
			HalfSize:        8,
			SnapGranularity: 8,
		},
		Animation: AnimationConfig{
			FrameDelayMs: 100,
		},
		Timing: TimingConfig{
			FixedStepMs:     1000,
			HUDRefreshTicks: 100,
		},
		Input: InputConfig{
			HoldWindowMs: 300,
		},
		Level: LevelConfig{
			Default: "classic",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 3600,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				AnimationSpeedup: 0.4,
			},
		},
	}
}
