package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "chomp.yaml"

// LoadChomp loads the game configuration. Fields missing from the file keep
// their default values.
// Search order: customPath -> ~/.chomp/configs/chomp.yaml -> ./configs/chomp.yaml -> embedded default
func LoadChomp(customPath string) (ChompConfig, error) {
	cfg, err := loadChomp(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadChomp(customPath string) (ChompConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultChompConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if cfg, ok := readConfig(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := readConfig(filepath.Join("configs", ConfigFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultChompConfig()
	if err := yaml.Unmarshal(defaultChompYAML, &cfg); err != nil {
		return DefaultChompConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readConfig reads an optional config file. Missing or malformed files are
// skipped so the next source in the search order is tried.
func readConfig(path string) (ChompConfig, bool) {
	cfg := DefaultChompConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chomp", "configs", filename)
}

// ApplyChompPreset modifies the config based on a difficulty preset.
func ApplyChompPreset(cfg *ChompConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Movement.Speed *= 0.75
	case DifficultyHard:
		cfg.Movement.Speed *= 1.25
	}
}

// Validate rejects values the game cannot run with.
func (c ChompConfig) Validate() error {
	var errs []error

	if !isPowerOfTwo(c.Grid.CellSize) {
		errs = append(errs, fmt.Errorf("grid.cell_size %d is not a power of two", c.Grid.CellSize))
	}
	if c.Movement.Speed <= 0 {
		errs = append(errs, errors.New("movement.speed must be positive"))
	}
	if c.Movement.HalfSize <= 0 {
		errs = append(errs, errors.New("movement.half_size must be positive"))
	}
	if c.Movement.SnapGranularity <= 0 {
		errs = append(errs, errors.New("movement.snap_granularity must be positive"))
	}
	if c.Animation.FrameDelayMs <= 0 {
		errs = append(errs, errors.New("animation.frame_delay_ms must be positive"))
	}
	if c.Timing.FixedStepMs <= 0 {
		errs = append(errs, errors.New("timing.fixed_step_ms must be positive"))
	}
	if c.Timing.HUDRefreshTicks <= 0 {
		errs = append(errs, errors.New("timing.hud_refresh_ticks must be positive"))
	}
	if c.Input.HoldWindowMs < 0 {
		errs = append(errs, errors.New("input.hold_window_ms must not be negative"))
	}
	switch c.Difficulty.Progression.Type {
	case "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not time or none", c.Difficulty.Progression.Type))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
