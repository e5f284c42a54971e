package config

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultChompConfig()
	if err := yaml.Unmarshal(defaultChompYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultChompConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultChompConfig())
	}
}

func TestLoadChompDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadChomp("")
	if err != nil {
		t.Fatalf("LoadChomp() error = %v", err)
	}
	if cfg.Grid.CellSize != 16 || cfg.Level.Default != "classic" {
		t.Errorf("LoadChomp() = %+v, expected defaults", cfg)
	}
}

func TestLoadChompUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".chomp", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("level:\n  default: arena\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadChomp("")
	if err != nil {
		t.Fatalf("LoadChomp() error = %v", err)
	}
	if cfg.Level.Default != "arena" {
		t.Errorf("Level.Default = %q, expected arena", cfg.Level.Default)
	}
}

func TestLoadChompCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := "movement:\n  speed: 0.2\nanimation:\n  frame_delay_ms: 50\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadChomp(path)
	if err != nil {
		t.Fatalf("LoadChomp() error = %v", err)
	}
	if cfg.Movement.Speed != 0.2 {
		t.Errorf("Movement.Speed = %v, expected 0.2", cfg.Movement.Speed)
	}
	if cfg.FrameDelay() != 50*time.Millisecond {
		t.Errorf("FrameDelay() = %v, expected 50ms", cfg.FrameDelay())
	}
	// Untouched sections keep their defaults
	if cfg.Movement.HalfSize != 8 || cfg.FixedStep() != time.Second {
		t.Errorf("HalfSize/FixedStep = %v/%v, expected defaults", cfg.Movement.HalfSize, cfg.FixedStep())
	}
}

func TestLoadChompErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadChomp(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadChomp() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadChomp(bad); err == nil {
		t.Error("LoadChomp() of malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  cell_size: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadChomp(invalid)
	if err == nil || !strings.Contains(err.Error(), "power of two") {
		t.Errorf("LoadChomp() error = %v, expected power of two", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ChompConfig)
		want   string
	}{
		{"zero cell", func(c *ChompConfig) { c.Grid.CellSize = 0 }, "cell_size"},
		{"speed", func(c *ChompConfig) { c.Movement.Speed = 0 }, "movement.speed"},
		{"half size", func(c *ChompConfig) { c.Movement.HalfSize = -1 }, "half_size"},
		{"snap", func(c *ChompConfig) { c.Movement.SnapGranularity = 0 }, "snap_granularity"},
		{"frame delay", func(c *ChompConfig) { c.Animation.FrameDelayMs = 0 }, "frame_delay_ms"},
		{"fixed step", func(c *ChompConfig) { c.Timing.FixedStepMs = -5 }, "fixed_step_ms"},
		{"hud", func(c *ChompConfig) { c.Timing.HUDRefreshTicks = 0 }, "hud_refresh_ticks"},
		{"hold", func(c *ChompConfig) { c.Input.HoldWindowMs = -1 }, "hold_window_ms"},
		{"progression", func(c *ChompConfig) { c.Difficulty.Progression.Type = "score" }, "progression.type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultChompConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.want)
			}
		})
	}

	if err := DefaultChompConfig().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestApplyChompPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		initial float64
		speed   float64
	}{
		{DifficultyEasy, true, 0.0, 0.06},
		{DifficultyNormal, true, 0.3, 0.08},
		{DifficultyHard, true, 0.7, 0.1},
		{DifficultyFixed, false, 0.0, 0.08},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultChompConfig()
			ApplyChompPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initial)
			}
			if diff := cfg.Movement.Speed - tc.speed; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Speed = %v, expected %v", cfg.Movement.Speed, tc.speed)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %v, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %v, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultChompConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if d.Level(0) != 0 {
		t.Errorf("Level(0) = %v, expected 0", d.Level(0))
	}
	if d.Level(1800) != 0.5 {
		t.Errorf("Level(1800) = %v, expected 0.5", d.Level(1800))
	}
	if d.Level(999999) != 1 {
		t.Errorf("Level(999999) = %v, expected 1", d.Level(999999))
	}

	if got := d.Speed(0.125, 3600); math.Abs(got-0.1875) > 1e-9 {
		t.Errorf("Speed() at max = %v, expected 0.1875", got)
	}
	if got := d.FrameDelay(100*time.Millisecond, 3600); got != 60*time.Millisecond {
		t.Errorf("FrameDelay() at max = %v, expected 60ms", got)
	}
	if got := d.FrameDelay(5*time.Millisecond, 0); got != 10*time.Millisecond {
		t.Errorf("FrameDelay() floor = %v, expected 10ms", got)
	}

	cfg.Enabled = false
	d = NewDifficultyManager(cfg)
	if d.Level(3600) != 0 {
		t.Errorf("Level() disabled = %v, expected initial 0", d.Level(3600))
	}
	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}

	cfg.InitialLevel = 2
	if got := NewDifficultyManager(cfg).Level(0); got != 1 {
		t.Errorf("Level(0) with initial_level 2 = %v, expected clamped 1", got)
	}
}

func TestSchema(t *testing.T) {
	for _, kind := range SchemaKinds() {
		t.Run(kind, func(t *testing.T) {
			data, err := SchemaJSON(kind)
			if err != nil {
				t.Fatalf("SchemaJSON(%q) error = %v", kind, err)
			}
			var doc map[string]any
			if err := json.Unmarshal(data, &doc); err != nil {
				t.Fatalf("schema is not valid JSON: %v", err)
			}
			if !strings.HasPrefix(doc["title"].(string), "chomp") {
				t.Errorf("title = %v", doc["title"])
			}
		})
	}

	data, err := SchemaJSON("config")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "cell_size") {
		t.Error("config schema should describe cell_size")
	}

	if _, err := Schema("nope"); err == nil {
		t.Error("Schema(nope) should fail")
	}
}
