package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultArkanoidConfig()
	if err := yaml.Unmarshal(GetDefaultYAML("arkanoid"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultArkanoidConfig() {
		t.Errorf("embedded defaults drifted from DefaultArkanoidConfig:\n got %+v\nwant %+v", cfg, DefaultArkanoidConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadArkanoidCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arkanoid.yaml")
	data := "paddle:\n  width: 150\ngameplay:\n  lives: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArkanoid(path)
	if err != nil {
		t.Fatalf("LoadArkanoid: %v", err)
	}
	if cfg.Paddle.Width != 150 {
		t.Errorf("paddle.width = %g, expected 150", cfg.Paddle.Width)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("gameplay.lives = %d, expected 5", cfg.Gameplay.Lives)
	}
	// Keys missing from the file keep their defaults
	if cfg.Ball.Radius != 10 {
		t.Errorf("ball.radius = %g, expected default 10", cfg.Ball.Radius)
	}
}

func TestLoadArkanoidErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadArkanoid(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArkanoid(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("malformed YAML should fail to parse, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("field:\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArkanoid(invalid); err == nil || !strings.Contains(err.Error(), "field.width") {
		t.Errorf("zero field width should fail validation, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArkanoidConfig)
		want   string
	}{
		{"negative radius", func(c *ArkanoidConfig) { c.Ball.Radius = -1 }, "ball.radius"},
		{"grid too wide", func(c *ArkanoidConfig) { c.Blocks.Columns = 11 }, "wider than the field"},
		{"rows inverted", func(c *ArkanoidConfig) { c.Blocks.MinRows = 8; c.Blocks.MaxRows = 4 }, "min_rows"},
		{"weights not cumulative", func(c *ArkanoidConfig) { c.Blocks.SpeedUpWeight = 50 }, "cumulative"},
		{"spawn chance over 100", func(c *ArkanoidConfig) { c.Bonus.SpawnChance = 101 }, "spawn_chance"},
		{"no lives", func(c *ArkanoidConfig) { c.Gameplay.Lives = 0 }, "lives"},
		{"paddle wider than field", func(c *ArkanoidConfig) { c.Paddle.Width = 900 }, "exceeds"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultArkanoidConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestApplyArkanoidPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultArkanoidConfig()
			ApplyArkanoidPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
		})
	}

	cfg := DefaultArkanoidConfig()
	ApplyArkanoidPreset(&cfg, "")
	if cfg != DefaultArkanoidConfig() {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestDifficultyLaunchScale(t *testing.T) {
	cfg := DefaultArkanoidConfig()
	d := NewDifficultyManager(cfg.Difficulty)
	if got := d.LaunchScale(500, 0); got != 1 {
		t.Errorf("disabled difficulty should not scale launch speed, got %v", got)
	}

	ApplyArkanoidPreset(&cfg, DifficultyNormal)
	d = NewDifficultyManager(cfg.Difficulty)
	if got := d.LaunchScale(0, 0); math.Abs(got-1.15) > 1e-9 {
		t.Errorf("normal preset at score 0 = %v, expected 1.15", got)
	}
	if got := d.LaunchScale(10_000, 0); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("scale should saturate at 1.5, got %v", got)
	}
	if !d.IsEnabled() {
		t.Error("normal preset should enable progression")
	}
}
