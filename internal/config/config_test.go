package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML failed to parse: %v", err)
	}

	want := Default()
	if cfg != want {
		t.Errorf("embedded default = %+v, hardcoded default = %+v", cfg, want)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tc.wantLevel {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.wantLevel)
			}
		})
	}

	cfg := Default()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 50},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 20},
	})

	if lvl := d.Level(0, 0); lvl != 0.0 {
		t.Errorf("Level at score 0 = %f, expected 0", lvl)
	}
	if lvl := d.Level(25, 0); lvl != 0.5 {
		t.Errorf("Level at score 25 = %f, expected 0.5", lvl)
	}
	if lvl := d.Level(50, 0); lvl != 1.0 {
		t.Errorf("Level at score 50 = %f, expected 1.0", lvl)
	}
	// Progress clamps at max
	if lvl := d.Level(500, 0); lvl != 1.0 {
		t.Errorf("Level past max = %f, expected 1.0", lvl)
	}
}

func TestDifficultySpeedAndInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 50},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 20},
	})

	if spd := d.Speed(0.8, 0, 0); spd != 0.8 {
		t.Errorf("Speed at level 0 = %f, expected base 0.8", spd)
	}
	if spd := d.Speed(0.8, 50, 0); spd != 1.6 {
		t.Errorf("Speed at max level = %f, expected 1.6", spd)
	}

	if iv := d.Interval(55, 0, 0); iv != 55 {
		t.Errorf("Interval at level 0 = %d, expected 55", iv)
	}
	if iv := d.Interval(55, 50, 0); iv != 35 {
		t.Errorf("Interval at max level = %d, expected 35", iv)
	}
	// Never below the playable floor
	if iv := d.Interval(25, 50, 0); iv != 20 {
		t.Errorf("Interval floor = %d, expected 20", iv)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 50},
	})

	if lvl := d.Level(1000, 1000); lvl != 0.5 {
		t.Errorf("disabled manager should hold initial level, got %f", lvl)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled should be false")
	}
}
