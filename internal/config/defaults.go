package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultYAML []byte

// Default returns the default game configuration.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:     0.25,
			FlapImpulse: -1.8,
			BaseSpeed:   0.8,
		},
		Obstacles: Obstacles{
			Width:           5,
			GapHeight:       10,
			SpawnInterval:   55,
			TopMargin:       3,
			BottomMargin:    3,
			GroundThickness: 2,
		},
		Actor: Actor{
			X:      10,
			Radius: 1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 20,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
