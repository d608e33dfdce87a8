// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// Config contains all tunables for the game.
type Config struct {
	Physics    Physics          `yaml:"physics"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Actor      Actor            `yaml:"actor"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics defines simulation parameters.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set by a flap (negative = up)
	BaseSpeed   float64 `yaml:"base_speed"`   // World scroll speed in cells per tick
}

// Obstacles defines obstacle field parameters.
type Obstacles struct {
	Width           float64 `yaml:"width"`            // Obstacle width in cells
	GapHeight       float64 `yaml:"gap_height"`       // Height of the passable gap
	SpawnInterval   int     `yaml:"spawn_interval"`   // Ticks between spawns
	TopMargin       float64 `yaml:"top_margin"`       // Gap never starts above this
	BottomMargin    float64 `yaml:"bottom_margin"`    // Gap never ends below worldH minus this
	GroundThickness float64 `yaml:"ground_thickness"` // Rows of ground at the bottom
}

// Actor defines the player parameters.
type Actor struct {
	X      float64 `yaml:"x"`      // Fixed horizontal position
	Radius float64 `yaml:"radius"` // Collision envelope
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
