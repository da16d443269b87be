// Package config provides YAML-based run configuration and difficulty
// presets for the gauntlet.
package config

// GauntletConfig contains all tunable parameters for a run.
type GauntletConfig struct {
	Physics GauntletPhysics `yaml:"physics"`
	World   GauntletWorld   `yaml:"world"`
	Enemy   GauntletEnemy   `yaml:"enemy"`
	Lives   GauntletLives   `yaml:"lives"`
}

// GauntletPhysics defines the velocity integration parameters.
type GauntletPhysics struct {
	Drag             float64 `yaml:"drag"`               // Per-second multiplicative velocity decay
	InputScale       float64 `yaml:"input_scale"`        // Acceleration per unit of held input
	MaxVelocity      float64 `yaml:"max_velocity"`       // Speed cap enforced against input acceleration
	BounceVelocity   float64 `yaml:"bounce_velocity"`    // Fixed speed assigned after an obstacle hit
	GoalPullVelocity float64 `yaml:"goal_pull_velocity"` // Scale of the soft attraction near the goal
}

// GauntletWorld defines the obstacle layout parameters.
// Positions live in the normalized [-1,1]x[-1,1] field.
type GauntletWorld struct {
	ObstacleCount   int     `yaml:"obstacle_count"`
	ObstacleSpacing float64 `yaml:"obstacle_spacing"` // Minimum squared distance between placements
	LayoutAttempts  int     `yaml:"layout_attempts"`  // Rejection-sampling draw budget per obstacle
}

// GauntletEnemy defines the chasing enemy.
type GauntletEnemy struct {
	Enabled bool    `yaml:"enabled"`
	Speed   float64 `yaml:"speed"` // Field units per second toward the player
}

// GauntletLives defines the life counter.
type GauntletLives struct {
	Max int `yaml:"max"`
}

// Preset is a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset returns the preset for a CLI string, or false if unknown.
func ParsePreset(s string) (Preset, bool) {
	switch Preset(s) {
	case PresetEasy, PresetNormal, PresetHard:
		return Preset(s), true
	default:
		return "", false
	}
}

// ApplyPreset adjusts a config for a difficulty preset. Presets scale the
// life budget, obstacle density and enemy speed; normal leaves the config
// as loaded.
func ApplyPreset(cfg *GauntletConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Lives.Max = 15
		cfg.World.ObstacleCount = 12
		cfg.World.ObstacleSpacing = 0.12
		cfg.Enemy.Speed = cfg.Enemy.Speed * 0.5
	case PresetHard:
		cfg.Lives.Max = 5
		cfg.World.ObstacleCount = 20
		cfg.World.ObstacleSpacing = 0.08
		cfg.Enemy.Speed = cfg.Enemy.Speed * 1.5
	}
}
