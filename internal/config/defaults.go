package config

import (
	_ "embed"
)

//go:embed defaults/gauntlet.yaml
var defaultGauntletYAML []byte

// DefaultGauntletConfig returns the reference configuration: a 16-obstacle
// field, ten lives, and the tuning the game was balanced around.
func DefaultGauntletConfig() GauntletConfig {
	return GauntletConfig{
		Physics: GauntletPhysics{
			Drag:             0.8,
			InputScale:       1.0,
			MaxVelocity:      0.5,
			BounceVelocity:   0.75,
			GoalPullVelocity: 0.9,
		},
		World: GauntletWorld{
			ObstacleCount:   16,
			ObstacleSpacing: 0.1,
			LayoutAttempts:  10000,
		},
		Enemy: GauntletEnemy{
			Enabled: true,
			Speed:   0.15,
		},
		Lives: GauntletLives{
			Max: 10,
		},
	}
}
