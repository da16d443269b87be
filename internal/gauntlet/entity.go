// Package gauntlet implements the Circle Gauntlet simulation: a player
// circle steering through a field of static obstacles toward a goal, losing
// a life per collision, chased by an optional enemy. The package is pure
// game logic; it renders into a core.Screen but knows nothing about
// terminals, audio devices, or timing sources.
package gauntlet

import "github.com/vkazmin/circle-gauntlet/internal/geom"

// Entity radii and sizes in the normalized [-1,1] play field.
const (
	GoalRadius       = 1.0 / 8
	ObstacleRadius   = 1.0 / 12
	PlayerRadius     = 1.0 / 16
	LifeMarkerRadius = 1.0 / 48
	EnemyWidth       = 1.0 / 8
)

// Category tags a simulated entity.
type Category int

const (
	CategoryPlayer Category = iota
	CategoryGoal
	CategoryObstacle
	CategoryEnemy
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryGoal:
		return "goal"
	case CategoryObstacle:
		return "obstacle"
	case CategoryEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is a simulated object: a category tag, a position, and a velocity
// (zero for categories that never move).
type Entity struct {
	Category Category
	Pos      geom.Vec2
	Vel      geom.Vec2
}

// Fixed world geometry.
var (
	playerStart = geom.V(-0.75, 0.75)
	goalStart   = geom.V(0.75, -0.75)
	enemyStart  = geom.V(0.75, 0.75)
)
