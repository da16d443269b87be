package gauntlet

import (
	"math/rand"

	"github.com/vkazmin/circle-gauntlet/internal/geom"
)

// World is the typed entity store for one run: exactly one player, one
// goal, a fixed obstacle set, an optional enemy, and the life counter.
// Entities are keyed by category through explicit accessors instead of
// dynamic tag queries.
type World struct {
	player    Entity
	goal      Entity
	obstacles []Entity
	enemy     *Entity
	life      int
	lifeMax   int
}

// NewWorld constructs the world for a fresh run, sampling the obstacle
// layout from rng. Returns ErrLayoutInfeasible if the layout parameters
// cannot be satisfied within the attempt budget.
func NewWorld(rng *rand.Rand, layout LayoutParams, lifeMax int, withEnemy bool) (*World, error) {
	positions, err := GenerateObstacles(rng, playerStart, goalStart, layout)
	if err != nil {
		return nil, err
	}

	w := &World{
		player:    Entity{Category: CategoryPlayer, Pos: playerStart},
		goal:      Entity{Category: CategoryGoal, Pos: goalStart},
		obstacles: make([]Entity, 0, len(positions)),
		life:      lifeMax,
		lifeMax:   lifeMax,
	}
	for _, pos := range positions {
		w.obstacles = append(w.obstacles, Entity{Category: CategoryObstacle, Pos: pos})
	}
	if withEnemy {
		w.enemy = &Entity{Category: CategoryEnemy, Pos: enemyStart}
	}
	return w, nil
}

// Player returns the player entity for mutation by the simulation step.
func (w *World) Player() *Entity {
	return &w.player
}

// Goal returns the goal position.
func (w *World) Goal() geom.Vec2 {
	return w.goal.Pos
}

// Obstacles returns the immutable obstacle set.
func (w *World) Obstacles() []Entity {
	return w.obstacles
}

// Enemy returns the enemy entity, or nil when the run has none.
func (w *World) Enemy() *Entity {
	return w.enemy
}

// Life returns the current life count.
func (w *World) Life() int {
	return w.life
}

// LifeMax returns the life counter's starting value.
func (w *World) LifeMax() int {
	return w.lifeMax
}

// loseLife decrements the life counter, flooring at zero, and reports the
// remaining count.
func (w *World) loseLife() int {
	w.life--
	if w.life < 0 {
		w.life = 0
	}
	return w.life
}

// LifeMarkers derives one display position per remaining life, laid out
// along the top edge of the field. Markers are a view of the counter, not
// stored entities; they are recomputed on every call.
func (w *World) LifeMarkers() []geom.Vec2 {
	markers := make([]geom.Vec2, 0, w.life)
	for i := 0; i < w.life; i++ {
		markers = append(markers, geom.V(
			-1.0+LifeMarkerRadius+2.0*float64(i)*LifeMarkerRadius,
			1.0-LifeMarkerRadius,
		))
	}
	return markers
}
