package gauntlet

import (
	"errors"
	"math/rand"

	"github.com/vkazmin/circle-gauntlet/internal/geom"
)

// ErrLayoutInfeasible is returned when rejection sampling cannot place the
// requested obstacle count within the attempt budget. It indicates the
// spacing/count combination packs the field too densely.
var ErrLayoutInfeasible = errors.New("gauntlet: obstacle layout infeasible for spacing and count")

// LayoutParams controls obstacle placement.
type LayoutParams struct {
	Count    int     // Obstacles to place
	Spacing2 float64 // Minimum squared distance to player start, goal start, and each other
	Attempts int     // Draw budget per obstacle; <=0 selects a default
}

const defaultLayoutAttempts = 10000

// GenerateObstacles places obstacles by rejection sampling: each candidate
// is drawn uniformly from the [-1,1] field and accepted only once it clears
// the spacing threshold against the player start, the goal start, and every
// previously accepted obstacle. Distances are compared squared to skip the
// square root.
func GenerateObstacles(rng *rand.Rand, playerStart, goalStart geom.Vec2, p LayoutParams) ([]geom.Vec2, error) {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = defaultLayoutAttempts
	}

	placed := make([]geom.Vec2, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		pos, ok := samplePoint(rng, playerStart, goalStart, placed, p.Spacing2, attempts)
		if !ok {
			return nil, ErrLayoutInfeasible
		}
		placed = append(placed, pos)
	}
	return placed, nil
}

func samplePoint(rng *rand.Rand, playerStart, goalStart geom.Vec2, placed []geom.Vec2, spacing2 float64, attempts int) (geom.Vec2, bool) {
	for a := 0; a < attempts; a++ {
		pos := geom.V(rng.Float64()*2-1, rng.Float64()*2-1)
		if pos.Distance2(playerStart) < spacing2 || pos.Distance2(goalStart) < spacing2 {
			continue
		}
		if minDistance2(pos, placed) < spacing2 {
			continue
		}
		return pos, true
	}
	return geom.Vec2{}, false
}

// minDistance2 returns the squared distance from pos to the nearest point
// in others, or a large sentinel when others is empty.
func minDistance2(pos geom.Vec2, others []geom.Vec2) float64 {
	best := 500.0
	for _, o := range others {
		if d := pos.Distance2(o); d < best {
			best = d
		}
	}
	return best
}
