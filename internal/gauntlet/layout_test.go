package gauntlet

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vkazmin/circle-gauntlet/internal/geom"
)

func referenceLayout() LayoutParams {
	return LayoutParams{Count: 16, Spacing2: 0.1}
}

func TestLayoutHonorsSpacing(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		p := referenceLayout()

		positions, err := GenerateObstacles(rng, playerStart, goalStart, p)
		if err != nil {
			t.Fatalf("seed %d: GenerateObstacles() failed: %v", seed, err)
		}
		if len(positions) != p.Count {
			t.Fatalf("seed %d: placed %d obstacles, expected %d", seed, len(positions), p.Count)
		}

		for i, pos := range positions {
			if d := pos.Distance2(playerStart); d < p.Spacing2 {
				t.Errorf("seed %d: obstacle %d too close to player start (%f)", seed, i, d)
			}
			if d := pos.Distance2(goalStart); d < p.Spacing2 {
				t.Errorf("seed %d: obstacle %d too close to goal start (%f)", seed, i, d)
			}
			for j := i + 1; j < len(positions); j++ {
				if d := pos.Distance2(positions[j]); d < p.Spacing2 {
					t.Errorf("seed %d: obstacles %d and %d too close (%f)", seed, i, j, d)
				}
			}
		}
	}
}

func TestLayoutStaysInField(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	positions, err := GenerateObstacles(rng, playerStart, goalStart, referenceLayout())
	if err != nil {
		t.Fatalf("GenerateObstacles() failed: %v", err)
	}
	for i, pos := range positions {
		if pos.X < -1 || pos.X > 1 || pos.Y < -1 || pos.Y > 1 {
			t.Errorf("obstacle %d outside the field: %+v", i, pos)
		}
	}
}

func TestLayoutDeterminism(t *testing.T) {
	a, err := GenerateObstacles(rand.New(rand.NewSource(99)), playerStart, goalStart, referenceLayout())
	if err != nil {
		t.Fatalf("GenerateObstacles() failed: %v", err)
	}
	b, err := GenerateObstacles(rand.New(rand.NewSource(99)), playerStart, goalStart, referenceLayout())
	if err != nil {
		t.Fatalf("GenerateObstacles() failed: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Errorf("position %d differs between identically seeded runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestLayoutInfeasible(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// Exclusion disks of radius sqrt(2) cover the whole field: no second
	// obstacle can ever be placed.
	p := LayoutParams{Count: 8, Spacing2: 2.0, Attempts: 200}

	_, err := GenerateObstacles(rng, geom.V(-0.75, 0.75), geom.V(0.75, -0.75), p)
	if !errors.Is(err, ErrLayoutInfeasible) {
		t.Errorf("err = %v, expected ErrLayoutInfeasible", err)
	}
}
