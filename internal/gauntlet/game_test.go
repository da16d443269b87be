package gauntlet

import (
	"math"
	"testing"

	"github.com/vkazmin/circle-gauntlet/internal/config"
	"github.com/vkazmin/circle-gauntlet/internal/core"
	"github.com/vkazmin/circle-gauntlet/internal/geom"
)

const eps = 1e-9

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg := config.DefaultGauntletConfig()
	cfg.Enemy.Enabled = false
	g := New(cfg)
	err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	if err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

// placeObstacles replaces the sampled layout with a fixed one.
func placeObstacles(g *Game, positions ...geom.Vec2) {
	g.world.obstacles = g.world.obstacles[:0]
	for _, p := range positions {
		g.world.obstacles = append(g.world.obstacles, Entity{Category: CategoryObstacle, Pos: p})
	}
}

func TestResetDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	obs1, obs2 := g1.World().Obstacles(), g2.World().Obstacles()
	if len(obs1) != len(obs2) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(obs1), len(obs2))
	}
	for i := range obs1 {
		if obs1[i].Pos != obs2[i].Pos {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, obs1[i].Pos, obs2[i].Pos)
		}
	}
}

func TestVelocityNeverExceedsCap(t *testing.T) {
	g := newTestGame(t, 7)
	placeObstacles(g) // empty field, input only

	maxVel := g.cfg.Physics.MaxVelocity
	deltas := []float64{0, 0.016, 0.05, 0.1, 0.016, 0.033}
	dirs := [][]Direction{
		{DirRight}, {DirRight, DirUp}, {DirUp}, {DirLeft, DirDown}, {}, {DirDown, DirRight},
	}

	for i := 0; i < 600; i++ {
		g.input.Reset()
		for _, d := range dirs[i%len(dirs)] {
			g.input.Press(d)
		}
		g.Step(deltas[i%len(deltas)])
		if g.State().Over {
			break
		}

		if speed := g.world.Player().Vel.Len(); speed > maxVel+eps {
			t.Fatalf("tick %d: speed %f exceeds cap %f", i, speed, maxVel)
		}
	}
}

func TestInputSteersWithoutAccelerating(t *testing.T) {
	g := newTestGame(t, 7)
	placeObstacles(g)

	// Start at the cap moving right; steering up must not raise the speed.
	g.world.Player().Vel = geom.V(g.cfg.Physics.MaxVelocity, 0)
	g.input.Press(DirUp)
	g.Step(0.016)

	vel := g.world.Player().Vel
	if vel.Len() > g.cfg.Physics.MaxVelocity+eps {
		t.Errorf("speed %f exceeds cap after steering input", vel.Len())
	}
	if vel.Y <= 0 {
		t.Errorf("velocity %+v did not turn toward the input direction", vel)
	}
}

func TestBounceSpeedIsFixed(t *testing.T) {
	tests := []struct {
		name string
		vel  geom.Vec2
	}{
		{"slow approach", geom.V(0.05, 0)},
		{"fast approach", geom.V(0.5, 0.2)},
		{"diagonal", geom.V(0.3, -0.4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 3)
			obstacle := geom.V(0.1, 0.0)
			placeObstacles(g, obstacle)
			g.world.Player().Pos = geom.V(0, 0)
			g.world.Player().Vel = tc.vel

			g.Step(0.001)

			vel := g.world.Player().Vel
			if math.Abs(vel.Len()-g.cfg.Physics.BounceVelocity) > 1e-6 {
				t.Errorf("post-bounce speed = %f, expected %f", vel.Len(), g.cfg.Physics.BounceVelocity)
			}
			// Velocity points away from the obstacle center.
			away := g.world.Player().Pos.Sub(obstacle)
			if vel.Dot(away) < 0 {
				t.Errorf("post-bounce velocity %+v points toward the obstacle", vel)
			}
		})
	}
}

func TestBounceAtObstacleCenter(t *testing.T) {
	// Degenerate contact: the player sits exactly on the obstacle center,
	// so no outward normal exists. The bounce must still yield the fixed
	// speed instead of NaN.
	g := newTestGame(t, 3)
	placeObstacles(g, geom.V(0.5, 0.5))
	g.world.Player().Pos = geom.V(0.5, 0.5)
	g.world.Player().Vel = geom.V(1, 0)

	g.Step(0)

	vel := g.world.Player().Vel
	if math.IsNaN(vel.X) || math.IsNaN(vel.Y) {
		t.Fatalf("bounce produced NaN velocity: %+v", vel)
	}
	if math.Abs(vel.Len()-g.cfg.Physics.BounceVelocity) > 1e-6 {
		t.Errorf("speed = %f, expected %f", vel.Len(), g.cfg.Physics.BounceVelocity)
	}
}

func TestLastOverlappingObstacleWins(t *testing.T) {
	g := newTestGame(t, 3)
	// Both obstacles overlap the player; the second in iteration order
	// supplies the bounce reference point.
	placeObstacles(g, geom.V(0.05, 0), geom.V(0, 0.05))
	g.world.Player().Pos = geom.V(0, 0)
	g.world.Player().Vel = geom.V(0.3, 0.4)

	g.Step(0)

	// Reflecting (0.3, 0.4) off an obstacle directly above keeps the x
	// component and flips y; normalized to the bounce speed.
	expected := geom.V(0.45, -0.6)
	vel := g.world.Player().Vel
	if math.Abs(vel.X-expected.X) > 1e-6 || math.Abs(vel.Y-expected.Y) > 1e-6 {
		t.Errorf("post-bounce velocity = %+v, expected %+v (reference from last obstacle)", vel, expected)
	}
}

func TestLifeBookkeeping(t *testing.T) {
	g := newTestGame(t, 3)
	placeObstacles(g, geom.V(0.05, 0), geom.V(0, 0.05))
	g.world.Player().Pos = geom.V(0, 0)

	before := g.world.Life()
	g.Step(0)
	if got := g.world.Life(); got != before-1 {
		t.Errorf("life = %d after frame with two overlapping obstacles, expected %d", got, before-1)
	}

	// A frame without any collision never costs life.
	g.world.Player().Pos = geom.V(-0.5, -0.5)
	g.world.Player().Vel = geom.Vec2{}
	before = g.world.Life()
	g.Step(0.016)
	if got := g.world.Life(); got != before {
		t.Errorf("life = %d after collision-free frame, expected %d", got, before)
	}
}

func TestLifeNeverNegative(t *testing.T) {
	g := newTestGame(t, 3)
	placeObstacles(g, geom.V(0.05, 0))
	g.world.Player().Pos = geom.V(0, 0)
	g.world.life = 1

	g.Step(0)
	if g.world.Life() != 0 {
		t.Errorf("life = %d, expected 0", g.world.Life())
	}
	if g.State().Reason != ReasonDied {
		t.Errorf("reason = %v, expected died", g.State().Reason)
	}
}

func TestCueSelection(t *testing.T) {
	tests := []struct {
		name       string
		lifeBefore int
		expected   Cue
		died       bool
	}{
		{"plenty of life", 5, CueBounce, false},
		{"transition into one life", 2, CueWarning, false},
		{"final hit", 1, CueBounce, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 3)
			placeObstacles(g, geom.V(0.05, 0))
			g.world.Player().Pos = geom.V(0, 0)
			g.world.life = tc.lifeBefore

			res := g.Step(0)

			if len(res.Cues) != 1 || res.Cues[0] != tc.expected {
				t.Errorf("cues = %v, expected [%s]", res.Cues, tc.expected)
			}
			if (res.State.Reason == ReasonDied) != tc.died {
				t.Errorf("reason = %v, expected died=%v", res.State.Reason, tc.died)
			}
		})
	}
}

func TestGoalProximityWins(t *testing.T) {
	g := newTestGame(t, 3)
	placeObstacles(g)
	goal := g.world.Goal()
	start := goal.Add(geom.V((PlayerRadius+GoalRadius)/4, 0))
	g.world.Player().Pos = start
	g.world.Player().Vel = geom.V(0.1, 0)

	res := g.Step(0.016)

	if res.State.Reason != ReasonWon {
		t.Fatalf("reason = %v, expected won", res.State.Reason)
	}
	// The winning frame terminates before position integration.
	if g.world.Player().Pos != start {
		t.Errorf("position moved on the winning frame: %+v", g.world.Player().Pos)
	}
}

func TestGoalAttractionNudge(t *testing.T) {
	g := newTestGame(t, 3)
	placeObstacles(g)
	goal := g.world.Goal()
	// Inside the approach radius but outside the win radius.
	g.world.Player().Pos = goal.Add(geom.V(PlayerRadius+GoalRadius-0.01, 0))
	g.world.Player().Vel = geom.Vec2{}

	res := g.Step(0.016)

	if res.State.Over {
		t.Fatalf("run ended unexpectedly: %v", res.State.Reason)
	}
	vel := g.world.Player().Vel
	if vel.X >= 0 {
		t.Errorf("velocity %+v not nudged toward the goal", vel)
	}
	// The nudge is tiny relative to player control.
	if vel.Len() > g.cfg.Physics.GoalPullVelocity*0.016+eps {
		t.Errorf("nudge %f too strong", vel.Len())
	}
}

func TestOutOfBoundsDies(t *testing.T) {
	tests := []struct {
		name string
		pos  geom.Vec2
		vel  geom.Vec2
	}{
		{"right edge", geom.V(1.05, 0), geom.V(0.5, 0)},
		{"left edge", geom.V(-1.05, 0), geom.V(-0.5, 0)},
		{"top edge", geom.V(0, 1.05), geom.V(0, 0.5)},
		{"bottom edge", geom.V(0, -1.05), geom.V(0, -0.5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 3)
			placeObstacles(g)
			g.world.Player().Pos = tc.pos
			g.world.Player().Vel = tc.vel

			res := g.Step(0.1)

			if res.State.Reason != ReasonDied {
				t.Errorf("reason = %v, expected died (pos %+v)", res.State.Reason, g.world.Player().Pos)
			}
			if g.world.Life() != g.cfg.Lives.Max {
				t.Errorf("boundary death consumed life: %d", g.world.Life())
			}
		})
	}
}

func TestZeroDeltaDoesNotMove(t *testing.T) {
	g := newTestGame(t, 3)
	placeObstacles(g, geom.V(0.05, 0))
	g.world.Player().Pos = geom.V(0, 0)
	g.world.Player().Vel = geom.V(0.4, 0.1)
	g.input.Press(DirRight)

	g.Step(0)

	if g.world.Player().Pos != geom.V(0, 0) {
		t.Errorf("position changed on zero-delta frame: %+v", g.world.Player().Pos)
	}
	// Velocity may still change: the collision response is instantaneous.
	if math.Abs(g.world.Player().Vel.Len()-g.cfg.Physics.BounceVelocity) > 1e-6 {
		t.Errorf("collision response missing on zero-delta frame: %+v", g.world.Player().Vel)
	}
}

func TestQuitShortCircuits(t *testing.T) {
	g := newTestGame(t, 3)
	pos := g.world.Player().Pos
	ticks := g.State().Ticks

	g.Quit()
	res := g.Step(0.016)

	if !res.State.Over || res.State.Reason != ReasonQuit {
		t.Fatalf("state = %+v, expected terminated by quit", res.State)
	}
	if g.world.Player().Pos != pos {
		t.Error("simulation ran after quit")
	}
	if res.State.Ticks != ticks {
		t.Error("tick counter advanced after quit")
	}
}

func TestTerminalStatesAbsorb(t *testing.T) {
	g := newTestGame(t, 3)
	placeObstacles(g)
	g.world.Player().Pos = g.world.Goal()
	g.Step(0.016)
	if g.State().Reason != ReasonWon {
		t.Fatalf("setup failed: reason = %v", g.State().Reason)
	}

	// Quit cannot overwrite a terminal state, and stepping is a no-op.
	g.Quit()
	pos := g.world.Player().Pos
	for i := 0; i < 5; i++ {
		res := g.Step(0.016)
		if res.State.Reason != ReasonWon {
			t.Fatalf("terminal reason changed to %v", res.State.Reason)
		}
	}
	if g.world.Player().Pos != pos {
		t.Error("player moved after termination")
	}
}

func TestEnemyChasesPlayer(t *testing.T) {
	cfg := config.DefaultGauntletConfig()
	g := New(cfg)
	err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9})
	if err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	placeObstacles(g)

	enemy := g.world.Enemy()
	if enemy == nil {
		t.Fatal("enemy missing with enemy enabled")
	}
	before := enemy.Pos.Distance(g.world.Player().Pos)
	for i := 0; i < 10; i++ {
		g.Step(0.016)
	}
	after := g.world.Enemy().Pos.Distance(g.world.Player().Pos)
	if after >= before {
		t.Errorf("enemy distance grew from %f to %f", before, after)
	}
}

func TestLifeMarkersDeriveFromCounter(t *testing.T) {
	g := newTestGame(t, 3)

	markers := g.world.LifeMarkers()
	if len(markers) != g.world.Life() {
		t.Fatalf("marker count = %d, expected %d", len(markers), g.world.Life())
	}
	for i, m := range markers {
		if m.Y != 1.0-LifeMarkerRadius {
			t.Errorf("marker %d not on the top edge: %+v", i, m)
		}
		if i > 0 && m.X <= markers[i-1].X {
			t.Errorf("markers not laid out left to right at index %d", i)
		}
	}

	g.world.life = 2
	if got := len(g.world.LifeMarkers()); got != 2 {
		t.Errorf("marker count = %d after life change, expected 2", got)
	}
}
