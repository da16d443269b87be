package gauntlet

import (
	"math/rand"

	"github.com/vkazmin/circle-gauntlet/internal/config"
	"github.com/vkazmin/circle-gauntlet/internal/core"
)

// Reason records why a run ended.
type Reason int

const (
	ReasonNone Reason = iota // Run still active
	ReasonQuit
	ReasonWon
	ReasonDied
)

// String returns a human-readable name for the termination reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "active"
	case ReasonQuit:
		return "quit"
	case ReasonWon:
		return "won"
	case ReasonDied:
		return "died"
	default:
		return "unknown"
	}
}

// Cue names an audio event raised by the simulation. The audio layer owns
// what each cue sounds like.
type Cue string

const (
	CueStartup Cue = "startup"
	CueBounce  Cue = "bounce"
	CueWarning Cue = "warning_one_life"
	CueDeath   Cue = "death"
	CueWin     Cue = "win"
)

// GameState is the externally visible run status after a step.
type GameState struct {
	Lives  int
	Ticks  int
	Over   bool
	Reason Reason
}

// StepResult carries the state after one simulation step plus the audio
// cues raised during it.
type StepResult struct {
	State GameState
	Cues  []Cue
}

// Game is the per-run simulation state machine: Active until a quit signal,
// a goal approach, or a death, after which every terminal state is
// absorbing and Step becomes a no-op.
type Game struct {
	cfg     config.GauntletConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	world   *World
	input   InputState
	reason  Reason
	ticks   int
}

// New creates a game with the given configuration. Reset must be called
// before stepping.
func New(cfg config.GauntletConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the identifier used for CLI commands and run storage.
func (g *Game) ID() string {
	return "gauntlet"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Circle Gauntlet"
}

// Reset initializes a fresh run: samples the obstacle layout from the
// runtime seed and places the player, goal and enemy at their starts.
// Returns ErrLayoutInfeasible when the configured layout cannot be placed.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	world, err := NewWorld(g.rng, LayoutParams{
		Count:    g.cfg.World.ObstacleCount,
		Spacing2: g.cfg.World.ObstacleSpacing,
		Attempts: g.cfg.World.LayoutAttempts,
	}, g.cfg.Lives.Max, g.cfg.Enemy.Enabled)
	if err != nil {
		return err
	}

	g.world = world
	g.input.Reset()
	g.reason = ReasonNone
	g.ticks = 0
	return nil
}

// World exposes the entity store for rendering and tests.
func (g *Game) World() *World {
	return g.world
}

// Input returns the aggregator the platform feeds with directional
// press/release events.
func (g *Game) Input() *InputState {
	return &g.input
}

// Quit signals external termination. It takes effect immediately: the next
// Step sees a terminated run and does nothing.
func (g *Game) Quit() {
	if g.reason == ReasonNone {
		g.reason = ReasonQuit
	}
}

// State returns the current run status.
func (g *Game) State() GameState {
	return GameState{
		Lives:  g.world.Life(),
		Ticks:  g.ticks,
		Over:   g.reason != ReasonNone,
		Reason: g.reason,
	}
}

// Step advances the simulation by delta seconds of elapsed wall-clock time.
// The frame order is fixed: collision scan against the pre-move position,
// drag, input acceleration, speed clamp, collision response and life
// bookkeeping, goal attraction and win check, position integration,
// boundary check. Once terminated, Step returns the final state unchanged.
func (g *Game) Step(delta float64) StepResult {
	if g.reason != ReasonNone {
		return StepResult{State: g.State()}
	}

	g.ticks++
	var cues []Cue
	phys := g.cfg.Physics

	player := g.world.Player()
	pos := player.Pos
	vel := player.Vel

	// Scan obstacles against the pre-move position. When several overlap,
	// the last one in iteration order supplies the bounce reference.
	var collided *Entity
	for i := range g.world.obstacles {
		obs := &g.world.obstacles[i]
		if pos.Distance(obs.Pos) < PlayerRadius+ObstacleRadius {
			collided = obs
		}
	}

	// Drag, then input acceleration.
	vel = vel.Scale(1.0 - phys.Drag*delta)
	magBefore := vel.Len()
	vel = vel.Add(g.input.Direction().Scale(phys.InputScale * delta))

	// Input may steer freely but cannot push speed past the cap: over the
	// cap, the magnitude falls back to its pre-acceleration value.
	if vel.Len() > phys.MaxVelocity && vel.Len() > magBefore {
		vel = vel.Normalize().Scale(magBefore)
	}

	died := false
	if collided != nil {
		remaining := g.world.loseLife()
		if remaining <= 0 {
			died = true
		}
		if remaining == 1 {
			cues = append(cues, CueWarning)
		} else {
			cues = append(cues, CueBounce)
		}

		// Mirror the velocity off the obstacle: outward normal from the
		// obstacle center, surface tangent perpendicular to it, fixed
		// bounce speed pointing away.
		normal := collided.Pos.Sub(pos).Normalize()
		surface := normal.Perp()
		vel = vel.Reflect(surface).Normalize().Scale(phys.BounceVelocity)
	}

	// Soft attraction near the goal. The impulse direction degenerates to
	// zero at delta=0, so a zero-length frame adds nothing.
	goalDist := pos.Distance(g.world.Goal())
	if goalDist < PlayerRadius+GoalRadius {
		pull := g.world.Goal().Sub(pos).Normalize().Scale(delta).Normalize()
		vel = vel.Add(pull.Scale(phys.GoalPullVelocity * delta))
	}

	// Close enough to the goal center wins before the position updates.
	if goalDist < (PlayerRadius+GoalRadius)/3 {
		g.reason = ReasonWon
		player.Vel = vel
		return StepResult{State: g.State(), Cues: cues}
	}

	pos = pos.Add(vel.Scale(delta))
	player.Pos = pos
	player.Vel = vel

	// Leaving the field by more than the player radius is fatal regardless
	// of the life count.
	if pos.X < -1-PlayerRadius || pos.X > 1+PlayerRadius ||
		pos.Y < -1-PlayerRadius || pos.Y > 1+PlayerRadius {
		died = true
	}

	g.stepEnemy(delta)

	if died {
		g.reason = ReasonDied
	}
	return StepResult{State: g.State(), Cues: cues}
}

// stepEnemy moves the enemy toward the player's current position at its
// configured speed. The enemy is a rendered hazard only; it never collides.
func (g *Game) stepEnemy(delta float64) {
	enemy := g.world.Enemy()
	if enemy == nil {
		return
	}
	enemy.Vel = g.world.Player().Pos.Sub(enemy.Pos).Normalize().Scale(g.cfg.Enemy.Speed)
	enemy.Pos = enemy.Pos.Add(enemy.Vel.Scale(delta))
}
