package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkazmin/circle-gauntlet/internal/audio"
	"github.com/vkazmin/circle-gauntlet/internal/core"
	"github.com/vkazmin/circle-gauntlet/internal/gauntlet"
	"github.com/vkazmin/circle-gauntlet/internal/storage"
)

// Model is the Bubble Tea model driving one run of the game. It owns the
// frame loop: measuring elapsed time, expiring stale key holds, stepping
// the simulation, raising audio cues, and persisting the finished run.
type Model struct {
	game     *gauntlet.Game
	screen   *core.Screen
	store    *storage.Store
	sound    *audio.Player
	config   core.RuntimeConfig
	holds    holdTracker
	tick     int
	lastTick time.Time
	started  time.Time
	outcome  gauntlet.Reason
	quitting bool
}

// NewModel creates a model for the given game and resets the simulation.
func NewModel(game *gauntlet.Game, store *storage.Store, sound *audio.Player, cfg core.RuntimeConfig) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := game.Reset(cfg); err != nil {
		return Model{}, err
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		sound:   sound,
		config:  cfg,
		holds:   newHoldTracker(cfg.TickRate),
		started: time.Now(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuitKey(msg) {
		m.game.Quit()
		m.outcome = m.game.State().Reason
		m.quitting = true
		return m, tea.Quit
	}

	if d, ok := directionForKey(msg); ok {
		m.holds.press(d, m.tick)
		m.game.Input().Press(d)
	}

	return m, nil
}

// handleResize adjusts the screen buffer. The simulation runs in
// resolution-independent world coordinates, so the run itself continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)

	// Real elapsed time between ticks, not the nominal interval: a stalled
	// terminal or busy host must not slow the simulation down.
	var delta float64
	if !m.lastTick.IsZero() {
		delta = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	m.tick++

	for _, d := range m.holds.expired(m.tick) {
		m.game.Input().Release(d)
	}

	result := m.game.Step(delta)
	for _, cue := range result.Cues {
		m.sound.Play(string(cue))
	}

	if result.State.Over {
		m.outcome = result.State.Reason
		m.playOutcomeCue()
		m.saveRun(result.State)
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// playOutcomeCue raises the terminal cue for a won or lost run.
func (m Model) playOutcomeCue() {
	switch m.outcome {
	case gauntlet.ReasonWon:
		m.sound.Play(audio.CueWin)
	case gauntlet.ReasonDied:
		m.sound.Play(audio.CueDeath)
	}
}

// saveRun persists a finished run. Quit runs are not recorded.
func (m Model) saveRun(state gauntlet.GameState) {
	if m.store == nil {
		return
	}
	if m.outcome != gauntlet.ReasonWon && m.outcome != gauntlet.ReasonDied {
		return
	}
	//nolint:errcheck // Best-effort save, the run result is still shown
	m.store.SaveRun(m.outcome.String(), state.Lives, state.Ticks, time.Since(m.started))
}

// Outcome returns why the run ended. Valid after the program finishes.
func (m Model) Outcome() gauntlet.Reason {
	return m.outcome
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run plays one full run in the terminal and reports how it ended.
func Run(game *gauntlet.Game, store *storage.Store, sound *audio.Player, cfg core.RuntimeConfig) (gauntlet.Reason, error) {
	model, err := NewModel(game, store, sound, cfg)
	if err != nil {
		return gauntlet.ReasonNone, err
	}

	sound.Play(audio.CueStartup)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return gauntlet.ReasonNone, err
	}

	if m, ok := final.(Model); ok {
		return m.Outcome(), nil
	}
	return gauntlet.ReasonNone, nil
}
