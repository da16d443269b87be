package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkazmin/circle-gauntlet/internal/audio"
	"github.com/vkazmin/circle-gauntlet/internal/config"
	"github.com/vkazmin/circle-gauntlet/internal/core"
	"github.com/vkazmin/circle-gauntlet/internal/gauntlet"
	"github.com/vkazmin/circle-gauntlet/internal/platform/tui"
	"github.com/vkazmin/circle-gauntlet/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run. Reach the green goal in the lower right corner without
running out of lives or drifting off the field.

Controls:
  Arrows/WASD/HJKL - Steer
  Q/Esc/Ctrl+C     - Quit

Difficulty presets:
  easy   - More lives, fewer and sparser obstacles, a slow pursuer
  normal - The standard field
  hard   - Fewer lives, a denser field, a faster pursuer

Exit status is 0 when the run is won or quit, 2 when it is lost.

Examples:
  gauntlet play
  gauntlet play --difficulty easy
  gauntlet play --seed 42 --mute
  gauntlet play --config ./my-gauntlet.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	gameCfg, err := config.LoadGauntlet(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, or hard)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&gameCfg, preset)
	}

	game := gauntlet.New(gameCfg)

	sound, err := audio.NewPlayer(flagMute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", err)
		// Continue silent - the game still works
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage
		store = nil
	}

	outcome, runErr := tui.Run(game, store, sound, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	// Let the final cue ring out before the process exits
	sound.Wait()

	switch outcome {
	case gauntlet.ReasonWon:
		fmt.Println("You won! The goal is yours.")
	case gauntlet.ReasonDied:
		fmt.Println("You lost. The gauntlet claims another.")
		os.Exit(2)
	}
}
