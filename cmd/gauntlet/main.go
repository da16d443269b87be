// gauntlet is a top-down terminal arcade game: steer a circle through a
// field of obstacles to the goal before your lives run out.
//
// Usage:
//
//	gauntlet play            - Play a run
//	gauntlet runs            - Browse recorded run history
//	gauntlet serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible layouts
//	--db <path>     - Set database path (default: ~/.gauntlet/runs.db)
//	--mute          - Disable audio
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gauntlet",
	Short: "Circle Gauntlet - dodge your way to the goal",
	Long: `Circle Gauntlet is a terminal arcade game. Steer a circle across a
field of randomly placed obstacles to reach the goal. Every obstacle hit
bounces you away and costs a life; leave the field and the run is over.

Available commands:
  play     - Play a run
  runs     - Browse recorded run history
  serve    - Start SSH server for remote play

Examples:
  gauntlet play
  gauntlet play --difficulty hard
  gauntlet play --seed 42
  gauntlet runs --plain
  gauntlet serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gauntlet/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
