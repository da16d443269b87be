package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vkazmin/circle-gauntlet/internal/platform/tui"
	"github.com/vkazmin/circle-gauntlet/internal/storage"
)

var flagPlainRuns bool

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded run history",
	Long: `Open an interactive browser over recorded runs. Tab switches between
the most recent runs and the best wins (fastest first, most lives left as
tiebreak).

Examples:
  gauntlet runs
  gauntlet runs --plain
  gauntlet runs --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlainRuns, "plain", false, "Print runs as plain text instead of the interactive browser")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlainRuns {
		printPlainRuns(store)
		return
	}

	if err := tui.ShowRuns(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing runs: %v\n", err)
		os.Exit(1)
	}
}

// printPlainRuns writes run history as plain text, for piping and scripts.
func printPlainRuns(store *storage.Store) {
	recent, err := store.RecentRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent runs:")
	if len(recent) == 0 {
		fmt.Println("  (none recorded yet)")
	}
	for i, r := range recent {
		fmt.Printf("  #%-3d %-5s lives=%d ticks=%d duration=%s %s\n",
			i+1, r.Outcome, r.LivesLeft, r.Ticks,
			r.Duration.Round(10*time.Millisecond),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.BestRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nBest wins:")
	if len(best) == 0 {
		fmt.Println("  (no wins recorded yet)")
	}
	for i, r := range best {
		fmt.Printf("  #%-3d lives=%d ticks=%d duration=%s %s\n",
			i+1, r.LivesLeft, r.Ticks,
			r.Duration.Round(10*time.Millisecond),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
