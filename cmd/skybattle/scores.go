package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-battle/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs: victories first, then by kills,
then by the shortest time.

Examples:
  skybattle scores
  skybattle scores --recent
  skybattle scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs instead of the best")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	title := "Best Runs"
	var runs []storage.RunRecord
	if flagScoresRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'skybattle play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-9s  %-5s  %-7s  %-10s  %-6s  %s\n", "Rank", "Result", "Kills", "Ticks", "Level", "Mode", "Date")
	fmt.Printf("  %-4s  %-9s  %-5s  %-7s  %-10s  %-6s  %s\n", "----", "------", "-----", "-----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-9s  %-5d  %-7d  %-10s  %-6s  %s\n",
			i+1, r.Outcome, r.Kills, r.Ticks, r.Level, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Runs: %d  Wins: %d  Losses: %d  Best: %d kills  Average: %.1f kills\n",
			stats.Runs, stats.Wins, stats.Losses, stats.BestKills, stats.AvgKills)
	}
}
