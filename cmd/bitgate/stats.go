package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkovalev/bitgate/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [level]",
	Short: "Show recorded run stats",
	Long: `Display aggregated run statistics, either for every level or for one.

Examples:
  bitgate stats
  bitgate stats 01-first-gate`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showLevelStats(store, args[0])
		return
	}

	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bitgate play' to record the first run!")
		return
	}

	fmt.Println("Run stats:")
	fmt.Println()
	fmt.Printf("  %-20s  %-8s  %-8s  %-7s  %s\n", "Level", "Attempts", "Cleared", "Deaths", "Best")
	fmt.Printf("  %-20s  %-8s  %-8s  %-7s  %s\n", "-----", "--------", "-------", "------", "----")
	for _, st := range all {
		best := "-"
		if st.BestSecs > 0 {
			best = fmt.Sprintf("%ds", st.BestSecs)
		}
		fmt.Printf("  %-20s  %-8d  %-8d  %-7d  %s\n", st.LevelID, st.Attempts, st.Completions, st.TotalDeaths, best)
	}
}

func showLevelStats(store *storage.Store, levelID string) {
	st, err := store.Stats(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if st.Attempts == 0 {
		fmt.Printf("No runs recorded for %s yet.\n", levelID)
		return
	}

	fmt.Printf("Stats - %s\n", levelID)
	fmt.Println()
	fmt.Printf("  Attempts:    %d\n", st.Attempts)
	fmt.Printf("  Cleared:     %d\n", st.Completions)
	fmt.Printf("  Deaths:      %d\n", st.TotalDeaths)
	if st.BestSecs > 0 {
		fmt.Printf("  Best clear:  %ds\n", st.BestSecs)
	}

	runs, err := store.RecentRuns(levelID, 10)
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("  %-6s  %-7s  %-6s  %s\n", "Result", "Deaths", "Time", "Date")
	fmt.Printf("  %-6s  %-7s  %-6s  %s\n", "------", "------", "----", "----")
	for _, run := range runs {
		result := "died"
		if run.Completed {
			result = "clear"
		}
		fmt.Printf("  %-6s  %-7d  %-6s  %s\n",
			result, run.Deaths,
			fmt.Sprintf("%ds", run.DurationSecs),
			run.CreatedAt.Format("2006-01-02 15:04"))
	}
}
