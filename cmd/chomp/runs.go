package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chomp/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [level]",
	Short: "Show the run log",
	Long: `Display recent runs, newest first: level, mode, duration, frames and
average frame rate. Pass a level ID to filter.

Examples:
  chomp runs
  chomp runs classic --limit 5
  chomp runs arena --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the matching runs instead of showing them")
}

func runRuns(_ *cobra.Command, args []string) error {
	level := ""
	if len(args) == 1 {
		level = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(level); err != nil {
			return err
		}
		logger.Info("runs cleared", "level", level)
		fmt.Println("Run log cleared.")
		return nil
	}

	runs, err := store.RecentRuns(level, flagRunsLimit)
	if err != nil {
		return err
	}

	title := "all levels"
	if level != "" {
		title = level
	}
	fmt.Printf("Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'chomp play' to record the first run!")
		return nil
	}

	fmt.Printf("  %-12s  %-15s  %-6s  %-8s  %-6s  %s\n", "Level", "Mode", "Time", "Ticks", "FPS", "Date")
	fmt.Printf("  %-12s  %-15s  %-6s  %-8s  %-6s  %s\n", "-----", "----", "----", "-----", "---", "----")
	for _, r := range runs {
		secs := r.DurationMs / 1000
		fmt.Printf("  %-12s  %-15s  %-6s  %-8d  %-6.1f  %s\n",
			r.Level, r.Game, fmt.Sprintf("%d:%02d", secs/60, secs%60), r.Ticks, r.AvgFPS,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.AllLevelStats()
	if err == nil && level != "" {
		if st, ok := stats[level]; ok {
			fmt.Println()
			fmt.Printf("Total: %d runs, %d frames, %.1f avg FPS\n", st.Runs, st.TotalTicks, st.AvgFPS)
		}
	}
	return nil
}
