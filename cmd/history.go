package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kayz/reelcheck/internal/config"
	"github.com/kayz/reelcheck/internal/persist"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent chain runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		store, err := persist.NewStore(cfg.HistoryPath())
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer store.Close()

		runs, err := store.ListRuns(historyLimit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		for _, run := range runs {
			fmt.Printf("%s  %-6s  %-30s  model=%s  run=%s\n",
				run.CreatedAt.Format(time.RFC3339), run.Status, run.Movie, run.Model, run.ID)
			if run.ErrorText != "" {
				fmt.Printf("  error: %s\n", run.ErrorText)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum runs to list")
}
