package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tally/internal/driver"
	"tally/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously evaluated expressions",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "number of entries to show (0 = all)")
	historyCmd.Flags().Bool("clear", false, "delete the stored history")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := history.Open("tally")
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}

	if clear, _ := cmd.Flags().GetBool("clear"); clear {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "history is empty")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s = %s\n",
			e.EvaluatedAt.Format(time.DateTime),
			e.Expression,
			driver.FormatValue(e.Value, -1))
	}
	return nil
}

// recordHistory appends one successful evaluation, unless the manifest
// disables persistence. Failures are deliberately ignored: history is a
// convenience, not part of the evaluation contract.
func recordHistory(cfg fileConfig, expr string, value float64) {
	if cfg.History.Disabled {
		return
	}
	store, err := history.Open("tally")
	if err != nil {
		return
	}
	_ = store.Append(history.Entry{
		Expression:  expr,
		Value:       value,
		EvaluatedAt: time.Now(),
	})
}
