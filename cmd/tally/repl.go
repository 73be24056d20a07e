package main

import (
	"github.com/spf13/cobra"

	"tally/internal/history"
	"tally/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive calculator session",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var store *history.Store
	if !cfg.History.Disabled {
		// A broken history store downgrades to an in-memory session.
		store, _ = history.Open("tally")
	}

	return ui.Run(evalOptions(cmd), store)
}
