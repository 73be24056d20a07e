package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tally/internal/diag"
	"tally/internal/diagfmt"
	"tally/internal/driver"
	"tally/internal/observ"
	"tally/internal/source"
)

// joinExpression rebuilds one expression string from positional arguments,
// so `tally 2 + 3` and `tally "2 + 3"` are equivalent.
func joinExpression(args []string) string {
	return strings.Join(args, " ")
}

func evalOptions(cmd *cobra.Command) driver.Options {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		maxDiagnostics = 0
	}
	return driver.Options{MaxDiagnostics: maxDiagnostics}
}

// timerFromFlags returns a stage timer when --timings is set, else nil
// (a nil Timer is a no-op in the driver).
func timerFromFlags(cmd *cobra.Command) *observ.Timer {
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		return observ.NewTimer()
	}
	return nil
}

func printTimings(timer *observ.Timer) {
	if s := timer.Summary(); s != "" {
		fmt.Fprint(os.Stderr, s)
	}
}

// printDiagnostics renders the bag to stderr and reports whether any errors
// were present.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, in *source.Input) bool {
	if bag.Len() == 0 {
		return false
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, in, diagfmt.PrettyOpts{
		Color:      useColor(cmd, os.Stderr),
		ShowSource: !quiet,
	})
	return bag.HasErrors()
}
