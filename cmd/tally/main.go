package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tally/internal/version"
)

// errReported signals that the command already rendered its diagnostics and
// main only needs to set the exit code.
var errReported = errors.New("expression rejected")

var rootCmd = &cobra.Command{
	Use:           "tally [expression...]",
	Short:         "Arithmetic expression calculator",
	Long:          `tally evaluates arithmetic expressions: + - * /, parentheses, decimals.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runEval,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress source context in diagnostics")
	rootCmd.PersistentFlags().Int("max-diagnostics", 16, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Bool("timings", false, "show per-stage timing information")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		switch colorFlag(cmd) {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		}
	}

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errReported) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func colorFlag(cmd *cobra.Command) string {
	v, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return "auto"
	}
	return v
}

// useColor resolves the --color flag against whether f is a terminal.
func useColor(cmd *cobra.Command, f *os.File) bool {
	switch colorFlag(cmd) {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
