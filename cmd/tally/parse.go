package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tally/internal/diagfmt"
	"tally/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] expression...",
	Short: "Parse an expression and dump its tree",
	Long:  `Parse builds the expression tree and prints it without evaluating`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	opts := evalOptions(cmd)
	timer := timerFromFlags(cmd)
	opts.Timer = timer

	res := driver.Parse(joinExpression(args), opts)
	printTimings(timer)
	if printDiagnostics(cmd, res.Bag, res.Input) {
		return errReported
	}

	switch format {
	case "pretty":
		return diagfmt.FormatExprPretty(os.Stdout, res.Exprs, res.Root)
	case "json":
		return diagfmt.FormatExprJSON(os.Stdout, res.Exprs, res.Root)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
