package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tally/internal/diagfmt"
	"tally/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] expression...",
	Short: "Tokenize an expression",
	Long:  `Tokenize breaks an expression down into its constituent tokens`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	opts := evalOptions(cmd)
	timer := timerFromFlags(cmd)
	opts.Timer = timer

	res := driver.Tokenize(joinExpression(args), opts)
	printTimings(timer)
	failed := printDiagnostics(cmd, res.Bag, res.Input)

	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(os.Stdout, res.Tokens)
	case "json":
		err = diagfmt.FormatTokensJSON(os.Stdout, res.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if failed {
		return errReported
	}
	return nil
}
