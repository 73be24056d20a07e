package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tally/internal/diagfmt"
	"tally/internal/driver"
)

func init() {
	rootCmd.Flags().BoolP("verbose", "v", false, "echo the parsed expression before the result")
	rootCmd.Flags().Int("precision", -1, "decimal places in the result (-1 = shortest)")
}

func runEval(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Help()
		return errReported
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	precision := cfg.Output.Precision
	if cmd.Flags().Changed("precision") {
		precision, _ = cmd.Flags().GetInt("precision")
	}

	expr := joinExpression(args)
	opts := evalOptions(cmd)
	timer := timerFromFlags(cmd)
	opts.Timer = timer

	res := driver.Evaluate(expr, opts)
	printTimings(timer)
	if printDiagnostics(cmd, res.Bag, res.Input) {
		return errReported
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Parsed: %s\n", diagfmt.RenderExpr(res.Exprs, res.Root))
	}
	fmt.Fprintln(cmd.OutOrStdout(), driver.FormatValue(res.Value, precision))

	recordHistory(cfg, expr, res.Value)
	return nil
}
