package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tally/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, _ []string) {
	if useColor(cmd, os.Stdout) {
		fmt.Fprintf(cmd.OutOrStdout(), "tally %s\n", version.Pretty())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "tally %s\n", version.Version)
	}
	if version.GitCommit != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.GitCommit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", version.BuildDate)
	}
}
