package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "todolists %s (commit: %s, built: %s)\n", version, commit, date)
	},
}
