// Package main provides the entry point for the ostree driver, which
// benchmarks and dumps order-statistics trees.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npillmayer/ostree/cmd/ostree/commands"
)

// Set by the linker.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := commands.NewRootCommand()
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ostree %s (commit: %s)\n", version, commit)
		},
	}
}
