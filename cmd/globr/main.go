// Package main provides the command-line interface for globr.
package main

import (
	"log"

	"github.com/lerenn/globr/cmd/globr/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "globr",
		Short: "globr - Shell-style glob resolver",
		Long: `Resolve shell-style glob patterns (brace groups, character classes, ` +
			`wildcards and recursive ** segments) against the filesystem, ` +
			`or translate them into regular expressions.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().BoolVar(&cli.Strict, "strict", false, "Reject patterns with unbalanced braces")

	// Add subcommands
	rootCmd.AddCommand(
		createResolveCmd(),
		createCompileCmd(),
		createMatchCmd(),
		createInitCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
