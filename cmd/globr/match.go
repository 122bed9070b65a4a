package main

import (
	"fmt"

	"github.com/lerenn/globr/cmd/globr/internal/cli"
	"github.com/lerenn/globr/pkg/dependencies"
	"github.com/spf13/cobra"
)

var all bool

func createMatchCmd() *cobra.Command {
	matchCmd := &cobra.Command{
		Use:   "match <pattern> <string>...",
		Short: "Test strings against a glob pattern",
		Long: `Test strings against a glob pattern without touching the filesystem.

Prints "match" or "no match" for each string.

Flags:
  --all   Exit with an error when any string does not match

Examples:
  globr match '**/*.txt' file.txt dir/sub/file.txt
  globr match --all '*.{go,mod}' main.go go.mod`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := cli.NewDependencies(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			glob := args[0]
			if err := validateStrict(deps, glob); err != nil {
				return err
			}

			misses := 0
			for _, candidate := range args[1:] {
				matched, err := deps.Compiler.Match(glob, candidate)
				if err != nil {
					return err
				}

				result := "match"
				if !matched {
					result = "no match"
					misses++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", candidate, result)
			}

			if all && misses > 0 {
				return fmt.Errorf("%w: %d of %d", ErrNoMatch, misses, len(args)-1)
			}
			return nil
		},
	}

	matchCmd.Flags().BoolVar(&all, "all", false, "Exit with an error when any string does not match")

	return matchCmd
}

// validateStrict rejects malformed brace groups when strict mode is enabled
// by flag or configuration.
func validateStrict(deps *dependencies.Dependencies, glob string) error {
	cfg, err := cli.LoadConfig(deps.Config)
	if err != nil {
		return err
	}

	if !cfg.StrictBraces {
		return nil
	}
	return deps.Compiler.Validate(glob)
}
