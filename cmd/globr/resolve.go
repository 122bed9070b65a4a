package main

import (
	"fmt"

	"github.com/lerenn/globr/cmd/globr/internal/cli"
	"github.com/spf13/cobra"
)

func createResolveCmd() *cobra.Command {
	resolveCmd := &cobra.Command{
		Use:   "resolve <pattern>...",
		Short: "List the paths matching glob patterns",
		Long: `Resolve glob patterns against the filesystem and print one absolute path per line.

Patterns without glob metacharacters are printed unchanged. Results of each
pattern are sorted and deduplicated; patterns are handled in order.

Examples:
  globr resolve 'src/**/*.go'
  globr resolve '~/notes/*.{md,txt}' '{cmd,pkg}/**/*_test.go'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := cli.NewDependencies(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			globResolver, err := cli.NewResolver(deps)
			if err != nil {
				return err
			}

			for _, glob := range args {
				paths, err := globResolver.Resolve(glob)
				if err != nil {
					return fmt.Errorf("failed to resolve %s: %w", glob, err)
				}

				for _, path := range paths {
					fmt.Fprintln(cmd.OutOrStdout(), path)
				}
			}
			return nil
		},
	}

	return resolveCmd
}
