package main

import (
	"fmt"

	"github.com/lerenn/globr/cmd/globr/internal/cli"
	"github.com/spf13/cobra"
)

func createCompileCmd() *cobra.Command {
	compileCmd := &cobra.Command{
		Use:   "compile <pattern>",
		Short: "Print the regular expression equivalent to a glob pattern",
		Long: `Translate a glob pattern into a regular expression and print it.

The expression is anchored at the start only.

Examples:
  globr compile '**/*.txt'
  globr compile '{a,b}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := cli.NewDependencies(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if err := validateStrict(deps, args[0]); err != nil {
				return err
			}

			re, err := deps.Compiler.Compile(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), re.String())
			return nil
		},
	}

	return compileCmd
}
