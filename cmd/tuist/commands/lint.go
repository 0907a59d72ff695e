package commands

import (
	"fmt"

	"github.com/DevVenusK/tuist/pkg/config"
	"github.com/DevVenusK/tuist/pkg/lint"
	"github.com/DevVenusK/tuist/pkg/manifest"
	"github.com/spf13/cobra"
)

func newLintCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "lint <manifest>",
		Short: "Check a project manifest for problems",
		Long: `Lint parses a project manifest and reports problems the generator
would reject, such as unnamed copy-files phases or subpaths that escape
their destination directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if strict {
				cfg.Strict = true
			}

			project, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			issues := lint.Project(project)
			for _, issue := range issues {
				fmt.Fprintln(cmd.OutOrStdout(), issue)
			}

			if lint.HasErrors(issues) || (cfg.Strict && len(issues) > 0) {
				return fmt.Errorf("%d problem(s) found in %s", len(issues), args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors")

	return cmd
}
