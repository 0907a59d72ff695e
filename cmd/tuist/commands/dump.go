package commands

import (
	"fmt"

	"github.com/DevVenusK/tuist/pkg/config"
	"github.com/DevVenusK/tuist/pkg/manifest"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump <manifest>",
		Short: "Parse a project manifest and print its canonical form",
		Long: `Dump parses a project manifest and re-serializes it, which normalizes
formatting and verifies that the manifest round-trips through the model.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Format
			}

			project, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case config.FormatYAML:
				data, err = manifest.Dump(project)
			case config.FormatJSON:
				data, err = manifest.DumpJSON(project)
			default:
				return fmt.Errorf("unknown format %q (expected %s or %s)", format, config.FormatYAML, config.FormatJSON)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: yaml or json (default from config)")

	return cmd
}
