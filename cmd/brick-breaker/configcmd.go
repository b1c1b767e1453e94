package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Writes the built-in YAML configuration to stdout. Save it to
~/.brick-breaker/config.yaml or ./configs/brick-breaker.yaml and edit it to
change the layout, speeds or colors.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
