package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/areacalc/internal/config"
)

var configInitPath string

var configInitCmd = &cobra.Command{
	Use:   "config:init",
	Short: "Write a commented default config file",
	Long: `Write a config file holding every option with its default value.

Examples:
  # Project config, picked up when areacalc runs in this directory
  areacalc config:init

  # User config
  areacalc config:init --path ~/.config/areacalc/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefaultConfig(configInitPath); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configInitPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVarP(&configInitPath, "path", "p", ".areacalc/config.yaml", "where to write the config file")
	rootCmd.AddCommand(configInitCmd)
}
