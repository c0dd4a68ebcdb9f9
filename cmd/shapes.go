package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/areacalc/internal/presentation"
	"github.com/zjrosen/areacalc/internal/shape"
)

var shapesOutput string

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the shapes the calculator knows",
	Long: `List every shape in menu order with its parameters.

Examples:
  # Menu lines, as shown by the calculator
  areacalc shapes

  # Parameters and validation rules as JSON
  areacalc shapes -o json | jq '.[] | select(.cross_check)'

  # YAML
  areacalc shapes --output yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !presentation.ValidFormat(shapesOutput) {
			return fmt.Errorf("unsupported output format %q (use text, json or yaml)", shapesOutput)
		}
		cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		formatter := presentation.NewFormatter(cmd.OutOrStdout())
		dtos := presentation.FromDomainShapes(shape.Default().Definitions())
		return formatter.FormatShapes(dtos, shapesOutput)
	},
}

func init() {
	shapesCmd.Flags().StringVarP(&shapesOutput, "output", "o", presentation.FormatText, "Output format: text, json or yaml")
	rootCmd.AddCommand(shapesCmd)
}
