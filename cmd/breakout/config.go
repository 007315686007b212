package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <variant>",
	Short: "Print the effective config for a variant",
	Long: `Loads the variant config the same way play does and prints it as YAML.
The output is a complete file that can be edited and passed back with
--config.

Examples:
  breakout config bricks
  breakout config bricks --difficulty hard > hard.yaml
  breakout config classic --config ./classic.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset to apply: easy, normal, hard")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if err := checkVariant(args[0]); err != nil {
		return err
	}

	cfg, err := config.Load(args[0], flagConfig)
	if err != nil {
		return err
	}
	preset, _ := config.ParsePreset(flagDifficulty)
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
