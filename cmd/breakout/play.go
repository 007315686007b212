package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Left/A/H     - Move paddle left
  Right/D/L    - Move paddle right
  Mouse        - Move paddle (bricks variant)
  P/Space      - Pause
  Esc/B        - Leave the game
  Ctrl+S       - Save a screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy    - More lives, wider paddle, slower ball
  normal  - The config as written
  hard    - Fewer lives, narrower paddle, faster ball

Examples:
  breakout play bricks
  breakout play bricks --difficulty easy
  breakout play classic --config ./my-classic.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// checkVariant resolves the variant and validates its config and preset,
// so problems surface before the terminal is taken over.
func checkVariant(gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'breakout list' to see available variants", gameID)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if _, err := config.Load(gameID, flagConfig); err != nil {
		return err
	}
	return nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if err := checkVariant(gameID); err != nil {
		return err
	}
	breakout.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(game, logger, terminalConfig())
}
