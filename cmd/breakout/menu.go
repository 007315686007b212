package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the variant picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a variant, left/right or tab to change the
difficulty and Enter to start. Leaving a game returns to the menu.

Controls:
  Up/Down/j/k      - Navigate menu
  Left/Right/Tab   - Change difficulty
  Enter/Space      - Select variant
  Q                - Quit

Examples:
  breakout menu
  breakout menu --fps 30
  breakout menu --log-file ./breakout.log --log-level debug`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}

		game, err := tui.NewGame(result)
		if err != nil {
			logger.Error("cannot start game", "game", result.GameID, "error", err)
			continue
		}

		if err := tui.Run(game, logger, cfg); err != nil {
			return err
		}
	}
}
