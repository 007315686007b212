// breakout is a terminal Breakout game: a paddle, a ball and, in the bricks
// variant, a wall of bricks to clear.
//
// Usage:
//
//	breakout                     - Start the variant picker
//	breakout list                - List available variants
//	breakout play <variant>      - Play a variant directly
//	breakout menu                - Start the variant picker
//	breakout config <variant>    - Print the effective config as YAML
//	breakout serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Frame rate for frame-driven variants (default: 60)
//	--config <path>       - Custom config YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file while playing
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce the ball, clear the bricks",
	Long: `Breakout is a terminal take on the classic paddle and ball game.

Two variants are available:
  bricks   - Clear the brick grid with a limited number of lives
  classic  - Keep the ball in play for as long as you can

Available commands:
  list     - Show all variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker (default)
  config   - Print the effective config for a variant
  serve    - Start SSH server for remote play

Examples:
  breakout
  breakout play bricks --difficulty hard
  breakout play classic --config ./classic.yaml
  breakout serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate for frame-driven variants")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyGlobalFlags hands the shared flags to the game package.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	if err := checkConfigFile(flagConfig); err != nil {
		return err
	}
	breakout.SetConfigPath(flagConfig)
	return nil
}

// checkConfigFile rejects a --config file that no variant can load.
func checkConfigFile(path string) error {
	if path == "" {
		return nil
	}
	var errs []error
	for _, g := range registry.List() {
		if _, err := config.Load(g.ID, path); err != nil {
			errs = append(errs, err)
			continue
		}
		return nil
	}
	return errors.Join(errs...)
}

// newLogger builds a logger writing to w at the requested level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// playLogger returns the logger used while a game owns the terminal.
// Logs are discarded unless --log-file is set, since writing to the
// terminal would corrupt the game screen.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard, "breakout"), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	closeLog := func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "cannot close log file: %v\n", err)
		}
	}
	return newLogger(f, "breakout"), closeLog, nil
}

// terminalConfig sizes the runtime config from the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}
