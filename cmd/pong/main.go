// pong is a two-player terminal Pong with a deterministic core.
//
// Usage:
//
//	pong play                - Play a hot-seat match in this terminal
//	pong replays             - Browse recorded matches
//	pong replay <id>         - Watch a recorded match
//	pong serve               - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.pong/config.yaml, ./configs/pong.yaml)
//	--log-level <level> - Override log.level from the config
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	// Loaded in PersistentPreRunE
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Two-player Pong in your terminal",
	Long: `Pong for two players sharing one keyboard.

Available commands:
  play     - Play a match
  replays  - Browse recorded matches
  replay   - Watch a recorded match
  serve    - Start SSH server for remote play

Examples:
  pong play
  pong play --seed 42 --no-audio
  pong replays
  pong replay 7 --headless
  pong serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagLogLevel != "" {
			if _, err := log.ParseLevel(flagLogLevel); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			cfg.Log.Level = flagLogLevel
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}

// newFileLogger opens the configured log file. The TUI owns the terminal,
// so interactive commands never log to stderr. The returned close func is
// never nil.
func newFileLogger(cfg config.LogConfig) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	if cfg.File == "" {
		logger := log.NewWithOptions(io.Discard, log.Options{Level: level})
		return logger, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log: cannot open %s: %w", cfg.File, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// terminalSize returns the terminal size, falling back to 80x24.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
