package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagSeed     int64
	flagNoAudio  bool
	flagNoRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a two-player match in this terminal.

Controls:
  W/S        - Left paddle
  Up/Down    - Right paddle
  Space      - Serve
  P/Esc      - Pause
  Ctrl+S     - Save a PNG screenshot to ~/.pong/screenshots
  Q/Ctrl+C   - Quit (the match is saved as a replay)

Examples:
  pong play
  pong play --seed 42
  pong play --no-audio --no-record`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not save a replay")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg := appConfig

	logger, closeLog, err := newFileLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := baseOptions(cfg, logger)
	opts.Runtime.Seed = flagSeed
	opts.ScreenshotDir = filepath.Join(config.Dir(), "screenshots")

	// Open replay storage
	if cfg.Replay.Enabled && !flagNoRecord {
		store, err := storage.Open(cfg.Replay.DBPath)
		if err != nil {
			logger.Warn("could not open replay database", "error", err)
			// Continue without recording - game still works
		} else {
			defer store.Close()
			opts.Store = store
		}
	}

	if cfg.Audio.Enabled && !flagNoAudio {
		router := audio.NewRouter(audio.NewBank())
		player := audio.NewPlayer(router)
		if err := player.Start(cfg.Audio.Buffer()); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			defer player.Close()
			opts.Router = router
		}
	}

	final, err := tui.Run(tui.NewModel(opts))
	if err != nil {
		return err
	}

	s := final.Game().State()
	fmt.Printf("Final score %d : %d\n", s.LeftScore, s.RightScore)
	if id := final.SavedReplayID(); id != 0 {
		fmt.Printf("Saved as replay %d (pong replay %d)\n", id, id)
	}
	return nil
}

// baseOptions maps the host config onto TUI options. The pixel buffer
// starts at the terminal size when fit_terminal is set.
func baseOptions(cfg config.Config, logger *log.Logger) tui.Options {
	rt := core.RuntimeConfig{
		ScreenW:  cfg.Display.Width,
		ScreenH:  cfg.Display.Height,
		TickRate: cfg.Display.TickRate,
	}
	if cfg.Display.FitTerminal {
		w, h := terminalSize()
		rt.ScreenW, rt.ScreenH = w, max(h-1, 1)*2
	}

	return tui.Options{
		Runtime:     rt,
		KeyHold:     cfg.Display.KeyHold(),
		FitTerminal: cfg.Display.FitTerminal,
		Logger:      logger,
	}
}
