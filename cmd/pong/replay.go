package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/replay"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagHeadless bool

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded matches",
	Long: `Show recorded matches in a table. Press Enter to watch one,
x to delete it.`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Watch a recorded match",
	Long: `Re-simulate a recorded match from its seed and inputs.

With --headless the match is simulated without a terminal UI and the
final score is printed.

Examples:
  pong replay 3
  pong replay 3 --headless`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Simulate without the UI and print the result")
}

func openReplayStore() (*storage.Store, error) {
	if appConfig.Replay.DBPath == "" {
		return nil, errors.New("replay.db_path is not set")
	}
	return storage.Open(appConfig.Replay.DBPath)
}

func runReplays(_ *cobra.Command, _ []string) error {
	store, err := openReplayStore()
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := terminalSize()
	id, err := tui.RunReplayBrowser(store, width, height)
	if err != nil || id == 0 {
		return err
	}
	return watchReplay(store, id)
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid replay id %q: %w", args[0], err)
	}

	store, err := openReplayStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHeadless {
		return printReplay(store, id)
	}
	return watchReplay(store, id)
}

// printReplay re-simulates a replay and prints the outcome.
func printReplay(store *storage.Store, id int64) error {
	entry, err := store.Replay(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("replay %d: %w", id, replay.ErrNotFound)
	}
	frames, err := store.Frames(id)
	if err != nil {
		return err
	}

	res := replay.Run(entry.Seed, frames)
	fmt.Printf("Replay %d (seed %d, %d frames, %s)\n", id, entry.Seed, entry.Frames, entry.Duration)
	fmt.Printf("  Final score   %d : %d\n", res.Final.LeftScore, res.Final.RightScore)
	fmt.Printf("  Wall bounces  %d\n", res.Events[pong.ToneWallBounce])
	fmt.Printf("  Paddle hits   %d\n", res.Events[pong.TonePaddleBounce])
	fmt.Printf("  State hash    %016x\n", res.Final.Hash())
	return nil
}

// watchReplay plays a replay back in the terminal.
func watchReplay(store *storage.Store, id int64) error {
	p, err := replay.Load(store, id)
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger(appConfig.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	_, err = tui.Run(tui.NewPlaybackModel(p, baseOptions(appConfig, logger)))
	return err
}
