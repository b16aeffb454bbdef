package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/games/slide"
	"github.com/vovakirdan/tui-slide/internal/platform/tui"
	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD/hjkl  - Move (diagonals combine two keys)
  P/Space           - Pause
  R                 - Reset (timed runs: after time is up)
  Esc/B             - Leave (when paused or finished)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options (slide_run):
  easy   - Longer run, slow speed ramp
  normal - Default run
  hard   - Shorter run, starts faster
  fixed  - No speed ramp

Examples:
  slide play slide
  slide play slide_run --difficulty hard
  slide play slide --config ./my-slide.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyDifficulty validates --difficulty and hands it to the slide modes.
func applyDifficulty() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	slide.SetDifficultyPreset(flagDifficulty)
	return nil
}

// terminalSize returns the size of stdout, falling back to 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openStore opens the runs database, returning nil with a warning on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'slide list' to see available modes)", gameID)
	}
	if err := applyDifficulty(); err != nil {
		return err
	}

	// Fail early on a broken custom config instead of silently using defaults
	if flagConfig != "" {
		if _, err := config.LoadSlide(flagConfig); err != nil {
			return err
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating mode: %w", err)
	}

	// Game still works without storage
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	if err := tui.Run(game, store, runtimeConfig(width, height)); err != nil {
		return fmt.Errorf("running mode: %w", err)
	}
	return nil
}
