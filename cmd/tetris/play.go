package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local game",
	Long: `Start a local game in the terminal.

Controls:
  Left/Right, A/D, H/L  - Move
  Up, W, K, X           - Rotate
  Down, S, J            - Soft drop (hold)
  Space                 - Hard drop
  Mouse                 - Steer with the pointer, click to rotate
  P/Esc                 - Pause
  Enter/R               - Start or restart
  Tab                   - High scores (between rounds)
  O                     - Difficulty and piece order (between rounds)
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Slower gravity and a longer grace after soft drop
  normal - Config values as written
  hard   - Faster gravity, shorter grace
  fixed  - Gravity never speeds up

--difficulty picks the starting preset; the options screen changes it
for later rounds.

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: cfg,
		Preset: preset,
		Player: os.Getenv("USER"),
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Logger: logger,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(opts, store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
