// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as "tetris play")
//	tetris play              - Play a local game
//	tetris scores            - Show high scores
//	tetris serve             - Start SSH server for remote play
//	tetris pieces            - Print the piece catalog
//	tetris randomizers       - List piece randomizers
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Preset: easy, normal, hard, fixed
//	--seed <value>       - RNG seed for reproducible piece order
//	--db <path>          - Scores database (default: ~/.tetris/scores.db)
//	--log-file <path>    - Write logs to a file during local play
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/registry"

	// Register piece randomizers
	_ "github.com/vovakirdan/tui-tetris/internal/randomizer"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A falling-block puzzle game that runs in the terminal or over SSH.

Available commands:
  play         - Play a local game (default)
  scores       - View high scores
  serve        - Start SSH server for remote play
  pieces       - Print every piece in all four rotations
  randomizers  - List piece randomizers

Examples:
  tetris
  tetris play --difficulty hard
  tetris scores
  tetris serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for local play (logs are discarded when empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(randomizersCmd)
}

// loadConfig resolves the config file and the difficulty preset. The
// preset is returned separately because sessions can switch it; the
// config is checked with it applied.
func loadConfig() (config.TetrisConfig, config.DifficultyPreset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, "", err
	}

	applied := cfg
	config.ApplyPreset(&applied, preset)
	if err := applied.Validate(); err != nil {
		return cfg, "", err
	}
	if !registry.Exists(cfg.Randomizer) {
		return cfg, "", fmt.Errorf("unknown randomizer %q (run 'tetris randomizers' to list them)", cfg.Randomizer)
	}
	return cfg, preset, nil
}

// newLogger builds the process logger. The returned closer releases the log
// file, if any.
func newLogger(w io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	closer := func() {}
	if w == nil {
		w = io.Discard
		if flagLogFile != "" {
			f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if openErr != nil {
				return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
			}
			w = f
			closer = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, closer, nil
}
