// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris engine and its terminal front end.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// TetrisConfig contains all configuration for a game of tetris.
type TetrisConfig struct {
	Board      BoardConfig    `yaml:"board"`
	Gravity    GravityConfig  `yaml:"gravity"`
	Rotation   RotationConfig `yaml:"rotation"`
	Scoring    ScoringConfig  `yaml:"scoring"`
	Input      InputConfig    `yaml:"input"`
	Randomizer string         `yaml:"randomizer"` // registered randomizer ID
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines drop timing.
type GravityConfig struct {
	Base         time.Duration `yaml:"base"`     // interval at level 1
	Min          time.Duration `yaml:"min"`      // floor for high levels
	SoftDrop     time.Duration `yaml:"soft_drop"`
	ReleaseGrace time.Duration `yaml:"release_grace"`
}

// RotationConfig defines wall-kick offsets tried after an in-place rotation fails.
type RotationConfig struct {
	Kicks []int `yaml:"kicks"`
}

// ScoringConfig defines the base points for 1..n rows cleared at once.
type ScoringConfig struct {
	Table []int `yaml:"table"`
}

// InputConfig defines input timing of the terminal front end.
type InputConfig struct {
	GestureWindow time.Duration `yaml:"gesture_window"` // pointer throttle window
	// SoftDropRelease is the silence after which a held soft-drop key is
	// considered released. Terminals report no key-up events.
	SoftDropRelease time.Duration `yaml:"soft_drop_release"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

// Difficulty presets.
const (
	DifficultyEasy   DifficultyPreset = "easy"   // slower gravity, longer grace
	DifficultyNormal DifficultyPreset = "normal" // config values as written
	DifficultyHard   DifficultyPreset = "hard"   // faster gravity, shorter grace
	DifficultyFixed  DifficultyPreset = "fixed"  // gravity never speeds up
)

// Presets lists every difficulty preset from easiest to hardest, with
// fixed last.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// Description returns a short human-readable summary of the preset.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "slower gravity, longer grace"
	case DifficultyNormal:
		return "config values as written"
	case DifficultyHard:
		return "faster gravity, shorter grace"
	case DifficultyFixed:
		return "gravity never speeds up"
	default:
		return ""
	}
}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Engine converts the file config into the engine config.
func (c TetrisConfig) Engine() tetris.Config {
	return tetris.Config{
		Width:            c.Board.Width,
		Height:           c.Board.Height,
		BaseInterval:     c.Gravity.Base,
		MinInterval:      c.Gravity.Min,
		SoftDropInterval: c.Gravity.SoftDrop,
		ReleaseGrace:     c.Gravity.ReleaseGrace,
		Kicks:            append([]int(nil), c.Rotation.Kicks...),
		ScoreTable:       append([]int(nil), c.Scoring.Table...),
		GestureWindow:    c.Input.GestureWindow,
	}
}

// Validate reports values the game cannot run with.
func (c TetrisConfig) Validate() error {
	if err := c.Engine().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Input.SoftDropRelease <= 0 {
		return fmt.Errorf("config: input.soft_drop_release must be positive")
	}
	if c.Randomizer == "" {
		return fmt.Errorf("config: randomizer must be set")
	}
	return nil
}
