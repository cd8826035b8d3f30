package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultConfig returns the default tetris configuration.
func DefaultConfig() TetrisConfig {
	engine := tetris.DefaultConfig()
	return TetrisConfig{
		Board: BoardConfig{
			Width:  engine.Width,
			Height: engine.Height,
		},
		Gravity: GravityConfig{
			Base:         engine.BaseInterval,
			Min:          engine.MinInterval,
			SoftDrop:     engine.SoftDropInterval,
			ReleaseGrace: engine.ReleaseGrace,
		},
		Rotation: RotationConfig{
			Kicks: engine.Kicks,
		},
		Scoring: ScoringConfig{
			Table: engine.ScoreTable,
		},
		Input: InputConfig{
			GestureWindow:   engine.GestureWindow,
			SoftDropRelease: 150 * time.Millisecond,
		},
		Randomizer: "bag",
	}
}
