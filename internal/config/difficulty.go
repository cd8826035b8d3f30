package config

import "time"

// ApplyPreset modifies the gravity timing based on a difficulty preset.
// Normal keeps the loaded values; fixed pins every level to the base
// interval so the game never speeds up.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.Base = scale(cfg.Gravity.Base, 3, 2)
		cfg.Gravity.Min = scale(cfg.Gravity.Min, 3, 2)
		cfg.Gravity.ReleaseGrace = scale(cfg.Gravity.ReleaseGrace, 3, 2)
	case DifficultyHard:
		cfg.Gravity.Base = scale(cfg.Gravity.Base, 3, 5)
		cfg.Gravity.Min = scale(cfg.Gravity.Min, 1, 2)
		cfg.Gravity.ReleaseGrace = scale(cfg.Gravity.ReleaseGrace, 1, 2)
	case DifficultyFixed:
		cfg.Gravity.Min = cfg.Gravity.Base
	}

	// Keep the floor reachable after scaling.
	if cfg.Gravity.Min > cfg.Gravity.Base {
		cfg.Gravity.Min = cfg.Gravity.Base
	}
}

// scale returns d*num/den, never below one millisecond.
func scale(d time.Duration, num, den int64) time.Duration {
	out := d * time.Duration(num) / time.Duration(den)
	if out < time.Millisecond {
		return time.Millisecond
	}
	return out
}
