package tetris

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the engine tunables. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Width  int
	Height int

	BaseInterval     time.Duration // drop interval at level 1
	MinInterval      time.Duration // floor for high levels
	SoftDropInterval time.Duration
	ReleaseGrace     time.Duration // added to the first tick after a soft-drop release

	Kicks      []int
	ScoreTable []int

	GestureWindow time.Duration // pointer throttle window
}

// DefaultConfig returns the standard 12x20 setup.
func DefaultConfig() Config {
	return Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		BaseInterval:     1000 * time.Millisecond,
		MinInterval:      100 * time.Millisecond,
		SoftDropInterval: 30 * time.Millisecond,
		ReleaseGrace:     200 * time.Millisecond,
		Kicks:            append([]int(nil), DefaultKicks...),
		ScoreTable:       append([]int(nil), DefaultScoreTable...),
		GestureWindow:    100 * time.Millisecond,
	}
}

// LevelInterval returns the gravity interval for level under this config.
func (c Config) LevelInterval(level int) time.Duration {
	return LevelInterval(level, c.BaseInterval, c.MinInterval)
}

// Validate checks the config for values the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 4 || c.Height < 4 {
		errs = append(errs, fmt.Errorf("board %dx%d is smaller than 4x4", c.Width, c.Height))
	}
	if c.BaseInterval <= 0 {
		errs = append(errs, errors.New("base interval must be positive"))
	}
	if c.MinInterval <= 0 || c.MinInterval > c.BaseInterval {
		errs = append(errs, fmt.Errorf("min interval %s must be in (0, %s]", c.MinInterval, c.BaseInterval))
	}
	if c.SoftDropInterval <= 0 {
		errs = append(errs, errors.New("soft drop interval must be positive"))
	}
	if c.ReleaseGrace < 0 {
		errs = append(errs, errors.New("release grace must not be negative"))
	}
	if c.GestureWindow <= 0 {
		errs = append(errs, errors.New("gesture window must be positive"))
	}
	for _, k := range c.Kicks {
		if k == 0 {
			errs = append(errs, errors.New("kick offsets must be non-zero"))
			break
		}
	}
	if err := validateScoreTable(c.ScoreTable); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// validateScoreTable requires positive, non-decreasing entries where
// clearing n rows at once pays more than n single clears.
func validateScoreTable(table []int) error {
	if len(table) == 0 {
		return errors.New("score table is empty")
	}
	if table[0] <= 0 {
		return fmt.Errorf("score table entry 1 is %d, must be positive", table[0])
	}
	for i := 1; i < len(table); i++ {
		if table[i] < table[i-1] {
			return fmt.Errorf("score table entry %d (%d) is below entry %d (%d)", i+1, table[i], i, table[i-1])
		}
		if table[i] <= (i+1)*table[0] {
			return fmt.Errorf("score table entry %d (%d) must exceed %d single clears (%d)", i+1, table[i], i+1, (i+1)*table[0])
		}
	}
	return nil
}
