package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusLevelCrossing(t *testing.T) {
	s := Status{Rows: 8, Level: 1}

	s, up := s.Apply(6, DefaultScoreTable)
	require.True(t, up)
	assert.Equal(t, 14, s.Rows)
	assert.Equal(t, 2, s.Level)

	s, up = s.Apply(6, DefaultScoreTable)
	assert.False(t, up, "20 rows does not exceed 2*10")
	assert.Equal(t, 2, s.Level)

	s, up = s.Apply(1, DefaultScoreTable)
	assert.True(t, up)
	assert.Equal(t, 3, s.Level)
}

func TestStatusMultiLevelJump(t *testing.T) {
	s := Status{Rows: 18, Level: 1}

	s, up := s.Apply(4, DefaultScoreTable)

	assert.True(t, up)
	assert.Equal(t, 3, s.Level, "22 rows exceeds both 10 and 20")
}

func TestStatusScoresAtPreviousLevel(t *testing.T) {
	s := Status{Rows: 9, Level: 1}

	s, _ = s.Apply(2, DefaultScoreTable)

	assert.Equal(t, 100, s.Score)
	assert.Equal(t, 2, s.Level)
}

func TestStatusNoClear(t *testing.T) {
	s := NewStatus()
	out, up := s.Apply(0, DefaultScoreTable)
	assert.False(t, up)
	assert.Equal(t, s, out)
}

func TestPointsRewardMultiLineClears(t *testing.T) {
	single := Points(1, DefaultScoreTable)
	prev := single
	for n := 2; n <= 6; n++ {
		p := Points(n, DefaultScoreTable)
		assert.Greater(t, p, n*single, "clearing %d rows at once beats %d singles", n, n)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
	assert.Equal(t, 0, Points(0, DefaultScoreTable))
}

func TestValidateScoreTable(t *testing.T) {
	tests := []struct {
		name  string
		table []int
		ok    bool
	}{
		{"default", DefaultScoreTable, true},
		{"empty", nil, false},
		{"zero single", []int{0, 100}, false},
		{"decreasing", []int{40, 100, 90}, false},
		{"no bonus", []int{40, 80}, false},
		{"single entry", []int{10}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateScoreTable(tc.table)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLevelIntervalMonotonic(t *testing.T) {
	base, floor := time.Second, 100*time.Millisecond

	assert.Equal(t, time.Second, LevelInterval(1, base, floor))
	assert.Equal(t, 500*time.Millisecond, LevelInterval(2, base, floor))
	assert.Equal(t, floor, LevelInterval(50, base, floor))

	prev := LevelInterval(1, base, floor)
	for level := 2; level <= 40; level++ {
		d := LevelInterval(level, base, floor)
		assert.LessOrEqual(t, d, prev)
		prev = d
	}
}

func TestGravityGenerations(t *testing.T) {
	var g Gravity
	require.False(t, g.Running())

	g.Run(time.Second, 200*time.Millisecond)
	gen := g.Generation()
	assert.True(t, g.Current(gen))
	assert.Equal(t, 1200*time.Millisecond, g.Delay())
	assert.Equal(t, time.Second, g.Interval())

	g.fired()
	assert.Equal(t, time.Second, g.Delay(), "grace only delays the first tick")

	g.Run(30*time.Millisecond, 0)
	assert.False(t, g.Current(gen), "ticks from the previous interval are stale")
	assert.True(t, g.Current(g.Generation()))

	g.Stop()
	assert.False(t, g.Running())
	assert.Equal(t, time.Duration(0), g.Interval())
	assert.False(t, g.Current(g.Generation()))
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Width = 2
	cfg.MinInterval = 2 * time.Second
	cfg.Kicks = []int{0}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smaller than 4x4")
	assert.Contains(t, err.Error(), "min interval")
	assert.Contains(t, err.Error(), "non-zero")
}
