package tetris

// RowsPerLevel is how many cleared rows each level spans.
const RowsPerLevel = 10

// DefaultScoreTable holds the base points for clearing 1..4 rows at once.
// Each entry beats clearing the same rows one at a time.
var DefaultScoreTable = []int{40, 100, 300, 1200}

// Status is the player-visible progress of a round.
type Status struct {
	Score int
	Rows  int
	Level int
}

// NewStatus returns the status at the start of a round.
func NewStatus() Status {
	return Status{Level: 1}
}

// Apply records a line-clear event of cleared rows. Points are scored at
// the level in effect before the clear; the level then advances while the
// cumulative row count exceeds level*RowsPerLevel. Reports whether the
// level changed.
func (s Status) Apply(cleared int, table []int) (Status, bool) {
	if cleared <= 0 {
		return s, false
	}
	s.Score += Points(cleared, table) * s.Level
	s.Rows += cleared

	before := s.Level
	for s.Rows > s.Level*RowsPerLevel {
		s.Level++
	}
	return s, s.Level != before
}

// Points returns the base reward for clearing n rows in one event.
// Counts beyond the table extend its last entry linearly.
func Points(n int, table []int) int {
	if n <= 0 || len(table) == 0 {
		return 0
	}
	if n <= len(table) {
		return table[n-1]
	}
	last := table[len(table)-1]
	return last * (n - len(table) + 1)
}
