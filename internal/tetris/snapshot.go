package tetris

import "time"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Ticks    uint64
	Board    string // projected board, see Board.String
	Piece    Symbol
	Anchor   Point
	Next     Symbol
	Status   Status
	Started  bool
	GameOver bool
	Paused   bool
	SoftDrop bool
	Interval time.Duration
	Running  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Ticks:    g.ticks,
		Board:    g.Board().String(),
		Piece:    g.piece.Symbol,
		Anchor:   g.piece.Anchor,
		Next:     g.catalog[g.next].Symbol,
		Status:   g.status,
		Started:  g.started,
		GameOver: g.over,
		Paused:   g.paused,
		SoftDrop: g.softDrop,
		Interval: g.gravity.Interval(),
		Running:  g.gravity.Running(),
	}
}
