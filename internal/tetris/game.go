package tetris

import "fmt"

// Outcome describes what a single transition did.
type Outcome struct {
	Moved     bool // the active piece changed position or orientation
	Locked    bool // a piece was merged and replaced
	Cleared   int  // rows removed by the lock
	Points    int  // score gained by the lock
	LeveledUp bool
	GameOver  bool
}

// Game owns the board, the active piece, the round status and the gravity
// schedule. Every exported method is one complete transition; callers must
// not invoke methods concurrently. The platform serialises ticks and input
// on a single event loop.
type Game struct {
	cfg      Config
	catalog  Catalog
	selector Selector

	board  Board // settled cells only
	piece  Piece
	next   int
	status Status

	gravity Gravity

	started  bool
	over     bool
	paused   bool
	softDrop bool
	ticks    uint64
}

// New creates an idle game. Start begins the first round. Panics on an
// invalid config, an empty catalog or a nil selector.
func New(cfg Config, catalog Catalog, sel Selector) *Game {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("tetris: invalid config: %v", err))
	}
	if len(catalog) == 0 {
		panic("tetris: empty catalog")
	}
	if sel == nil {
		panic("tetris: nil selector")
	}
	for _, t := range catalog {
		if t.Shape.Size() > cfg.Width {
			panic(fmt.Sprintf("tetris: piece %s wider than board", t.Symbol))
		}
	}
	return &Game{
		cfg:      cfg,
		catalog:  catalog,
		selector: sel,
		board:    NewBoard(cfg.Width, cfg.Height),
		status:   NewStatus(),
	}
}

// Reconfigure replaces the config and selector between rounds and returns
// the game to its idle state. The gravity generation keeps counting, so
// ticks armed before the change stay stale. Panics while a round is in
// progress or when New would panic.
func (g *Game) Reconfigure(cfg Config, sel Selector) {
	if g.InProgress() {
		panic("tetris: reconfigure during a round")
	}
	next := New(cfg, g.catalog, sel)
	next.gravity = g.gravity
	next.gravity.Stop()
	*g = *next
}

// Config returns the engine configuration.
func (g *Game) Config() Config { return g.cfg }

// Start begins a fresh round: empty board, new piece, reset status and
// gravity running at the level-1 interval. Valid at any time.
func (g *Game) Start() {
	g.board = NewBoard(g.cfg.Width, g.cfg.Height)
	g.status = NewStatus()
	g.started = true
	g.over = false
	g.paused = false
	g.softDrop = false
	g.ticks = 0
	g.next = g.pick()
	g.spawn()
	g.gravity.Run(g.cfg.LevelInterval(g.status.Level), 0)
}

// MoveLeft shifts the piece one column left if free.
func (g *Game) MoveLeft() bool { return g.shift(-1) }

// MoveRight shifts the piece one column right if free.
func (g *Game) MoveRight() bool { return g.shift(1) }

func (g *Game) shift(dx int) bool {
	if !g.playable() {
		return false
	}
	p, ok := Move(g.piece, g.board, dx, 0)
	if ok {
		g.piece = p
	}
	return ok
}

// Rotate turns the piece clockwise, trying the configured kicks.
func (g *Game) Rotate() bool {
	if !g.playable() {
		return false
	}
	p, ok := Rotate(g.piece, g.board, g.cfg.Kicks)
	if ok {
		g.piece = p
	}
	return ok
}

// SoftDropPress switches gravity to the fast interval. Pressing again
// while already fast is a no-op.
func (g *Game) SoftDropPress() bool {
	if !g.playable() || g.softDrop {
		return false
	}
	g.softDrop = true
	g.gravity.Run(g.cfg.SoftDropInterval, 0)
	return true
}

// SoftDropRelease returns gravity to the level interval, delaying the
// first tick by the release grace.
func (g *Game) SoftDropRelease() bool {
	if !g.softDrop {
		return false
	}
	g.softDrop = false
	if !g.playable() {
		return false
	}
	g.gravity.Run(g.cfg.LevelInterval(g.status.Level), g.cfg.ReleaseGrace)
	return true
}

// HardDrop moves the piece straight down and locks it in one transition.
func (g *Game) HardDrop() Outcome {
	if !g.playable() {
		return Outcome{}
	}
	for {
		p, ok := Move(g.piece, g.board, 0, 1)
		if !ok {
			break
		}
		g.piece = p
	}
	return g.lock()
}

// TogglePause stops or resumes gravity for a round in progress.
func (g *Game) TogglePause() bool {
	if !g.started || g.over {
		return false
	}
	g.paused = !g.paused
	if g.paused {
		g.softDrop = false
		g.gravity.Stop()
	} else {
		g.gravity.Run(g.cfg.LevelInterval(g.status.Level), 0)
	}
	return true
}

// Tick applies one gravity step if gen is the current schedule. Stale
// ticks are ignored and report false.
func (g *Game) Tick(gen uint64) (Outcome, bool) {
	if !g.gravity.Current(gen) || !g.playable() {
		return Outcome{}, false
	}
	g.gravity.fired()
	g.ticks++

	if p, ok := Move(g.piece, g.board, 0, 1); ok {
		g.piece = p
		return Outcome{Moved: true}, true
	}
	return g.lock(), true
}

// lock runs the lock sequence after a rejected downward move. A piece
// that never left the top row ends the round; otherwise it is merged,
// full rows are swept, scoring is applied and the next piece spawns.
func (g *Game) lock() Outcome {
	if g.piece.Anchor.Y < 1 {
		g.over = true
		g.softDrop = false
		g.gravity.Stop()
		return Outcome{GameOver: true}
	}

	g.piece.Collided = true
	g.board = g.board.Merge(g.piece)

	out := Outcome{Locked: true}
	g.board, out.Cleared = g.board.SweepFullRows()
	if out.Cleared > 0 {
		before := g.status.Score
		g.status, out.LeveledUp = g.status.Apply(out.Cleared, g.cfg.ScoreTable)
		out.Points = g.status.Score - before
		if out.LeveledUp && !g.softDrop {
			g.gravity.Run(g.cfg.LevelInterval(g.status.Level), 0)
		}
	}

	g.spawn()
	return out
}

func (g *Game) spawn() {
	g.piece = Spawn(g.catalog[g.next], g.cfg.Width)
	g.next = g.pick()
}

func (g *Game) pick() int {
	idx := g.selector.Next(len(g.catalog))
	if idx < 0 || idx >= len(g.catalog) {
		panic(fmt.Sprintf("tetris: selector returned %d for %d pieces", idx, len(g.catalog)))
	}
	return idx
}

func (g *Game) playable() bool {
	return g.started && !g.over && !g.paused
}

// Board returns the settled board with the active piece overlaid.
func (g *Game) Board() Board {
	if !g.started {
		return g.board
	}
	return g.board.Project(g.piece)
}

// Settled returns the board without the active piece.
func (g *Game) Settled() Board { return g.board }

// Piece returns the active piece.
func (g *Game) Piece() Piece { return g.piece }

// Next returns the piece that spawns after the active one.
func (g *Game) Next() Tetromino { return g.catalog[g.next] }

// Status returns score, cleared rows and level.
func (g *Game) Status() Status { return g.status }

// Gravity returns the scheduler state.
func (g *Game) Gravity() Gravity { return g.gravity }

// Started reports whether a round has ever been started.
func (g *Game) Started() bool { return g.started }

// GameOver reports whether the current round has ended.
func (g *Game) GameOver() bool { return g.over }

// Paused reports whether the round is paused.
func (g *Game) Paused() bool { return g.paused }

// SoftDropping reports whether the fast interval is active.
func (g *Game) SoftDropping() bool { return g.softDrop }

// InProgress reports whether a round is running (possibly paused).
func (g *Game) InProgress() bool { return g.started && !g.over }
