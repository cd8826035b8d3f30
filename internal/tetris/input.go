package tetris

import "time"

// Command is a discrete player intent.
type Command int

// Commands accepted by the router.
const (
	CmdNone            Command = iota // unmapped input, ignored
	CmdStart                          // start or restart a round
	CmdLeft                           // move one column left
	CmdRight                          // move one column right
	CmdRotate                         // rotate clockwise with kicks
	CmdSoftDropPress                  // switch gravity to the fast interval
	CmdSoftDropRelease                // return gravity to the level interval
	CmdHardDrop                       // drop and lock immediately
	CmdPause                          // toggle pause
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdStart:
		return "start"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdRotate:
		return "rotate"
	case CmdSoftDropPress:
		return "soft-drop-press"
	case CmdSoftDropRelease:
		return "soft-drop-release"
	case CmdHardDrop:
		return "hard-drop"
	case CmdPause:
		return "pause"
	default:
		return "unknown"
	}
}

// Input is one input event. Repeat is set for auto-repeated key presses.
type Input struct {
	Command Command
	Repeat  bool
}

// Router maps input events and pointer samples onto game transitions.
type Router struct {
	game    *Game
	pointer *Throttle[int]
}

// NewRouter returns a router for g using the game's gesture window.
func NewRouter(g *Game) *Router {
	return &Router{
		game:    g,
		pointer: NewThrottle[int](g.cfg.GestureWindow),
	}
}

// Game returns the routed game.
func (r *Router) Game() *Game { return r.game }

// Handle applies one input event. Unknown commands are ignored. While the
// round is over (or not yet started) only CmdStart is honoured.
func (r *Router) Handle(in Input) Outcome {
	g := r.game
	if in.Command == CmdStart {
		g.Start()
		r.pointer.Reset()
		return Outcome{Moved: true}
	}
	if !g.InProgress() {
		return Outcome{}
	}

	switch in.Command {
	case CmdLeft:
		return Outcome{Moved: g.MoveLeft()}
	case CmdRight:
		return Outcome{Moved: g.MoveRight()}
	case CmdRotate:
		return Outcome{Moved: g.Rotate()}
	case CmdSoftDropPress:
		if !in.Repeat {
			g.SoftDropPress()
		}
	case CmdSoftDropRelease:
		g.SoftDropRelease()
	case CmdHardDrop:
		return g.HardDrop()
	case CmdPause:
		g.TogglePause()
	}
	return Outcome{}
}

// Pointer feeds a pointer sample already mapped to a board column. At most
// one move is produced per gesture window; a sample that arrives too early
// is held and the returned deadline says when FlushPointer should run.
func (r *Router) Pointer(column int, now time.Time) (Outcome, time.Time) {
	if !r.game.InProgress() {
		return Outcome{}, time.Time{}
	}
	col, ok, deadline := r.pointer.Offer(column, now)
	if !ok {
		return Outcome{}, deadline
	}
	return r.steer(col), time.Time{}
}

// FlushPointer applies the held pointer sample once its window closed.
func (r *Router) FlushPointer(now time.Time) Outcome {
	col, ok := r.pointer.Flush(now)
	if !ok || !r.game.InProgress() {
		return Outcome{}
	}
	return r.steer(col)
}

// PointerPending returns the deadline of a held pointer sample.
func (r *Router) PointerPending() (time.Time, bool) {
	return r.pointer.Pending()
}

// steer moves one column toward target, comparing it with the piece's
// leftmost occupied column.
func (r *Router) steer(target int) Outcome {
	switch at := r.game.Piece().Column(); {
	case target < at:
		return Outcome{Moved: r.game.MoveLeft()}
	case target > at:
		return Outcome{Moved: r.game.MoveRight()}
	default:
		return Outcome{}
	}
}
