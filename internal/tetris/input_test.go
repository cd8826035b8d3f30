package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterIgnoresUnknownCommands(t *testing.T) {
	g := newTestGame(t, idxO)
	r := NewRouter(g)
	before := g.Snapshot()

	assert.Equal(t, Outcome{}, r.Handle(Input{Command: Command(99)}))
	assert.Equal(t, Outcome{}, r.Handle(Input{Command: CmdNone}))
	assert.Equal(t, before, g.Snapshot())
	assert.Equal(t, "unknown", Command(99).String())
}

func TestRouterSoftDropRepeatIsIdempotent(t *testing.T) {
	g := newTestGame(t, idxO)
	r := NewRouter(g)

	r.Handle(Input{Command: CmdSoftDropPress})
	gen := g.Gravity().Generation()
	require.True(t, g.SoftDropping())

	r.Handle(Input{Command: CmdSoftDropPress, Repeat: true})
	assert.Equal(t, gen, g.Gravity().Generation(), "repeat must not re-arm gravity")

	r.Handle(Input{Command: CmdSoftDropRelease})
	assert.False(t, g.SoftDropping())
	assert.Equal(t, g.Config().LevelInterval(1), g.Gravity().Interval())
}

func TestRouterRepeatedPressWithoutHoldIsIgnored(t *testing.T) {
	g := newTestGame(t, idxO)
	r := NewRouter(g)

	r.Handle(Input{Command: CmdSoftDropPress, Repeat: true})

	assert.False(t, g.SoftDropping())
}

func TestRouterOnlyStartWhileOver(t *testing.T) {
	g := newTestGame(t, idxO)
	r := NewRouter(g)
	g.board.rows[2][5] = Cell{Symbol: T, Status: StatusMerged}
	require.True(t, tick(t, g).GameOver)
	before := g.Snapshot()

	for _, c := range []Command{CmdLeft, CmdRight, CmdRotate, CmdSoftDropPress, CmdHardDrop, CmdPause} {
		r.Handle(Input{Command: c})
	}
	_, deadline := r.Pointer(0, time.Now())

	assert.Equal(t, before, g.Snapshot())
	assert.True(t, deadline.IsZero())

	r.Handle(Input{Command: CmdStart})
	assert.True(t, g.InProgress())
}

func TestRouterStartRestartsRound(t *testing.T) {
	g := newTestGame(t, idxO)
	r := NewRouter(g)
	r.Handle(Input{Command: CmdHardDrop})
	require.NotEqual(t, g.Board().String(), NewBoard(12, 20).Project(g.Piece()).String())

	r.Handle(Input{Command: CmdStart})

	assert.Equal(t, NewBoard(12, 20).Project(g.Piece()).String(), g.Board().String())
}

func TestRouterPointerThrottle(t *testing.T) {
	g := newTestGame(t, idxO)
	r := NewRouter(g)
	t0 := time.Unix(1000, 0)
	window := g.Config().GestureWindow
	start := g.Piece().Column()

	out, deadline := r.Pointer(0, t0)
	require.True(t, out.Moved)
	assert.True(t, deadline.IsZero())
	assert.Equal(t, start-1, g.Piece().Column())

	out, deadline = r.Pointer(0, t0.Add(10*time.Millisecond))
	assert.False(t, out.Moved, "inside the window")
	assert.Equal(t, t0.Add(window), deadline)

	// A newer sample replaces the pending one.
	_, _ = r.Pointer(11, t0.Add(20*time.Millisecond))

	assert.False(t, r.FlushPointer(t0.Add(50*time.Millisecond)).Moved, "window still open")

	out = r.FlushPointer(t0.Add(window))
	assert.True(t, out.Moved)
	assert.Equal(t, start, g.Piece().Column(), "latest sample steered right")

	_, pending := r.PointerPending()
	assert.False(t, pending)
	assert.False(t, r.FlushPointer(t0.Add(2*window)).Moved, "nothing left to flush")
}

func TestRouterPointerSameColumnDoesNothing(t *testing.T) {
	g := newTestGame(t, idxO)
	r := NewRouter(g)

	out, _ := r.Pointer(g.Piece().Column(), time.Unix(0, 0))

	assert.False(t, out.Moved)
}

func TestThrottle(t *testing.T) {
	th := NewThrottle[string](100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	v, ok, _ := th.Offer("a", t0)
	require.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok, _ = th.Offer("b", t0.Add(30*time.Millisecond))
	assert.False(t, ok)
	_, ok, _ = th.Offer("c", t0.Add(60*time.Millisecond))
	assert.False(t, ok)

	v, ok = th.Flush(t0.Add(100 * time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, "c", v, "intermediate samples are discarded")

	// The flush opened a new window.
	_, ok, _ = th.Offer("d", t0.Add(150*time.Millisecond))
	assert.False(t, ok)
	v, ok, _ = th.Offer("e", t0.Add(200*time.Millisecond))
	assert.True(t, ok)
	assert.Equal(t, "e", v)

	th.Reset()
	_, pending := th.Pending()
	assert.False(t, pending)
}
