package tetris

import "time"

// Gravity is the drop-tick scheduler state: Stopped, or Running with an
// interval. It does not own a timer. Whoever drives it arms one timer per
// generation for Delay() and hands the generation back with the tick;
// every Run or Stop starts a new generation, so ticks armed before the
// change are recognised as stale and dropped.
type Gravity struct {
	running    bool
	interval   time.Duration
	delay      time.Duration
	generation uint64
}

// Run switches to Running. The first tick fires after interval+grace,
// later ticks every interval.
func (g *Gravity) Run(interval, grace time.Duration) {
	g.generation++
	g.running = true
	g.interval = interval
	g.delay = interval + grace
}

// Stop switches to Stopped. Pending ticks become stale.
func (g *Gravity) Stop() {
	g.generation++
	g.running = false
	g.interval = 0
	g.delay = 0
}

// Running reports whether ticks are being scheduled.
func (g Gravity) Running() bool { return g.running }

// Interval returns the repeating tick interval, or 0 when stopped.
func (g Gravity) Interval() time.Duration { return g.interval }

// Delay returns how long until the next tick should fire.
func (g Gravity) Delay() time.Duration { return g.delay }

// Generation identifies the current schedule.
func (g Gravity) Generation() uint64 { return g.generation }

// Current reports whether a tick armed for gen may still fire.
func (g Gravity) Current(gen uint64) bool {
	return g.running && gen == g.generation
}

// fired consumes the grace period after the first tick of a schedule.
func (g *Gravity) fired() {
	g.delay = g.interval
}

// LevelInterval returns the drop interval for level: base/level, never
// below floor. Non-increasing in level.
func LevelInterval(level int, base, floor time.Duration) time.Duration {
	if level < 1 {
		level = 1
	}
	d := base / time.Duration(level)
	if d < floor {
		return floor
	}
	return d
}
