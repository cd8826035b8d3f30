package tui

// softDropHold turns the terminal's stream of key presses into
// press/repeat/release events. Terminals deliver no key-up, so a held key
// shows up as auto-repeated presses and a release is inferred once no
// press arrived for the release timeout.
type softDropHold struct {
	holding bool
	seq     uint64
}

// press records a soft-drop key press. It reports whether the press is an
// auto-repeat of a key already held and returns the sequence number the
// release check must carry.
func (h *softDropHold) press() (repeat bool, seq uint64) {
	repeat = h.holding
	h.holding = true
	h.seq++
	return repeat, h.seq
}

// expired reports whether the check armed with seq is the latest one for
// a key still held; if so the key counts as released.
func (h *softDropHold) expired(seq uint64) bool {
	if !h.holding || seq != h.seq {
		return false
	}
	h.holding = false
	return true
}

// reset forgets any held key, e.g. on restart.
func (h *softDropHold) reset() {
	h.holding = false
	h.seq++
}
