package tetris

// Selector picks the next catalog index. Implementations must return a
// value in [0, n) and must eventually return every index.
type Selector interface {
	Next(n int) int
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(n int) int

// Next calls f.
func (f SelectorFunc) Next(n int) int {
	return f(n)
}

// Cycle returns a Selector that repeats the given indices in order.
// Useful for scripted rounds and tests.
func Cycle(indices ...int) Selector {
	if len(indices) == 0 {
		panic("tetris: empty cycle")
	}
	i := 0
	return SelectorFunc(func(n int) int {
		idx := indices[i%len(indices)]
		i++
		return idx % n
	})
}
