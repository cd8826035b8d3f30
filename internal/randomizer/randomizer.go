// Package randomizer implements the piece selection policies and
// registers them with the registry.
package randomizer

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Registered randomizer IDs.
const (
	UniformID = "uniform" // independent draw per piece
	BagID     = "bag"     // every piece once per shuffled round
)

func init() {
	registry.Register(UniformID, "independent uniform draw per piece", func(seed int64) tetris.Selector {
		return NewUniform(seed)
	})
	registry.Register(BagID, "shuffled bag holding each piece once", func(seed int64) tetris.Selector {
		return NewBag(seed)
	})
}

// Uniform draws every piece independently.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform returns a uniform selector seeded with seed.
func NewUniform(seed int64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewSource(seed))}
}

// Next returns an index in [0, n).
func (u *Uniform) Next(n int) int {
	return u.rng.Intn(n)
}

// Bag deals a shuffled permutation of all indices before reshuffling, so
// every piece appears exactly once per n draws.
type Bag struct {
	rng *rand.Rand
	bag []int
}

// NewBag returns a bag selector seeded with seed.
func NewBag(seed int64) *Bag {
	return &Bag{rng: rand.New(rand.NewSource(seed))}
}

// Next pops the next index, refilling the bag when empty or when the
// catalog size changed.
func (b *Bag) Next(n int) int {
	if len(b.bag) == 0 || b.stale(n) {
		b.refill(n)
	}
	idx := b.bag[0]
	b.bag = b.bag[1:]
	return idx
}

func (b *Bag) refill(n int) {
	bag := make([]int, n)
	for i := range bag {
		bag[i] = i
	}
	b.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	b.bag = bag
}

func (b *Bag) stale(n int) bool {
	for _, idx := range b.bag {
		if idx >= n {
			return true
		}
	}
	return false
}
