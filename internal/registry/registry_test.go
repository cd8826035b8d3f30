package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestRegisterAndCreate(t *testing.T) {
	var gotSeed int64
	Register("test-fixed", "always the first piece", func(seed int64) tetris.Selector {
		gotSeed = seed
		return tetris.Cycle(0)
	})

	require.True(t, Exists("test-fixed"))

	sel, err := Create("test-fixed", 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), gotSeed)
	assert.Equal(t, 0, sel.Next(7))
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-randomizer", 1)

	assert.ErrorContains(t, err, "unknown randomizer")
	assert.False(t, Exists("no-such-randomizer"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(int64) tetris.Selector { return tetris.Cycle(0) }
	Register("test-dup", "", f)

	assert.Panics(t, func() { Register("test-dup", "", f) })
}

func TestListSorted(t *testing.T) {
	f := func(int64) tetris.Selector { return tetris.Cycle(0) }
	Register("test-zz", "last", f)
	Register("test-aa", "first", f)

	list := List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
	assert.Contains(t, list, Info{ID: "test-aa", Description: "first"})
}
