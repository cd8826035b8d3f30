// Package registry provides a global registry for piece randomizers.
// Randomizers register themselves in init() functions, allowing the
// platform to pick one by name from config or flags without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Info contains metadata about a registered randomizer.
type Info struct {
	ID          string
	Description string
}

// Factory creates a selector seeded with seed. The same seed must yield
// the same sequence.
type Factory func(seed int64) tetris.Selector

type entry struct {
	factory     Factory
	description string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a randomizer factory to the registry.
// Panics if the ID is already registered.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: randomizer %q already registered", id))
	}
	entries[id] = entry{factory: f, description: description}
}

// List returns all registered randomizers, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for id, e := range entries {
		result = append(result, Info{ID: id, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a seeded selector by randomizer ID.
func Create(id string, seed int64) (tetris.Selector, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown randomizer %q", id)
	}

	return e.factory(seed), nil
}

// Exists checks if a randomizer with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
