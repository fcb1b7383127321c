// Package registry provides a global registry for level factories.
// Levels register themselves in init() functions, so the next level named by
// an advance outcome is looked up by ID instead of being hardcoded.
package registry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/sim"
)

// ErrUnknownLevel is returned when no level is registered under an ID.
var ErrUnknownLevel = errors.New("unknown level")

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID    string
	Title string
	Order int // Position in the campaign, lowest first
}

// Factory builds a level from tuning. rng is the run's shared random source;
// factories that need randomness at build time (the boss pattern) draw from it.
type Factory func(cfg config.Config, rng *rand.Rand) (sim.Level, error)

type entry struct {
	info    LevelInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a level factory to the registry.
// Typically called from a level's init() function.
// Panics if a level with the same ID is already registered or the factory
// cannot build a level from the default tuning.
func Register(id string, order int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	// Get title by building a throwaway instance
	lvl, err := f(config.DefaultConfig(), rand.New(rand.NewSource(0)))
	if err != nil {
		panic(fmt.Sprintf("registry: level %q: %v", id, err))
	}

	entries[id] = entry{
		info:    LevelInfo{ID: id, Title: lvl.Title, Order: order},
		factory: f,
	}
}

// List returns information about all registered levels in campaign order.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// First returns the ID of the opening level, or "" when nothing is registered.
func First() string {
	levels := List()
	if len(levels) == 0 {
		return ""
	}
	return levels[0].ID
}

// Create builds a level by its ID.
func Create(id string, cfg config.Config, rng *rand.Rand) (sim.Level, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return sim.Level{}, fmt.Errorf("registry: %w %q", ErrUnknownLevel, id)
	}

	lvl, err := e.factory(cfg, rng)
	if err != nil {
		return sim.Level{}, fmt.Errorf("registry: build %q: %w", id, err)
	}
	return lvl, nil
}

// Start builds a level by its ID and returns a running loop for it.
func Start(id string, cfg config.Config, rng *rand.Rand, hooks sim.Hooks) (*sim.Loop, error) {
	lvl, err := Create(id, cfg, rng)
	if err != nil {
		return nil, err
	}
	return sim.NewLoop(lvl, cfg, rng, hooks)
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
