// Package campaign chains levels into a single run. It starts at the first
// registered level, follows advance outcomes through the level registry and
// keeps run-wide totals. It knows nothing about terminals or storage.
package campaign

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
	"github.com/vovakirdan/sky-battle/internal/registry"
	"github.com/vovakirdan/sky-battle/internal/sim"
)

// Campaign runs levels back to back with one random source, so a seed
// reproduces the whole run.
type Campaign struct {
	cfg     config.Config
	pending *config.Config // Replaces cfg at the next level start
	seed    int64
	rng     *rand.Rand
	hooks   sim.Hooks
	logger  *log.Logger

	first   string // Level a restart goes back to
	loop    *sim.Loop
	levelID string
	kills   int   // Kills from finished levels
	ticks   int64 // Ticks from finished levels
	last    sim.TickResult
	over    bool
}

// Summary describes a run for persistence and display.
type Summary struct {
	Level   string
	Outcome sim.Outcome
	Kills   int
	Ticks   int64
	Seed    int64
}

// New starts a run at the first registered level.
func New(cfg config.Config, seed int64, hooks sim.Hooks) (*Campaign, error) {
	return NewAt(registry.First(), cfg, seed, hooks)
}

// NewAt starts a run at the given level. Restarts return to that level.
func NewAt(levelID string, cfg config.Config, seed int64, hooks sim.Hooks) (*Campaign, error) {
	if levelID == "" {
		return nil, fmt.Errorf("campaign: no levels registered")
	}
	if !registry.Exists(levelID) {
		return nil, fmt.Errorf("campaign: %w %q", registry.ErrUnknownLevel, levelID)
	}

	logger := hooks.Logger
	if logger == nil {
		logger = log.New(io.Discard)
		hooks.Logger = logger
	}

	c := &Campaign{
		cfg:    cfg,
		first:  levelID,
		hooks:  hooks,
		logger: logger.WithPrefix("campaign"),
	}
	if err := c.Restart(seed); err != nil {
		return nil, err
	}
	return c, nil
}

// Restart abandons the current level and begins a fresh run with seed.
// A tuning queued by Reload takes effect here.
func (c *Campaign) Restart(seed int64) error {
	if c.loop != nil {
		c.loop.End()
	}
	c.seed = seed
	c.rng = rand.New(rand.NewSource(seed))
	c.kills = 0
	c.ticks = 0
	c.over = false
	c.last = sim.TickResult{}
	return c.start(c.first)
}

func (c *Campaign) start(id string) error {
	if c.pending != nil {
		c.cfg = *c.pending
		c.pending = nil
		c.logger.Info("applied reloaded tuning", "level", id)
	}

	loop, err := registry.Start(id, c.cfg, c.rng, c.hooks)
	if err != nil {
		return fmt.Errorf("campaign: start %s: %w", id, err)
	}
	c.loop = loop
	c.levelID = id
	c.logger.Debug("level started", "level", id, "seed", c.seed)
	return nil
}

// Reload queues a new tuning. The level in progress keeps its parameters.
func (c *Campaign) Reload(cfg config.Config) {
	c.pending = &cfg
}

// Command forwards a flight command to the current level.
func (c *Campaign) Command(cmd core.Command) {
	if c.over || !cmd.IsFlight() {
		return
	}
	c.loop.Command(cmd)
}

// Tick advances the current level. When the level advances, the next one is
// built immediately and the returned result still carries the advance outcome.
func (c *Campaign) Tick() sim.TickResult {
	if c.over {
		return c.last
	}

	res := c.loop.Tick()
	c.last = res

	switch res.Outcome.Status {
	case sim.StatusAdvance:
		if err := c.start(res.Outcome.Next); err != nil {
			// A broken chain ends the run where it stands
			c.logger.Error("cannot advance", "next", res.Outcome.Next, "err", err)
			c.over = true
			break
		}
		c.kills += res.Kills
		c.ticks += int64(res.Tick)
	case sim.StatusWon, sim.StatusLost:
		c.over = true
	}
	return res
}

// End tears down the current level.
func (c *Campaign) End() {
	c.over = true
	c.loop.End()
}

// Loop returns the level being played.
func (c *Campaign) Loop() *sim.Loop { return c.loop }

// LevelID returns the ID of the level being played.
func (c *Campaign) LevelID() string { return c.levelID }

// Config returns the tuning of the level being played.
func (c *Campaign) Config() config.Config { return c.cfg }

// Seed returns the run's seed.
func (c *Campaign) Seed() int64 { return c.seed }

// Over reports whether the run has finished.
func (c *Campaign) Over() bool { return c.over }

// Kills returns the kill total across the run so far.
func (c *Campaign) Kills() int { return c.kills + c.loop.Kills() }

// Ticks returns the tick total across the run so far.
func (c *Campaign) Ticks() int64 { return c.ticks + int64(c.loop.TickCount()) }

// Summary describes the run as it stands.
func (c *Campaign) Summary() Summary {
	return Summary{
		Level:   c.levelID,
		Outcome: c.loop.Outcome(),
		Kills:   c.Kills(),
		Ticks:   c.Ticks(),
		Seed:    c.seed,
	}
}
