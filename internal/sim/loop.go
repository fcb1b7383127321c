package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
)

// TickResult summarises one tick for the platform.
type TickResult struct {
	Tick         uint64  // Ticks processed so far
	Outcome      Outcome // Level outcome after this tick
	Health       int     // Player health
	Kills        int     // Kill count for this level
	KillsDelta   int     // Kills gained this tick
	Enemies      int     // Enemy population after removal
	Spawned      int     // Enemies added this tick
	Shots        int     // Enemy projectiles fired this tick
	Breaches     int     // Enemies that passed the defensive line
	Hits         int     // Colliding pairs across all collision phases
	Removed      int     // Entities removed this tick
	BossShielded bool
}

// Loop runs one level. It is driven by an external timer calling Tick and
// receives flight commands between ticks. Loop is not safe for concurrent use.
type Loop struct {
	level Level
	cfg   config.Config
	rng   *rand.Rand
	hooks Hooks

	reg    *Registry
	player *Entity
	pilot  *Pilot

	tick          uint64
	kills         int
	enemySnapshot int
	outcome       Outcome
	running       bool
	ended         bool
}

// NewLoop validates the level and tuning, registers the player and returns a
// running loop. rng is shared with the level's spawner and boss AI so a single
// seed reproduces the whole run.
func NewLoop(level Level, cfg config.Config, rng *rand.Rand, hooks Hooks) (*Loop, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidLevel, level.ID, err)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: %s: nil random source", ErrInvalidLevel, level.ID)
	}

	l := &Loop{
		level:   level,
		cfg:     cfg,
		rng:     rng,
		hooks:   hooks.withDefaults(),
		reg:     NewRegistry(),
		outcome: inProgress,
		running: true,
	}
	l.player, l.pilot = NewBlueprints(cfg).Player(level.PlayerHealth)
	l.add(l.player)
	l.hooks.HUD.ShowHealth(l.player.Health())
	l.hooks.Logger.Debug("level started", "level", level.ID, "health", level.PlayerHealth)
	return l, nil
}

// Level returns the level being played.
func (l *Loop) Level() Level { return l.level }

// Config returns the tuning the level was built with.
func (l *Loop) Config() config.Config { return l.cfg }

// Player returns the player entity.
func (l *Loop) Player() *Entity { return l.player }

// Pilot returns the player's movement rule.
func (l *Loop) Pilot() *Pilot { return l.pilot }

// Entities returns the live slice of one collection. Callers must not modify it.
func (l *Loop) Entities(g Group) []*Entity { return l.reg.Group(g) }

// Each visits every registered entity.
func (l *Loop) Each(fn func(*Entity)) { l.reg.Each(fn) }

// Kills returns the kill count for this level.
func (l *Loop) Kills() int { return l.kills }

// TickCount returns the number of ticks processed.
func (l *Loop) TickCount() uint64 { return l.tick }

// Outcome returns the current level outcome.
func (l *Loop) Outcome() Outcome { return l.outcome }

// Running reports whether Tick still advances the simulation.
func (l *Loop) Running() bool { return l.running }

// Command applies a flight command. Commands arriving after the loop stopped
// are ignored, as are non-flight commands.
func (l *Loop) Command(c core.Command) {
	if !l.running {
		return
	}
	switch c {
	case core.CommandMoveUp:
		l.pilot.MoveUp()
	case core.CommandMoveDown:
		l.pilot.MoveDown()
	case core.CommandStop:
		l.pilot.Stop()
	case core.CommandFire:
		l.fire(l.player)
	}
}

// fire registers a projectile from shooter if its gun triggers.
func (l *Loop) fire(shooter *Entity) bool {
	if shooter.gun == nil || shooter.destroyed || !shooter.gun.Trigger(l.rng) {
		return false
	}
	l.add(shooter.gun.Projectile(shooter))
	return true
}

func (l *Loop) add(e *Entity) {
	l.reg.Add(e)
	if e.boss != nil {
		e.boss.onShield = l.hooks.HUD.ShowShield
	}
	l.hooks.Scene.Attach(e)
}

// Tick advances the level by one fixed step. After the level has ended it
// returns the final result without changing anything.
func (l *Loop) Tick() TickResult {
	if !l.running {
		return l.result()
	}
	l.tick++
	res := TickResult{}

	// Spawn
	for _, e := range l.level.Spawner.Spawn(l.reg.Len(GroupEnemy), l.rng) {
		l.add(e)
		res.Spawned++
	}

	// Movement and AI
	l.reg.Each(func(e *Entity) {
		if e.rule != nil && !e.destroyed {
			e.rule.Apply(e)
		}
	})

	// Enemy fire
	for _, e := range l.reg.Group(GroupEnemy) {
		if l.fire(e) {
			res.Shots++
		}
	}

	l.enemySnapshot = l.reg.Len(GroupEnemy)

	// Boundaries
	res.Breaches = l.handleBreaches()
	if l.cfg.Rules.CullOffscreenProjectiles {
		l.cullProjectiles()
	}

	// Collisions
	res.Hits += Resolve(l.reg.Group(GroupPlayerShots), l.reg.Group(GroupEnemy))
	res.Hits += Resolve(l.reg.Group(GroupEnemyShots), l.reg.Group(GroupFriendly))
	res.Hits += Resolve(l.reg.Group(GroupFriendly), l.reg.Group(GroupEnemy))

	res.Removed = l.reg.Sweep(l.hooks.Scene.Detach)

	// Kills come from population shrinkage only
	delta := l.enemySnapshot - l.reg.Len(GroupEnemy)
	if delta > 0 {
		l.kills += delta
		res.KillsDelta = delta
	}

	l.hooks.HUD.ShowHealth(l.player.Health())

	l.outcome = evaluate(l.level.Rules, l.standing())
	if l.outcome.Terminal() {
		l.finish()
	}

	out := l.result()
	out.KillsDelta = res.KillsDelta
	out.Spawned = res.Spawned
	out.Shots = res.Shots
	out.Breaches = res.Breaches
	out.Hits = res.Hits
	out.Removed = res.Removed
	return out
}

// handleBreaches destroys every enemy that has travelled further than the
// field width and charges the player one damage for each.
func (l *Loop) handleBreaches() int {
	n := 0
	for _, e := range l.reg.Group(GroupEnemy) {
		if e.destroyed || core.Abs(e.offset.X) <= l.cfg.Field.Width {
			continue
		}
		l.player.TakeDamage()
		e.destroy()
		n++
	}
	return n
}

// cullProjectiles destroys projectiles entirely outside the field horizontally.
func (l *Loop) cullProjectiles() {
	for _, g := range []Group{GroupPlayerShots, GroupEnemyShots} {
		for _, e := range l.reg.Group(g) {
			b := e.Bounds()
			if b.Right() < 0 || b.X > l.cfg.Field.Width {
				e.destroy()
			}
		}
	}
}

func (l *Loop) standing() Standing {
	return Standing{
		Tick:            l.tick,
		PlayerDestroyed: l.player.Destroyed(),
		PlayerHealth:    l.player.Health(),
		Kills:           l.kills,
		Enemies:         l.reg.Len(GroupEnemy),
	}
}

func (l *Loop) finish() {
	l.running = false
	l.hooks.Logger.Info("level finished",
		"level", l.level.ID,
		"outcome", l.outcome.String(),
		"kills", l.kills,
		"ticks", l.tick,
	)
	l.hooks.HUD.ShowOutcome(l.outcome)
	if l.outcome.Status == StatusAdvance {
		l.reg.Clear(l.hooks.Scene.Detach)
	}
}

func (l *Loop) result() TickResult {
	r := TickResult{
		Tick:    l.tick,
		Outcome: l.outcome,
		Health:  l.player.Health(),
		Kills:   l.kills,
		Enemies: l.reg.Len(GroupEnemy),
	}
	for _, e := range l.reg.Group(GroupEnemy) {
		if e.Shielded() {
			r.BossShielded = true
		}
	}
	return r
}

// End stops the loop and tears the level down. Calling it again has no effect.
func (l *Loop) End() {
	if l.ended {
		return
	}
	l.ended = true
	l.running = false
	l.reg.Clear(l.hooks.Scene.Detach)
	l.hooks.Logger.Debug("level torn down", "level", l.level.ID)
}
