package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// quietConfig returns default tuning with every random event switched off.
func quietConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Enemy.FireRate = 0
	cfg.Boss.FireRate = 0
	cfg.Boss.ShieldProbability = 0
	cfg.LevelOne.SpawnProbability = 0
	return cfg
}

// recorder implements Scene and HUD and keeps the attached set.
type recorder struct {
	live     map[*Entity]bool
	attached int
	detached int
	health   []int
	shield   []bool
	outcomes []Outcome
}

func newRecorder() *recorder {
	return &recorder{live: make(map[*Entity]bool)}
}

func (r *recorder) Attach(e *Entity) {
	r.live[e] = true
	r.attached++
}

func (r *recorder) Detach(e *Entity) {
	delete(r.live, e)
	r.detached++
}

func (r *recorder) ShowHealth(h int)      { r.health = append(r.health, h) }
func (r *recorder) ShowShield(a bool)     { r.shield = append(r.shield, a) }
func (r *recorder) ShowOutcome(o Outcome) { r.outcomes = append(r.outcomes, o) }

func hooksFor(r *recorder) Hooks {
	return Hooks{Scene: r, HUD: r}
}

// newTestLoop builds a loop on quiet tuning with the given spawner and rules.
// Without rules the level is lost when the player dies and otherwise never ends.
func newTestLoop(t *testing.T, cfg config.Config, spawner SpawnController, rules ...LevelRule) (*Loop, *recorder) {
	t.Helper()
	if len(rules) == 0 {
		rules = []LevelRule{PlayerDown{}}
	}
	level := Level{
		ID:           "test",
		PlayerHealth: 5,
		Spawner:      spawner,
		Rules:        rules,
	}
	rec := newRecorder()
	l, err := NewLoop(level, cfg, testRNG(), hooksFor(rec))
	require.NoError(t, err)
	return l, rec
}

// place registers e at an absolute position.
func place(l *Loop, e *Entity, x, y float64) *Entity {
	e.layout = core.Vec{X: x, Y: y}
	e.offset = core.Vec{}
	l.add(e)
	return e
}

func enemyShot(cfg config.Config) *Entity {
	g := &Gun{Kind: KindEnemyProjectile, Shot: cfg.Projectiles.Enemy}
	return g.Projectile(&Entity{})
}

func playerShot(cfg config.Config) *Entity {
	g := &Gun{Kind: KindPlayerProjectile, Shot: cfg.Projectiles.Player}
	return g.Projectile(&Entity{})
}
