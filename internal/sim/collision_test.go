package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
)

func at(e *Entity, x, y float64) *Entity {
	e.layout = core.Vec{X: x, Y: y}
	return e
}

func TestResolveDamagesBothSides(t *testing.T) {
	cfg := config.DefaultConfig()
	bp := NewBlueprints(cfg)

	shot := at(playerShot(cfg), 500, 100)
	enemy := at(bp.Enemy(0), 480, 90)

	hits := Resolve([]*Entity{shot}, []*Entity{enemy})

	assert.Equal(t, 1, hits)
	assert.True(t, shot.Destroyed())
	assert.True(t, enemy.Destroyed())
	assert.Zero(t, enemy.Health())
}

func TestResolveIgnoresSeparatedPairs(t *testing.T) {
	cfg := config.DefaultConfig()
	bp := NewBlueprints(cfg)

	shot := at(playerShot(cfg), 100, 100)
	enemy := at(bp.Enemy(0), 800, 100)

	assert.Zero(t, Resolve([]*Entity{shot}, []*Entity{enemy}))
	assert.False(t, shot.Destroyed())
	assert.Equal(t, cfg.Enemy.Health, enemy.Health())
}

func TestResolveTouchingEdgesDoNotCollide(t *testing.T) {
	cfg := config.DefaultConfig()
	bp := NewBlueprints(cfg)

	// Shot spans [380, 420); enemy starts exactly at 420
	shot := at(playerShot(cfg), 380, 100)
	enemy := at(bp.Enemy(0), 420, 90)

	assert.Zero(t, Resolve([]*Entity{shot}, []*Entity{enemy}))
}

func TestResolveSpentShotHitsEveryOverlappingEnemy(t *testing.T) {
	cfg := config.DefaultConfig()
	bp := NewBlueprints(cfg)

	shot := at(playerShot(cfg), 500, 100)
	first := at(bp.Enemy(0), 480, 90)
	second := at(bp.Enemy(0), 490, 95)

	hits := Resolve([]*Entity{shot}, []*Entity{first, second})

	assert.Equal(t, 2, hits)
	assert.True(t, shot.Destroyed())
	assert.True(t, first.Destroyed())
	assert.True(t, second.Destroyed())
}

func TestResolveEveryShotOverEnemyIsSpent(t *testing.T) {
	cfg := config.DefaultConfig()
	bp := NewBlueprints(cfg)

	s1 := at(playerShot(cfg), 500, 100)
	s2 := at(playerShot(cfg), 510, 110)
	enemy := at(bp.Enemy(0), 480, 90)

	hits := Resolve([]*Entity{s1, s2}, []*Entity{enemy})

	assert.Equal(t, 2, hits)
	assert.True(t, enemy.Destroyed())
	assert.Zero(t, enemy.Health(), "a destroyed enemy takes no further damage")
	assert.True(t, s1.Destroyed())
	assert.True(t, s2.Destroyed())
}

func TestResolveSkipsPairsAlreadyDestroyed(t *testing.T) {
	cfg := config.DefaultConfig()
	bp := NewBlueprints(cfg)

	shot := at(playerShot(cfg), 500, 100)
	enemy := at(bp.Enemy(0), 480, 90)
	shot.destroy()
	enemy.destroy()

	assert.Zero(t, Resolve([]*Entity{shot}, []*Entity{enemy}))
}

func TestResolveShieldedBossIsImmune(t *testing.T) {
	cfg := config.DefaultConfig()
	boss := NewBlueprints(cfg).Boss(testRNG())
	boss.boss.shieldActive = true

	shot := at(playerShot(cfg), cfg.Boss.StartX+10, cfg.Boss.StartY+10)
	hits := Resolve([]*Entity{shot}, []*Entity{boss})

	assert.Equal(t, 1, hits)
	assert.True(t, shot.Destroyed(), "the shot still breaks on the shield")
	assert.Equal(t, cfg.Boss.Health, boss.Health())
}

func TestResolveUnitContactDamagesEveryPass(t *testing.T) {
	cfg := config.DefaultConfig()
	bp := NewBlueprints(cfg)
	player, _ := bp.Player(3)
	enemy := at(bp.Enemy(0), 50, 300)
	enemy.health = 3

	// Units that stay overlapped keep trading damage, once per pass
	for i := 0; i < 2; i++ {
		assert.Equal(t, 1, Resolve([]*Entity{player}, []*Entity{enemy}))
	}

	assert.Equal(t, 1, player.Health())
	assert.Equal(t, 1, enemy.Health())
}
