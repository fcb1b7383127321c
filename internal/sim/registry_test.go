package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sky-battle/internal/config"
)

func TestRegistryRoutesByKind(t *testing.T) {
	cfg := config.DefaultConfig()
	bp := NewBlueprints(cfg)
	reg := NewRegistry()

	player, _ := bp.Player(5)
	enemy := bp.Enemy(100)
	boss := bp.Boss(testRNG())
	ps := playerShot(cfg)
	es := enemyShot(cfg)

	for _, e := range []*Entity{player, enemy, boss, ps, es} {
		reg.Add(e)
	}

	assert.Equal(t, []*Entity{player}, reg.Group(GroupFriendly))
	assert.Equal(t, []*Entity{enemy, boss}, reg.Group(GroupEnemy))
	assert.Equal(t, []*Entity{ps}, reg.Group(GroupPlayerShots))
	assert.Equal(t, []*Entity{es}, reg.Group(GroupEnemyShots))
	assert.Equal(t, 5, reg.Total())

	ids := map[uint64]bool{}
	reg.Each(func(e *Entity) {
		assert.NotZero(t, e.ID())
		assert.False(t, ids[e.ID()], "duplicate id %d", e.ID())
		ids[e.ID()] = true
	})
}

func TestRegistryDoubleAddPanics(t *testing.T) {
	reg := NewRegistry()
	e := NewBlueprints(config.DefaultConfig()).Enemy(0)
	reg.Add(e)

	assert.Panics(t, func() { reg.Add(e) })
	assert.Equal(t, 1, reg.Len(GroupEnemy))
}

func TestRegistrySweepRemovesOnlyDestroyed(t *testing.T) {
	bp := NewBlueprints(config.DefaultConfig())
	reg := NewRegistry()
	a, b, c := bp.Enemy(0), bp.Enemy(10), bp.Enemy(20)
	reg.Add(a)
	reg.Add(b)
	reg.Add(c)

	b.destroy()
	var removed []*Entity
	n := reg.Sweep(func(e *Entity) { removed = append(removed, e) })

	assert.Equal(t, 1, n)
	assert.Equal(t, []*Entity{b}, removed)
	assert.Equal(t, []*Entity{a, c}, reg.Group(GroupEnemy))
	assert.Zero(t, reg.Sweep(nil))
}

func TestRegistryClear(t *testing.T) {
	bp := NewBlueprints(config.DefaultConfig())
	reg := NewRegistry()
	player, _ := bp.Player(3)
	reg.Add(player)
	reg.Add(bp.Enemy(0))

	count := 0
	reg.Clear(func(e *Entity) {
		require.True(t, e.Destroyed())
		count++
	})

	assert.Equal(t, 2, count)
	assert.Zero(t, reg.Total())
}
