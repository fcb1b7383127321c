package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
	_ "github.com/vovakirdan/sky-battle/internal/levels"
	"github.com/vovakirdan/sky-battle/internal/registry"
	"github.com/vovakirdan/sky-battle/internal/sim"
)

// rushConfig makes level one end quickly: a full wave on the first tick and a
// single kill to advance.
func rushConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Enemy.FireRate = 0
	cfg.LevelOne.PlayerHealth = 10
	cfg.LevelOne.SpawnProbability = 1
	cfg.LevelOne.KillsToAdvance = 1
	return cfg
}

func tickUntil(t *testing.T, c *Campaign, limit int, done func(sim.TickResult) bool) sim.TickResult {
	t.Helper()
	for i := 0; i < limit; i++ {
		res := c.Tick()
		if done(res) {
			return res
		}
	}
	t.Fatalf("condition not reached in %d ticks", limit)
	return sim.TickResult{}
}

func TestCampaignStartsAtFirstLevel(t *testing.T) {
	c, err := New(config.DefaultConfig(), 1, sim.Hooks{})
	require.NoError(t, err)

	assert.Equal(t, "level-one", c.LevelID())
	assert.False(t, c.Over())
	assert.Zero(t, c.Kills())
	assert.Equal(t, int64(1), c.Seed())
}

func TestCampaignAdvancesAndKeepsTotals(t *testing.T) {
	c, err := New(rushConfig(), 5, sim.Hooks{})
	require.NoError(t, err)

	res := tickUntil(t, c, 1000, func(r sim.TickResult) bool {
		return r.Outcome.Status == sim.StatusAdvance
	})

	assert.Equal(t, "level-two", c.LevelID())
	assert.True(t, c.Loop().Running())
	assert.Equal(t, res.Kills, c.Kills(), "kills carry over into the next level")
	assert.Equal(t, int64(res.Tick), c.Ticks())

	c.Tick()
	assert.Equal(t, int64(res.Tick)+1, c.Ticks())
}

func TestCampaignReloadAppliesAtNextLevel(t *testing.T) {
	c, err := New(rushConfig(), 5, sim.Hooks{})
	require.NoError(t, err)

	next := rushConfig()
	next.LevelTwo.PlayerHealth = 9
	c.Reload(next)
	assert.Equal(t, 5, c.Config().LevelTwo.PlayerHealth, "level in progress keeps its tuning")

	tickUntil(t, c, 1000, func(r sim.TickResult) bool {
		return r.Outcome.Status == sim.StatusAdvance
	})

	assert.Equal(t, 9, c.Loop().Player().Health())
	assert.Equal(t, 9, c.Config().LevelTwo.PlayerHealth)
}

func TestCampaignLoss(t *testing.T) {
	cfg := rushConfig()
	cfg.LevelOne.PlayerHealth = 1
	cfg.LevelOne.KillsToAdvance = 1000
	c, err := New(cfg, 9, sim.Hooks{})
	require.NoError(t, err)

	res := tickUntil(t, c, 1000, func(r sim.TickResult) bool { return r.Outcome.Terminal() })

	assert.Equal(t, sim.StatusLost, res.Outcome.Status)
	assert.True(t, c.Over())
	assert.Equal(t, sim.StatusLost, c.Summary().Outcome.Status)
	assert.Equal(t, "level-one", c.Summary().Level)

	// A finished run ignores everything
	c.Command(core.CommandFire)
	assert.Equal(t, res, c.Tick())
}

func TestCampaignRestart(t *testing.T) {
	c, err := New(rushConfig(), 5, sim.Hooks{})
	require.NoError(t, err)
	tickUntil(t, c, 1000, func(r sim.TickResult) bool {
		return r.Outcome.Status == sim.StatusAdvance
	})

	require.NoError(t, c.Restart(6))

	assert.Equal(t, "level-one", c.LevelID())
	assert.Zero(t, c.Kills())
	assert.Zero(t, c.Ticks())
	assert.Equal(t, int64(6), c.Seed())
}

func TestCampaignIsReproducible(t *testing.T) {
	run := func() Summary {
		c, err := New(config.DefaultConfig(), 42, sim.Hooks{})
		require.NoError(t, err)
		for i := 0; i < 600; i++ {
			if i%5 == 0 {
				c.Command(core.CommandFire)
			}
			c.Tick()
		}
		return c.Summary()
	}

	assert.Equal(t, run(), run())
}

func TestCampaignIgnoresNonFlightCommands(t *testing.T) {
	c, err := New(config.DefaultConfig(), 1, sim.Hooks{})
	require.NoError(t, err)

	c.Command(core.CommandPause)
	c.Command(core.CommandQuit)
	assert.Empty(t, c.Loop().Entities(sim.GroupPlayerShots))

	c.Command(core.CommandFire)
	assert.Len(t, c.Loop().Entities(sim.GroupPlayerShots), 1)
}

func TestCampaignStartsAtChosenLevel(t *testing.T) {
	c, err := NewAt("level-two", config.DefaultConfig(), 1, sim.Hooks{})
	require.NoError(t, err)
	assert.Equal(t, "level-two", c.LevelID())

	require.NoError(t, c.Restart(2))
	assert.Equal(t, "level-two", c.LevelID(), "restart returns to the chosen level")

	_, err = NewAt("level-nine", config.DefaultConfig(), 1, sim.Hooks{})
	assert.ErrorIs(t, err, registry.ErrUnknownLevel)
}
