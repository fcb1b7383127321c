// Package levels defines the two stages of the campaign and registers them.
//
// Level one is an open sky: enemies keep arriving until the player has shot
// down enough of them. Level two is the boss fight.
package levels

import (
	"math/rand"

	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/registry"
	"github.com/vovakirdan/sky-battle/internal/sim"
)

// Level IDs.
const (
	LevelOne = "level-one"
	LevelTwo = "level-two"
)

// NewLevelOne builds the wave level.
func NewLevelOne(cfg config.Config, _ *rand.Rand) (sim.Level, error) {
	lc := cfg.LevelOne
	spawner := &sim.WaveSpawner{
		Target:      lc.TotalEnemies,
		Probability: lc.SpawnProbability,
		BandMax:     cfg.Field.EnemyBandMax(),
		Blueprints:  sim.NewBlueprints(cfg),
	}

	lvl := sim.Level{
		ID:           LevelOne,
		Title:        "Open Sky",
		PlayerHealth: lc.PlayerHealth,
		Spawner:      spawner,
		Rules: []sim.LevelRule{
			sim.PlayerDown{},
			sim.KillTarget{Threshold: lc.KillsToAdvance, Next: LevelTwo},
		},
	}
	return lvl, lvl.Validate()
}

// NewLevelTwo builds the boss level. The boss AI draws its move pattern from rng.
func NewLevelTwo(cfg config.Config, rng *rand.Rand) (sim.Level, error) {
	boss := sim.NewBlueprints(cfg).Boss(rng)

	lvl := sim.Level{
		ID:           LevelTwo,
		Title:        "Boss Fight",
		PlayerHealth: cfg.LevelTwo.PlayerHealth,
		Spawner:      &sim.BossSpawner{Boss: boss},
		Rules: []sim.LevelRule{
			sim.PlayerDown{},
			sim.BossDown{Boss: boss},
		},
	}
	return lvl, lvl.Validate()
}

func init() {
	registry.Register(LevelOne, 1, NewLevelOne)
	registry.Register(LevelTwo, 2, NewLevelTwo)
}
