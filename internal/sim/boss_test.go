package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sky-battle/internal/config"
)

// openSkyBoss returns boss tuning whose band never blocks a move.
func openSkyBoss() config.BossConfig {
	bc := config.DefaultConfig().Boss
	bc.MinY = -1e6
	bc.MaxY = 1e6
	bc.ShieldProbability = 0
	return bc
}

func newBossEntity(bc config.BossConfig, rng *rand.Rand) *Entity {
	cfg := config.DefaultConfig()
	cfg.Boss = bc
	return NewBlueprints(cfg).Boss(rng)
}

func TestBossPatternComposition(t *testing.T) {
	bc := config.DefaultConfig().Boss
	ai := NewBossAI(bc, testRNG())

	counts := map[float64]int{}
	for _, v := range ai.Pattern() {
		counts[v]++
	}

	assert.Len(t, ai.Pattern(), bc.MoveRepeats*3)
	assert.Equal(t, bc.MoveRepeats, counts[bc.Speed])
	assert.Equal(t, bc.MoveRepeats, counts[-bc.Speed])
	assert.Equal(t, bc.MoveRepeats, counts[0])
}

func TestBossMoveIsReadBeforeReshuffle(t *testing.T) {
	bc := openSkyBoss()
	boss := newBossEntity(bc, testRNG())
	ai := boss.Boss()

	first := ai.Pattern()[0]
	for i := 0; i < bc.FramesPerMove; i++ {
		before := boss.Position().Y
		ai.Apply(boss)
		assert.Equal(t, first, boss.Position().Y-before, "tick %d", i+1)
	}
	require.Equal(t, 1, ai.Index(), "index advances after FramesPerMove ticks")

	// The next tick uses slot 1 of the reshuffled pattern
	reshuffled := ai.Pattern()
	before := boss.Position().Y
	ai.Apply(boss)
	assert.Equal(t, reshuffled[1], boss.Position().Y-before)
}

func TestBossPatternIndexWraps(t *testing.T) {
	bc := openSkyBoss()
	boss := newBossEntity(bc, testRNG())
	ai := boss.Boss()

	cycle := bc.MoveRepeats * 3 * bc.FramesPerMove
	for i := 0; i < cycle; i++ {
		ai.Apply(boss)
	}
	assert.Zero(t, ai.Index())
}

func TestBossRevertsMovesLeavingBand(t *testing.T) {
	bc := config.DefaultConfig().Boss
	bc.ShieldProbability = 0
	// Any non-zero move leaves [395, 405]
	bc.MinY = bc.StartY - 5
	bc.MaxY = bc.StartY + 5
	boss := newBossEntity(bc, testRNG())

	for i := 0; i < 200; i++ {
		boss.Boss().Apply(boss)
		require.Equal(t, bc.StartY, boss.Position().Y, "tick %d", i+1)
	}
}

func TestBossShieldLastsExactlyShieldFrames(t *testing.T) {
	bc := openSkyBoss()
	bc.ShieldProbability = 1
	boss := newBossEntity(bc, testRNG())
	ai := boss.Boss()

	var toggles []bool
	ai.onShield = func(active bool) { toggles = append(toggles, active) }

	// Raised on the first tick, then held for ShieldFrames ticks in total
	for i := 0; i < bc.ShieldFrames; i++ {
		ai.Apply(boss)
		require.True(t, ai.ShieldActive(), "tick %d", i+1)
		assert.Equal(t, i, ai.ShieldFrames())
	}

	ai.Apply(boss)
	assert.False(t, ai.ShieldActive(), "shield drops after %d ticks", bc.ShieldFrames)
	assert.Zero(t, ai.ShieldFrames())

	// With certain activation it comes straight back on the next tick
	ai.Apply(boss)
	assert.True(t, ai.ShieldActive())
	assert.Equal(t, []bool{true, false, true}, toggles)
}

func TestBossShieldBlocksDamage(t *testing.T) {
	bc := openSkyBoss()
	boss := newBossEntity(bc, testRNG())

	boss.Boss().shieldActive = true
	assert.False(t, boss.TakeDamage())
	assert.Equal(t, bc.Health, boss.Health())

	boss.Boss().shieldActive = false
	assert.True(t, boss.TakeDamage())
	assert.Equal(t, bc.Health-1, boss.Health())
}

func TestBossShieldNeverRisesAtZeroProbability(t *testing.T) {
	boss := newBossEntity(openSkyBoss(), testRNG())
	for i := 0; i < 1000; i++ {
		boss.Boss().Apply(boss)
		require.False(t, boss.Shielded())
	}
}

func TestBossShieldActivationRate(t *testing.T) {
	bc := config.DefaultConfig().Boss
	ai := NewBossAI(bc, rand.New(rand.NewSource(42)))

	const trials = 10000
	activations := 0
	for i := 0; i < trials; i++ {
		if ai.rollShield() {
			activations++
		}
	}

	// Expected 200; five standard deviations is about 70
	expected := float64(trials) * bc.ShieldProbability
	assert.InDelta(t, expected, float64(activations), 70)
}
