package sim

import (
	"math/rand"

	"github.com/vovakirdan/sky-battle/internal/config"
)

// BossAI drives the boss: a shuffled pattern of vertical moves plus a
// randomly raised damage shield. It is the boss entity's MovementRule.
//
// The pattern holds MoveRepeats copies of {+speed, -speed, 0}. Each tick the
// current move is read and a counter advances; once the counter reaches
// FramesPerMove the pattern is reshuffled, the counter reset and the index
// moved on (wrapping). The move read on that tick comes from the old order.
//
// After moving, the shield updates: while active it counts frames and drops
// after ShieldFrames ticks; while inactive it rises with ShieldProbability.
type BossAI struct {
	rng *rand.Rand

	pattern       []float64
	index         int
	sameMoveCount int
	framesPerMove int
	minY, maxY    float64

	shieldActive      bool
	shieldFrames      int
	shieldLimit       int
	shieldProbability float64

	onShield func(active bool)
}

// NewBossAI builds the boss AI from tuning. The initial pattern is shuffled with rng.
func NewBossAI(cfg config.BossConfig, rng *rand.Rand) *BossAI {
	pattern := make([]float64, 0, cfg.MoveRepeats*3)
	for i := 0; i < cfg.MoveRepeats; i++ {
		pattern = append(pattern, cfg.Speed, -cfg.Speed, 0)
	}

	b := &BossAI{
		rng:               rng,
		pattern:           pattern,
		framesPerMove:     cfg.FramesPerMove,
		minY:              cfg.MinY,
		maxY:              cfg.MaxY,
		shieldLimit:       cfg.ShieldFrames,
		shieldProbability: cfg.ShieldProbability,
	}
	b.shuffle()
	return b
}

// Apply implements MovementRule: one move from the pattern, then the shield update.
func (b *BossAI) Apply(e *Entity) {
	moveWithinBand(e, b.nextMove(), b.minY, b.maxY)
	b.updateShield()
}

// ShieldActive reports whether the boss currently ignores damage.
func (b *BossAI) ShieldActive() bool { return b.shieldActive }

// ShieldFrames returns how many ticks the current shield has been up.
func (b *BossAI) ShieldFrames() int { return b.shieldFrames }

// Pattern returns a copy of the current move pattern.
func (b *BossAI) Pattern() []float64 {
	out := make([]float64, len(b.pattern))
	copy(out, b.pattern)
	return out
}

// Index returns the position of the next move in the pattern.
func (b *BossAI) Index() int { return b.index }

func (b *BossAI) nextMove() float64 {
	move := b.pattern[b.index]
	b.sameMoveCount++
	if b.sameMoveCount >= b.framesPerMove {
		b.shuffle()
		b.sameMoveCount = 0
		b.index = (b.index + 1) % len(b.pattern)
	}
	return move
}

func (b *BossAI) shuffle() {
	b.rng.Shuffle(len(b.pattern), func(i, j int) {
		b.pattern[i], b.pattern[j] = b.pattern[j], b.pattern[i]
	})
}

func (b *BossAI) updateShield() {
	if b.shieldActive {
		b.shieldFrames++
	} else if b.rollShield() {
		b.setShield(true)
	}

	if b.shieldFrames >= b.shieldLimit {
		b.setShield(false)
		b.shieldFrames = 0
	}
}

// rollShield performs one independent activation trial.
func (b *BossAI) rollShield() bool {
	return b.rng.Float64() < b.shieldProbability
}

func (b *BossAI) setShield(active bool) {
	if b.shieldActive == active {
		return
	}
	b.shieldActive = active
	if b.onShield != nil {
		b.onShield(active)
	}
}
