package sim

import (
	"math/rand"

	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
)

// Muzzle locates where a shot appears relative to the shooter.
type Muzzle struct {
	OffsetX float64
	OffsetY float64
	FixedX  bool // OffsetX is an absolute X rather than relative to the shooter
}

// Origin returns the shot's top-left position for the given shooter.
func (m Muzzle) Origin(shooter *Entity) core.Vec {
	pos := shooter.Position()
	x := pos.X + m.OffsetX
	if m.FixedX {
		x = m.OffsetX
	}
	return core.Vec{X: x, Y: pos.Y + m.OffsetY}
}

// Gun describes what an entity fires and how often.
type Gun struct {
	Kind   Kind // KindPlayerProjectile or KindEnemyProjectile
	Shot   config.ProjectileConfig
	Muzzle Muzzle
	Rate   float64 // Probability of firing on a tick; >= 1 always fires
}

// Trigger rolls the gun's fire chance. A rate of 1 or more does not consume randomness.
func (g *Gun) Trigger(rng *rand.Rand) bool {
	if g.Rate >= 1 {
		return true
	}
	if g.Rate <= 0 {
		return false
	}
	return rng.Float64() < g.Rate
}

// Projectile builds an unregistered projectile fired by shooter.
func (g *Gun) Projectile(shooter *Entity) *Entity {
	size := core.Vec{X: g.Shot.Size.Width, Y: g.Shot.Size.Height}
	return newEntity(g.Kind, g.Muzzle.Origin(shooter), size, 1, Straight{VX: g.Shot.Speed})
}
