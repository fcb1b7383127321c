package sim

import (
	"math/rand"

	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
)

// Blueprints builds unregistered entities from tuning.
type Blueprints struct {
	cfg config.Config
}

// NewBlueprints returns entity builders for the given tuning.
func NewBlueprints(cfg config.Config) *Blueprints {
	return &Blueprints{cfg: cfg}
}

func sizeOf(s config.Size) core.Vec {
	return core.Vec{X: s.Width, Y: s.Height}
}

// Player builds the player craft with the given health.
func (b *Blueprints) Player(health int) (*Entity, *Pilot) {
	p := b.cfg.Player
	pilot := &Pilot{Speed: p.Speed, MinY: p.MinY, MaxY: p.MaxY}
	e := newEntity(KindPlayer, core.Vec{X: p.StartX, Y: p.StartY}, sizeOf(p.Size), health, pilot)
	e.gun = &Gun{
		Kind:   KindPlayerProjectile,
		Shot:   b.cfg.Projectiles.Player,
		Muzzle: Muzzle{OffsetX: p.FireX, OffsetY: p.FireOffsetY, FixedX: true},
		Rate:   1,
	}
	return e, pilot
}

// Enemy builds a regular enemy entering at the right edge at height y.
func (b *Blueprints) Enemy(y float64) *Entity {
	en := b.cfg.Enemy
	e := newEntity(KindEnemy, core.Vec{X: b.cfg.Field.Width, Y: y}, sizeOf(en.Size), en.Health, Straight{VX: en.Speed})
	e.gun = &Gun{
		Kind:   KindEnemyProjectile,
		Shot:   b.cfg.Projectiles.Enemy,
		Muzzle: Muzzle{OffsetX: en.FireOffsetX, OffsetY: en.FireOffsetY},
		Rate:   en.FireRate,
	}
	return e
}

// Boss builds the boss with its AI seeded from rng.
func (b *Blueprints) Boss(rng *rand.Rand) *Entity {
	bc := b.cfg.Boss
	ai := NewBossAI(bc, rng)
	e := newEntity(KindBoss, core.Vec{X: bc.StartX, Y: bc.StartY}, sizeOf(bc.Size), bc.Health, ai)
	e.boss = ai
	e.gun = &Gun{
		Kind:   KindEnemyProjectile,
		Shot:   b.cfg.Projectiles.Boss,
		Muzzle: Muzzle{OffsetX: bc.FireX, OffsetY: bc.FireOffsetY, FixedX: true},
		Rate:   bc.FireRate,
	}
	return e
}
