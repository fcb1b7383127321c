// Package sim implements the battle simulation: entity bookkeeping, the
// fixed-tick update pipeline, collision damage, enemy spawning, the boss AI
// and level win/lose rules. It has no rendering or input dependencies; the
// platform drives it one Tick at a time and feeds it flight commands.
package sim

import "github.com/vovakirdan/sky-battle/internal/core"

// Kind identifies what an entity is. Behaviour (movement, firing, damage
// response) is selected by kind when the entity is built.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBoss
	KindPlayerProjectile
	KindEnemyProjectile
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	case KindPlayerProjectile:
		return "player-projectile"
	case KindEnemyProjectile:
		return "enemy-projectile"
	default:
		return "unknown"
	}
}

// IsProjectile reports whether the kind is a one-hit projectile.
func (k Kind) IsProjectile() bool {
	return k == KindPlayerProjectile || k == KindEnemyProjectile
}

// Entity is a movable, damageable unit: the player, an enemy, the boss or a projectile.
//
// Its effective position is Layout + Offset. Layout is fixed at creation;
// Offset accumulates every tick's movement.
type Entity struct {
	id     uint64
	kind   Kind
	layout core.Vec
	offset core.Vec
	size   core.Vec
	health int

	destroyed  bool
	registered bool

	rule MovementRule
	gun  *Gun
	boss *BossAI
}

func newEntity(kind Kind, layout, size core.Vec, health int, rule MovementRule) *Entity {
	return &Entity{
		kind:   kind,
		layout: layout,
		size:   size,
		health: health,
		rule:   rule,
	}
}

// ID returns the identifier assigned when the entity was registered (0 before).
func (e *Entity) ID() uint64 { return e.id }

// Kind returns what the entity is.
func (e *Entity) Kind() Kind { return e.kind }

// Layout returns the fixed origin.
func (e *Entity) Layout() core.Vec { return e.layout }

// Offset returns the accumulated translation.
func (e *Entity) Offset() core.Vec { return e.offset }

// Size returns the bounding box size.
func (e *Entity) Size() core.Vec { return e.size }

// Position returns the effective top-left position.
func (e *Entity) Position() core.Vec { return e.layout.Add(e.offset) }

// Bounds returns the axis-aligned bounding box at the effective position.
func (e *Entity) Bounds() core.Box { return core.NewBox(e.Position(), e.size) }

// Health returns remaining hit points. Projectiles report 1 until destroyed.
func (e *Entity) Health() int { return e.health }

// Destroyed reports whether the entity has been marked destroyed. Once true it never reverts.
func (e *Entity) Destroyed() bool { return e.destroyed }

// Boss returns the boss AI, or nil for every other kind.
func (e *Entity) Boss() *BossAI { return e.boss }

// Shielded reports whether the entity currently ignores damage.
func (e *Entity) Shielded() bool {
	return e.boss != nil && e.boss.ShieldActive()
}

// TakeDamage applies one unit of damage and reports whether it had any effect.
// Projectiles are destroyed by any hit; a shielded boss ignores damage entirely.
func (e *Entity) TakeDamage() bool {
	if e.destroyed || e.Shielded() {
		return false
	}
	if e.kind.IsProjectile() {
		e.destroy()
		return true
	}
	e.health--
	if e.health <= 0 {
		e.health = 0
		e.destroy()
	}
	return true
}

func (e *Entity) destroy() {
	e.destroyed = true
}

func (e *Entity) translate(d core.Vec) {
	e.offset = e.offset.Add(d)
}
