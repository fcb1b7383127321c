package sim

import "github.com/vovakirdan/sky-battle/internal/core"

// MovementRule advances an entity's offset by one tick.
type MovementRule interface {
	Apply(e *Entity)
}

// Straight moves an entity horizontally at a constant velocity.
type Straight struct {
	VX float64
}

// Apply implements MovementRule.
func (s Straight) Apply(e *Entity) {
	e.translate(core.Vec{X: s.VX})
}

// Pilot is the player's movement rule. Flight commands set the direction;
// Apply moves by Speed in that direction each tick.
type Pilot struct {
	Speed float64
	MinY  float64
	MaxY  float64

	dir int // -1 up, 0 hold, +1 down
}

// MoveUp starts moving towards smaller Y.
func (p *Pilot) MoveUp() { p.dir = -1 }

// MoveDown starts moving towards larger Y.
func (p *Pilot) MoveDown() { p.dir = 1 }

// Stop holds the current altitude.
func (p *Pilot) Stop() { p.dir = 0 }

// Direction returns -1, 0 or +1.
func (p *Pilot) Direction() int { return p.dir }

// Apply implements MovementRule.
func (p *Pilot) Apply(e *Entity) {
	if p.dir == 0 {
		return
	}
	moveWithinBand(e, p.Speed*float64(p.dir), p.MinY, p.MaxY)
}

// moveWithinBand shifts e vertically by dy. A move that would leave
// [minY, maxY] is undone entirely, so the entity stops one step short of the
// edge instead of sitting exactly on it.
func moveWithinBand(e *Entity, dy, minY, maxY float64) {
	if dy == 0 {
		return
	}
	prev := e.offset
	e.translate(core.Vec{Y: dy})
	if y := e.Position().Y; y < minY || y > maxY {
		e.offset = prev
	}
}
