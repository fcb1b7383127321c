package sim

import "math/rand"

// SpawnController decides, once per tick, which new enemies enter the field.
// enemies is the current size of the enemy collection.
type SpawnController interface {
	Spawn(enemies int, rng *rand.Rand) []*Entity
}

// WaveSpawner keeps the enemy population topped up towards Target. For every
// missing enemy it rolls Probability independently; each success adds an
// enemy at a uniform height in [0, BandMax).
type WaveSpawner struct {
	Target      int
	Probability float64
	BandMax     float64
	Blueprints  *Blueprints
}

// Spawn implements SpawnController.
func (w *WaveSpawner) Spawn(enemies int, rng *rand.Rand) []*Entity {
	var out []*Entity
	for i := 0; i < w.Target-enemies; i++ {
		if rng.Float64() < w.Probability {
			out = append(out, w.Blueprints.Enemy(rng.Float64()*w.BandMax))
		}
	}
	return out
}

// BossSpawner introduces a single boss once the field is clear of enemies.
// A boss already on the field, or one that has been destroyed, is never added again.
type BossSpawner struct {
	Boss *Entity
}

// Spawn implements SpawnController.
func (s *BossSpawner) Spawn(enemies int, _ *rand.Rand) []*Entity {
	if enemies > 0 || s.Boss.destroyed || s.Boss.registered {
		return nil
	}
	return []*Entity{s.Boss}
}

// NoSpawn never adds enemies.
type NoSpawn struct{}

// Spawn implements SpawnController.
func (NoSpawn) Spawn(int, *rand.Rand) []*Entity { return nil }
