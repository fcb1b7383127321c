package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks that every parameter is usable. A level must not start with
// an invalid tuning, so callers treat a non-nil result as fatal.
func (c Config) Validate() error {
	if c.TickMS <= 0 {
		return invalid("tick_ms must be positive, got %d", c.TickMS)
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return invalid("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	}
	if c.Field.EnemyBandMax() <= 0 {
		return invalid("field.enemy_band_margin %v leaves no room to spawn", c.Field.EnemyBandMargin)
	}

	sizes := map[string]Size{
		"player.size":             c.Player.Size,
		"enemy.size":              c.Enemy.Size,
		"boss.size":               c.Boss.Size,
		"projectiles.player.size": c.Projectiles.Player.Size,
		"projectiles.enemy.size":  c.Projectiles.Enemy.Size,
		"projectiles.boss.size":   c.Projectiles.Boss.Size,
	}
	for name, s := range sizes {
		if s.Width <= 0 || s.Height <= 0 {
			return invalid("%s must be positive, got %vx%v", name, s.Width, s.Height)
		}
	}

	probabilities := map[string]float64{
		"enemy.fire_rate":             c.Enemy.FireRate,
		"boss.fire_rate":              c.Boss.FireRate,
		"boss.shield_probability":     c.Boss.ShieldProbability,
		"level_one.spawn_probability": c.LevelOne.SpawnProbability,
	}
	for name, p := range probabilities {
		if p < 0 || p > 1 {
			return invalid("%s must be within [0, 1], got %v", name, p)
		}
	}

	if c.Player.Speed < 0 || c.Boss.Speed < 0 {
		return invalid("vertical speeds must not be negative")
	}
	if c.Player.MinY > c.Player.MaxY {
		return invalid("player band is empty: min_y %v > max_y %v", c.Player.MinY, c.Player.MaxY)
	}
	if c.Boss.MinY > c.Boss.MaxY {
		return invalid("boss band is empty: min_y %v > max_y %v", c.Boss.MinY, c.Boss.MaxY)
	}
	if c.Enemy.Health <= 0 {
		return invalid("enemy.health must be positive, got %d", c.Enemy.Health)
	}
	if c.Boss.Health <= 0 {
		return invalid("boss.health must be positive, got %d", c.Boss.Health)
	}
	if c.Boss.MoveRepeats <= 0 || c.Boss.FramesPerMove <= 0 || c.Boss.ShieldFrames <= 0 {
		return invalid("boss move_repeats, frames_per_move and shield_frames must be positive")
	}
	if c.LevelOne.PlayerHealth <= 0 || c.LevelTwo.PlayerHealth <= 0 {
		return invalid("player_health must be positive")
	}
	if c.LevelOne.TotalEnemies < 0 {
		return invalid("level_one.total_enemies must not be negative, got %d", c.LevelOne.TotalEnemies)
	}
	if c.LevelOne.KillsToAdvance <= 0 {
		return invalid("level_one.kills_to_advance must be positive, got %d", c.LevelOne.KillsToAdvance)
	}
	return nil
}
