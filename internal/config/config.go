// Package config provides YAML-based tuning for the battle levels and
// difficulty presets. Level structure (which spawn policy and which victory
// rule a level uses) lives in code; only the numbers live here.
package config

// Config contains all tunable parameters of a battle.
type Config struct {
	TickMS      int               `yaml:"tick_ms"` // Milliseconds between simulation ticks
	Field       FieldConfig       `yaml:"field"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Boss        BossConfig        `yaml:"boss"`
	Projectiles ProjectilesConfig `yaml:"projectiles"`
	LevelOne    WaveLevelConfig   `yaml:"level_one"`
	LevelTwo    BossLevelConfig   `yaml:"level_two"`
	Rules       RulesConfig       `yaml:"rules"`
}

// FieldConfig defines the play-field dimensions in world units.
type FieldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	EnemyBandMargin float64 `yaml:"enemy_band_margin"` // Enemies spawn in [0, height-margin)
}

// EnemyBandMax returns the exclusive upper bound of the enemy spawn band.
func (f FieldConfig) EnemyBandMax() float64 {
	return f.Height - f.EnemyBandMargin
}

// Size is a width/height pair in world units.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player craft.
type PlayerConfig struct {
	Size        Size    `yaml:"size"`
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Speed       float64 `yaml:"speed"` // Vertical distance per tick while moving
	MinY        float64 `yaml:"min_y"`
	MaxY        float64 `yaml:"max_y"`
	FireX       float64 `yaml:"fire_x"`        // Absolute X where player shots appear
	FireOffsetY float64 `yaml:"fire_offset_y"` // Added to the player's Y
}

// EnemyConfig defines a regular enemy craft.
type EnemyConfig struct {
	Size        Size    `yaml:"size"`
	Speed       float64 `yaml:"speed"` // Horizontal velocity per tick (negative = leftwards)
	Health      int     `yaml:"health"`
	FireRate    float64 `yaml:"fire_rate"` // Probability of firing on a tick
	FireOffsetX float64 `yaml:"fire_offset_x"`
	FireOffsetY float64 `yaml:"fire_offset_y"`
}

// BossConfig defines the boss craft and its AI.
type BossConfig struct {
	Size              Size    `yaml:"size"`
	StartX            float64 `yaml:"start_x"`
	StartY            float64 `yaml:"start_y"`
	Speed             float64 `yaml:"speed"` // Magnitude of the vertical moves
	Health            int     `yaml:"health"`
	MoveRepeats       int     `yaml:"move_repeats"`    // Copies of {+v, -v, 0} in the pattern
	FramesPerMove     int     `yaml:"frames_per_move"` // Ticks before the pattern is reshuffled
	MinY              float64 `yaml:"min_y"`
	MaxY              float64 `yaml:"max_y"`
	ShieldProbability float64 `yaml:"shield_probability"`
	ShieldFrames      int     `yaml:"shield_frames"`
	FireRate          float64 `yaml:"fire_rate"`
	FireX             float64 `yaml:"fire_x"`
	FireOffsetY       float64 `yaml:"fire_offset_y"`
}

// ProjectileConfig defines a projectile kind.
type ProjectileConfig struct {
	Size  Size    `yaml:"size"`
	Speed float64 `yaml:"speed"` // Horizontal velocity per tick
}

// ProjectilesConfig groups the three projectile kinds.
type ProjectilesConfig struct {
	Player ProjectileConfig `yaml:"player"`
	Enemy  ProjectileConfig `yaml:"enemy"`
	Boss   ProjectileConfig `yaml:"boss"`
}

// WaveLevelConfig tunes a level with randomly spawned enemy waves.
type WaveLevelConfig struct {
	PlayerHealth     int     `yaml:"player_health"`
	TotalEnemies     int     `yaml:"total_enemies"`    // Target enemy population
	KillsToAdvance   int     `yaml:"kills_to_advance"` // Kill threshold for the next level
	SpawnProbability float64 `yaml:"spawn_probability"`
}

// BossLevelConfig tunes the boss level.
type BossLevelConfig struct {
	PlayerHealth int `yaml:"player_health"`
}

// RulesConfig toggles engine-wide behaviour.
type RulesConfig struct {
	// CullOffscreenProjectiles destroys projectiles that leave the play field.
	// When false, projectiles fly on forever, as in the classic game.
	CullOffscreenProjectiles bool `yaml:"cull_offscreen_projectiles"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
