package config

import (
	_ "embed"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// DefaultConfig returns the built-in tuning. It mirrors defaults/levels.yaml and
// is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		TickMS: 50,
		Field: FieldConfig{
			Width:           1300,
			Height:          750,
			EnemyBandMargin: 150,
		},
		Player: PlayerConfig{
			Size:        Size{Width: 120, Height: 54},
			StartX:      5,
			StartY:      300,
			Speed:       8,
			MinY:        -40,
			MaxY:        600,
			FireX:       110,
			FireOffsetY: 20,
		},
		Enemy: EnemyConfig{
			Size:        Size{Width: 120, Height: 54},
			Speed:       -6,
			Health:      1,
			FireRate:    0.01,
			FireOffsetX: -100,
			FireOffsetY: 50,
		},
		Boss: BossConfig{
			Size:              Size{Width: 220, Height: 110},
			StartX:            1000,
			StartY:            400,
			Speed:             8,
			Health:            100,
			MoveRepeats:       5,
			FramesPerMove:     10,
			MinY:              -100,
			MaxY:              475,
			ShieldProbability: 0.02,
			ShieldFrames:      20,
			FireRate:          0.04,
			FireX:             950,
			FireOffsetY:       75,
		},
		Projectiles: ProjectilesConfig{
			Player: ProjectileConfig{Size: Size{Width: 40, Height: 10}, Speed: 15},
			Enemy:  ProjectileConfig{Size: Size{Width: 36, Height: 12}, Speed: -10},
			Boss:   ProjectileConfig{Size: Size{Width: 60, Height: 30}, Speed: -15},
		},
		LevelOne: WaveLevelConfig{
			PlayerHealth:     5,
			TotalEnemies:     5,
			KillsToAdvance:   10,
			SpawnProbability: 0.20,
		},
		LevelTwo: BossLevelConfig{
			PlayerHealth: 5,
		},
		Rules: RulesConfig{
			CullOffscreenProjectiles: true,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultLevelsYAML
}
