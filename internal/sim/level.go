package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is wrapped by every level construction failure.
var ErrInvalidLevel = errors.New("invalid level")

// Level is the structure of one stage: who spawns, and what ends it.
type Level struct {
	ID           string
	Title        string
	PlayerHealth int
	Spawner      SpawnController
	Rules        []LevelRule
}

// Validate checks that the level can be run.
func (l Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidLevel)
	}
	if l.PlayerHealth <= 0 {
		return fmt.Errorf("%w: %s: player health must be positive, got %d", ErrInvalidLevel, l.ID, l.PlayerHealth)
	}
	if l.Spawner == nil {
		return fmt.Errorf("%w: %s: no spawner", ErrInvalidLevel, l.ID)
	}
	if len(l.Rules) == 0 {
		return fmt.Errorf("%w: %s: no rules", ErrInvalidLevel, l.ID)
	}
	return nil
}
