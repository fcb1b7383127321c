package sim

import (
	"io"

	"github.com/charmbracelet/log"
)

// Scene is told when entities join or leave the simulation so a renderer can
// keep its own visuals in step. The simulation never reads anything back.
type Scene interface {
	Attach(e *Entity)
	Detach(e *Entity)
}

// HUD receives the values a heads-up display shows.
type HUD interface {
	ShowHealth(health int)
	ShowShield(active bool)
	ShowOutcome(o Outcome)
}

// Hooks bundles the loop's outward collaborators. Zero fields are replaced by no-ops.
type Hooks struct {
	Scene  Scene
	HUD    HUD
	Logger *log.Logger
}

func (h Hooks) withDefaults() Hooks {
	if h.Scene == nil {
		h.Scene = nopScene{}
	}
	if h.HUD == nil {
		h.HUD = nopHUD{}
	}
	if h.Logger == nil {
		h.Logger = log.New(io.Discard)
	}
	return h
}

type nopScene struct{}

func (nopScene) Attach(*Entity) {}
func (nopScene) Detach(*Entity) {}

type nopHUD struct{}

func (nopHUD) ShowHealth(int)      {}
func (nopHUD) ShowShield(bool)     {}
func (nopHUD) ShowOutcome(Outcome) {}
