package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/sky-battle/internal/campaign"
	"github.com/vovakirdan/sky-battle/internal/core"
	"github.com/vovakirdan/sky-battle/internal/sim"
)

// Visual constants for the battlefield.
const (
	explosionTicks = 6  // How long a wreck stays on screen
	bannerTicks    = 40 // How long a level-complete banner stays up
	hudRows        = 1  // Status line at the top
	helpRows       = 1  // Key help at the bottom
)

type explosion struct {
	box core.Box
	ttl int
}

// battleView receives the simulation's HUD and scene notifications and draws
// the battlefield into a screen buffer. It implements sim.HUD and sim.Scene.
type battleView struct {
	health  int
	shield  bool
	outcome sim.Outcome

	explosions []explosion

	banner    string
	bannerTTL int
	flash     string // One-line notice shown in the help row
	flashTTL  int
}

func newBattleView() *battleView {
	return &battleView{}
}

func (v *battleView) hooks() sim.Hooks {
	return sim.Hooks{Scene: v, HUD: v}
}

// ShowHealth implements sim.HUD.
func (v *battleView) ShowHealth(health int) { v.health = health }

// ShowShield implements sim.HUD.
func (v *battleView) ShowShield(active bool) { v.shield = active }

// ShowOutcome implements sim.HUD.
func (v *battleView) ShowOutcome(o sim.Outcome) {
	v.outcome = o
	if o.Status == sim.StatusAdvance {
		v.banner = "LEVEL COMPLETE"
		v.bannerTTL = bannerTicks
	}
}

// Attach implements sim.Scene. Live entities are drawn straight from the loop.
func (v *battleView) Attach(*sim.Entity) {}

// Detach implements sim.Scene. Craft shot down leave a short-lived wreck;
// entities cleared at level end vanish silently.
func (v *battleView) Detach(e *sim.Entity) {
	if e.Kind().IsProjectile() || e.Health() > 0 {
		return
	}
	v.explosions = append(v.explosions, explosion{box: e.Bounds(), ttl: explosionTicks})
}

// reset clears per-run state.
func (v *battleView) reset() {
	*v = battleView{}
}

// notify shows a one-line notice for a while.
func (v *battleView) notify(msg string) {
	v.flash = msg
	v.flashTTL = bannerTicks
}

// advance ages the visual effects by one tick.
func (v *battleView) advance() {
	kept := v.explosions[:0]
	for _, ex := range v.explosions {
		ex.ttl--
		if ex.ttl > 0 {
			kept = append(kept, ex)
		}
	}
	v.explosions = kept

	if v.bannerTTL > 0 {
		v.bannerTTL--
	}
	if v.flashTTL > 0 {
		v.flashTTL--
	}
}

// projection maps world coordinates to screen cells in the play area.
type projection struct {
	sx, sy float64
	top    int
}

func newProjection(dst *core.Screen, field core.Vec) projection {
	rows := dst.Height() - hudRows - helpRows
	if rows < 1 {
		rows = 1
	}
	return projection{
		sx:  float64(dst.Width()) / field.X,
		sy:  float64(rows) / field.Y,
		top: hudRows,
	}
}

// rect returns the cells covered by a world box, at least one cell in each direction.
func (p projection) rect(b core.Box) core.Rect {
	x := int(math.Floor(b.X * p.sx))
	y := int(math.Floor(b.Y*p.sy)) + p.top
	w := int(math.Round(b.W * p.sx))
	h := int(math.Round(b.H * p.sy))
	return core.NewRect(x, y, max(w, 1), max(h, 1))
}

// draw renders the whole frame: status line, battlefield, overlays and help.
func (v *battleView) draw(dst *core.Screen, run *campaign.Campaign, paused bool) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	cfg := run.Config()
	proj := newProjection(dst, core.Vec{X: cfg.Field.Width, Y: cfg.Field.Height})
	loop := run.Loop()

	// Defensive line
	for y := hudRows; y < dst.Height()-helpRows; y++ {
		dst.SetColored(0, y, '┊', core.ColorGray)
	}

	loop.Each(func(e *sim.Entity) {
		v.drawEntity(dst, proj, e)
	})

	for _, ex := range v.explosions {
		r := proj.rect(ex.box)
		glyph := '*'
		if ex.ttl < explosionTicks/2 {
			glyph = '·'
		}
		dst.FillRect(r, glyph, core.ColorOrange)
	}

	v.drawStatus(dst, run)
	v.drawOverlay(dst, run, paused)
	v.drawHelp(dst, run)
}

func (v *battleView) drawEntity(dst *core.Screen, proj projection, e *sim.Entity) {
	r := proj.rect(e.Bounds())

	switch e.Kind() {
	case sim.KindPlayer:
		dst.FillRect(r, '▬', core.ColorCyan)
		dst.FillRect(core.NewRect(r.Right()-1, r.Y, 1, r.H), '▶', core.ColorBrightCyan)
	case sim.KindEnemy:
		dst.FillRect(r, '▬', core.ColorRed)
		dst.FillRect(core.NewRect(r.X, r.Y, 1, r.H), '◀', core.ColorBrightRed)
	case sim.KindBoss:
		if e.Shielded() {
			dst.FillRect(r, '░', core.ColorBrightCyan)
		} else {
			dst.FillRect(r, '█', core.ColorMagenta)
		}
		dst.FillRect(core.NewRect(r.X, r.Y, 1, r.H), '◀', core.ColorBrightRed)
	case sim.KindPlayerProjectile:
		dst.FillRect(r, '─', core.ColorBrightYellow)
	case sim.KindEnemyProjectile:
		dst.FillRect(r, '•', core.ColorOrange)
	}
}

func (v *battleView) drawStatus(dst *core.Screen, run *campaign.Campaign) {
	loop := run.Loop()

	hearts := strings.Repeat("♥", core.Clamp(v.health, 0, 20))
	dst.DrawText(1, 0, hearts, core.ColorBrightRed)

	x := 1 + len([]rune(hearts)) + 2
	title := loop.Level().Title
	dst.DrawText(x, 0, title, core.ColorWhite)
	x += len([]rune(title)) + 3

	kills := fmt.Sprintf("KILLS %d", run.Kills())
	for _, r := range loop.Level().Rules {
		if kt, ok := r.(sim.KillTarget); ok {
			kills = fmt.Sprintf("KILLS %d/%d", loop.Kills(), kt.Threshold)
		}
	}
	dst.DrawText(x, 0, kills, core.ColorBrightGreen)
	x += len(kills) + 3

	for _, e := range loop.Entities(sim.GroupEnemy) {
		if e.Kind() != sim.KindBoss {
			continue
		}
		boss := fmt.Sprintf("BOSS %d", e.Health())
		dst.DrawText(x, 0, boss, core.ColorMagenta)
		if v.shield {
			dst.DrawText(x+len(boss)+1, 0, "[SHIELD]", core.ColorBrightCyan)
		}
	}
}

func (v *battleView) drawOverlay(dst *core.Screen, run *campaign.Campaign, paused bool) {
	mid := dst.Height() / 2

	switch {
	case run.Over():
		text, color := "GAME OVER", core.ColorBrightRed
		if v.outcome.Status == sim.StatusWon {
			text, color = "VICTORY!", core.ColorBrightGreen
		}
		dst.DrawTextCentered(mid-1, text, color)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Kills: %d", run.Kills()), core.ColorWhite)
		dst.DrawTextCentered(mid+3, "R: Restart  |  B: Menu  |  Q: Quit", core.ColorGray)
	case paused:
		dst.DrawTextCentered(mid, "PAUSED", core.ColorBrightYellow)
	case v.bannerTTL > 0:
		dst.DrawTextCentered(mid, v.banner, core.ColorBrightYellow)
	}
}

func (v *battleView) drawHelp(dst *core.Screen, run *campaign.Campaign) {
	y := dst.Height() - 1
	if v.flashTTL > 0 {
		dst.DrawText(1, y, v.flash, core.ColorYellow)
		return
	}
	help := "↑/↓ move  x stop  space fire  p pause  q quit"
	dst.DrawText(1, y, help, core.ColorGray)

	seed := fmt.Sprintf("seed %d", run.Seed())
	dst.DrawText(dst.Width()-len(seed)-1, y, seed, core.ColorGray)
}
