package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-battle/internal/campaign"
	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
	"github.com/vovakirdan/sky-battle/internal/registry"
	"github.com/vovakirdan/sky-battle/internal/sim"
	"github.com/vovakirdan/sky-battle/internal/storage"
)

// GameOptions configures a battle session.
type GameOptions struct {
	Level      string // Starting level; empty means the first registered level
	Config     config.Config
	Difficulty config.DifficultyPreset
	Runtime    core.RuntimeConfig
	Store      *storage.Store // Optional; runs are not recorded when nil
	Logger     *log.Logger    // Optional; discards when nil
}

// configReloadedMsg carries a tuning file that changed on disk.
type configReloadedMsg struct{ cfg config.Config }

// configErrorMsg reports a tuning file that failed to reload.
type configErrorMsg struct{ err error }

// Model is the Bubble Tea model for a battle.
type Model struct {
	run        *campaign.Campaign
	view       *battleView
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	runtime    core.RuntimeConfig
	difficulty config.DifficultyPreset
	keyMapper  *KeyMapper
	gen        uint64 // Tick generation
	embedded   bool   // Hosted by another model; leaving does not quit the program

	paused     bool
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the finished run has been recorded
}

// NewModel builds the campaign and the model around it.
func NewModel(opts GameOptions) (Model, error) {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	level := opts.Level
	if level == "" {
		level = registry.First()
	}

	view := newBattleView()
	hooks := view.hooks()
	hooks.Logger = logger

	run, err := campaign.NewAt(level, opts.Config, opts.Runtime.Seed, hooks)
	if err != nil {
		return Model{}, err
	}

	return Model{
		run:        run,
		view:       view,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		store:      opts.Store,
		logger:     logger,
		runtime:    opts.Runtime,
		difficulty: opts.Difficulty,
		keyMapper:  NewKeyMapper(),
		gen:        nextTickGen(),
	}, nil
}

// tickInterval returns milliseconds per tick. An explicit tick rate wins over
// the tuning's tick length.
func (m Model) tickInterval() int {
	if m.runtime.TickRate > 0 {
		return max(1000/m.runtime.TickRate, 1)
	}
	return m.run.Config().TickMS
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickInterval(), m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()

	case configReloadedMsg:
		cfg := msg.cfg
		config.ApplyPreset(&cfg, m.difficulty)
		m.run.Reload(cfg)
		m.view.notify("tuning reloaded, applies at the next level")
		m.logger.Info("tuning reloaded")
		return m, nil

	case configErrorMsg:
		m.view.notify("tuning reload failed: " + msg.err.Error())
		m.logger.Warn("tuning reload failed", "err", msg.err)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	cmd, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.recordRun(storage.OutcomeAbandoned)
		m.run.End()
		m.quitting = true
		return m, tea.Quit
	}

	switch cmd {
	case core.CommandPause:
		if !m.run.Over() {
			m.paused = !m.paused
		}
	case core.CommandRestart:
		if m.run.Over() {
			m.restart()
		}
	case core.CommandBack:
		if m.run.Over() || m.paused {
			m.recordRun(storage.OutcomeAbandoned)
			m.run.End()
			m.backToMenu = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		}
	default:
		if !m.paused {
			m.run.Command(cmd)
		}
	}

	return m, nil
}

// restart begins a new run with a fresh seed.
func (m *Model) restart() {
	m.runtime.Seed = time.Now().UnixNano()
	m.view.reset()
	if err := m.run.Restart(m.runtime.Seed); err != nil {
		m.logger.Error("restart failed", "err", err)
		m.view.notify("restart failed: " + err.Error())
		return
	}
	m.paused = false
	m.runSaved = false
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && !m.run.Over() {
		res := m.run.Tick()
		if m.run.Over() {
			m.recordRun(outcomeName(res.Outcome))
		}
	}
	m.view.advance()

	return m, tickCmd(m.tickInterval(), m.gen)
}

func outcomeName(o sim.Outcome) string {
	if o.Status == sim.StatusWon {
		return storage.OutcomeWon
	}
	return storage.OutcomeLost
}

// recordRun stores the run once. Runs that never ticked are not recorded.
func (m *Model) recordRun(outcome string) {
	if m.store == nil || m.runSaved || m.run.Ticks() == 0 {
		return
	}
	m.runSaved = true

	s := m.run.Summary()
	_, err := m.store.SaveRun(storage.RunRecord{
		Level:      s.Level,
		Outcome:    outcome,
		Kills:      s.Kills,
		Ticks:      s.Ticks,
		Seed:       s.Seed,
		Difficulty: string(m.difficulty),
	})
	if err != nil {
		m.logger.Error("cannot record run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.view.draw(m.screen, m.run, m.paused)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".skybattle", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.run.LevelID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.view.notify("screenshot saved to " + path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.view.draw(m.screen, m.run, m.paused)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player quit the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player left the battle for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Runtime returns the runtime config, including the latest window size.
func (m Model) Runtime() core.RuntimeConfig {
	return m.runtime
}

// Run plays a battle in the terminal. When watcher is not nil, tuning changes
// on disk are delivered to the running game. It reports whether the player
// asked to go back to the menu.
func Run(opts GameOptions, watcher *config.Watcher) (backToMenu bool, err error) {
	model, err := NewModel(opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if watcher != nil {
		go watcher.Run(
			func(cfg config.Config) { p.Send(configReloadedMsg{cfg: cfg}) },
			func(err error) { p.Send(configErrorMsg{err: err}) },
		)
	}

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
