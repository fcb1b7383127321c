// skybattle is a side-scrolling air combat game for the terminal.
//
// Usage:
//
//	skybattle list              - List the campaign's levels
//	skybattle play [level]      - Fly the campaign, optionally from a given level
//	skybattle menu              - Pick a starting level interactively
//	skybattle serve             - Start SSH server for remote play
//	skybattle scores            - Show the best recorded runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: tick_ms from the tuning file)
//	--seed <value>  - Set RNG seed for reproducible battles
//	--db <path>     - Set database path (default: ~/.skybattle/runs.db)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"

	// Register the campaign's levels
	_ "github.com/vovakirdan/sky-battle/internal/levels"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Battle flags shared by play and menu
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skybattle",
	Short: "Sky Battle - air combat in your terminal",
	Long: `Sky Battle is a side-scrolling air combat game played in the terminal.
Hold the line against enemy waves, then bring down the boss.

Available commands:
  list     - Show the campaign's levels
  play     - Fly the campaign
  menu     - Pick a starting level interactively
  serve    - Start SSH server for remote play
  scores   - View recorded runs

Examples:
  skybattle list
  skybattle play
  skybattle play level-two --difficulty hard
  skybattle serve --ssh :2222
  skybattle scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = tick_ms from the tuning file)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skybattle/runs.db", "Path to run database")

	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to a custom levels.yaml")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
		c.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
		c.Flags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.skybattle/debug.log")
	}

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// loadTuning loads the tuning file and applies the difficulty preset.
func loadTuning() (config.Config, config.DifficultyPreset, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.Config{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// newWatcher watches the tuning file in use when --watch is set.
// It returns nil when watching is off or impossible.
func newWatcher(logger *log.Logger) *config.Watcher {
	if !flagWatch {
		return nil
	}
	path := flagConfig
	if path == "" {
		path = config.UserConfigPath()
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Warning: no tuning file to watch")
		return nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot watch tuning file: %v\n", err)
		return nil
	}
	logger.Info("watching tuning file", "path", w.Path())
	return w
}

// openDebugLog returns a file logger when --debug is set, otherwise a logger
// that discards everything. The returned func closes the log file.
func openDebugLog() (*log.Logger, func(), error) {
	if !flagDebug {
		return log.New(io.Discard), func() {}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".skybattle")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open debug log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "skybattle",
	})
	return logger, func() { f.Close() }, nil
}
