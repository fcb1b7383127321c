package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-battle/internal/platform/tui"
	"github.com/vovakirdan/sky-battle/internal/registry"
	"github.com/vovakirdan/sky-battle/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Fly the campaign",
	Long: `Start the campaign at the first level, or at the given level.

Controls:
  Up/W/K       - Climb
  Down/S/J     - Dive
  X/Left/Right - Hold altitude
  Space/F      - Fire
  P            - Pause
  R            - Restart (after the run ends)
  B/Esc        - Leave (after the run ends or while paused)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More health, fewer enemies and shots
  normal - The tuning as written
  hard   - Less health, more enemies and shots

Examples:
  skybattle play
  skybattle play level-two
  skybattle play --difficulty hard --seed 42
  skybattle play --config ./levels.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	levelID := registry.First()
	if len(args) == 1 {
		levelID = args[0]
	}
	if !registry.Exists(levelID) {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'skybattle list' to see available levels.")
		os.Exit(1)
	}

	tuning, preset, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openDebugLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}

	watcher := newWatcher(logger)

	_, runErr := tui.Run(tui.GameOptions{
		Level:      levelID,
		Config:     tuning,
		Difficulty: preset,
		Runtime:    runtimeConfig(),
		Store:      store,
		Logger:     logger,
	}, watcher)

	if watcher != nil {
		watcher.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
