package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-battle/internal/platform/tui"
	"github.com/vovakirdan/sky-battle/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a starting level interactively",
	Long: `Start Sky Battle in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to take off.
After leaving a battle with B or Esc, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Take off
  Tab          - Recorded runs
  Q            - Quit

Examples:
  skybattle menu
  skybattle menu --difficulty easy
  skybattle menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	rt := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		rt = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		watcher := newWatcher(logger)
		backToMenu, err := tui.Run(tui.GameOptions{
			Level:      menuResult.LevelID,
			Config:     tuning,
			Difficulty: preset,
			Runtime:    rt,
			Store:      store,
			Logger:     logger,
		}, watcher)
		if watcher != nil {
			watcher.Close()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !backToMenu {
			return
		}
		// A fixed seed repeats only the first battle
		rt.Seed = 0
	}
}
