package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/game"
	"github.com/mkovalev/bitgate/internal/platform/tui"
	"github.com/mkovalev/bitgate/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive level picker",
	Long: `Start bitgate in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a level.
After a run ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Tab          - Run stats
  Q            - Quit

Examples:
  bitgate menu
  bitgate menu --fps 30
  bitgate menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, levels, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(levels, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsStats {
			goBack, stErr := tui.RunStats(store, cfg.ScreenW, cfg.ScreenH)
			if stErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", stErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from stats
		}

		// Fresh seed for each run
		cfg.Seed = time.Now().UnixNano()

		g := game.New(levels, gameCfg, log.New(os.Stderr))
		g.SetStartLevel(menuResult.LevelIndex)

		if err := tui.Run(g, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
