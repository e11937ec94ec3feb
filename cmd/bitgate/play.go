package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkovalev/bitgate/internal/core"
	"github.com/mkovalev/bitgate/internal/game"
	"github.com/mkovalev/bitgate/internal/platform/tui"
	"github.com/mkovalev/bitgate/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign",
	Long: `Start the campaign, optionally from a specific level.

Controls:
  A/D or arrows  - Move
  Space/W/Up     - Jump
  E/Enter        - Use a terminal
  1-9            - Flip a mask bit directly (debug)
  P/Esc          - Pause
  R              - Restart
  Q/Ctrl+C       - Quit

Examples:
  bitgate play
  bitgate play 02-bridge-work
  bitgate play --config ./my-game.yaml
  bitgate play --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, levels, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	startLevel := 0
	if len(args) == 1 {
		startLevel = -1
		for i, def := range levels {
			if def.ID == args[0] {
				startLevel = i
				break
			}
		}
		if startLevel < 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'bitgate list' to see available levels.")
			os.Exit(1)
		}
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

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	g := game.New(levels, gameCfg, log.New(os.Stderr))
	g.SetStartLevel(startLevel)

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
