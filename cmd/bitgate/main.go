// bitgate is a terminal puzzle platformer built around a bitmask: levels are
// full of objects gated by individual bits, and flipping a bit reshapes the
// level around you.
//
// Usage:
//
//	bitgate play [level]     - Play the campaign, optionally from a level
//	bitgate menu             - Start the interactive level picker
//	bitgate list             - List campaign levels
//	bitgate stats [level]    - Show recorded run stats
//	bitgate serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.bitgate/runs.db)
//	--config <path>  - Path to custom game config YAML
//	--levels <dir>   - Load levels from a directory instead of the built-in campaign
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkovalev/bitgate/internal/config"
	"github.com/mkovalev/bitgate/internal/level"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bitgate",
	Short: "Bitgate - a bitmask puzzle platformer in your terminal",
	Long: `Bitgate is a terminal platformer where every level is wired to a small
bitmask. Hazards, bridges, walls, and teleporters each watch one bit;
terminals in the level flip bits, and the level reshapes itself around you.

Available commands:
  play     - Play the campaign
  menu     - Interactive level picker
  list     - Show campaign levels
  stats    - View recorded run stats
  serve    - Start SSH server for remote play

Examples:
  bitgate play
  bitgate play 02-bridge-work
  bitgate menu
  bitgate serve --ssh :2222
  bitgate stats 01-first-gate`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bitgate/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with level YAML files")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadSetup resolves the game config and level set from the global flags.
func loadSetup() (config.GameConfig, []*level.Def, error) {
	cfg, err := config.LoadGame(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	dir := flagLevelsDir
	if dir == "" {
		dir = cfg.Levels.Dir
	}
	levels, err := level.LoadCampaign(dir)
	if err != nil {
		return cfg, nil, err
	}
	if len(levels) == 0 {
		return cfg, nil, fmt.Errorf("no levels found")
	}
	return cfg, levels, nil
}
