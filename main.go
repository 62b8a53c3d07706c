// communityrpg is a top-down tile RPG.
//
// Usage:
//
//	communityrpg                 - Play, starting on the configured map
//	communityrpg maps            - List the maps and their layers
//
// Global flags:
//
//	--config <path>  - YAML config (default: ./config.yaml, then built in)
//	--debug          - Debug logging and on-screen overlay
//	--map <name>     - Start on this map instead of the configured one
//	--watch          - Reload speed and margins when the config file changes
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/communityrpg/config"
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagDebug  bool
	flagMap    string
	flagWatch  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "communityrpg",
	Short:        "Walk around a tile map",
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and overlay")
	rootCmd.Flags().StringVar(&flagMap, "map", "", "Map to start on (default: maps.start from config)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload speed and margins when the config file changes")

	rootCmd.AddCommand(mapsCmd)
}

func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := newLogger("rpg")

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	game, err := NewGame(cfg, Options{
		ConfigPath: flagConfig,
		StartMap:   flagMap,
		Debug:      flagDebug,
		Watch:      flagWatch,
	}, logger)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	logger.Info("starting", "width", cfg.Window.Width, "height", cfg.Window.Height, "maps", len(cfg.Maps.Files))
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
