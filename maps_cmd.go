package main

import (
	"fmt"

	"github.com/milk9111/communityrpg/assets"
	"github.com/milk9111/communityrpg/config"
	"github.com/milk9111/communityrpg/maps"
	"github.com/spf13/cobra"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List the configured maps and their layers",
	Long: `Parses every map in the config and prints its size and layers in
draw order. Blocking layers are the ones the player cannot walk through.`,
	RunE: runMaps,
}

func runMaps(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger := newLogger("maps")
	opts := maps.Options{Scaling: cfg.Tiles.Scaling, BlockingMarker: cfg.Tiles.BlockingMarker}

	out := cmd.OutOrStdout()
	for _, f := range cfg.Maps.Files {
		m, err := maps.Parse(assets.FS(), f, opts, logger)
		if err != nil {
			return err
		}
		start := ""
		if m.Name == cfg.Maps.Start {
			start = " (start)"
		}
		fmt.Fprintf(out, "%s%s  %s  %.0fx%.0f\n", m.Name, start, m.Path, m.Width, m.Height)
		printLayers(cmd, m.Layers)
		fmt.Fprintln(out)
	}
	return nil
}

func printLayers(cmd *cobra.Command, set *maps.LayerSet) {
	out := cmd.OutOrStdout()

	// Calculate column width
	maxName := len("LAYER")
	for _, name := range set.Names() {
		maxName = max(maxName, len(name))
	}

	fmt.Fprintf(out, "  %-*s  %-8s  %s\n", maxName, "LAYER", "BLOCKING", "TILES")
	set.Each(func(l *maps.Layer) {
		blocking := "no"
		if l.Blocking {
			blocking = "yes"
		}
		fmt.Fprintf(out, "  %-*s  %-8s  %d\n", maxName, l.Name, blocking, len(l.Tiles))
	})
}
