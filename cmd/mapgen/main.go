// Command mapgen generates a deterministic hex terrain map from a seed
// and prints its terrain distribution, optionally persisting the map to
// a SQLite database for sharing.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/girarda/civ/internal/hexgrid"
	"github.com/girarda/civ/internal/mapgen"
	"github.com/girarda/civ/internal/tile"
	"github.com/girarda/civ/internal/tilestore"
)

func main() {
	var (
		sizeName = flag.String("size", "Standard", "map size preset (Duel, Tiny, Small, Standard, Large, Huge)")
		seed     = flag.Uint64("seed", 42, "generation seed; the same seed always produces the same map")
		ocean    = flag.Float64("ocean", 0.35, "heights below this are water")
		hill     = flag.Float64("hill", 0.55, "land heights above this are hills")
		mountain = flag.Float64("mountain", 0.75, "heights above this are mountains")
		dbPath   = flag.String("db", "", "SQLite path to save the generated map (optional)")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	size, err := mapgen.ParseMapSize(*sizeName)
	if err != nil {
		slog.Error("invalid size", "error", err)
		os.Exit(1)
	}

	cfg := mapgen.DefaultConfig().
		WithSeed(*seed).
		WithOceanThreshold(*ocean).
		WithHillThreshold(*hill).
		WithMountainThreshold(*mountain)
	cfg.Size = size

	width, height := cfg.Size.Dimensions()
	slog.Info("generating map",
		"size", cfg.Size,
		"dimensions", fmt.Sprintf("%dx%d", width, height),
		"seed", cfg.Seed,
	)

	store := tilestore.NewMemoryStore()
	entities := mapgen.New(cfg).Generate(store)

	var land, water, featured int
	for terrain, count := range store.TerrainCounts() {
		if terrain.IsWater() {
			water += count
		} else {
			land += count
		}
		slog.Info("terrain", "type", terrain, "count", count)
	}
	for _, t := range store.Tiles() {
		if t.Feature != nil {
			featured++
		}
	}

	slog.Info("map generated",
		"tiles", humanize.Comma(int64(len(entities))),
		"land", humanize.Comma(int64(land)),
		"water", humanize.Comma(int64(water)),
		"features", humanize.Comma(int64(featured)),
	)

	if *dbPath != "" {
		db, err := tilestore.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		id, err := db.SaveMap(cfg, store.Tiles())
		if err != nil {
			slog.Error("failed to save map", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Saved map %s to %s\n", id, *dbPath)
	}

	printPreview(store, cfg)
}

// printPreview renders a coarse ASCII view of the map, one glyph per
// tile, sampled down to at most 64 columns.
func printPreview(store *tilestore.MemoryStore, cfg mapgen.MapConfig) {
	width, height := cfg.Size.Dimensions()
	step := 1
	for width/step > 64 {
		step++
	}

	for r := 0; r < height; r += step {
		line := make([]byte, 0, width/step)
		for q := 0; q < width; q += step {
			t, ok := store.Get(hexgrid.At(q, r))
			if !ok {
				line = append(line, '?')
				continue
			}
			line = append(line, glyph(t))
		}
		fmt.Println(string(line))
	}
}

func glyph(t tile.Tile) byte {
	switch {
	case t.Terrain == tile.TerrainOcean:
		return '~'
	case t.Terrain == tile.TerrainCoast || t.Terrain == tile.TerrainLake:
		return '-'
	case t.Terrain == tile.TerrainMountain:
		return '^'
	case t.Feature != nil && *t.Feature == tile.FeatureForest:
		return 'T'
	case t.Feature != nil && *t.Feature == tile.FeatureJungle:
		return 'J'
	case t.Terrain.IsHill():
		return 'n'
	case t.Terrain == tile.TerrainDesert:
		return '.'
	case t.Terrain == tile.TerrainSnow || t.Terrain == tile.TerrainTundra:
		return '*'
	default:
		return ','
	}
}
