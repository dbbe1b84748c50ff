package mapgen

import (
	"math/rand"

	"github.com/girarda/civ/internal/hexgrid"
	"github.com/girarda/civ/internal/tile"
)

// Store is the entity-creation capability the generator hands finished
// tiles to. Create returns an opaque entity handle for caller
// bookkeeping; the generator never reads back.
type Store interface {
	Create(t tile.Tile) uint64
}

// Generator builds a complete terrain map from a MapConfig.
//
// It owns a single pseudorandom stream seeded from the config; feature
// draws consume that stream in a fixed q-outer/r-inner traversal, so a
// given config always reproduces the identical map.
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// New creates a generator for the given configuration.
func New(config MapConfig) *Generator {
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(int64(config.Seed))),
	}
}

// Config returns the generator's configuration.
func (g *Generator) Config() MapConfig {
	return g.config
}

// DetermineTerrain classifies one coordinate's height, temperature, and
// moisture sample into a terrain kind. First match wins:
//
//  1. height below the ocean threshold is water; below 60% of the
//     threshold it is deep ocean, otherwise coast.
//  2. height above the mountain threshold is mountain.
//  3. otherwise land: the biome follows temperature bands, and heights
//     above the hill threshold take the biome's hill variant.
//
// Moisture does not influence terrain today; it drives feature
// placement.
func (g *Generator) DetermineTerrain(height, temp, moisture float64) tile.Terrain {
	if height < g.config.OceanThreshold {
		if height < g.config.OceanThreshold*0.6 {
			return tile.TerrainOcean
		}
		return tile.TerrainCoast
	}

	if height > g.config.MountainThreshold {
		return tile.TerrainMountain
	}

	isHill := height > g.config.HillThreshold

	switch {
	case temp < 0.15:
		return hillVariant(tile.TerrainSnow, tile.TerrainSnowHill, isHill)
	case temp < 0.30:
		return hillVariant(tile.TerrainTundra, tile.TerrainTundraHill, isHill)
	case temp < 0.50:
		return hillVariant(tile.TerrainGrassland, tile.TerrainGrasslandHill, isHill)
	case temp < 0.80:
		return hillVariant(tile.TerrainPlains, tile.TerrainPlainsHill, isHill)
	default:
		return hillVariant(tile.TerrainDesert, tile.TerrainDesertHill, isHill)
	}
}

func hillVariant(flat, hill tile.Terrain, isHill bool) tile.Terrain {
	if isHill {
		return hill
	}
	return flat
}

// DetermineFeature decides whether the tile gets an overlay feature,
// consuming the generator's random stream. Checks run in a fixed
// priority order, rarest first, and stop at the first success:
//
//	Oasis   desert, moisture > 0.4, 5% draw
//	Marsh   flat, moisture > 0.7, 20% draw
//	Jungle  temp > 0.7, moisture > 0.6, 50% draw
//	Forest  temp < 0.6, moisture > 0.5, 40% draw
//
// Water, mountain, and snow tiles never carry a feature.
func (g *Generator) DetermineFeature(terrain tile.Terrain, temp, moisture float64) *tile.Feature {
	if terrain.IsWater() || terrain == tile.TerrainMountain ||
		terrain == tile.TerrainSnow || terrain == tile.TerrainSnowHill {
		return nil
	}

	if terrain == tile.TerrainDesert && moisture > 0.4 && g.chance(0.05) {
		return featurePtr(tile.FeatureOasis)
	}

	if !terrain.IsHill() && moisture > 0.7 && g.chance(0.2) &&
		tile.FeatureMarsh.CanPlaceOn(terrain) {
		return featurePtr(tile.FeatureMarsh)
	}

	if temp > 0.7 && moisture > 0.6 && g.chance(0.5) &&
		tile.FeatureJungle.CanPlaceOn(terrain) {
		return featurePtr(tile.FeatureJungle)
	}

	if temp < 0.6 && moisture > 0.5 && g.chance(0.4) &&
		tile.FeatureForest.CanPlaceOn(terrain) {
		return featurePtr(tile.FeatureForest)
	}

	return nil
}

// chance consumes one draw from the generator's stream and reports
// success with probability p.
func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

func featurePtr(f tile.Feature) *tile.Feature {
	return &f
}

// Generate builds the full map: it produces the three noise fields,
// classifies every coordinate, and creates one tile per coordinate in
// the store. Tiles carry no resource and no rivers; later systems
// attach those and must recompute yields when they do.
//
// The traversal is q-outer/r-inner and must stay that way: it fixes the
// order feature draws consume the random stream.
func (g *Generator) Generate(store Store) []uint64 {
	width, height := g.config.Size.Dimensions()

	heightField := g.HeightField()
	tempField := g.TemperatureField()
	moistureField := g.MoistureField()

	entities := make([]uint64, 0, width*height)

	for q := 0; q < width; q++ {
		for r := 0; r < height; r++ {
			terrain := g.DetermineTerrain(
				heightField[q][r], tempField[q][r], moistureField[q][r])
			feature := g.DetermineFeature(terrain, tempField[q][r], moistureField[q][r])

			t := tile.New(hexgrid.At(q, r), terrain, feature, nil, tile.RiversNone)
			entities = append(entities, store.Create(t))
		}
	}

	return entities
}
