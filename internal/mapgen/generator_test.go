package mapgen

import (
	"testing"

	"github.com/girarda/civ/internal/hexgrid"
	"github.com/girarda/civ/internal/tile"
)

// recordingStore collects created tiles in creation order.
type recordingStore struct {
	tiles []tile.Tile
}

func (s *recordingStore) Create(t tile.Tile) uint64 {
	s.tiles = append(s.tiles, t)
	return uint64(len(s.tiles))
}

func TestDetermineTerrainWater(t *testing.T) {
	g := New(DefaultConfig())

	// Ocean threshold 0.35: below 0.21 (60% of it) is deep ocean.
	if got := g.DetermineTerrain(0.10, 0.5, 0.5); got != tile.TerrainOcean {
		t.Errorf("height 0.10 = %v, want Ocean", got)
	}
	if got := g.DetermineTerrain(0.30, 0.5, 0.5); got != tile.TerrainCoast {
		t.Errorf("height 0.30 = %v, want Coast", got)
	}
}

func TestDetermineTerrainMountain(t *testing.T) {
	g := New(DefaultConfig())

	if got := g.DetermineTerrain(0.85, 0.5, 0.5); got != tile.TerrainMountain {
		t.Errorf("height 0.85 = %v, want Mountain", got)
	}
	// Temperature is irrelevant above the mountain threshold.
	if got := g.DetermineTerrain(0.90, 0.0, 0.0); got != tile.TerrainMountain {
		t.Errorf("cold height 0.90 = %v, want Mountain", got)
	}
}

func TestDetermineTerrainBiomeBands(t *testing.T) {
	g := New(DefaultConfig())

	cases := []struct {
		temp float64
		flat tile.Terrain
		hill tile.Terrain
	}{
		{0.10, tile.TerrainSnow, tile.TerrainSnowHill},
		{0.20, tile.TerrainTundra, tile.TerrainTundraHill},
		{0.40, tile.TerrainGrassland, tile.TerrainGrasslandHill},
		{0.65, tile.TerrainPlains, tile.TerrainPlainsHill},
		{0.90, tile.TerrainDesert, tile.TerrainDesertHill},
	}

	for _, tc := range cases {
		if got := g.DetermineTerrain(0.40, tc.temp, 0.5); got != tc.flat {
			t.Errorf("temp %v at height 0.40 = %v, want %v", tc.temp, got, tc.flat)
		}
		// Hill threshold 0.55: the same band takes its hill variant above.
		if got := g.DetermineTerrain(0.60, tc.temp, 0.5); got != tc.hill {
			t.Errorf("temp %v at height 0.60 = %v, want %v", tc.temp, got, tc.hill)
		}
	}
}

func TestDetermineTerrainDegenerateThresholds(t *testing.T) {
	// Thresholds are not range-validated; incoherent values skew the
	// classification instead of failing.

	// Inverted hill/mountain pair: the mountain branch is checked first,
	// so everything between the two becomes mountain and the hill branch
	// never fires.
	inverted := New(DefaultConfig().WithHillThreshold(0.9).WithMountainThreshold(0.5))
	if got := inverted.DetermineTerrain(0.70, 0.4, 0.5); got != tile.TerrainMountain {
		t.Errorf("inverted thresholds, height 0.70 = %v, want Mountain", got)
	}
	if got := inverted.DetermineTerrain(0.45, 0.4, 0.5); got != tile.TerrainGrassland {
		t.Errorf("inverted thresholds, height 0.45 = %v, want flat Grassland", got)
	}

	// Equal hill and mountain thresholds: all high land goes to the
	// mountain branch, again leaving no hills.
	equal := New(DefaultConfig().WithHillThreshold(0.55).WithMountainThreshold(0.55))
	if got := equal.DetermineTerrain(0.60, 0.4, 0.5); got != tile.TerrainMountain {
		t.Errorf("equal thresholds, height 0.60 = %v, want Mountain", got)
	}

	// Ocean threshold above the field's range drowns the whole map:
	// 0.99 is still below 60% of 2.0, so even the highest cells are deep
	// ocean.
	flooded := New(DefaultConfig().WithOceanThreshold(2.0))
	if got := flooded.DetermineTerrain(0.99, 0.4, 0.5); got != tile.TerrainOcean {
		t.Errorf("ocean threshold 2.0, height 0.99 = %v, want Ocean", got)
	}
}

func TestDetermineFeatureExcludedTerrains(t *testing.T) {
	g := New(DefaultConfig())

	excluded := []tile.Terrain{
		tile.TerrainOcean, tile.TerrainCoast, tile.TerrainLake,
		tile.TerrainMountain, tile.TerrainSnow, tile.TerrainSnowHill,
	}
	for _, terrain := range excluded {
		// Even with conditions maximally favorable, no feature appears.
		for i := 0; i < 50; i++ {
			if f := g.DetermineFeature(terrain, 0.9, 0.9); f != nil {
				t.Fatalf("%v got feature %v", terrain, *f)
			}
		}
	}
}

func TestDetermineFeatureCompatibility(t *testing.T) {
	g := New(DefaultConfig())

	// Every placement over many draws must satisfy the feature's own
	// terrain compatibility rules.
	land := []tile.Terrain{
		tile.TerrainGrassland, tile.TerrainPlains, tile.TerrainDesert,
		tile.TerrainTundra, tile.TerrainGrasslandHill, tile.TerrainPlainsHill,
		tile.TerrainDesertHill, tile.TerrainTundraHill,
	}
	temps := []float64{0.1, 0.5, 0.75, 0.9}
	moistures := []float64{0.3, 0.55, 0.65, 0.8}

	for _, terrain := range land {
		for _, temp := range temps {
			for _, moisture := range moistures {
				for i := 0; i < 25; i++ {
					f := g.DetermineFeature(terrain, temp, moisture)
					if f == nil {
						continue
					}
					if !f.CanPlaceOn(terrain) {
						t.Fatalf("placed %v on incompatible %v (temp %v, moisture %v)",
							*f, terrain, temp, moisture)
					}
				}
			}
		}
	}
}

func TestDetermineFeatureDryTilesStayBare(t *testing.T) {
	g := New(DefaultConfig())

	for i := 0; i < 100; i++ {
		if f := g.DetermineFeature(tile.TerrainGrassland, 0.5, 0.1); f != nil {
			t.Fatalf("dry grassland got feature %v", *f)
		}
	}
}

func TestGenerateCoversEveryCoordinate(t *testing.T) {
	cfg := Duel().WithSeed(42)
	store := &recordingStore{}

	entities := New(cfg).Generate(store)

	want := cfg.Size.TotalTiles()
	if len(entities) != want || len(store.tiles) != want {
		t.Fatalf("generated %d entities, %d tiles, want %d", len(entities), len(store.tiles), want)
	}

	width, height := cfg.Size.Dimensions()
	seen := make(map[hexgrid.Coord]bool, want)
	for _, tl := range store.tiles {
		if seen[tl.Position] {
			t.Fatalf("coordinate %v created twice", tl.Position)
		}
		seen[tl.Position] = true

		if tl.Position.Q < 0 || tl.Position.Q >= width ||
			tl.Position.R < 0 || tl.Position.R >= height {
			t.Fatalf("coordinate %v out of bounds %dx%d", tl.Position, width, height)
		}
		if tl.Resource != nil {
			t.Fatalf("generated tile %v carries a resource", tl.Position)
		}
		if tl.Rivers != tile.RiversNone {
			t.Fatalf("generated tile %v carries rivers", tl.Position)
		}
		if tl.Feature != nil && !tl.Feature.CanPlaceOn(tl.Terrain) {
			t.Fatalf("tile %v has %v on incompatible %v", tl.Position, *tl.Feature, tl.Terrain)
		}
	}
	if len(seen) != want {
		t.Fatalf("covered %d distinct coordinates, want %d", len(seen), want)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := Duel().WithSeed(12345)

	a := &recordingStore{}
	b := &recordingStore{}
	New(cfg).Generate(a)
	New(cfg).Generate(b)

	if len(a.tiles) != len(b.tiles) {
		t.Fatalf("tile counts differ: %d vs %d", len(a.tiles), len(b.tiles))
	}
	for i := range a.tiles {
		ta, tb := a.tiles[i], b.tiles[i]
		if ta.Position != tb.Position || ta.Terrain != tb.Terrain ||
			ta.Yields != tb.Yields || ta.Rivers != tb.Rivers {
			t.Fatalf("tile %d differs: %+v vs %+v", i, ta, tb)
		}
		if (ta.Feature == nil) != (tb.Feature == nil) {
			t.Fatalf("tile %d feature presence differs", i)
		}
		if ta.Feature != nil && *ta.Feature != *tb.Feature {
			t.Fatalf("tile %d feature differs: %v vs %v", i, *ta.Feature, *tb.Feature)
		}
	}
}

func TestGenerateSeedChangesMap(t *testing.T) {
	a := &recordingStore{}
	b := &recordingStore{}
	New(Duel().WithSeed(1)).Generate(a)
	New(Duel().WithSeed(2)).Generate(b)

	differing := 0
	for i := range a.tiles {
		if a.tiles[i].Terrain != b.tiles[i].Terrain {
			differing++
		}
	}
	if differing == 0 {
		t.Error("different seeds produced identical terrain")
	}
}

func TestGenerateProducesLandAndWater(t *testing.T) {
	store := &recordingStore{}
	New(Standard().WithSeed(42)).Generate(store)

	var land, water int
	for _, tl := range store.tiles {
		if tl.Terrain.IsWater() {
			water++
		} else {
			land++
		}
	}
	if land == 0 || water == 0 {
		t.Errorf("degenerate map: %d land, %d water", land, water)
	}
}
