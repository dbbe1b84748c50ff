// Package tile defines the content models for map tiles: terrain kinds,
// overlay features, resources, river edges, and the yield math that
// combines them into a tile's economic output.
package tile

import "fmt"

// Terrain is the base terrain type of a map tile.
//
// Base yields (food/production/gold):
//
//	Grassland 2/0/0, Plains 1/1/0, Desert 0/0/0, Tundra 1/0/0, Snow 0/0/0,
//	all hills 0/2/0, Mountain 0/0/0, Coast 1/0/0, Ocean 1/0/0, Lake 2/0/0.
type Terrain uint8

const (
	// Flat land terrain.
	TerrainGrassland Terrain = iota
	TerrainPlains
	TerrainDesert
	TerrainTundra
	TerrainSnow

	// Hill variants.
	TerrainGrasslandHill
	TerrainPlainsHill
	TerrainDesertHill
	TerrainTundraHill
	TerrainSnowHill

	// Impassable peaks.
	TerrainMountain

	// Water terrain.
	TerrainCoast
	TerrainOcean
	TerrainLake
)

// AllTerrains lists every terrain kind, in declaration order.
var AllTerrains = [14]Terrain{
	TerrainGrassland, TerrainPlains, TerrainDesert, TerrainTundra, TerrainSnow,
	TerrainGrasslandHill, TerrainPlainsHill, TerrainDesertHill, TerrainTundraHill, TerrainSnowHill,
	TerrainMountain,
	TerrainCoast, TerrainOcean, TerrainLake,
}

var terrainNames = [14]string{
	"Grassland", "Plains", "Desert", "Tundra", "Snow",
	"GrasslandHill", "PlainsHill", "DesertHill", "TundraHill", "SnowHill",
	"Mountain",
	"Coast", "Ocean", "Lake",
}

// BaseFood returns the base food yield for this terrain.
func (t Terrain) BaseFood() int {
	switch t {
	case TerrainGrassland, TerrainLake:
		return 2
	case TerrainPlains, TerrainTundra, TerrainCoast, TerrainOcean:
		return 1
	default:
		return 0
	}
}

// BaseProduction returns the base production yield for this terrain.
func (t Terrain) BaseProduction() int {
	switch t {
	case TerrainPlains:
		return 1
	case TerrainGrasslandHill, TerrainPlainsHill, TerrainDesertHill,
		TerrainTundraHill, TerrainSnowHill:
		return 2
	default:
		return 0
	}
}

// BaseGold returns the base gold yield for this terrain. Base terrain
// never provides gold directly; gold comes from features and resources.
func (t Terrain) BaseGold() int {
	return 0
}

// ImpassableCost is the movement cost of terrain land units cannot enter.
const ImpassableCost = 9999

// MovementCost returns the cost for a land unit to enter this terrain:
// 1 for flat land, 2 for hills, ImpassableCost for mountains and water.
func (t Terrain) MovementCost() int {
	switch {
	case t.IsFlatLand():
		return 1
	case t.IsHill():
		return 2
	default:
		return ImpassableCost
	}
}

// IsWater reports whether this terrain is Coast, Ocean, or Lake.
func (t Terrain) IsWater() bool {
	return t == TerrainCoast || t == TerrainOcean || t == TerrainLake
}

// IsHill reports whether this terrain is a hill variant.
func (t Terrain) IsHill() bool {
	switch t {
	case TerrainGrasslandHill, TerrainPlainsHill, TerrainDesertHill,
		TerrainTundraHill, TerrainSnowHill:
		return true
	}
	return false
}

// IsFlatLand reports whether this terrain is flat, non-mountain land.
func (t Terrain) IsFlatLand() bool {
	switch t {
	case TerrainGrassland, TerrainPlains, TerrainDesert, TerrainTundra, TerrainSnow:
		return true
	}
	return false
}

// IsPassable reports whether land units can traverse this terrain.
func (t Terrain) IsPassable() bool {
	return t != TerrainMountain && !t.IsWater()
}

// String returns the stable name of the terrain kind.
func (t Terrain) String() string {
	if int(t) < len(terrainNames) {
		return terrainNames[t]
	}
	return fmt.Sprintf("Terrain(%d)", uint8(t))
}

// ParseTerrain resolves a terrain name produced by String.
func ParseTerrain(name string) (Terrain, error) {
	for i, n := range terrainNames {
		if n == name {
			return Terrain(i), nil
		}
	}
	return 0, fmt.Errorf("unknown terrain %q", name)
}

// MarshalText encodes the terrain as its stable name.
func (t Terrain) MarshalText() ([]byte, error) {
	if int(t) >= len(terrainNames) {
		return nil, fmt.Errorf("invalid terrain %d", uint8(t))
	}
	return []byte(terrainNames[t]), nil
}

// UnmarshalText decodes a terrain from its stable name.
func (t *Terrain) UnmarshalText(text []byte) error {
	parsed, err := ParseTerrain(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
