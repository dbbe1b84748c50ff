package tile

import "fmt"

// Feature is an overlay element on a terrain tile. A tile carries at
// most one feature. Features modify the base terrain yields and
// movement costs, and each is restricted to a set of compatible
// terrain kinds.
//
// Modifiers (food/production/gold, movement addend):
//
//	Forest 0/+1/0 +1, Jungle 0/-1/0 +1, Marsh -1/0/0 +1,
//	Floodplains +2/0/0, Oasis +3/0/+1, Ice 0/0/0.
type Feature uint8

const (
	// FeatureForest is dense woodland. Valid on grassland, plains,
	// tundra and their hills.
	FeatureForest Feature = iota
	// FeatureJungle is tropical growth, hard to work. Valid on
	// grassland and plains (and their hills).
	FeatureJungle
	// FeatureMarsh is wetland. Valid on flat grassland only.
	FeatureMarsh
	// FeatureFloodplains is fertile river silt. Valid on flat desert.
	FeatureFloodplains
	// FeatureOasis is a desert water source. Valid on flat desert.
	FeatureOasis
	// FeatureIce is polar pack ice. Valid on coast and ocean.
	FeatureIce
)

// AllFeatures lists every feature kind, in declaration order.
var AllFeatures = [6]Feature{
	FeatureForest, FeatureJungle, FeatureMarsh,
	FeatureFloodplains, FeatureOasis, FeatureIce,
}

var featureNames = [6]string{
	"Forest", "Jungle", "Marsh", "Floodplains", "Oasis", "Ice",
}

// FoodModifier returns the food yield delta contributed by this feature.
func (f Feature) FoodModifier() int {
	switch f {
	case FeatureMarsh:
		return -1
	case FeatureFloodplains:
		return 2
	case FeatureOasis:
		return 3
	default:
		return 0
	}
}

// ProductionModifier returns the production yield delta contributed by
// this feature.
func (f Feature) ProductionModifier() int {
	switch f {
	case FeatureForest:
		return 1
	case FeatureJungle:
		return -1
	default:
		return 0
	}
}

// GoldModifier returns the gold yield delta contributed by this feature.
func (f Feature) GoldModifier() int {
	if f == FeatureOasis {
		return 1
	}
	return 0
}

// MovementModifier returns the additional movement cost of entering a
// tile carrying this feature.
func (f Feature) MovementModifier() int {
	switch f {
	case FeatureForest, FeatureJungle, FeatureMarsh:
		return 1
	default:
		return 0
	}
}

// CanPlaceOn reports whether this feature may appear on the given
// terrain.
func (f Feature) CanPlaceOn(t Terrain) bool {
	switch f {
	case FeatureForest:
		switch t {
		case TerrainGrassland, TerrainPlains, TerrainTundra,
			TerrainGrasslandHill, TerrainPlainsHill, TerrainTundraHill:
			return true
		}
	case FeatureJungle:
		switch t {
		case TerrainGrassland, TerrainPlains, TerrainGrasslandHill, TerrainPlainsHill:
			return true
		}
	case FeatureMarsh:
		return t == TerrainGrassland
	case FeatureFloodplains:
		return t == TerrainDesert
	case FeatureOasis:
		return t == TerrainDesert
	case FeatureIce:
		return t == TerrainCoast || t == TerrainOcean
	}
	return false
}

// ValidTerrains returns the terrain kinds this feature may appear on.
func (f Feature) ValidTerrains() []Terrain {
	switch f {
	case FeatureForest:
		return []Terrain{
			TerrainGrassland, TerrainPlains, TerrainTundra,
			TerrainGrasslandHill, TerrainPlainsHill, TerrainTundraHill,
		}
	case FeatureJungle:
		return []Terrain{
			TerrainGrassland, TerrainPlains,
			TerrainGrasslandHill, TerrainPlainsHill,
		}
	case FeatureMarsh:
		return []Terrain{TerrainGrassland}
	case FeatureFloodplains:
		return []Terrain{TerrainDesert}
	case FeatureOasis:
		return []Terrain{TerrainDesert}
	case FeatureIce:
		return []Terrain{TerrainCoast, TerrainOcean}
	default:
		return nil
	}
}

// String returns the stable name of the feature kind.
func (f Feature) String() string {
	if int(f) < len(featureNames) {
		return featureNames[f]
	}
	return fmt.Sprintf("Feature(%d)", uint8(f))
}

// ParseFeature resolves a feature name produced by String.
func ParseFeature(name string) (Feature, error) {
	for i, n := range featureNames {
		if n == name {
			return Feature(i), nil
		}
	}
	return 0, fmt.Errorf("unknown feature %q", name)
}

// MarshalText encodes the feature as its stable name.
func (f Feature) MarshalText() ([]byte, error) {
	if int(f) >= len(featureNames) {
		return nil, fmt.Errorf("invalid feature %d", uint8(f))
	}
	return []byte(featureNames[f]), nil
}

// UnmarshalText decodes a feature from its stable name.
func (f *Feature) UnmarshalText(text []byte) error {
	parsed, err := ParseFeature(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
