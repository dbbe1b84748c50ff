// Package mapgen generates deterministic hex terrain maps from a seeded
// configuration: layered noise fields feed a threshold classifier that
// assigns every coordinate a terrain, an optional feature, and derived
// yields. The same MapConfig always produces the identical map.
package mapgen

import "fmt"

// MapSize is a preset map dimension.
//
//	Duel 48x32, Tiny 56x36, Small 68x44, Standard 80x52,
//	Large 104x64, Huge 128x80.
type MapSize uint8

const (
	// SizeDuel is 48x32 tiles, for quick 1v1 games.
	SizeDuel MapSize = iota
	// SizeTiny is 56x36 tiles.
	SizeTiny
	// SizeSmall is 68x44 tiles.
	SizeSmall
	// SizeStandard is 80x52 tiles, the default.
	SizeStandard
	// SizeLarge is 104x64 tiles.
	SizeLarge
	// SizeHuge is 128x80 tiles, the largest preset.
	SizeHuge
)

// AllSizes lists the presets from smallest to largest.
var AllSizes = [6]MapSize{
	SizeDuel, SizeTiny, SizeSmall, SizeStandard, SizeLarge, SizeHuge,
}

var sizeNames = [6]string{"Duel", "Tiny", "Small", "Standard", "Large", "Huge"}

// Dimensions returns the (width, height) tile counts for this preset.
func (s MapSize) Dimensions() (int, int) {
	switch s {
	case SizeDuel:
		return 48, 32
	case SizeTiny:
		return 56, 36
	case SizeSmall:
		return 68, 44
	case SizeLarge:
		return 104, 64
	case SizeHuge:
		return 128, 80
	default:
		return 80, 52
	}
}

// TotalTiles returns width * height for this preset.
func (s MapSize) TotalTiles() int {
	w, h := s.Dimensions()
	return w * h
}

// String returns the stable preset name.
func (s MapSize) String() string {
	if int(s) < len(sizeNames) {
		return sizeNames[s]
	}
	return fmt.Sprintf("MapSize(%d)", uint8(s))
}

// ParseMapSize resolves a preset name produced by String.
func ParseMapSize(name string) (MapSize, error) {
	for i, n := range sizeNames {
		if n == name {
			return MapSize(i), nil
		}
	}
	return 0, fmt.Errorf("unknown map size %q", name)
}

// MarshalText encodes the preset as its stable name.
func (s MapSize) MarshalText() ([]byte, error) {
	if int(s) >= len(sizeNames) {
		return nil, fmt.Errorf("invalid map size %d", uint8(s))
	}
	return []byte(sizeNames[s]), nil
}

// UnmarshalText decodes a preset from its stable name.
func (s *MapSize) UnmarshalText(text []byte) error {
	parsed, err := ParseMapSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MapConfig holds every parameter of map generation. Two configs with
// identical fields produce identical maps.
//
// Thresholds are deliberately not range-validated: out-of-[0,1] or
// inverted values do not fail, they just skew the classification (an
// inverted hill/mountain pair turns all high land into hills or
// mountains). Callers own threshold coherence.
type MapConfig struct {
	// Size selects the grid dimensions.
	Size MapSize `json:"size"`
	// Seed drives every random decision in the pipeline.
	Seed uint64 `json:"seed"`
	// LandCoverage is the target land fraction. Reserved: no algorithm
	// consumes it yet.
	LandCoverage float64 `json:"land_coverage"`
	// OceanThreshold: heights below it are water.
	OceanThreshold float64 `json:"ocean_threshold"`
	// HillThreshold: land heights above it are hills.
	HillThreshold float64 `json:"hill_threshold"`
	// MountainThreshold: heights above it are mountains.
	MountainThreshold float64 `json:"mountain_threshold"`
}

// DefaultConfig returns the standard 80x52 configuration with seed 42.
func DefaultConfig() MapConfig {
	return MapConfig{
		Size:              SizeStandard,
		Seed:              42,
		LandCoverage:      0.4,
		OceanThreshold:    0.35,
		HillThreshold:     0.55,
		MountainThreshold: 0.75,
	}
}

// Duel returns the default configuration at Duel size.
func Duel() MapConfig { return sized(SizeDuel) }

// Tiny returns the default configuration at Tiny size.
func Tiny() MapConfig { return sized(SizeTiny) }

// Small returns the default configuration at Small size.
func Small() MapConfig { return sized(SizeSmall) }

// Standard returns the default configuration.
func Standard() MapConfig { return DefaultConfig() }

// Large returns the default configuration at Large size.
func Large() MapConfig { return sized(SizeLarge) }

// Huge returns the default configuration at Huge size.
func Huge() MapConfig { return sized(SizeHuge) }

func sized(s MapSize) MapConfig {
	cfg := DefaultConfig()
	cfg.Size = s
	return cfg
}

// WithSeed returns a copy of the config using the given seed.
func (c MapConfig) WithSeed(seed uint64) MapConfig {
	c.Seed = seed
	return c
}

// WithOceanThreshold returns a copy with the given ocean threshold.
// Higher values create more water.
func (c MapConfig) WithOceanThreshold(threshold float64) MapConfig {
	c.OceanThreshold = threshold
	return c
}

// WithHillThreshold returns a copy with the given hill threshold.
// Lower values create more hills.
func (c MapConfig) WithHillThreshold(threshold float64) MapConfig {
	c.HillThreshold = threshold
	return c
}

// WithMountainThreshold returns a copy with the given mountain
// threshold. Lower values create more mountains.
func (c MapConfig) WithMountainThreshold(threshold float64) MapConfig {
	c.MountainThreshold = threshold
	return c
}
