package tile

import "github.com/girarda/civ/internal/hexgrid"

// Tile is the per-coordinate record produced by map generation:
// position, terrain, optional feature and resource, the derived yields,
// and the river edge mask. Yields are always recomputed from the other
// fields at construction, never set independently.
type Tile struct {
	Position hexgrid.Coord `json:"position"`
	Terrain  Terrain       `json:"terrain"`
	Feature  *Feature      `json:"feature,omitempty"`
	Resource *Resource     `json:"resource,omitempty"`
	Yields   Yields        `json:"yields"`
	Rivers   RiverEdges    `json:"rivers"`
}

// New builds a tile record from its determinants and derives the
// yields. Any change to terrain, feature, or resource requires building
// a fresh record so yields can never go stale.
func New(pos hexgrid.Coord, terrain Terrain, feature *Feature, resource *Resource, rivers RiverEdges) Tile {
	return Tile{
		Position: pos,
		Terrain:  terrain,
		Feature:  feature,
		Resource: resource,
		Yields:   Calculate(terrain, feature, resource, rivers.HasRiver()),
		Rivers:   rivers,
	}
}

// WithFeature returns a copy of the tile carrying the given feature,
// with yields recomputed.
func (t Tile) WithFeature(f Feature) Tile {
	return New(t.Position, t.Terrain, &f, t.Resource, t.Rivers)
}

// WithResource returns a copy of the tile carrying the given resource,
// with yields recomputed.
func (t Tile) WithResource(r Resource) Tile {
	return New(t.Position, t.Terrain, t.Feature, &r, t.Rivers)
}

// WithRivers returns a copy of the tile with the given river mask, with
// yields recomputed.
func (t Tile) WithRivers(rivers RiverEdges) Tile {
	return New(t.Position, t.Terrain, t.Feature, t.Resource, rivers)
}
