// Package tilestore holds generated tile records: an in-memory entity
// store the generator writes into, and a SQLite layer for persisting
// finished maps so a seed's output can be stored and shared.
package tilestore

import (
	"github.com/girarda/civ/internal/hexgrid"
	"github.com/girarda/civ/internal/tile"
)

// MemoryStore is a coordinate-keyed in-memory tile store. Each created
// tile gets a monotonically increasing entity handle; creation order is
// preserved for deterministic iteration.
type MemoryStore struct {
	tiles  map[hexgrid.Coord]tile.Tile
	byID   map[uint64]hexgrid.Coord
	order  []hexgrid.Coord
	nextID uint64
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tiles:  make(map[hexgrid.Coord]tile.Tile),
		byID:   make(map[uint64]hexgrid.Coord),
		nextID: 1,
	}
}

// Create stores a tile and returns its entity handle. Creating a second
// tile at an existing coordinate replaces the record under a fresh
// handle; superseded handles stay valid and resolve, through the
// coordinate, to the replacement record.
func (s *MemoryStore) Create(t tile.Tile) uint64 {
	if _, exists := s.tiles[t.Position]; !exists {
		s.order = append(s.order, t.Position)
	}
	id := s.nextID
	s.nextID++
	s.tiles[t.Position] = t
	s.byID[id] = t.Position
	return id
}

// Get returns the tile at the given coordinate.
func (s *MemoryStore) Get(c hexgrid.Coord) (tile.Tile, bool) {
	t, ok := s.tiles[c]
	return t, ok
}

// ByID returns the tile created under the given entity handle.
func (s *MemoryStore) ByID(id uint64) (tile.Tile, bool) {
	c, ok := s.byID[id]
	if !ok {
		return tile.Tile{}, false
	}
	return s.Get(c)
}

// Len returns the number of stored tiles.
func (s *MemoryStore) Len() int {
	return len(s.tiles)
}

// Tiles returns all tiles in creation order.
func (s *MemoryStore) Tiles() []tile.Tile {
	out := make([]tile.Tile, 0, len(s.order))
	for _, c := range s.order {
		out = append(out, s.tiles[c])
	}
	return out
}

// TerrainCounts summarizes the terrain distribution of the stored map.
func (s *MemoryStore) TerrainCounts() map[tile.Terrain]int {
	counts := make(map[tile.Terrain]int)
	for _, t := range s.tiles {
		counts[t.Terrain]++
	}
	return counts
}
