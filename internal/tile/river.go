package tile

import "math/bits"

// RiverEdges is a bitmask recording which of a hex tile's six edges
// carry a river. Rivers affect movement and freshwater access; river
// continuity with neighboring tiles is maintained by keeping the
// opposite edge set on the adjacent tile.
//
// Edge bit order (pointy-top orientation): E, NE, NW, W, SW, SE,
// matching hexgrid.Directions.
type RiverEdges uint8

const (
	// EdgeE is the east edge (bit 0).
	EdgeE RiverEdges = 1 << iota
	// EdgeNE is the northeast edge (bit 1).
	EdgeNE
	// EdgeNW is the northwest edge (bit 2).
	EdgeNW
	// EdgeW is the west edge (bit 3).
	EdgeW
	// EdgeSW is the southwest edge (bit 4).
	EdgeSW
	// EdgeSE is the southeast edge (bit 5).
	EdgeSE

	// RiversNone has no river edges set.
	RiversNone RiverEdges = 0
	// RiversAll has all six river edges set.
	RiversAll RiverEdges = 0b0011_1111
)

// AllEdges lists the six edge bits in index order.
var AllEdges = [6]RiverEdges{EdgeE, EdgeNE, EdgeNW, EdgeW, EdgeSW, EdgeSE}

// edgeMask keeps only the six valid edge bits.
const edgeMask RiverEdges = 0b0011_1111

// NewRiverEdges builds a river mask from raw bits, discarding the two
// high bits.
func NewRiverEdges(bits uint8) RiverEdges {
	return RiverEdges(bits) & edgeMask
}

// RiverEdgesOf builds a river mask from individual edge bits.
func RiverEdgesOf(edges ...RiverEdges) RiverEdges {
	var r RiverEdges
	for _, e := range edges {
		r |= e
	}
	return r & edgeMask
}

// HasRiver reports whether any edge carries a river.
func (r RiverEdges) HasRiver() bool {
	return r != 0
}

// HasEdge reports whether the given edge carries a river.
func (r RiverEdges) HasEdge(edge RiverEdges) bool {
	return r&edge != 0
}

// SetEdge marks the given edge as carrying a river.
func (r *RiverEdges) SetEdge(edge RiverEdges) {
	*r |= edge & edgeMask
}

// ClearEdge removes the river from the given edge.
func (r *RiverEdges) ClearEdge(edge RiverEdges) {
	*r &^= edge
}

// ToggleEdge flips the river state of the given edge.
func (r *RiverEdges) ToggleEdge(edge RiverEdges) {
	*r ^= edge & edgeMask
}

// EdgeCount returns the number of edges carrying a river.
func (r RiverEdges) EdgeCount() int {
	return bits.OnesCount8(uint8(r))
}

// Edges returns the set edge bits in index order.
func (r RiverEdges) Edges() []RiverEdges {
	var set []RiverEdges
	for _, e := range AllEdges {
		if r.HasEdge(e) {
			set = append(set, e)
		}
	}
	return set
}

// Bits returns the raw bitmask value.
func (r RiverEdges) Bits() uint8 {
	return uint8(r)
}

// OppositeEdge returns the edge facing the given edge across a tile
// boundary: when a tile has a river on E, its eastern neighbor has a
// river on W. Returns 0 for anything that is not a single valid edge.
func OppositeEdge(edge RiverEdges) RiverEdges {
	switch edge {
	case EdgeE:
		return EdgeW
	case EdgeNE:
		return EdgeSW
	case EdgeNW:
		return EdgeSE
	case EdgeW:
		return EdgeE
	case EdgeSW:
		return EdgeNE
	case EdgeSE:
		return EdgeNW
	default:
		return 0
	}
}

// EdgeIndex returns the 0-5 index of a single edge bit.
func EdgeIndex(edge RiverEdges) (int, bool) {
	for i, e := range AllEdges {
		if e == edge {
			return i, true
		}
	}
	return 0, false
}

// EdgeAt returns the edge bit at the given 0-5 index.
func EdgeAt(index int) (RiverEdges, bool) {
	if index < 0 || index >= len(AllEdges) {
		return 0, false
	}
	return AllEdges[index], true
}
