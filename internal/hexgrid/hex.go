// Package hexgrid provides axial coordinates for a pointy-top hex grid.
// The map generator only constructs coordinates; neighbor and distance
// operations are provided for the layers that consume generated maps.
package hexgrid

import "fmt"

// Coord addresses a hex tile using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// At constructs a coordinate from an integer pair.
func At(q, r int) Coord {
	return Coord{Q: q, R: r}
}

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

// String formats the coordinate as "(q, r)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Q, c.R)
}

// Directions lists the six neighbor offsets in axial coordinates,
// ordered E, NE, NW, W, SW, SE to match tile.RiverEdges edge order.
var Directions = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent coordinates in Directions order.
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for i, dir := range Directions {
		result[i] = Coord{Q: c.Q + dir.Q, R: c.R + dir.R}
	}
	return result
}

// Distance returns the hex distance between two coordinates: the
// maximum absolute difference of the three cube coordinates.
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())

	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
