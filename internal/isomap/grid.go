package isomap

import "math"

// SampleTiles is the demo layout shipped with the viewer. Its length (99) is
// not a perfect square, so NewTileGrid keeps the first 81 entries.
var SampleTiles = []int{
	14, 23, 23, 23, 23, 23, 23, 23, 23, 13, 21, 32, 33, 33, 28, 33, 33, 33, 31,
	20, 21, 34, 9, 9, 34, 1, 1, 1, 34, 20, 21, 34, 4, 4, 34, 1, 1, 10, 34, 20,
	21, 25, 33, 33, 24, 33, 33, 33, 27, 20, 21, 34, 4, 7, 34, 18, 17, 10, 34,
	20, 21, 34, 6, 8, 34, 16, 19, 10, 34, 20, 21, 34, 1, 1, 34, 10, 10, 10, 34,
	20, 21, 29, 33, 33, 26, 33, 33, 33, 30, 20, 11, 22, 22, 22, 22, 22, 22, 22,
	22, 12,
}

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// TileGrid is a square, row-major grid of tile-type indices.
type TileGrid struct {
	tiles   []int
	size    int
	dropped int
}

// NewTileGrid builds a grid from a flat row-major list. When the length is not
// a perfect square the list is truncated to floor(√len)² entries; the number of
// discarded trailing entries is reported by Dropped.
func NewTileGrid(tiles []int) *TileGrid {
	n := intSqrt(len(tiles))
	kept := make([]int, n*n)
	copy(kept, tiles)
	return &TileGrid{
		tiles:   kept,
		size:    n,
		dropped: len(tiles) - n*n,
	}
}

// intSqrt returns floor(√v) for v >= 0.
func intSqrt(v int) int {
	if v <= 0 {
		return 0
	}
	n := int(math.Sqrt(float64(v)))
	// correct float rounding at large values
	for n*n > v {
		n--
	}
	for (n+1)*(n+1) <= v {
		n++
	}
	return n
}

// Size returns N, the side length of the grid.
func (g *TileGrid) Size() int { return g.size }

// Len returns N².
func (g *TileGrid) Len() int { return len(g.tiles) }

// Dropped reports how many input entries were discarded at construction.
func (g *TileGrid) Dropped() int { return g.dropped }

// InBounds reports whether c lies within [0, N) on both axes.
func (g *TileGrid) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.size && c.Y < g.size
}

// Index returns the row-major index of c.
func (g *TileGrid) Index(c Cell) int {
	return c.Y*g.size + c.X
}

// At returns the tile type at c, or -1 when c is outside the grid.
func (g *TileGrid) At(c Cell) int {
	if !g.InBounds(c) {
		return -1
	}
	return g.tiles[g.Index(c)]
}

// Set replaces the tile type at c. Out-of-range cells are ignored.
func (g *TileGrid) Set(c Cell, tileType int) bool {
	if !g.InBounds(c) {
		return false
	}
	idx := g.Index(c)
	if idx >= len(g.tiles) {
		return false
	}
	g.tiles[idx] = tileType
	return true
}

// Tiles returns a copy of the row-major tile list.
func (g *TileGrid) Tiles() []int {
	out := make([]int, len(g.tiles))
	copy(out, g.tiles)
	return out
}
