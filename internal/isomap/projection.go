package isomap

import "math"

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Project returns the screen anchor of cell c for a grid whose (0,0) cell is
// anchored at origin.
func Project(origin Point, c Cell, halfW, halfH float64) Point {
	return Point{
		X: origin.X + float64(c.X-c.Y)*halfW,
		Y: origin.Y + float64(c.X+c.Y)*halfH,
	}
}

// Unproject inverts Project for a point relative to the origin, returning
// fractional grid coordinates.
func Unproject(rel Point, tileW, tileH float64) (float64, float64) {
	a := rel.Y/tileH + rel.X/tileW
	b := rel.Y/tileH - rel.X/tileW
	return a, b
}

// PickCell returns the cell whose hover diamond contains rel, a point relative
// to the map origin. The diamond is drawn one tile height below the projected
// anchor, which moves it one step along x in grid space.
func PickCell(rel Point, tileW, tileH float64) Cell {
	a, b := Unproject(rel, tileW, tileH)
	return Cell{
		X: int(math.Floor(a)) - 1,
		Y: int(math.Floor(b)),
	}
}

// MapOrigin computes where cell (0,0) is anchored for a viewport of the given
// size, centring the grid horizontally and vertically.
func MapOrigin(width, height float64, gridSize int, cfg *Config) Point {
	remaining := height - cfg.TileHeight*float64(gridSize)
	return Point{
		X: width/2 - cfg.HalfWidth(),
		Y: remaining/2 + cfg.TileHeight - cfg.AdjustOffset,
	}
}

// HighlightAnchor is the left vertex of the hover diamond for cell c.
func HighlightAnchor(origin Point, c Cell, cfg *Config) Point {
	p := Project(origin, c, cfg.HalfWidth(), cfg.HalfHeight())
	p.Y += cfg.TileHeight
	return p
}
