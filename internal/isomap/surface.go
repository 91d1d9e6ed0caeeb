package isomap

import (
	"image"
	"image/color"
)

// Surface is a 2D drawing target. Coordinates passed to DrawImage and
// DrawDiamond are in map space; the surface applies t before painting.
type Surface interface {
	// Fill paints the whole viewport, ignoring any transform.
	Fill(c color.Color)
	DrawImage(img image.Image, x, y float64, t Transform)
	// DrawDiamond paints a diamond whose left vertex is (x, y) and whose
	// bounding box is w wide and h high.
	DrawDiamond(x, y, w, h float64, st DiamondStyle, t Transform)
}

// ImageTable supplies tile images indexed by tile type.
type ImageTable interface {
	Images() []image.Image
}

// PaintTile draws one tile image for cell c. The image is bottom-anchored at
// the projected y plus adjust.
func PaintTile(s Surface, img image.Image, origin Point, c Cell, adjust float64, cfg *Config, t Transform) {
	if img == nil {
		return
	}
	p := Project(origin, c, cfg.HalfWidth(), cfg.HalfHeight())
	h := float64(img.Bounds().Dy())
	s.DrawImage(img, p.X, p.Y+adjust-h, t)
}
