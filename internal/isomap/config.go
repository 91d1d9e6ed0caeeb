package isomap

import "image/color"

// Config holds every tunable of the map view. All magic numbers of the
// renderer and the input handlers live here.
type Config struct {
	// in pixels
	TileWidth  float64
	TileHeight float64

	// AdjustOffset is added to the projected y when a tile image is painted and
	// subtracted from the map origin, so the two cancel out for the grid itself.
	// Images are bottom-anchored at projectedY + AdjustOffset.
	AdjustOffset float64

	ZoomSensitivity             float64
	HorizontalScrollSensitivity float64
	DefaultScale                float64
	DefaultDeltaX               float64
	MinScale                    float64
	MaxScale                    float64

	// TileTypeCap bounds the random tile type picked on click. The effective cap
	// is further limited to the size of the image table.
	TileTypeCap int

	// ScaleAwarePicking also divides the pointer by the zoom scale before hit
	// testing, so the highlight stays under the cursor when zoomed. Off by
	// default: hover and click then subtract only the origin and translation.
	ScaleAwarePicking bool

	Background color.Color
	Highlight  DiamondStyle
}

// DiamondStyle describes how the hover highlight is stroked and filled.
type DiamondStyle struct {
	Stroke    color.Color
	Fill      color.Color
	LineWidth float64
}

// DefaultConfig returns the view settings used by the map out of the box.
func DefaultConfig() *Config {
	return &Config{
		TileWidth:                   64,
		TileHeight:                  32,
		AdjustOffset:                80,
		ZoomSensitivity:             0.0001,
		HorizontalScrollSensitivity: 0.05,
		DefaultScale:                1,
		DefaultDeltaX:               1,
		MinScale:                    0.8,
		MaxScale:                    2,
		TileTypeCap:                 35,
		Background:                  color.RGBA{R: 0x15, G: 0x1d, B: 0x26, A: 0xff},
		Highlight: DiamondStyle{
			Stroke:    color.NRGBA{R: 192, G: 57, B: 43, A: 204}, // 0.8
			Fill:      color.NRGBA{R: 192, G: 57, B: 43, A: 102}, // 0.4
			LineWidth: 2,
		},
	}
}

// HalfWidth returns half of the tile width.
func (c *Config) HalfWidth() float64 { return c.TileWidth / 2 }

// HalfHeight returns half of the tile height.
func (c *Config) HalfHeight() float64 { return c.TileHeight / 2 }
