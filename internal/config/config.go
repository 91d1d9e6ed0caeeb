// Package config loads the viewer settings from a YAML file layered over the
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v2"

	"github.com/Garsondee/isomap/internal/isomap"
	"github.com/Garsondee/isomap/internal/logger"
	"github.com/Garsondee/isomap/internal/tiles"
)

// ErrEmptyMap is returned when the configured map has no tiles.
var ErrEmptyMap = errors.New("config: map has no tiles")

// Settings is the full on-disk configuration.
type Settings struct {
	LogLevel string       `yaml:"log_level"`
	Window   Window       `yaml:"window"`
	Tiles    TileSettings `yaml:"tiles"`
	View     ViewSettings `yaml:"view"`
	Input    Input        `yaml:"input"`
	Map      []int        `yaml:"map,flow"`
}

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// TileSettings sizes the tile images. Sheet is optional; without it the
// tiles are generated.
type TileSettings struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Depth       int    `yaml:"depth"`
	Count       int    `yaml:"count"`
	Sheet       string `yaml:"sheet"`
	FrameWidth  int    `yaml:"frame_width"`
	FrameHeight int    `yaml:"frame_height"`
}

type ViewSettings struct {
	AdjustOffset                float64 `yaml:"adjust_offset"`
	ZoomSensitivity             float64 `yaml:"zoom_sensitivity"`
	HorizontalScrollSensitivity float64 `yaml:"horizontal_scroll_sensitivity"`
	MinScale                    float64 `yaml:"min_scale"`
	MaxScale                    float64 `yaml:"max_scale"`
	TileTypeCap                 int     `yaml:"tile_type_cap"`
	Background                  string  `yaml:"background"`
	HighlightStroke             string  `yaml:"highlight_stroke"`
	HighlightFill               string  `yaml:"highlight_fill"`
	HighlightLineWidth          float64 `yaml:"highlight_line_width"`
	ScaleAwarePicking           bool    `yaml:"scale_aware_picking"`
}

type Input struct {
	// WheelLineHeight converts one wheel notch into pixel deltas.
	WheelLineHeight float64 `yaml:"wheel_line_height"`
}

// Default returns the built-in settings.
func Default() *Settings {
	to := tiles.DefaultOptions()
	return &Settings{
		LogLevel: "info",
		Window:   Window{Title: "Isomap", Width: 1280, Height: 720},
		Tiles: TileSettings{
			Width:       to.Width,
			Height:      to.Height,
			Depth:       to.Depth,
			Count:       to.Count,
			FrameWidth:  to.FrameWidth,
			FrameHeight: to.FrameHeight,
		},
		View: ViewSettings{
			AdjustOffset:                80,
			ZoomSensitivity:             0.0001,
			HorizontalScrollSensitivity: 0.05,
			MinScale:                    0.8,
			MaxScale:                    2,
			TileTypeCap:                 35,
			Background:                  "#151d26",
			HighlightStroke:             "#c0392bcc",
			HighlightFill:               "#c0392b66",
			HighlightLineWidth:          2,
		},
		Input: Input{WheelLineHeight: 100},
		Map:   append([]int(nil), isomap.SampleTiles...),
	}
}

// Load reads path (a leading ~ is expanded) over the defaults.
func Load(path string) (*Settings, error) {
	full, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand config path %q: %w", path, err)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", full, err)
	}
	return s, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks values the viewer cannot run without.
func (s *Settings) Validate() error {
	if len(s.Map) == 0 {
		return ErrEmptyMap
	}
	if s.Tiles.Width <= 0 || s.Tiles.Height <= 0 {
		return fmt.Errorf("config: tile size must be positive, got %dx%d", s.Tiles.Width, s.Tiles.Height)
	}
	if s.Tiles.Depth < 0 {
		return fmt.Errorf("config: tile depth must not be negative, got %d", s.Tiles.Depth)
	}
	if s.Tiles.Count < 0 {
		return fmt.Errorf("config: tile count must not be negative, got %d", s.Tiles.Count)
	}
	if s.Tiles.Sheet != "" && (s.Tiles.FrameWidth <= 0 || s.Tiles.FrameHeight <= 0) {
		return fmt.Errorf("config: frame size must be positive, got %dx%d", s.Tiles.FrameWidth, s.Tiles.FrameHeight)
	}
	if s.View.MinScale > s.View.MaxScale {
		return fmt.Errorf("config: min_scale %v above max_scale %v", s.View.MinScale, s.View.MaxScale)
	}
	for name, v := range map[string]string{
		"background":       s.View.Background,
		"highlight_stroke": s.View.HighlightStroke,
		"highlight_fill":   s.View.HighlightFill,
	} {
		if _, err := ParseColor(v); err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
	}
	return nil
}

// ViewConfig converts the settings to the view configuration. Settings must
// have passed Validate.
func (s *Settings) ViewConfig() *isomap.Config {
	cfg := isomap.DefaultConfig()
	cfg.TileWidth = float64(s.Tiles.Width)
	cfg.TileHeight = float64(s.Tiles.Height)
	cfg.AdjustOffset = s.View.AdjustOffset
	cfg.ZoomSensitivity = s.View.ZoomSensitivity
	cfg.HorizontalScrollSensitivity = s.View.HorizontalScrollSensitivity
	cfg.MinScale = s.View.MinScale
	cfg.MaxScale = s.View.MaxScale
	cfg.TileTypeCap = s.View.TileTypeCap
	cfg.ScaleAwarePicking = s.View.ScaleAwarePicking
	cfg.Background = mustColor(s.View.Background)
	cfg.Highlight = isomap.DiamondStyle{
		Stroke:    mustColor(s.View.HighlightStroke),
		Fill:      mustColor(s.View.HighlightFill),
		LineWidth: s.View.HighlightLineWidth,
	}
	return cfg
}

// TileOptions converts the tile settings for the tiles package.
func (s *Settings) TileOptions() tiles.Options {
	return tiles.Options{
		Count:       s.Tiles.Count,
		Width:       s.Tiles.Width,
		Height:      s.Tiles.Height,
		Depth:       s.Tiles.Depth,
		FrameWidth:  s.Tiles.FrameWidth,
		FrameHeight: s.Tiles.FrameHeight,
	}
}

// TileSet loads the sheet when one is configured, otherwise generates tiles.
func (s *Settings) TileSet() (*tiles.Set, error) {
	if s.Tiles.Sheet == "" {
		return tiles.Generate(s.TileOptions()), nil
	}
	return tiles.LoadSheet(s.Tiles.Sheet, s.TileOptions())
}

// Grid builds the tile grid, warning when trailing entries were dropped to
// make the map square.
func (s *Settings) Grid() *isomap.TileGrid {
	g := isomap.NewTileGrid(s.Map)
	if g.Dropped() > 0 {
		logger.Log.WithFields(logrus.Fields{
			"entries": len(s.Map),
			"size":    g.Size(),
			"dropped": g.Dropped(),
		}).Warn("map length is not a perfect square, trailing tiles ignored")
	}
	return g
}

// EncodeMap renders a row-major tile list as a YAML `map:` entry that Parse
// accepts.
func EncodeMap(cells []int) ([]byte, error) {
	out, err := yaml.Marshal(struct {
		Map []int `yaml:"map,flow"`
	}{Map: cells})
	if err != nil {
		return nil, fmt.Errorf("encode map: %w", err)
	}
	return out, nil
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa or an SVG colour name.
func ParseColor(v string) (color.Color, error) {
	v = strings.TrimSpace(v)
	if c, ok := colornames.Map[strings.ToLower(v)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(v, "#") {
		return nil, fmt.Errorf("unknown colour %q", v)
	}
	rgb, alpha := v, uint8(0xff)
	switch len(v) - 1 {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(v[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad colour %q: %w", v, err)
		}
		rgb, alpha = v[:7], uint8(a)
	default:
		return nil, fmt.Errorf("bad colour %q", v)
	}
	c, err := colorful.Hex(rgb)
	if err != nil {
		return nil, fmt.Errorf("bad colour %q: %w", v, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

func mustColor(v string) color.Color {
	c, err := ParseColor(v)
	if err != nil {
		panic(err)
	}
	return c
}
