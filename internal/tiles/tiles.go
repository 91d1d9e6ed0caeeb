// Package tiles supplies the tile image table: procedurally drawn blocks, or
// frames cut from a sprite sheet.
package tiles

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // sheet decoding
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
	xdraw "golang.org/x/image/draw"
)

// ErrNoFrames is returned when a sheet is smaller than one frame.
var ErrNoFrames = errors.New("tiles: sheet has no complete frames")

// Options sizes the generated or loaded images.
type Options struct {
	Count  int // number of tile types to generate
	Width  int // tile width in px
	Height int // height of the top face in px
	Depth  int // height of the side faces in px

	// sprite sheet frame size, in sheet pixels
	FrameWidth  int
	FrameHeight int
}

// DefaultOptions matches isomap.DefaultConfig: 64x32 tiles, 64px tall images.
func DefaultOptions() Options {
	return Options{
		Count:       35,
		Width:       64,
		Height:      32,
		Depth:       32,
		FrameWidth:  64,
		FrameHeight: 64,
	}
}

// ImageHeight is the full height of each tile image.
func (o Options) ImageHeight() int { return o.Height + o.Depth }

// Set is an ordered table of tile images, indexed by tile type.
type Set struct {
	images []image.Image
}

// NewSet wraps an existing slice of images.
func NewSet(images []image.Image) *Set {
	return &Set{images: images}
}

// Images implements isomap.ImageTable.
func (s *Set) Images() []image.Image { return s.images }

// Len returns the number of tile types.
func (s *Set) Len() int { return len(s.images) }

// Generate draws opts.Count isometric blocks, each with its own top colour.
func Generate(opts Options) *Set {
	images := make([]image.Image, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		images = append(images, drawBlock(i, opts))
	}
	return &Set{images: images}
}

func drawBlock(kind int, opts Options) image.Image {
	w := float64(opts.Width)
	h := float64(opts.Height)
	d := float64(opts.Depth)
	hw, hh := w/2, h/2

	dc := gg.NewContext(opts.Width, opts.ImageHeight())
	top := tileColor(kind)

	// left face
	dc.MoveTo(0, hh)
	dc.LineTo(hw, h)
	dc.LineTo(hw, h+d)
	dc.LineTo(0, hh+d)
	dc.ClosePath()
	dc.SetColor(shade(top, 0.7))
	dc.Fill()

	// right face
	dc.MoveTo(w, hh)
	dc.LineTo(hw, h)
	dc.LineTo(hw, h+d)
	dc.LineTo(w, hh+d)
	dc.ClosePath()
	dc.SetColor(shade(top, 0.5))
	dc.Fill()

	// top face
	dc.MoveTo(0, hh)
	dc.LineTo(hw, 0)
	dc.LineTo(w, hh)
	dc.LineTo(hw, h)
	dc.ClosePath()
	dc.SetColor(top)
	dc.FillPreserve()
	dc.SetColor(shade(top, 0.85))
	dc.SetLineWidth(1)
	dc.Stroke()

	// every fifth type gets a marker so neighbouring hues stay distinguishable
	if kind%5 == 0 {
		dc.DrawCircle(hw, hh, hh/3)
		dc.SetColor(shade(top, 0.6))
		dc.Fill()
	}
	return dc.Image()
}

// tileColor spreads hues around the wheel using the golden angle.
func tileColor(kind int) color.RGBA {
	hue := math.Mod(float64(kind)*137.508, 360)
	val := 0.75
	if kind%2 == 1 {
		val = 0.9
	}
	r, g, b := colorful.Hsv(hue, 0.55, val).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// LoadSheet cuts a sprite sheet into frames (left to right, top to bottom)
// and scales each frame to the tile image size.
func LoadSheet(path string, opts Options) (*Set, error) {
	full, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand sheet path %q: %w", path, err)
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()

	sheet, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sheet %s: %w", full, err)
	}
	return SliceSheet(sheet, opts)
}

// SliceSheet is LoadSheet for an already decoded image.
func SliceSheet(sheet image.Image, opts Options) (*Set, error) {
	if opts.FrameWidth <= 0 || opts.FrameHeight <= 0 {
		return nil, fmt.Errorf("tiles: invalid frame size %dx%d", opts.FrameWidth, opts.FrameHeight)
	}
	b := sheet.Bounds()
	cols := b.Dx() / opts.FrameWidth
	rows := b.Dy() / opts.FrameHeight
	if cols == 0 || rows == 0 {
		return nil, ErrNoFrames
	}

	dstRect := image.Rect(0, 0, opts.Width, opts.ImageHeight())
	images := make([]image.Image, 0, cols*rows)
	for ry := 0; ry < rows; ry++ {
		for rx := 0; rx < cols; rx++ {
			src := image.Rect(
				b.Min.X+rx*opts.FrameWidth,
				b.Min.Y+ry*opts.FrameHeight,
				b.Min.X+(rx+1)*opts.FrameWidth,
				b.Min.Y+(ry+1)*opts.FrameHeight,
			)
			dst := image.NewRGBA(dstRect)
			xdraw.CatmullRom.Scale(dst, dstRect, sheet, src, xdraw.Over, nil)
			images = append(images, dst)
		}
	}
	return &Set{images: images}, nil
}
