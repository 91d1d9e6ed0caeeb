// Package render provides isomap.Surface implementations: an Ebiten one for
// the interactive window and a gg one for headless PNG output.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/Garsondee/isomap/internal/isomap"
)

// Canvas draws into an in-memory RGBA image through gg.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas creates a canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the rendered image to path.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

func (c *Canvas) Fill(col color.Color) {
	c.dc.Push()
	c.dc.Identity()
	c.dc.SetColor(col)
	c.dc.Clear()
	c.dc.Pop()
}

func (c *Canvas) DrawImage(img image.Image, x, y float64, t isomap.Transform) {
	c.dc.Push()
	c.apply(t)
	// translate instead of passing ints so fractional origins are not truncated
	c.dc.Translate(x, y)
	c.dc.DrawImage(img, 0, 0)
	c.dc.Pop()
}

func (c *Canvas) DrawDiamond(x, y, w, h float64, st isomap.DiamondStyle, t isomap.Transform) {
	c.dc.Push()
	c.apply(t)
	c.dc.SetDash()
	c.dc.SetLineCapButt()
	c.dc.SetLineWidth(st.LineWidth)

	c.dc.MoveTo(x, y)
	c.dc.LineTo(x+w/2, y-h/2)
	c.dc.LineTo(x+w, y)
	c.dc.LineTo(x+w/2, y+h/2)
	c.dc.ClosePath()

	c.dc.SetColor(st.Stroke)
	c.dc.StrokePreserve()
	c.dc.SetColor(st.Fill)
	c.dc.Fill()
	c.dc.Pop()
}

// apply loads t onto the gg matrix: translate, then scale.
func (c *Canvas) apply(t isomap.Transform) {
	c.dc.Identity()
	c.dc.Translate(t.TranslateX, t.TranslateY)
	c.dc.Scale(t.ScaleX, t.ScaleY)
}
