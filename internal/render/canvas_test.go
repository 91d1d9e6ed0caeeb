package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/isomap/internal/isomap"
)

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestCanvasFillIgnoresTransform(t *testing.T) {
	c := NewCanvas(40, 30)
	c.Fill(color.RGBA{R: 0x15, G: 0x1d, B: 0x26, A: 0xff})

	img := c.Image()
	for _, p := range []image.Point{{0, 0}, {39, 29}, {20, 15}} {
		assert.Equal(t, color.RGBA{R: 0x15, G: 0x1d, B: 0x26, A: 0xff}, rgbaAt(img, p.X, p.Y))
	}
}

func TestCanvasDrawImageAppliesTransform(t *testing.T) {
	c := NewCanvas(64, 64)
	c.Fill(color.Black)

	tile := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(tile, tile.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	tr := isomap.Identity().Translate(10, 20)
	c.DrawImage(tile, 5, 5, tr)

	img := c.Image()
	assert.Equal(t, uint8(255), rgbaAt(img, 16, 26).R, "tile should land at (15,25)+")
	assert.Equal(t, uint8(0), rgbaAt(img, 6, 6).R, "untransformed spot stays background")
}

func TestCanvasDrawImageKeepsFractionalOffset(t *testing.T) {
	c := NewCanvas(32, 32)
	c.Fill(color.Black)

	tile := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(tile, tile.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	// covers x in [5.6, 9.6); truncating to 5 would cover [5, 9)
	c.DrawImage(tile, 5.6, 5, isomap.Identity())

	img := c.Image()
	assert.Less(t, rgbaAt(img, 5, 6).R, uint8(255), "pixel 5 centre lies left of the image")
	assert.Greater(t, rgbaAt(img, 9, 6).R, uint8(0), "pixel 9 centre lies inside the image")
}

func TestCanvasDrawDiamondPaintsCentre(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Fill(color.Black)

	st := isomap.DefaultConfig().Highlight
	c.DrawDiamond(10, 50, 64, 32, st, isomap.Identity())

	img := c.Image()
	centre := rgbaAt(img, 42, 50)
	require.NotEqual(t, color.RGBA{A: 255}, centre, "diamond centre must be painted")
	assert.Greater(t, centre.R, centre.G)
	assert.Greater(t, centre.R, centre.B)

	outside := rgbaAt(img, 42, 20)
	assert.Equal(t, color.RGBA{A: 255}, outside)
}

func TestCanvasRendersView(t *testing.T) {
	cfg := isomap.DefaultConfig()
	tile := image.NewRGBA(image.Rect(0, 0, 64, 64))
	draw.Draw(tile, tile.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	v := isomap.NewView(cfg, isomap.NewTileGrid([]int{0}), table{tile})

	c := NewCanvas(200, 200)
	v.Render(c, 200, 200)

	o := v.Origin()
	// image is bottom-anchored at origin.Y + AdjustOffset
	x := int(o.X) + 32
	y := int(o.Y+cfg.AdjustOffset) - 8
	assert.Equal(t, uint8(255), rgbaAt(c.Image(), x, y).G)
	assert.Equal(t, uint8(0x15), rgbaAt(c.Image(), 2, 2).R)
}

type table []image.Image

func (t table) Images() []image.Image { return t }
