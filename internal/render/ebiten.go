package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/isomap/internal/isomap"
)

// Ebiten draws onto an *ebiten.Image. Source images are uploaded once and
// reused across frames.
type Ebiten struct {
	target *ebiten.Image
	cache  map[image.Image]*ebiten.Image
}

// NewEbiten creates an empty surface; call Bind before each frame.
func NewEbiten() *Ebiten {
	return &Ebiten{cache: make(map[image.Image]*ebiten.Image)}
}

// Bind sets the frame's target image.
func (e *Ebiten) Bind(target *ebiten.Image) {
	e.target = target
}

func (e *Ebiten) Fill(c color.Color) {
	e.target.Fill(c)
}

func (e *Ebiten) DrawImage(img image.Image, x, y float64, t isomap.Transform) {
	src := e.upload(img)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Scale(t.ScaleX, t.ScaleY)
	op.GeoM.Translate(t.TranslateX, t.TranslateY)
	e.target.DrawImage(src, op)
}

func (e *Ebiten) DrawDiamond(x, y, w, h float64, st isomap.DiamondStyle, t isomap.Transform) {
	pts := [4]isomap.Point{
		t.Apply(isomap.Point{X: x, Y: y}),
		t.Apply(isomap.Point{X: x + w/2, Y: y - h/2}),
		t.Apply(isomap.Point{X: x + w, Y: y}),
		t.Apply(isomap.Point{X: x + w/2, Y: y + h/2}),
	}

	// Stroke first, then fill on top, matching the canvas renderer.
	lw := float32(st.LineWidth * t.ScaleX)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(e.target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), lw, st.Stroke, true)
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(st.Fill)
	vector.FillPath(e.target, &path, &vector.FillOptions{}, op)
}

func (e *Ebiten) upload(img image.Image) *ebiten.Image {
	if src, ok := e.cache[img]; ok {
		return src
	}
	src := ebiten.NewImageFromImage(img)
	e.cache[img] = src
	return src
}
