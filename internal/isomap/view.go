package isomap

import (
	"image"
	"math/rand"
	"time"
)

// WheelEvent is one wheel step in pixel units. Positive DeltaY zooms in,
// positive DeltaX pans right. Offset is the pointer position on the surface.
type WheelEvent struct {
	DeltaX, DeltaY   float64
	OffsetX, OffsetY float64
}

// Rect is the surface's bounding rectangle in client coordinates.
type Rect struct {
	Left, Top float64
}

// PointerEvent carries the pointer position in client coordinates.
type PointerEvent struct {
	ClientX, ClientY float64
	Rect             Rect
}

// Edit records a tile change made by a click.
type Edit struct {
	Cell Cell
	Old  int
	New  int
}

// View is the interactive isometric map. It is not safe for concurrent use;
// hosts call it from a single goroutine.
type View struct {
	cfg    *Config
	grid   *TileGrid
	images ImageTable
	rng    *rand.Rand

	pointer   Point
	origin    Point
	transform Transform
}

// Option configures a View.
type Option func(*View)

// WithRand sets the random source used for click edits.
func WithRand(rng *rand.Rand) Option {
	return func(v *View) { v.rng = rng }
}

// NewView creates a view over grid drawing images from table.
func NewView(cfg *Config, grid *TileGrid, table ImageTable, opts ...Option) *View {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	v := &View{
		cfg:       cfg,
		grid:      grid,
		images:    table,
		pointer:   Point{X: -1, Y: -1},
		origin:    Point{X: -1, Y: -1},
		transform: Identity(),
	}
	for _, o := range opts {
		o(v)
	}
	if v.rng == nil {
		v.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- cosmetic only
	}
	return v
}

// Config returns the view settings.
func (v *View) Config() *Config { return v.cfg }

// Grid returns the tile grid edited by clicks.
func (v *View) Grid() *TileGrid { return v.grid }

// Pointer returns the last surface-local pointer position, (-1,-1) before any
// move.
func (v *View) Pointer() Point { return v.pointer }

// Origin returns the map origin computed by the most recent Render, (-1,-1)
// before the first one.
func (v *View) Origin() Point { return v.origin }

// Transform returns the current zoom and pan transform.
func (v *View) Transform() Transform { return v.transform }

// SetTransform replaces the current transform.
func (v *View) SetTransform(t Transform) { v.transform = t }

// ResetTransform returns to an unzoomed, unpanned view.
func (v *View) ResetTransform() { v.transform = Identity() }

// Render paints background, tiles and hover highlight. Non-positive width or
// height means the surface is not sized yet and nothing is drawn.
func (v *View) Render(s Surface, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	n := v.grid.Size()
	v.origin = MapOrigin(float64(width), float64(height), n, v.cfg)

	s.Fill(v.cfg.Background)

	var images []image.Image
	if v.images != nil {
		images = v.images.Images()
	}
	// x outer, y inner: back-to-front for this layout.
	for tx := 0; tx < n; tx++ {
		for ty := 0; ty < n; ty++ {
			c := Cell{X: tx, Y: ty}
			idx := v.grid.At(c)
			if idx < 0 || idx >= len(images) {
				continue
			}
			PaintTile(s, images[idx], v.origin, c, v.cfg.AdjustOffset, v.cfg, v.transform)
		}
	}

	if c, ok := v.pick(v.pointer); ok {
		a := HighlightAnchor(v.origin, c, v.cfg)
		s.DrawDiamond(a.X, a.Y, v.cfg.TileWidth, v.cfg.TileHeight, v.cfg.Highlight, v.transform)
	}
}

// HoverCell returns the cell under the last known pointer position, using the
// origin of the most recent Render.
func (v *View) HoverCell() (Cell, bool) {
	return v.pick(v.pointer)
}

// pick maps a surface-local point to a grid cell. Only the transform's
// translation is removed unless ScaleAwarePicking is set.
func (v *View) pick(p Point) (Cell, bool) {
	var rel Point
	if v.cfg.ScaleAwarePicking {
		rel = v.transform.Invert(p).Sub(v.origin)
	} else {
		rel = p.Sub(v.origin).Sub(Point{X: v.transform.TranslateX, Y: v.transform.TranslateY})
	}
	c := PickCell(rel, v.cfg.TileWidth, v.cfg.TileHeight)
	return c, v.grid.InBounds(c)
}

// OnWheel zooms around the pointer, then pans horizontally.
func (v *View) OnWheel(e WheelEvent) {
	v.zoom(e)
	v.pan(e)
}

func (v *View) zoom(e WheelEvent) {
	current := v.transform.ScaleX
	amount := e.DeltaY * v.cfg.ZoomSensitivity

	// At MaxScale only zooming out is allowed, at MinScale only zooming in.
	// The scale itself is never clamped, so one large step can overshoot.
	if current >= v.cfg.MaxScale && amount > 0 {
		return
	}
	if current <= v.cfg.MinScale && amount < 0 {
		return
	}

	scale := v.cfg.DefaultScale + amount
	v.transform = v.transform.
		Translate(e.OffsetX, e.OffsetY).
		Scale(scale, scale).
		Translate(-e.OffsetX, -e.OffsetY)
}

func (v *View) pan(e WheelEvent) {
	move := v.cfg.DefaultDeltaX * e.DeltaX * v.cfg.HorizontalScrollSensitivity
	v.transform = v.transform.Translate(move, 0)
}

// OnPointerMove records the pointer relative to the surface.
func (v *View) OnPointerMove(e PointerEvent) {
	v.pointer = Point{
		X: e.ClientX - e.Rect.Left,
		Y: e.ClientY - e.Rect.Top,
	}
}

// OnClick replaces the clicked tile with a random tile type. The hit test uses
// the raw client coordinates against the origin of the last Render.
func (v *View) OnClick(e PointerEvent) (Edit, bool) {
	c, ok := v.pick(Point{X: e.ClientX, Y: e.ClientY})
	if !ok {
		return Edit{}, false
	}
	if v.grid.Index(c) >= v.grid.Len() {
		return Edit{}, false
	}
	limit := v.tileTypeCap()
	if limit <= 0 {
		return Edit{}, false
	}
	old := v.grid.At(c)
	next := v.rng.Intn(v.grid.Len()) % limit
	v.grid.Set(c, next)
	return Edit{Cell: c, Old: old, New: next}, true
}

// tileTypeCap is the configured cap, lowered to the image table size when one
// is attached. A non-positive configured cap means "use the table size".
func (v *View) tileTypeCap() int {
	limit := v.cfg.TileTypeCap
	if v.images == nil {
		return limit
	}
	if n := len(v.images.Images()); limit <= 0 || n < limit {
		limit = n
	}
	return limit
}
