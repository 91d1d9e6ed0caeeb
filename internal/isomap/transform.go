package isomap

// Transform is the scale + translate state of the drawing surface. It follows
// 2D canvas semantics: Translate and Scale compose onto the current transform,
// so a point p is drawn at (ScaleX*p.X + TranslateX, ScaleY*p.Y + TranslateY).
type Transform struct {
	ScaleX, ScaleY         float64
	TranslateX, TranslateY float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Translate shifts the origin by (x, y) in the current (scaled) space.
func (t Transform) Translate(x, y float64) Transform {
	t.TranslateX += t.ScaleX * x
	t.TranslateY += t.ScaleY * y
	return t
}

// Scale multiplies both axes.
func (t Transform) Scale(sx, sy float64) Transform {
	t.ScaleX *= sx
	t.ScaleY *= sy
	return t
}

// Apply maps a point from map space to surface space.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.ScaleX*p.X + t.TranslateX,
		Y: t.ScaleY*p.Y + t.TranslateY,
	}
}

// Invert maps a surface point back to map space. A degenerate scale leaves the
// axis untouched apart from the translation.
func (t Transform) Invert(p Point) Point {
	x := p.X - t.TranslateX
	y := p.Y - t.TranslateY
	if t.ScaleX != 0 {
		x /= t.ScaleX
	}
	if t.ScaleY != 0 {
		y /= t.ScaleY
	}
	return Point{X: x, Y: y}
}
