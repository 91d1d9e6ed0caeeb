package isomap

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTransform_TranslateUsesCurrentScale(t *testing.T) {
	tr := Identity().Scale(2, 2).Translate(10, 5)
	if tr.TranslateX != 20 || tr.TranslateY != 10 {
		t.Fatalf("translate=(%v,%v), want (20,10)", tr.TranslateX, tr.TranslateY)
	}
	p := tr.Apply(Point{X: 1, Y: 1})
	if p.X != 22 || p.Y != 12 {
		t.Fatalf("Apply=%v, want (22,12)", p)
	}
}

func TestTransform_InvertUndoesApply(t *testing.T) {
	tr := Transform{ScaleX: 1.25, ScaleY: 1.25, TranslateX: -40, TranslateY: 17}
	in := Point{X: 123.5, Y: -9}
	out := tr.Invert(tr.Apply(in))
	if !almostEqual(out.X, in.X) || !almostEqual(out.Y, in.Y) {
		t.Fatalf("Invert(Apply(%v)) = %v", in, out)
	}
}

func TestTransform_InvertDegenerateScale(t *testing.T) {
	tr := Transform{TranslateX: 5, TranslateY: 5}
	p := tr.Invert(Point{X: 10, Y: 10})
	if p.X != 5 || p.Y != 5 {
		t.Fatalf("degenerate invert=%v, want (5,5)", p)
	}
}
