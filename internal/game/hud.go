package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var hudLegend = []string{
	"wheel  zoom / pan",
	"click  change tile",
	"[R] reset view",
	"[C] copy map",
	"[L] edit log",
	"[H] hide help",
}

// hudLines returns the status lines shown in the top-left corner.
func (g *Game) hudLines() []string {
	t := g.view.Transform()
	lines := []string{fmt.Sprintf("zoom: %.2fx  pan: %.0f,%.0f", t.ScaleX, t.TranslateX, t.TranslateY)}
	if c, ok := g.view.HoverCell(); ok {
		lines = append(lines, fmt.Sprintf("cell: (%d,%d) type %d", c.X, c.Y, g.view.Grid().At(c)))
	} else {
		lines = append(lines, "cell: -")
	}
	return append(lines, hudLegend...)
}

const (
	hudMargin     = 4
	hudWidth      = 200
	hudLineHeight = 16
)

// hudBox is the HUD background rectangle as x, y, width, height.
func (g *Game) hudBox() (int, int, int, int) {
	n := len(hudLegend) + 2
	return hudMargin, hudMargin, hudWidth, n*hudLineHeight + 8
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := g.hudLines()
	x, y, w, h := g.hudBox()
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 0, G: 0, B: 0, A: 140}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+6, y+4+i*hudLineHeight)
	}
}
