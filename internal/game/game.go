package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/isomap/internal/config"
	"github.com/Garsondee/isomap/internal/isomap"
	"github.com/Garsondee/isomap/internal/logger"
	"github.com/Garsondee/isomap/internal/render"
)

// Game hosts the isometric map view in an Ebiten window.
type Game struct {
	width  int // current layout size, 0 until the first Layout call
	height int

	view    *isomap.View
	surface *render.Ebiten
	editLog *EditLog
	tick    int

	// wheelLine converts one wheel notch into pixel deltas.
	wheelLine float64

	showHUD  bool
	showLog  bool
	prevKeys map[ebiten.Key]bool

	// copyText writes to the system clipboard; replaced in tests.
	copyText func(string) error
}

// New creates a game over the given view.
func New(view *isomap.View, wheelLine float64) *Game {
	if wheelLine <= 0 {
		wheelLine = 100
	}
	return &Game{
		view:      view,
		surface:   render.NewEbiten(),
		editLog:   NewEditLog(),
		wheelLine: wheelLine,
		showHUD:   true,
		showLog:   true,
		prevKeys:  make(map[ebiten.Key]bool),
		copyText:  setClipboardText,
	}
}

func (g *Game) Update() error {
	g.tick++
	g.handleInput()
	return nil
}

// handleInput forwards pointer and wheel input to the view and processes
// toggle keypresses (edge-triggered).
func (g *Game) handleInput() {
	mx, my := ebiten.CursorPosition()
	g.view.OnPointerMove(isomap.PointerEvent{ClientX: float64(mx), ClientY: float64(my)})

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		g.view.OnWheel(wheelEvent(wx, wy, mx, my, g.wheelLine))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(mx, my)
	}

	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// H: toggle HUD.
	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	// L: toggle edit log panel.
	if pressed(ebiten.KeyL) {
		g.showLog = !g.showLog
	}
	// R: reset zoom and pan.
	if pressed(ebiten.KeyR) {
		g.view.ResetTransform()
		g.editLog.AddNote(g.tick, "view reset")
	}
	// C: copy the map to the clipboard.
	if pressed(ebiten.KeyC) {
		g.copyMap()
	}

	g.prevKeys = currentKeys
}

// wheelEvent converts Ebiten wheel notches into pixel deltas. Ebiten reports
// positive y when the wheel moves away from the user; the view zooms in on
// positive DeltaY, so both axes are flipped.
func wheelEvent(wx, wy float64, mx, my int, line float64) isomap.WheelEvent {
	return isomap.WheelEvent{
		DeltaX:  -wx * line,
		DeltaY:  -wy * line,
		OffsetX: float64(mx),
		OffsetY: float64(my),
	}
}

// click edits the tile under the cursor. Clicks on the HUD or the edit log
// panel are swallowed by the overlay.
func (g *Game) click(mx, my int) {
	if g.overOverlay(mx, my) {
		return
	}
	edit, ok := g.view.OnClick(isomap.PointerEvent{ClientX: float64(mx), ClientY: float64(my)})
	if !ok {
		return
	}
	g.editLog.Add(g.tick, edit)
	logger.Log.WithFields(logrus.Fields{
		"x":   edit.Cell.X,
		"y":   edit.Cell.Y,
		"old": edit.Old,
		"new": edit.New,
	}).Debug("tile changed")
}

func (g *Game) overOverlay(mx, my int) bool {
	if g.showLog && mx >= g.width-logPanelWidth {
		return true
	}
	if g.showHUD {
		x0, y0, w, h := g.hudBox()
		if mx >= x0 && mx < x0+w && my >= y0 && my < y0+h {
			return true
		}
	}
	return false
}

func (g *Game) copyMap() {
	data, err := config.EncodeMap(g.view.Grid().Tiles())
	if err == nil {
		err = g.copyText(string(data))
	}
	if err != nil {
		logger.Log.WithError(err).Warn("copy map to clipboard")
		g.editLog.AddNote(g.tick, "copy failed")
		return
	}
	g.editLog.AddNote(g.tick, fmt.Sprintf("map copied (%d tiles)", g.view.Grid().Len()))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	g.view.Render(g.surface, g.width, g.height)

	if g.showLog {
		g.editLog.Draw(screen, g.width-logPanelWidth, g.height)
	}
	if g.showHUD {
		g.drawHUD(screen)
	}
}

// Layout follows the window size so the map re-centres on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = outsideWidth
	g.height = outsideHeight
	return outsideWidth, outsideHeight
}
