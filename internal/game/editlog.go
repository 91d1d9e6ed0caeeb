package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/isomap/internal/isomap"
)

const (
	logPanelWidth = 240
	logMaxEntries = 40
	logLineHeight = 14
)

// EditEntry is a single line in the edit log: a tile change or a note.
type EditEntry struct {
	Tick    int
	Edit    isomap.Edit
	IsEdit  bool
	Message string
}

// Line formats the entry for the panel.
func (e EditEntry) Line() string {
	if e.IsEdit {
		return fmt.Sprintf("%5d (%d,%d) %d -> %d", e.Tick, e.Edit.Cell.X, e.Edit.Cell.Y, e.Edit.Old, e.Edit.New)
	}
	return fmt.Sprintf("%5d %s", e.Tick, e.Message)
}

// EditLog is a ring buffer of recent map edits rendered on-screen.
type EditLog struct {
	entries []EditEntry
	head    int
	count   int
}

// NewEditLog creates an edit log with a fixed capacity.
func NewEditLog() *EditLog {
	return &EditLog{
		entries: make([]EditEntry, logMaxEntries),
	}
}

// Add records a tile edit.
func (el *EditLog) Add(tick int, e isomap.Edit) {
	el.push(EditEntry{Tick: tick, Edit: e, IsEdit: true})
}

// AddNote records a free-form message.
func (el *EditLog) AddNote(tick int, msg string) {
	el.push(EditEntry{Tick: tick, Message: msg})
}

func (el *EditLog) push(e EditEntry) {
	el.entries[el.head] = e
	el.head = (el.head + 1) % logMaxEntries
	if el.count < logMaxEntries {
		el.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (el *EditLog) Recent() []EditEntry {
	result := make([]EditEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + logMaxEntries) % logMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Draw renders the log panel with its left edge at panelX.
func (el *EditLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	// Panel background.
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 12, G: 16, B: 22, A: 220}, false)
	// Left separator line.
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 64, B: 80, A: 255}, false)

	// Title bar.
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 24, G: 32, B: 44, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EDITS", panelX+8, 0)

	entries := el.Recent()

	// Newest at the bottom.
	maxVisible := (panelH - 24) / logLineHeight
	if maxVisible < 0 {
		maxVisible = 0
	}
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]

	y := 20
	for i, e := range visible {
		// Highlight the latest entry.
		if i == len(visible)-1 {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 60, G: 30, B: 28, A: 160}, false)
		}
		if e.IsEdit {
			vector.FillRect(screen, float32(panelX+5), float32(y+5), 3, 5, color.RGBA{R: 192, G: 57, B: 43, A: 255}, false)
		}
		ebitenutil.DebugPrintAt(screen, e.Line(), panelX+12, y)
		y += logLineHeight
	}
}
