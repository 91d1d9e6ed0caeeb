package main

import (
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/nfnt/resize"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/isomap/internal/config"
	"github.com/Garsondee/isomap/internal/isomap"
	"github.com/Garsondee/isomap/internal/logger"
	"github.com/Garsondee/isomap/internal/render"
)

const desc = `Renders the isometric map headlessly to a PNG, optionally replaying wheel, hover and click input first.`

type options struct {
	Config   string   `short:"c" help:"YAML settings file. Built-in defaults when empty."`
	Output   string   `short:"o" default:"isomap.png" help:"PNG to write. Overwritten if it exists."`
	Width    int      `default:"800" help:"image width in px"`
	Height   int      `default:"600" help:"image height in px"`
	Seed     int64    `default:"1" help:"seed for click edits"`
	Zoom     float64  `help:"wheel DeltaY applied before rendering (positive zooms in)"`
	Pan      float64  `help:"wheel DeltaX applied before rendering"`
	ZoomAt   string   `help:"pointer position x:y for the wheel event"`
	Click    []string `help:"click positions x:y, in order"`
	Hover    string   `help:"pointer position x:y for the highlight"`
	Thumb    uint     `help:"also write a thumbnail this many px wide"`
	LogLevel string   `default:"info" help:"log level"`
}

var cli options

func main() {
	kong.Parse(&cli, kong.Name("snapshot"), kong.Description(desc))
	logger.Init(cli.LogLevel)

	if err := run(cli); err != nil {
		logger.Log.Fatal(err)
	}
}

func run(opts options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", opts.Width, opts.Height)
	}

	settings := config.Default()
	if opts.Config != "" {
		s, err := config.Load(opts.Config)
		if err != nil {
			return err
		}
		settings = s
	}

	set, err := settings.TileSet()
	if err != nil {
		return err
	}
	view := isomap.NewView(settings.ViewConfig(), settings.Grid(), set,
		isomap.WithRand(rand.New(rand.NewSource(opts.Seed)))) // #nosec G404 -- reproducible edits

	canvas := render.NewCanvas(opts.Width, opts.Height)
	// First pass establishes the map origin used by click hit tests.
	view.Render(canvas, opts.Width, opts.Height)

	if opts.Zoom != 0 || opts.Pan != 0 {
		at := isomap.Point{X: float64(opts.Width) / 2, Y: float64(opts.Height) / 2}
		if opts.ZoomAt != "" {
			if at, err = parsePoint(opts.ZoomAt); err != nil {
				return err
			}
		}
		view.OnWheel(isomap.WheelEvent{DeltaX: opts.Pan, DeltaY: opts.Zoom, OffsetX: at.X, OffsetY: at.Y})
	}

	for _, c := range opts.Click {
		p, err := parsePoint(c)
		if err != nil {
			return err
		}
		edit, ok := view.OnClick(isomap.PointerEvent{ClientX: p.X, ClientY: p.Y})
		fields := logrus.Fields{"x": p.X, "y": p.Y}
		if !ok {
			logger.Log.WithFields(fields).Info("click outside the map")
			continue
		}
		fields["cell"] = fmt.Sprintf("%d,%d", edit.Cell.X, edit.Cell.Y)
		fields["old"] = edit.Old
		fields["new"] = edit.New
		logger.Log.WithFields(fields).Info("tile changed")
	}

	if opts.Hover != "" {
		p, err := parsePoint(opts.Hover)
		if err != nil {
			return err
		}
		view.OnPointerMove(isomap.PointerEvent{ClientX: p.X, ClientY: p.Y})
	}

	view.Render(canvas, opts.Width, opts.Height)
	if err := canvas.SavePNG(opts.Output); err != nil {
		return fmt.Errorf("write %s: %w", opts.Output, err)
	}
	logger.Log.WithField("path", opts.Output).Info("snapshot written")

	if opts.Thumb > 0 {
		path := thumbPath(opts.Output)
		if err := writeThumb(canvas, opts.Thumb, path); err != nil {
			return err
		}
		logger.Log.WithField("path", path).Info("thumbnail written")
	}
	return nil
}

// parsePoint reads "x:y".
func parsePoint(s string) (isomap.Point, error) {
	xs, ys, ok := strings.Cut(s, ":")
	if !ok {
		return isomap.Point{}, fmt.Errorf("point %q: want x:y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return isomap.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return isomap.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return isomap.Point{X: x, Y: y}, nil
}

// thumbPath derives "name.thumb.png" from "name.png".
func thumbPath(output string) string {
	return strings.TrimSuffix(output, ".png") + ".thumb.png"
}

func writeThumb(canvas *render.Canvas, width uint, path string) error {
	thumb := resize.Resize(width, 0, canvas.Image(), resize.Lanczos3)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	if err := png.Encode(f, thumb); err != nil {
		f.Close()
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	return f.Close()
}
