package main

import (
	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/isomap/internal/config"
	"github.com/Garsondee/isomap/internal/game"
	"github.com/Garsondee/isomap/internal/isomap"
	"github.com/Garsondee/isomap/internal/logger"
)

const desc = `Interactive isometric map viewer. Wheel zooms and pans, click changes a tile.`

var cli struct {
	Config   string `short:"c" help:"YAML settings file. Built-in defaults when empty."`
	LogLevel string `help:"Override the configured log level."`
	Width    int    `help:"Window width in px (overrides config)."`
	Height   int    `help:"Window height in px (overrides config)."`
}

func main() {
	kong.Parse(&cli, kong.Name("isomap"), kong.Description(desc))

	settings := config.Default()
	if cli.Config != "" {
		s, err := config.Load(cli.Config)
		if err != nil {
			logger.Log.Fatal(err)
		}
		settings = s
	}
	if cli.LogLevel != "" {
		settings.LogLevel = cli.LogLevel
	}
	if cli.Width > 0 {
		settings.Window.Width = cli.Width
	}
	if cli.Height > 0 {
		settings.Window.Height = cli.Height
	}
	logger.Init(settings.LogLevel)

	set, err := settings.TileSet()
	if err != nil {
		logger.Log.Fatal(err)
	}
	grid := settings.Grid()
	logger.Log.WithField("size", grid.Size()).WithField("tile_types", set.Len()).Info("map loaded")

	view := isomap.NewView(settings.ViewConfig(), grid, set)

	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game.New(view, settings.Input.WheelLineHeight)); err != nil {
		logger.Log.Fatal(err)
	}
}
