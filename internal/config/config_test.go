package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/isomap/internal/isomap"
)

func TestDefaultMatchesViewDefaults(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())

	got := s.ViewConfig()
	want := isomap.DefaultConfig()

	assert.Equal(t, want.TileWidth, got.TileWidth)
	assert.Equal(t, want.TileHeight, got.TileHeight)
	assert.Equal(t, want.AdjustOffset, got.AdjustOffset)
	assert.Equal(t, want.ZoomSensitivity, got.ZoomSensitivity)
	assert.Equal(t, want.HorizontalScrollSensitivity, got.HorizontalScrollSensitivity)
	assert.Equal(t, want.MinScale, got.MinScale)
	assert.Equal(t, want.MaxScale, got.MaxScale)
	assert.Equal(t, want.TileTypeCap, got.TileTypeCap)
	assert.Equal(t, color.NRGBA{R: 0x15, G: 0x1d, B: 0x26, A: 0xff}, got.Background)
	assert.Equal(t, want.Highlight.Stroke, got.Highlight.Stroke)
	assert.Equal(t, want.Highlight.Fill, got.Highlight.Fill)
	assert.Len(t, s.Map, 99)
}

func TestParseOverridesOnlyGivenFields(t *testing.T) {
	s, err := Parse([]byte(`
log_level: debug
view:
  max_scale: 3
  background: navy
map: [1, 2, 3, 4]
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 3.0, s.View.MaxScale)
	assert.Equal(t, 0.8, s.View.MinScale, "untouched fields keep defaults")
	assert.Equal(t, []int{1, 2, 3, 4}, s.Map)

	cfg := s.ViewConfig()
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0x80, A: 0xff}, cfg.Background)
	assert.Equal(t, 2, s.Grid().Size())
}

func TestParseRejectsEmptyMap(t *testing.T) {
	_, err := Parse([]byte("map: []\n"))
	assert.True(t, errors.Is(err, ErrEmptyMap), "got %v", err)
}

func TestParseRejectsBadColour(t *testing.T) {
	_, err := Parse([]byte("view:\n  highlight_fill: \"#12\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "highlight_fill")
}

func TestParseRejectsInvertedScaleBounds(t *testing.T) {
	_, err := Parse([]byte("view:\n  min_scale: 3\n  max_scale: 2\n"))
	assert.Error(t, err)
}

func TestParseRejectsBadTileSizes(t *testing.T) {
	for _, in := range []string{
		"tiles:\n  count: -1\n",
		"tiles:\n  depth: -4\n",
		"tiles:\n  sheet: tiles.png\n  frame_width: 0\n",
		"tiles:\n  sheet: tiles.png\n  frame_height: -2\n",
	} {
		_, err := Parse([]byte(in))
		assert.Error(t, err, in)
	}

	s, err := Parse([]byte("tiles:\n  count: 0\n  depth: 0\n"))
	require.NoError(t, err, "zero count and depth are allowed")
	set, err := s.TileSet()
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestScaleAwarePickingSetting(t *testing.T) {
	assert.False(t, Default().ViewConfig().ScaleAwarePicking)

	s, err := Parse([]byte("view:\n  scale_aware_picking: true\n"))
	require.NoError(t, err)
	assert.True(t, s.ViewConfig().ScaleAwarePicking)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isomap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: Test\n  width: 640\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", s.Window.Title)
	assert.Equal(t, 640, s.Window.Width)
	assert.Equal(t, 720, s.Window.Height)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGridTruncatesSampleMap(t *testing.T) {
	g := Default().Grid()
	assert.Equal(t, 9, g.Size())
	assert.Equal(t, 18, g.Dropped())
}

func TestEncodeMapRoundTrip(t *testing.T) {
	tiles := []int{14, 23, 0, 7}
	out, err := EncodeMap(tiles)
	require.NoError(t, err)
	assert.Equal(t, "map: [14, 23, 0, 7]\n", string(out))

	s, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, tiles, s.Map)
}

func TestParseColor(t *testing.T) {
	cases := map[string]color.Color{
		"#fff":      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		"#c0392b":   color.NRGBA{R: 192, G: 57, B: 43, A: 255},
		"#c0392b66": color.NRGBA{R: 192, G: 57, B: 43, A: 102},
		"Crimson":   color.RGBA{R: 220, G: 20, B: 60, A: 255},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "red-ish", "#12", "#12345", "#zzzzzz", "#c0392bzz", "#1234567"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestExampleFileLoads(t *testing.T) {
	s, err := Load(filepath.Join("..", "..", "isomap.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 81, len(s.Map))
	assert.Equal(t, 0, s.Grid().Dropped())
	assert.Equal(t, "", s.Tiles.Sheet)
}
