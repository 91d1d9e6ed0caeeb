package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/isomap/internal/isomap"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("400:300.5")
	require.NoError(t, err)
	assert.Equal(t, isomap.Point{X: 400, Y: 300.5}, p)

	for _, bad := range []string{"", "400", "a:1", "1:b", "1,2"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestThumbPath(t *testing.T) {
	assert.Equal(t, "out/map.thumb.png", thumbPath("out/map.png"))
	assert.Equal(t, "map.thumb.png", thumbPath("map"))
}

func TestRunWritesSnapshotAndThumb(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "map.png")

	err := run(options{
		Output: out,
		Width:  320,
		Height: 240,
		Seed:   3,
		Zoom:   500,
		Click:  []string{"160:120", "1:1"},
		Hover:  "160:120",
		Thumb:  80,
	})
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())

	tf, err := os.Open(filepath.Join(dir, "map.thumb.png"))
	require.NoError(t, err)
	defer tf.Close()
	thumb, err := png.Decode(tf)
	require.NoError(t, err)
	assert.Equal(t, 80, thumb.Bounds().Dx())
	assert.Equal(t, 60, thumb.Bounds().Dy())
}

func TestRunRejectsBadInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")
	assert.Error(t, run(options{Output: out, Width: 0, Height: 10}))
	assert.Error(t, run(options{Output: out, Width: 10, Height: 10, Hover: "nope"}))
	assert.Error(t, run(options{Output: out, Width: 10, Height: 10, Config: filepath.Join(t.TempDir(), "missing.yaml")}))
}
