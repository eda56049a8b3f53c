package export

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadview/internal/config"
	"quadview/internal/geom"
)

func TestWriteFormats(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()

	paths, err := All(filepath.Join(dir, "out"), geom.Rhombus, cfg)
	require.NoError(t, err)
	require.Len(t, paths, len(Formats))

	f, err := os.Open(filepath.Join(dir, "out", "rhombus.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, cfg.Width, img.Bounds().Dx())
	assert.Equal(t, cfg.Height, img.Bounds().Dy())

	svg, err := os.ReadFile(filepath.Join(dir, "out", "rhombus.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	wkt, err := os.ReadFile(filepath.Join(dir, "out", "rhombus.wkt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(wkt), "POLYGON(("))

	gj, err := os.ReadFile(filepath.Join(dir, "out", "rhombus.geojson"))
	require.NoError(t, err)
	assert.Contains(t, string(gj), `"kind":"rhombus"`)

	csv, err := os.ReadFile(filepath.Join(dir, "out", "rhombus.csv"))
	require.NoError(t, err)
	assert.Equal(t, 7, strings.Count(string(csv), "\n"))
}

func TestWriteRejects(t *testing.T) {
	dir := t.TempDir()
	err := Write(filepath.Join(dir, "x.bmp"), geom.Square, config.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")

	err = Write(filepath.Join(dir, "x.png"), geom.Kind(7), config.Default())
	assert.Error(t, err)

	assert.True(t, Supported("a/b.SVG"))
	assert.False(t, Supported("a/b.txt"))
}
