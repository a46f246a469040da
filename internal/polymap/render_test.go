package polymap

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/polymap/internal/testutil"
)

func TestImage_PaintsOwnerBiome(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	w, err := Generate(smallConfig(9))
	require.NoError(t, err)

	img := Image(w)
	require.Equal(t, w.Width(), img.Bounds().Dx())
	require.Equal(t, w.Height(), img.Bounds().Dy())

	for y := 0; y < w.Height(); y += 3 {
		for x := 0; x < w.Width(); x += 3 {
			assert.Equal(t, w.BiomeAt(x, y).Color(), img.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	w, err := Generate(smallConfig(10))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(w, &buf))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, w.Width(), decoded.Bounds().Dx())

	r, g, b, _ := decoded.At(0, 0).RGBA()
	c := w.BiomeAt(0, 0).Color()
	assert.Equal(t, uint32(c.R), r>>8)
	assert.Equal(t, uint32(c.G), g>>8)
	assert.Equal(t, uint32(c.B), b>>8)
}

func TestWritePNG(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	w, err := Generate(smallConfig(11))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "island.png")
	require.NoError(t, WritePNG(w, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, WritePNG(w, filepath.Join(t.TempDir(), "missing", "island.png")))
}
