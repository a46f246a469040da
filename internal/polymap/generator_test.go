package polymap

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/polymap/internal/testutil"
)

func smallConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Width = 96
	cfg.Height = 96
	cfg.Cells = 80
	cfg.Seed = seed
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		valid  bool
	}{
		{name: "defaults", mutate: func(c *Config) {}, valid: true},
		{name: "empty shape means radial", mutate: func(c *Config) { c.Shape = "" }, valid: true},
		{name: "perlin shape", mutate: func(c *Config) { c.Shape = ShapePerlin }, valid: true},
		{name: "zero cells", mutate: func(c *Config) { c.Cells = 0 }},
		{name: "negative cells", mutate: func(c *Config) { c.Cells = -3 }},
		{name: "zero width", mutate: func(c *Config) { c.Width = 0 }},
		{name: "negative height", mutate: func(c *Config) { c.Height = -1 }},
		{name: "largest grid", mutate: func(c *Config) { c.Width, c.Height = MaxPixels/4, 4 }, valid: true},
		{name: "one pixel over the grid limit", mutate: func(c *Config) { c.Width, c.Height = MaxPixels/4+1, 4 }},
		{name: "product overflows int", mutate: func(c *Config) { c.Width, c.Height = 1<<32, 1<<32 }},
		{name: "island factor below one", mutate: func(c *Config) { c.IslandFactor = 0.5 }},
		{name: "negative spikes", mutate: func(c *Config) { c.MoistureSpikes = -1 }},
		{name: "negative passes", mutate: func(c *Config) { c.Passes = -1 }},
		{name: "unknown shape", mutate: func(c *Config) { c.Shape = "donut" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestGenerate_InvalidConfig(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero cells", func(c *Config) { c.Cells = 0 }},
		{"grid too large to allocate", func(c *Config) { c.Width, c.Height = 1<<32, 1<<32 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := smallConfig(1)
			tt.mutate(&cfg)

			var w *World
			var err error
			require.NotPanics(t, func() { w, err = Generate(cfg) })
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, w)
		})
	}
}

func TestGenerate_GeometryFailureAborts(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	t.Run("single seed", func(t *testing.T) {
		cfg := smallConfig(1)
		cfg.Cells = 1

		w, err := Generate(cfg)
		assert.ErrorIs(t, err, ErrGeometry)
		assert.Nil(t, w, "no partial world")
	})

	t.Run("one pixel wide map puts every seed on a line", func(t *testing.T) {
		cfg := smallConfig(1)
		cfg.Width = 1
		cfg.Height = 40
		cfg.Cells = 4

		_, err := Generate(cfg)
		assert.ErrorIs(t, err, ErrGeometry)
	})

	t.Run("triangulator error", func(t *testing.T) {
		g := NewGenerator(smallConfig(1), WithTriangulator(&fixedTriangulator{err: ErrGeometry}))
		_, err := g.Generate()
		assert.True(t, errors.Is(err, ErrGeometry))
	})
}

func TestGenerate_Properties(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	for _, shape := range []string{ShapeRadial, ShapePerlin} {
		t.Run(shape, func(t *testing.T) {
			cfg := smallConfig(2024)
			cfg.Shape = shape

			w, err := Generate(cfg)
			require.NoError(t, err)

			require.Len(t, w.Seeds, cfg.Cells)
			require.Len(t, w.Owner, cfg.Width*cfg.Height)
			require.NotNil(t, w.Adjacency)
			assert.Equal(t, int64(2024), w.Seed)
			if shape == ShapeRadial {
				assert.NotNil(t, w.Radial)
			} else {
				assert.Nil(t, w.Radial)
			}

			for y := 0; y < cfg.Height; y += 7 {
				for x := 0; x < cfg.Width; x += 5 {
					assert.Equal(t, oracleOwner(w.Seeds, x, y), w.CellAt(x, y))
				}
			}

			for i := range w.Seeds {
				assert.GreaterOrEqual(t, w.Depth[i], 0.0)
				assert.LessOrEqual(t, w.Depth[i], 1.0)
				assert.GreaterOrEqual(t, w.Moisture[i], 0.0)
				assert.NotEqual(t, Land, w.Types[i], "cell %d left preliminary", i)
				if w.Types[i] == Coast {
					assert.True(t, hasWaterNeighbor(w, i))
				}
				if w.Types[i] == Inner {
					assert.False(t, hasWaterNeighbor(w, i))
				}
			}

			stats := w.Stats()
			assert.Equal(t, cfg.Cells, stats.Cells)
			total := 0
			for _, n := range stats.Biomes {
				total += n
			}
			assert.Equal(t, cfg.Cells, total)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	cfg := smallConfig(77)
	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Seeds, b.Seeds)
	assert.Equal(t, a.Owner, b.Owner)
	assert.Equal(t, a.Types, b.Types)
	assert.Equal(t, a.Depth, b.Depth)
	assert.Equal(t, a.Moisture, b.Moisture)
	assert.Equal(t, Image(a).Pix, Image(b).Pix)
}

func TestGenerate_DeterministicFullSize(t *testing.T) {
	if testing.Short() {
		t.Skip("full size generation skipped in short mode")
	}
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	cfg := DefaultConfig()
	cfg.Seed = 1234

	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)

	require.Equal(t, a.Owner, b.Owner)
	assert.True(t, bytes.Equal(Image(a).Pix, Image(b).Pix), "biome raster differs between runs")
}

func TestGenerate_RandomSeedIsRecorded(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	fixed := time.Unix(0, 123456789)
	g := NewGenerator(smallConfig(0))
	g.now = func() time.Time { return fixed }

	w, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, fixed.UnixNano(), w.Seed)

	replay, err := Generate(smallConfig(w.Seed))
	require.NoError(t, err)
	assert.Equal(t, w.Owner, replay.Owner)
	assert.Equal(t, w.Types, replay.Types)
}

func TestGenerate_WithShape(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	w, err := NewGenerator(smallConfig(3), WithShape(constShape(false))).Generate()
	require.NoError(t, err)

	for i, typ := range w.Types {
		assert.Equal(t, Water, typ, "cell %d", i)
		assert.Zero(t, w.Depth[i])
	}
}
