package polymap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constShape answers the same for every point.
type constShape bool

func (s constShape) IsLand(x, y float64) bool { return bool(s) }

// halfShape puts the left half of the map on land.
type halfShape struct{}

func (halfShape) IsLand(x, y float64) bool { return x < 0 }

// oracleOwner recomputes ownership with float Euclidean distances: the minimum
// distance, and among equal distances the lowest index.
func oracleOwner(seeds []SeedPoint, x, y int) int {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range seeds {
		dx, dy := float64(p.X-x), float64(p.Y-y)
		d := math.Sqrt(dx*dx + dy*dy)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func newTestWorld(width, height int, seeds []SeedPoint) *World {
	return &World{
		Config: Config{Width: width, Height: height, Cells: len(seeds)},
		Seeds:  seeds,
	}
}

func TestRasterize_MatchesOracle(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		seeds         int
		seed          int64
	}{
		{name: "10x10 with 4 seeds", width: 10, height: 10, seeds: 4, seed: 1},
		{name: "16x9 with 7 seeds", width: 16, height: 9, seeds: 7, seed: 2},
		{name: "crowded 8x8", width: 8, height: 8, seeds: 30, seed: 3},
		{name: "single seed", width: 5, height: 5, seeds: 1, seed: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seeds := SamplePoints(NewRNG(tt.seed), tt.width, tt.height, tt.seeds)
			w := newTestWorld(tt.width, tt.height, seeds)

			Rasterize(w, constShape(true))

			require.Len(t, w.Owner, tt.width*tt.height)
			for y := 0; y < tt.height; y++ {
				for x := 0; x < tt.width; x++ {
					assert.Equal(t, oracleOwner(seeds, x, y), w.CellAt(x, y), "pixel (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestRasterize_TieGoesToLowestIndex(t *testing.T) {
	t.Run("opposite corners split the anti-diagonal", func(t *testing.T) {
		// (k, 9-k) is equally far from (0,0) and (9,9).
		for _, seeds := range [][]SeedPoint{
			{{0, 0}, {9, 9}},
			{{9, 9}, {0, 0}},
		} {
			w := newTestWorld(10, 10, seeds)
			Rasterize(w, constShape(false))
			for k := 0; k < 10; k++ {
				assert.Equal(t, 0, w.CellAt(k, 9-k), "seeds %v pixel (%d,%d)", seeds, k, 9-k)
			}
		}
	})

	t.Run("four corners", func(t *testing.T) {
		seeds := []SeedPoint{{0, 0}, {9, 0}, {0, 9}, {9, 9}}
		w := newTestWorld(10, 10, seeds)
		Rasterize(w, constShape(false))

		// Main diagonal pixels are equidistant to seeds 1 and 2; seed 1 may
		// only lose to a strictly closer seed, never to seed 2.
		for k := 0; k < 10; k++ {
			assert.NotEqual(t, 2, w.CellAt(k, k), "pixel (%d,%d)", k, k)
			assert.Equal(t, oracleOwner(seeds, k, k), w.CellAt(k, k))
		}
		assert.Equal(t, 0, w.CellAt(0, 0))
		assert.Equal(t, 3, w.CellAt(9, 9))
	})

	t.Run("duplicate seeds", func(t *testing.T) {
		seeds := []SeedPoint{{2, 2}, {7, 7}, {2, 2}}
		w := newTestWorld(10, 10, seeds)
		Rasterize(w, constShape(true))

		for _, owner := range w.Owner {
			assert.NotEqual(t, 2, owner, "later duplicate must never own a pixel")
		}
		assert.Zero(t, w.LandPixels[2]+w.WaterPixels[2])
	})
}

func TestRasterize_PixelTallies(t *testing.T) {
	seeds := []SeedPoint{{1, 5}, {8, 5}}
	w := newTestWorld(10, 10, seeds)

	Rasterize(w, halfShape{})

	assert.Equal(t, 100, w.LandPixels[0]+w.WaterPixels[0]+w.LandPixels[1]+w.WaterPixels[1])
	assert.Equal(t, 50, w.LandPixels[0], "x < 5 normalizes to x < 0")
	assert.Zero(t, w.WaterPixels[0])
	assert.Zero(t, w.LandPixels[1])
	assert.Equal(t, 50, w.WaterPixels[1])
}

func TestAssignTypes(t *testing.T) {
	w := newTestWorld(4, 4, []SeedPoint{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	w.LandPixels = []int{5, 2, 3, 0}
	w.WaterPixels = []int{1, 2, 4, 0}

	AssignTypes(w)

	assert.Equal(t, []CellType{Land, Water, Water, Water}, w.Types, "ties and empty cells are water")
	assert.Equal(t, []float64{Unreached, 0, 0, 0}, w.Depth)
	assert.Equal(t, []float64{0, 1, 1, 1}, w.Moisture)
}

func TestSprinkleMoisture(t *testing.T) {
	w := newTestWorld(4, 4, make([]SeedPoint, 5))
	w.Moisture = make([]float64, 5)

	SprinkleMoisture(w, NewRNG(3), 15)

	touched := 0
	for _, m := range w.Moisture {
		assert.GreaterOrEqual(t, m, 0.0)
		assert.Less(t, m, 3.0)
		if m > 0 {
			touched++
		}
	}
	assert.Positive(t, touched)
}
