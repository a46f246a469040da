package polymap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedTriangulator returns canned triangles or an error.
type fixedTriangulator struct {
	triangles [][3]int
	err       error
	calls     int
}

func (f *fixedTriangulator) Triangulate(points []SeedPoint) ([][3]int, error) {
	f.calls++
	return f.triangles, f.err
}

func assertWellFormed(t *testing.T, adj *Adjacency) {
	t.Helper()
	edges := 0
	for i := 0; i < adj.Len(); i++ {
		seen := make(map[int]bool)
		for _, j := range adj.Neighbors(i) {
			assert.NotEqual(t, i, j, "self loop at %d", i)
			assert.False(t, seen[j], "duplicate edge %d-%d", i, j)
			seen[j] = true
			assert.True(t, adj.Adjacent(j, i), "edge %d-%d is not symmetric", i, j)
			edges++
		}
	}
	assert.Equal(t, edges/2, adj.EdgeCount())
}

func TestBuildAdjacency_Delaunay(t *testing.T) {
	t.Run("square gives two triangles", func(t *testing.T) {
		seeds := []SeedPoint{{0, 0}, {10, 0}, {0, 10}, {10, 10}}
		adj, err := BuildAdjacency(seeds, DelaunayTriangulator{})
		require.NoError(t, err)

		assertWellFormed(t, adj)
		assert.Equal(t, 5, adj.EdgeCount(), "four sides plus one diagonal")
		for i := range seeds {
			assert.GreaterOrEqual(t, adj.Degree(i), 2)
		}
	})

	t.Run("triangle", func(t *testing.T) {
		adj, err := BuildAdjacency([]SeedPoint{{0, 0}, {5, 0}, {2, 4}}, DelaunayTriangulator{})
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, adj.Edges())
	})

	t.Run("random point sets", func(t *testing.T) {
		for seed := int64(1); seed <= 5; seed++ {
			seeds := SamplePoints(NewRNG(seed), 512, 512, 200)
			adj, err := BuildAdjacency(seeds, DelaunayTriangulator{})
			require.NoError(t, err)
			assertWellFormed(t, adj)
			assert.Positive(t, adj.EdgeCount())
		}
	})
}

func TestBuildAdjacency_GeometryErrors(t *testing.T) {
	tests := []struct {
		name  string
		seeds []SeedPoint
	}{
		{name: "single seed", seeds: []SeedPoint{{3, 3}}},
		{name: "two seeds", seeds: []SeedPoint{{0, 0}, {5, 5}}},
		{name: "four collinear seeds", seeds: []SeedPoint{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{name: "horizontal line", seeds: []SeedPoint{{0, 4}, {3, 4}, {7, 4}, {9, 4}, {12, 4}}},
		{name: "all duplicates", seeds: []SeedPoint{{2, 2}, {2, 2}, {2, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj, err := BuildAdjacency(tt.seeds, DelaunayTriangulator{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrGeometry)
			assert.Nil(t, adj)
		})
	}
}

func TestBuildAdjacency_Triangulator(t *testing.T) {
	seeds := []SeedPoint{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	t.Run("shared edges are deduplicated", func(t *testing.T) {
		tri := &fixedTriangulator{triangles: [][3]int{{0, 1, 2}, {1, 3, 2}, {2, 1, 0}}}
		adj, err := BuildAdjacency(seeds, tri)
		require.NoError(t, err)

		assertWellFormed(t, adj)
		assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}, adj.Edges())
		assert.False(t, adj.Adjacent(0, 3))
		assert.Equal(t, []int{0, 2, 3}, adj.Neighbors(1))
	})

	t.Run("backend failure aborts", func(t *testing.T) {
		boom := errors.New("backend exploded")
		_, err := BuildAdjacency(seeds, &fixedTriangulator{err: boom})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no triangles is a geometry error", func(t *testing.T) {
		_, err := BuildAdjacency(seeds, &fixedTriangulator{})
		assert.ErrorIs(t, err, ErrGeometry)
	})

	t.Run("out of range vertex", func(t *testing.T) {
		_, err := BuildAdjacency(seeds, &fixedTriangulator{triangles: [][3]int{{0, 1, 9}}})
		assert.ErrorIs(t, err, ErrGeometry)
	})

	t.Run("too few points never reach the backend", func(t *testing.T) {
		tri := &fixedTriangulator{}
		_, err := BuildAdjacency(seeds[:2], tri)
		assert.ErrorIs(t, err, ErrGeometry)
		assert.Zero(t, tri.calls)
	})
}

func TestNewAdjacency_DropsLoopsAndDuplicates(t *testing.T) {
	adj := NewAdjacency(4, [][2]int{{0, 1}, {1, 0}, {2, 2}, {3, 1}, {0, 1}})

	assertWellFormed(t, adj)
	assert.Equal(t, 2, adj.EdgeCount())
	assert.Empty(t, adj.Neighbors(2))
	assert.Equal(t, []int{0, 3}, adj.Neighbors(1))
}
