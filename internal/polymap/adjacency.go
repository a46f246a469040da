package polymap

import (
	"fmt"
	"sort"

	"github.com/fogleman/delaunay"
)

// Triangulator turns seed points into triangles, each a triple of indices into
// the input slice.
type Triangulator interface {
	Triangulate(points []SeedPoint) ([][3]int, error)
}

// DelaunayTriangulator is the default Triangulator, backed by
// github.com/fogleman/delaunay.
type DelaunayTriangulator struct{}

func (DelaunayTriangulator) Triangulate(points []SeedPoint) ([][3]int, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points, got %d", ErrGeometry, len(points))
	}

	pts := make([]delaunay.Point, len(points))
	for i, p := range points {
		pts[i] = delaunay.Point{X: float64(p.X), Y: float64(p.Y)}
	}

	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeometry, err)
	}
	if tri == nil || len(tri.Triangles) < 3 {
		return nil, fmt.Errorf("%w: triangulation produced no triangles", ErrGeometry)
	}

	triangles := make([][3]int, 0, len(tri.Triangles)/3)
	for t := 0; t+2 < len(tri.Triangles); t += 3 {
		triangles = append(triangles, [3]int{tri.Triangles[t], tri.Triangles[t+1], tri.Triangles[t+2]})
	}
	return triangles, nil
}

// Adjacency is the undirected neighbor graph between cells. Neighbor lists are
// sorted ascending and hold no duplicates or self references.
type Adjacency struct {
	neighbors [][]int
	edges     int
}

// NewAdjacency builds the graph for n cells from an explicit edge list. Self
// loops and repeated edges are dropped.
func NewAdjacency(n int, edges [][2]int) *Adjacency {
	sets := make([]map[int]struct{}, n)
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}
	for _, e := range edges {
		i, j := e[0], e[1]
		if i == j {
			continue
		}
		sets[i][j] = struct{}{}
		sets[j][i] = struct{}{}
	}

	a := &Adjacency{neighbors: make([][]int, n)}
	for i, set := range sets {
		list := make([]int, 0, len(set))
		for j := range set {
			list = append(list, j)
		}
		sort.Ints(list)
		a.neighbors[i] = list
		a.edges += len(list)
	}
	a.edges /= 2
	return a
}

// BuildAdjacency triangulates the seeds and links every pair of vertices that
// share a triangle. Any triangulation failure aborts the run.
func BuildAdjacency(seeds []SeedPoint, t Triangulator) (*Adjacency, error) {
	if len(seeds) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points, got %d", ErrGeometry, len(seeds))
	}

	triangles, err := t.Triangulate(seeds)
	if err != nil {
		return nil, err
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("%w: triangulation produced no triangles", ErrGeometry)
	}

	edges := make([][2]int, 0, len(triangles)*3)
	for _, tri := range triangles {
		for _, v := range tri {
			if v < 0 || v >= len(seeds) {
				return nil, fmt.Errorf("%w: triangle vertex %d out of range", ErrGeometry, v)
			}
		}
		edges = append(edges,
			[2]int{tri[0], tri[1]},
			[2]int{tri[1], tri[2]},
			[2]int{tri[0], tri[2]},
		)
	}
	return NewAdjacency(len(seeds), edges), nil
}

// Len is the number of cells in the graph.
func (a *Adjacency) Len() int { return len(a.neighbors) }

// Neighbors returns the sorted neighbor indices of cell i. The slice must not
// be modified.
func (a *Adjacency) Neighbors(i int) []int { return a.neighbors[i] }

// Degree is the number of neighbors of cell i.
func (a *Adjacency) Degree(i int) int { return len(a.neighbors[i]) }

// EdgeCount is the number of undirected edges.
func (a *Adjacency) EdgeCount() int { return a.edges }

// Adjacent reports whether i and j share an edge.
func (a *Adjacency) Adjacent(i, j int) bool {
	list := a.neighbors[i]
	k := sort.SearchInts(list, j)
	return k < len(list) && list[k] == j
}

// Edges lists every edge once as {i, j} with i < j, ordered by i then j.
func (a *Adjacency) Edges() [][2]int {
	out := make([][2]int, 0, a.edges)
	for i, list := range a.neighbors {
		for _, j := range list {
			if i < j {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}
