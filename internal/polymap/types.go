// Package polymap generates biome-colored island rasters from a handful of
// random seed points.
//
// A run samples seeds, assigns every pixel to its nearest seed, votes each
// cell onto land or water with an island shape mask, links cells through a
// Delaunay triangulation and finally relaxes depth and moisture across that
// graph before mapping every cell to a biome.
package polymap

import (
	"errors"
	"fmt"
)

const (
	// DefaultIslandFactor controls how far the ring-shaped outer islands sit
	// from the main landmass. 1.0 gives no small islands, 2.0 a lot of them.
	DefaultIslandFactor = 1.07

	DefaultWidth          = 1024
	DefaultHeight         = 1024
	DefaultCells          = 700
	DefaultMoistureSpikes = 15

	// MaxPixels bounds Width*Height for a single run. The ownership grid holds
	// one int per pixel.
	MaxPixels = 1 << 26

	// Unreached marks land depth before the relaxation has found a path to
	// water.
	Unreached = 999.0
)

var (
	// ErrInvalidConfig is returned before a run starts when its parameters
	// cannot describe a map.
	ErrInvalidConfig = errors.New("invalid map configuration")

	// ErrGeometry is returned when the seed points cannot be triangulated.
	ErrGeometry = errors.New("seed points cannot be triangulated")
)

// CellType is the terrain class of one cell.
type CellType uint8

const (
	Water CellType = iota
	// Land is the preliminary majority-vote result; classification turns every
	// Land cell into Coast or Inner.
	Land
	Coast
	Inner
)

func (t CellType) String() string {
	switch t {
	case Water:
		return "water"
	case Land:
		return "land"
	case Coast:
		return "coast"
	case Inner:
		return "inner"
	default:
		return fmt.Sprintf("CellType(%d)", uint8(t))
	}
}

// SeedPoint is the generator of one cell. Its index in World.Seeds is the
// cell's identity.
type SeedPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Config describes one generation run.
type Config struct {
	Width  int
	Height int
	Cells  int

	// Seed drives every random choice of the run. Zero asks the generator to
	// pick one; the chosen value is recorded on the World.
	Seed int64

	IslandFactor float64

	// Shape selects the island mask: "radial" (default) or "perlin".
	Shape string

	MoistureSpikes int

	// Passes is the number of relaxation passes. Zero means one pass per cell.
	Passes int
}

// DefaultConfig returns the classic 1024x1024, 700 cell island.
func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Cells:          DefaultCells,
		IslandFactor:   DefaultIslandFactor,
		Shape:          ShapeRadial,
		MoistureSpikes: DefaultMoistureSpikes,
	}
}

// Validate reports the first parameter that makes the run impossible.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Width > MaxPixels/c.Height:
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidConfig, c.Width, c.Height, MaxPixels)
	case c.Cells < 1:
		return fmt.Errorf("%w: cell count must be at least 1, got %d", ErrInvalidConfig, c.Cells)
	case c.IslandFactor < 1:
		return fmt.Errorf("%w: island factor must be >= 1, got %g", ErrInvalidConfig, c.IslandFactor)
	case c.MoistureSpikes < 0:
		return fmt.Errorf("%w: moisture spikes must not be negative, got %d", ErrInvalidConfig, c.MoistureSpikes)
	case c.Passes < 0:
		return fmt.Errorf("%w: passes must not be negative, got %d", ErrInvalidConfig, c.Passes)
	}
	if _, ok := shapeNames[c.shapeName()]; !ok {
		return fmt.Errorf("%w: unknown shape %q", ErrInvalidConfig, c.Shape)
	}
	return nil
}

func (c Config) shapeName() string {
	if c.Shape == "" {
		return ShapeRadial
	}
	return c.Shape
}

// RelaxationPasses is the number of relaxation passes a run performs. Zero
// means one pass per cell.
func (c Config) RelaxationPasses() int {
	if c.Passes == 0 {
		return c.Cells
	}
	return c.Passes
}

// World is the aggregate every pipeline stage reads from and writes to. Each
// stage owns the fields it fills; later stages only read them.
type World struct {
	Config Config
	Seed   int64

	// Shape parameters drawn for this run. Nil for non-radial shapes.
	Radial *RadialShape

	Seeds []SeedPoint

	// Owner is the row-major ownership grid: Owner[y*Width+x] is a cell index.
	Owner []int

	LandPixels  []int
	WaterPixels []int

	Adjacency *Adjacency

	Types    []CellType
	Depth    []float64
	Moisture []float64
}

// Width of the raster in pixels.
func (w *World) Width() int { return w.Config.Width }

// Height of the raster in pixels.
func (w *World) Height() int { return w.Config.Height }

// CellAt returns the index of the cell owning pixel (x, y).
func (w *World) CellAt(x, y int) int {
	return w.Owner[y*w.Config.Width+x]
}

// BiomeAt returns the biome painted at pixel (x, y).
func (w *World) BiomeAt(x, y int) Biome {
	i := w.CellAt(x, y)
	return BiomeOf(w.Types[i], w.Depth[i], w.Moisture[i])
}

// CellBiome returns the biome of cell i.
func (w *World) CellBiome(i int) Biome {
	return BiomeOf(w.Types[i], w.Depth[i], w.Moisture[i])
}

// Stats summarizes a finished world.
type Stats struct {
	Cells  int            `json:"cells"`
	Edges  int            `json:"edges"`
	Types  map[string]int `json:"types"`
	Biomes map[string]int `json:"biomes"`
}

// Stats counts cells per type and per biome.
func (w *World) Stats() Stats {
	s := Stats{
		Cells:  len(w.Seeds),
		Types:  make(map[string]int),
		Biomes: make(map[string]int),
	}
	if w.Adjacency != nil {
		s.Edges = w.Adjacency.EdgeCount()
	}
	for i := range w.Seeds {
		s.Types[w.Types[i].String()]++
		s.Biomes[w.CellBiome(i).String()]++
	}
	return s
}
