package polymap

import (
	"fmt"
	"time"

	"github.com/VoidMesh/polymap/internal/logging"
	"github.com/charmbracelet/log"
)

// Generator runs the full pipeline for one configuration.
type Generator struct {
	cfg          Config
	triangulator Triangulator
	shape        Shape
	logger       *log.Logger
	now          func() time.Time
}

// Option customizes a Generator.
type Option func(*Generator)

// WithTriangulator replaces the Delaunay triangulation backend.
func WithTriangulator(t Triangulator) Option {
	return func(g *Generator) { g.triangulator = t }
}

// WithShape forces a specific island mask instead of drawing one from the run
// seed.
func WithShape(s Shape) Option {
	return func(g *Generator) { g.shape = s }
}

// WithLogger sets the logger stages report to.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator creates a generator; Generate validates the config.
func NewGenerator(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:          cfg,
		triangulator: DelaunayTriangulator{},
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logging.WithComponent("polymap")
	}
	return g
}

// Generate runs every stage in order and returns the finished world. A run
// either completes or fails as a whole; no partial world is returned.
func (g *Generator) Generate() (*World, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	cfg := g.cfg
	cfg.Shape = cfg.shapeName()
	seed := cfg.Seed
	if seed == 0 {
		seed = g.now().UnixNano()
	}

	logger := g.logger.With("seed", seed, "cells", cfg.Cells, "width", cfg.Width, "height", cfg.Height)
	logger.Debug("Starting map generation", "shape", cfg.Shape)
	start := time.Now()

	rng := NewRNG(seed)
	w := &World{Config: cfg, Seed: seed}

	w.Seeds = SamplePoints(rng, cfg.Width, cfg.Height, cfg.Cells)

	shape := g.shape
	if shape == nil {
		shape = NewShape(cfg.Shape, rng, cfg.IslandFactor)
	}
	if radial, ok := shape.(*RadialShape); ok {
		w.Radial = radial
	}

	stage := time.Now()
	Rasterize(w, shape)
	logger.Debug("Rasterized ownership grid", "duration", time.Since(stage))

	AssignTypes(w)
	SprinkleMoisture(w, rng, cfg.MoistureSpikes)

	stage = time.Now()
	adj, err := BuildAdjacency(w.Seeds, g.triangulator)
	if err != nil {
		logger.Error("Failed to build adjacency", "error", err)
		return nil, fmt.Errorf("failed to build adjacency: %w", err)
	}
	w.Adjacency = adj
	logger.Debug("Built adjacency graph", "edges", adj.EdgeCount(), "duration", time.Since(stage))

	stage = time.Now()
	Classify(w, cfg.RelaxationPasses())
	logger.Debug("Classified terrain", "passes", cfg.RelaxationPasses(), "duration", time.Since(stage))

	logger.Info("Map generation completed", "duration", time.Since(start))
	return w, nil
}

// Generate is a shorthand for NewGenerator(cfg).Generate().
func Generate(cfg Config) (*World, error) {
	return NewGenerator(cfg).Generate()
}
