package polymap

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	ShapeRadial = "radial"
	ShapePerlin = "perlin"
)

var shapeNames = map[string]struct{}{
	ShapeRadial: {},
	ShapePerlin: {},
}

// Shape decides whether a point normalized to [-1,1]² lies on land.
type Shape interface {
	IsLand(x, y float64) bool
}

// NewShape builds the named shape, drawing its parameters from rng.
func NewShape(name string, rng *RNG, islandFactor float64) Shape {
	switch name {
	case ShapePerlin:
		return NewPerlinShape(rng.Int64())
	default:
		return NewRadialShape(rng, islandFactor)
	}
}

// RadialShape is an island made of sine bumps around the center, with an
// optional ring of smaller islands and a notch cut at DipAngle.
type RadialShape struct {
	Bumps        int     `json:"bumps"`
	StartAngle   float64 `json:"start_angle"`
	DipAngle     float64 `json:"dip_angle"`
	DipWidth     float64 `json:"dip_width"`
	IslandFactor float64 `json:"island_factor"`
}

// NewRadialShape draws bump count, angles and dip width from rng. The draw
// order is fixed so a seed always produces the same island.
func NewRadialShape(rng *RNG, islandFactor float64) *RadialShape {
	return &RadialShape{
		Bumps:        rng.IntRange(1, 6),
		StartAngle:   rng.Angle(),
		DipAngle:     rng.Angle(),
		DipWidth:     rng.Uniform(0.2, 0.7),
		IslandFactor: islandFactor,
	}
}

func (s *RadialShape) IsLand(x, y float64) bool {
	angle := math.Atan2(y, x)
	length := 0.5 * (math.Max(math.Abs(x), math.Abs(y)) + math.Hypot(x, y))

	r1, r2 := s.radii(angle)
	return length < r1 || (length > r1*s.IslandFactor && length < r2)
}

func (s *RadialShape) radii(angle float64) (r1, r2 float64) {
	if s.inDip(angle) {
		return 0.2, 0.2
	}
	b := float64(s.Bumps)
	r1 = 0.5 + 0.4*math.Sin(s.StartAngle+b*angle+math.Cos((b+3)*angle))
	r2 = 0.7 + 0.2*math.Sin(s.StartAngle+b*angle+math.Sin((b+2)*angle))
	return r1, r2
}

// inDip compares angle against DipAngle in both directions around the circle.
func (s *RadialShape) inDip(angle float64) bool {
	d := angle - s.DipAngle
	return math.Abs(d) < s.DipWidth ||
		math.Abs(d+2*math.Pi) < s.DipWidth ||
		math.Abs(d-2*math.Pi) < s.DipWidth
}

// PerlinShape carves the island from Perlin noise, with land getting rarer
// towards the edges of the map.
type PerlinShape struct {
	noise *perlin.Perlin
	scale float64
}

// NewPerlinShape creates perlin noise with alpha=2, beta=2, n=3, sampled at a
// scale that fits a few blobs on the map.
func NewPerlinShape(seed int64) *PerlinShape {
	return &PerlinShape{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		scale: 2.5,
	}
}

func (s *PerlinShape) IsLand(x, y float64) bool {
	c := (s.noise.Noise2D(x*s.scale, y*s.scale) + 1) / 2
	l := x*x + y*y
	return c > 0.3+0.3*l
}

// normalize maps pixel (px, py) into [-1,1]² around the map center.
func normalize(px, py, width, height int) (float64, float64) {
	hw := float64(width) / 2
	hh := float64(height) / 2
	return (float64(px) - hw) / hw, (float64(py) - hh) / hh
}
