package atlas

import (
	"errors"
	"fmt"
	"time"

	"github.com/VoidMesh/polymap/internal/polymap"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

var (
	ErrInvalidRequest = errors.New("invalid map request")
	ErrNotFound       = errors.New("map not found")
)

// GenerateRequest describes a map to build. Zero fields fall back to the
// configured generator defaults; MoistureSpikes is a pointer because zero
// spikes is a legitimate choice.
type GenerateRequest struct {
	Width          int     `json:"width,omitempty"`
	Height         int     `json:"height,omitempty"`
	Cells          int     `json:"cells,omitempty"`
	Seed           int64   `json:"seed,omitempty"`
	IslandFactor   float64 `json:"island_factor,omitempty"`
	Shape          string  `json:"shape,omitempty"`
	MoistureSpikes *int    `json:"moisture_spikes,omitempty"`
	Passes         int     `json:"passes,omitempty"`
}

type MapSummary struct {
	ID             string               `json:"id"`
	Seed           int64                `json:"seed"`
	Width          int                  `json:"width"`
	Height         int                  `json:"height"`
	Cells          int                  `json:"cells"`
	Shape          string               `json:"shape"`
	IslandFactor   float64              `json:"island_factor"`
	MoistureSpikes int                  `json:"moisture_spikes"`
	Passes         int                  `json:"passes"`
	Edges          int                  `json:"edges"`
	ShapeParams    *polymap.RadialShape `json:"shape_params,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	Stats          *polymap.Stats       `json:"stats,omitempty"`
}

type MapListResponse struct {
	Maps   []MapSummary `json:"maps"`
	Total  int64        `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

type CellView struct {
	Index     int     `json:"index"`
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Type      string  `json:"type"`
	Depth     float64 `json:"depth"`
	Moisture  float64 `json:"moisture"`
	Biome     string  `json:"biome"`
	Neighbors []int   `json:"neighbors"`
}

type BiomeView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BiomeTable lists every biome with its display color as #RRGGBB.
func BiomeTable() []BiomeView {
	biomes := polymap.Biomes()
	views := make([]BiomeView, len(biomes))
	for i, b := range biomes {
		c := b.Color()
		views[i] = BiomeView{
			ID:    int(b),
			Name:  b.String(),
			Color: fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B),
		}
	}
	return views
}
