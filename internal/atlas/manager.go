// Package atlas generates polygon maps on request and keeps them in the map
// store.
package atlas

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VoidMesh/polymap/internal/config"
	"github.com/VoidMesh/polymap/internal/db"
	"github.com/VoidMesh/polymap/internal/logging"
	"github.com/VoidMesh/polymap/internal/polymap"
)

type Manager struct {
	db       *sql.DB
	queries  *db.LoggingQueries
	defaults config.GeneratorConfig
	options  []polymap.Option
	now      func() time.Time
}

// NewManager builds a manager over an already migrated database. Generator
// options are passed to every run.
func NewManager(database *sql.DB, defaults config.GeneratorConfig, opts ...polymap.Option) *Manager {
	return &Manager{
		db:       database,
		queries:  db.NewLoggingQueries(database),
		defaults: defaults,
		options:  opts,
		now:      time.Now,
	}
}

// Config merges a request with the manager defaults and validates the result.
func (m *Manager) Config(req GenerateRequest) (polymap.Config, error) {
	cfg := polymap.Config{
		Width:          pick(req.Width, m.defaults.Width),
		Height:         pick(req.Height, m.defaults.Height),
		Cells:          pick(req.Cells, m.defaults.Cells),
		Seed:           req.Seed,
		IslandFactor:   req.IslandFactor,
		Shape:          req.Shape,
		MoistureSpikes: m.defaults.MoistureSpikes,
		Passes:         pick(req.Passes, m.defaults.Passes),
	}
	if cfg.Seed == 0 {
		cfg.Seed = m.defaults.Seed
	}
	if cfg.IslandFactor == 0 {
		cfg.IslandFactor = m.defaults.IslandFactor
	}
	if cfg.Shape == "" {
		cfg.Shape = m.defaults.Shape
	}
	if req.MoistureSpikes != nil {
		cfg.MoistureSpikes = *req.MoistureSpikes
	}

	if err := cfg.Validate(); err != nil {
		return polymap.Config{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if m.defaults.MaxPixels > 0 && cfg.Width > m.defaults.MaxPixels/cfg.Height {
		return polymap.Config{}, fmt.Errorf("%w: %dx%d exceeds the %d pixel limit",
			ErrInvalidRequest, cfg.Width, cfg.Height, m.defaults.MaxPixels)
	}
	return cfg, nil
}

func pick(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}

// Generate runs the pipeline for req and stores the map, its cells and the
// rendered PNG in one transaction.
func (m *Manager) Generate(ctx context.Context, req GenerateRequest) (*MapSummary, error) {
	cfg, err := m.Config(req)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger := logging.WithMapID(id)
	start := time.Now()

	world, err := polymap.NewGenerator(cfg, m.options...).Generate()
	if err != nil {
		logger.Error("failed to generate map", "error", err, "seed", cfg.Seed, "cells", cfg.Cells)
		return nil, fmt.Errorf("failed to generate map: %w", err)
	}

	var png bytes.Buffer
	if err := polymap.EncodePNG(world, &png); err != nil {
		return nil, fmt.Errorf("failed to encode map image: %w", err)
	}

	// Generation itself does not watch ctx; a request that timed out or went
	// away while it ran stores nothing.
	if err := ctx.Err(); err != nil {
		logger.Warn("Map discarded, request ended during generation", "error", err, "duration", time.Since(start))
		return nil, fmt.Errorf("map generation outlived its request: %w", err)
	}

	createdAt := m.now().UTC()
	if err := m.store(ctx, id, world, png.Bytes(), createdAt); err != nil {
		logger.Error("failed to store map", "error", err)
		return nil, err
	}

	stats := world.Stats()
	logging.WithDuration("generate_map", time.Since(start)).Info("Map generated",
		"map_id", id,
		"seed", world.Seed,
		"cells", stats.Cells,
		"edges", stats.Edges,
		"png_bytes", png.Len(),
	)

	return &MapSummary{
		ID:             id,
		Seed:           world.Seed,
		Width:          world.Config.Width,
		Height:         world.Config.Height,
		Cells:          world.Config.Cells,
		Shape:          world.Config.Shape,
		IslandFactor:   world.Config.IslandFactor,
		MoistureSpikes: world.Config.MoistureSpikes,
		Passes:         world.Config.RelaxationPasses(),
		Edges:          stats.Edges,
		ShapeParams:    world.Radial,
		CreatedAt:      createdAt,
		Stats:          &stats,
	}, nil
}

func (m *Manager) store(ctx context.Context, id string, world *polymap.World, png []byte, createdAt time.Time) error {
	shapeParams := sql.NullString{}
	if world.Radial != nil {
		raw, err := json.Marshal(world.Radial)
		if err != nil {
			return fmt.Errorf("failed to encode shape params: %w", err)
		}
		shapeParams = sql.NullString{String: string(raw), Valid: true}
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := m.queries.WithTx(tx)

	err = qtx.CreateMap(ctx, db.CreateMapParams{
		ID:             id,
		Seed:           world.Seed,
		Width:          int64(world.Config.Width),
		Height:         int64(world.Config.Height),
		CellCount:      int64(len(world.Seeds)),
		Shape:          world.Config.Shape,
		IslandFactor:   world.Config.IslandFactor,
		MoistureSpikes: int64(world.Config.MoistureSpikes),
		Passes:         int64(world.Config.RelaxationPasses()),
		EdgeCount:      int64(world.Adjacency.EdgeCount()),
		ShapeParams:    shapeParams,
		CreatedAt:      createdAt,
	})
	if err != nil {
		return fmt.Errorf("failed to create map: %w", err)
	}

	for i, seed := range world.Seeds {
		neighbors, err := json.Marshal(world.Adjacency.Neighbors(i))
		if err != nil {
			return fmt.Errorf("failed to encode neighbors of cell %d: %w", i, err)
		}
		err = qtx.CreateMapCell(ctx, db.CreateMapCellParams{
			MapID:     id,
			CellIndex: int64(i),
			X:         int64(seed.X),
			Y:         int64(seed.Y),
			CellType:  world.Types[i].String(),
			Depth:     world.Depth[i],
			Moisture:  world.Moisture[i],
			Biome:     world.CellBiome(i).String(),
			Neighbors: string(neighbors),
		})
		if err != nil {
			return fmt.Errorf("failed to create cell %d: %w", i, err)
		}
	}

	err = qtx.CreateMapImage(ctx, db.CreateMapImageParams{
		MapID:     id,
		Png:       png,
		CreatedAt: createdAt,
	})
	if err != nil {
		return fmt.Errorf("failed to store map image: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit map: %w", err)
	}
	return nil
}

func (m *Manager) Get(ctx context.Context, id string) (*MapSummary, error) {
	row, err := m.queries.GetMap(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	return summaryFromRow(row)
}

// List returns a page of stored maps, newest first. A zero limit means
// DefaultListLimit; larger limits are clamped to MaxListLimit.
func (m *Manager) List(ctx context.Context, limit, offset int) (*MapListResponse, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset must not be negative", ErrInvalidRequest)
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	rows, err := m.queries.ListMaps(ctx, db.ListMapsParams{Limit: int64(limit), Offset: int64(offset)})
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}
	total, err := m.queries.CountMaps(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count maps: %w", err)
	}

	maps := make([]MapSummary, 0, len(rows))
	for _, row := range rows {
		summary, err := summaryFromRow(row)
		if err != nil {
			return nil, err
		}
		maps = append(maps, *summary)
	}

	return &MapListResponse{
		Maps:   maps,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// Cells returns every cell of a stored map ordered by index.
func (m *Manager) Cells(ctx context.Context, id string) ([]CellView, error) {
	if _, err := m.queries.GetMap(ctx, id); err != nil {
		return nil, notFound(err, id)
	}

	rows, err := m.queries.GetMapCells(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get map cells: %w", err)
	}

	cells := make([]CellView, len(rows))
	for i, row := range rows {
		neighbors := []int{}
		if err := json.Unmarshal([]byte(row.Neighbors), &neighbors); err != nil {
			return nil, fmt.Errorf("failed to decode neighbors of cell %d: %w", row.CellIndex, err)
		}
		cells[i] = CellView{
			Index:     int(row.CellIndex),
			X:         int(row.X),
			Y:         int(row.Y),
			Type:      row.CellType,
			Depth:     row.Depth,
			Moisture:  row.Moisture,
			Biome:     row.Biome,
			Neighbors: neighbors,
		}
	}
	return cells, nil
}

// Image returns the stored PNG for a map.
func (m *Manager) Image(ctx context.Context, id string) ([]byte, error) {
	img, err := m.queries.GetMapImage(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	return img.Png, nil
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := m.queries.WithTx(tx)
	if err := qtx.DeleteMapCells(ctx, id); err != nil {
		return fmt.Errorf("failed to delete map cells: %w", err)
	}
	if err := qtx.DeleteMapImage(ctx, id); err != nil {
		return fmt.Errorf("failed to delete map image: %w", err)
	}
	deleted, err := qtx.DeleteMap(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete map: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	logging.WithMapID(id).Info("Map deleted")
	return nil
}

func notFound(err error, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return fmt.Errorf("failed to load map %s: %w", id, err)
}

func summaryFromRow(row db.Map) (*MapSummary, error) {
	summary := &MapSummary{
		ID:             row.ID,
		Seed:           row.Seed,
		Width:          int(row.Width),
		Height:         int(row.Height),
		Cells:          int(row.CellCount),
		Shape:          row.Shape,
		IslandFactor:   row.IslandFactor,
		MoistureSpikes: int(row.MoistureSpikes),
		Passes:         int(row.Passes),
		Edges:          int(row.EdgeCount),
		CreatedAt:      row.CreatedAt,
	}
	if row.ShapeParams.Valid {
		var params polymap.RadialShape
		if err := json.Unmarshal([]byte(row.ShapeParams.String), &params); err != nil {
			return nil, fmt.Errorf("failed to decode shape params of map %s: %w", row.ID, err)
		}
		summary.ShapeParams = &params
	}
	return summary, nil
}
