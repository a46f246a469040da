package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/charmbracelet/log"
)

// LoggingQueries wraps the generated Queries struct to add debug logging
type LoggingQueries struct {
	*Queries
}

// NewLoggingQueries creates a new LoggingQueries instance
func NewLoggingQueries(db DBTX) *LoggingQueries {
	return &LoggingQueries{
		Queries: New(db),
	}
}

// WithTx creates a new LoggingQueries with a transaction
func (lq *LoggingQueries) WithTx(tx *sql.Tx) *LoggingQueries {
	return &LoggingQueries{
		Queries: lq.Queries.WithTx(tx),
	}
}

func (lq *LoggingQueries) logQuery(queryName string, start time.Time, err error, args ...interface{}) {
	duration := time.Since(start)

	if err != nil {
		log.Debug("Database query failed",
			"query", queryName,
			"duration", duration,
			"error", err,
			"args", args,
		)
	} else {
		log.Debug("Database query executed",
			"query", queryName,
			"duration", duration,
			"args", args,
		)
	}
}

// CreateMap with logging
func (lq *LoggingQueries) CreateMap(ctx context.Context, arg CreateMapParams) error {
	start := time.Now()
	log.Debug("Executing CreateMap", "map_id", arg.ID, "seed", arg.Seed, "cells", arg.CellCount)

	err := lq.Queries.CreateMap(ctx, arg)
	lq.logQuery("CreateMap", start, err, arg.ID)
	return err
}

// GetMap with logging
func (lq *LoggingQueries) GetMap(ctx context.Context, id string) (Map, error) {
	start := time.Now()
	log.Debug("Executing GetMap", "map_id", id)

	result, err := lq.Queries.GetMap(ctx, id)
	lq.logQuery("GetMap", start, err, id)
	return result, err
}

// ListMaps with logging
func (lq *LoggingQueries) ListMaps(ctx context.Context, arg ListMapsParams) ([]Map, error) {
	start := time.Now()
	log.Debug("Executing ListMaps", "limit", arg.Limit, "offset", arg.Offset)

	result, err := lq.Queries.ListMaps(ctx, arg)
	lq.logQuery("ListMaps", start, err, arg)

	if err == nil {
		log.Debug("ListMaps result", "map_count", len(result))
	}
	return result, err
}

// CountMaps with logging
func (lq *LoggingQueries) CountMaps(ctx context.Context) (int64, error) {
	start := time.Now()

	result, err := lq.Queries.CountMaps(ctx)
	lq.logQuery("CountMaps", start, err)
	return result, err
}

// DeleteMap with logging
func (lq *LoggingQueries) DeleteMap(ctx context.Context, id string) (int64, error) {
	start := time.Now()
	log.Debug("Executing DeleteMap", "map_id", id)

	rows, err := lq.Queries.DeleteMap(ctx, id)
	lq.logQuery("DeleteMap", start, err, id)
	return rows, err
}

// CreateMapCell with logging. Called once per cell, so only failures and the
// timing line are logged.
func (lq *LoggingQueries) CreateMapCell(ctx context.Context, arg CreateMapCellParams) error {
	start := time.Now()

	err := lq.Queries.CreateMapCell(ctx, arg)
	if err != nil {
		lq.logQuery("CreateMapCell", start, err, arg.MapID, arg.CellIndex)
	}
	return err
}

// GetMapCells with logging
func (lq *LoggingQueries) GetMapCells(ctx context.Context, mapID string) ([]MapCell, error) {
	start := time.Now()
	log.Debug("Executing GetMapCells", "map_id", mapID)

	result, err := lq.Queries.GetMapCells(ctx, mapID)
	lq.logQuery("GetMapCells", start, err, mapID)

	if err == nil {
		log.Debug("GetMapCells result", "cell_count", len(result), "map_id", mapID)
	}
	return result, err
}

// DeleteMapCells with logging
func (lq *LoggingQueries) DeleteMapCells(ctx context.Context, mapID string) error {
	start := time.Now()

	err := lq.Queries.DeleteMapCells(ctx, mapID)
	lq.logQuery("DeleteMapCells", start, err, mapID)
	return err
}

// CreateMapImage with logging
func (lq *LoggingQueries) CreateMapImage(ctx context.Context, arg CreateMapImageParams) error {
	start := time.Now()
	log.Debug("Executing CreateMapImage", "map_id", arg.MapID, "bytes", len(arg.Png))

	err := lq.Queries.CreateMapImage(ctx, arg)
	lq.logQuery("CreateMapImage", start, err, arg.MapID)
	return err
}

// GetMapImage with logging
func (lq *LoggingQueries) GetMapImage(ctx context.Context, mapID string) (MapImage, error) {
	start := time.Now()
	log.Debug("Executing GetMapImage", "map_id", mapID)

	result, err := lq.Queries.GetMapImage(ctx, mapID)
	lq.logQuery("GetMapImage", start, err, mapID)
	return result, err
}

// DeleteMapImage with logging
func (lq *LoggingQueries) DeleteMapImage(ctx context.Context, mapID string) error {
	start := time.Now()

	err := lq.Queries.DeleteMapImage(ctx, mapID)
	lq.logQuery("DeleteMapImage", start, err, mapID)
	return err
}
