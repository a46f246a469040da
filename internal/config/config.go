package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logging   LoggingConfig
	Generator GeneratorConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	RequestTimeout  time.Duration
}

type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

// GeneratorConfig holds the defaults used when a map request leaves a field
// unset. Seed 0 means "pick one at generation time".
type GeneratorConfig struct {
	Width          int
	Height         int
	Cells          int
	Seed           int64
	IslandFactor   float64
	Shape          string
	MoistureSpikes int
	Passes         int
	MaxPixels      int
	OutputPath     string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnvStr("PORT", "8080"),
			ReadTimeout:     getEnvDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 5*time.Minute),
			IdleTimeout:     getEnvDuration("IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
			RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 5*time.Minute),
		},
		Database: DatabaseConfig{
			Path:            getEnvStr("DB_PATH", "./polymap.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 1),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Logging: LoggingConfig{
			Level:  getEnvStr("LOG_LEVEL", "info"),
			Format: getEnvStr("LOG_FORMAT", "text"),
		},
		Generator: LoadGenerator(),
	}
}

// LoadGenerator reads only the generator section. The CLI uses it as the base
// that flags override.
func LoadGenerator() GeneratorConfig {
	return GeneratorConfig{
		Width:          getEnvInt("MAP_WIDTH", 1024),
		Height:         getEnvInt("MAP_HEIGHT", 1024),
		Cells:          getEnvInt("MAP_CELLS", 700),
		Seed:           getEnvInt64("MAP_SEED", 0),
		IslandFactor:   getEnvFloat("MAP_ISLAND_FACTOR", 1.07),
		Shape:          getEnvStr("MAP_SHAPE", "radial"),
		MoistureSpikes: getEnvInt("MAP_MOISTURE_SPIKES", 15),
		Passes:         getEnvInt("MAP_PASSES", 0),
		MaxPixels:      getEnvInt("MAP_MAX_PIXELS", 2048*2048),
		OutputPath:     getEnvStr("MAP_OUTPUT", "polygon.png"),
	}
}

// Bind attaches the generator settings to fs, using the current values as
// flag defaults.
func (g *GeneratorConfig) Bind(fs *flag.FlagSet) {
	fs.IntVar(&g.Width, "width", g.Width, "image width in pixels")
	fs.IntVar(&g.Height, "height", g.Height, "image height in pixels")
	fs.IntVar(&g.Cells, "cells", g.Cells, "number of polygon cells")
	fs.Int64Var(&g.Seed, "seed", g.Seed, "random seed (0 picks one from the clock)")
	fs.Float64Var(&g.IslandFactor, "island-factor", g.IslandFactor, "gap between the inner and outer island rings")
	fs.StringVar(&g.Shape, "shape", g.Shape, "island shape: radial or perlin")
	fs.IntVar(&g.MoistureSpikes, "spikes", g.MoistureSpikes, "number of random moisture spikes")
	fs.IntVar(&g.Passes, "passes", g.Passes, "relaxation passes (0 means one per cell)")
	fs.StringVar(&g.OutputPath, "o", g.OutputPath, "output PNG path")
}

func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
