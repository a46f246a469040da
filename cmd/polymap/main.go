// Command polymap generates one polygon island map and writes it as a PNG.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/VoidMesh/polymap/internal/config"
	"github.com/VoidMesh/polymap/internal/logging"
	"github.com/VoidMesh/polymap/internal/polymap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Error("Map generation failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	gen := config.LoadGenerator()
	logLevel := "info"
	logFormat := "text"
	printStats := false

	fs := flag.NewFlagSet("polymap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	gen.Bind(fs)
	fs.StringVar(&logLevel, "log", logLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", logFormat, "log format (text, json, logfmt)")
	fs.BoolVar(&printStats, "stats", printStats, "print cell and biome counts as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := logging.Configure(logging.Options{
		Level:  logLevel,
		Format: logFormat,
		Output: stderr,
	})
	log.SetDefault(logger)

	cfg := polymap.Config{
		Width:          gen.Width,
		Height:         gen.Height,
		Cells:          gen.Cells,
		Seed:           gen.Seed,
		IslandFactor:   gen.IslandFactor,
		Shape:          gen.Shape,
		MoistureSpikes: gen.MoistureSpikes,
		Passes:         gen.Passes,
	}

	world, err := polymap.NewGenerator(cfg, polymap.WithLogger(logger)).Generate()
	if err != nil {
		return err
	}

	if err := polymap.WritePNG(world, gen.OutputPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", gen.OutputPath, err)
	}
	logger.Info("Map written", "path", gen.OutputPath, "seed", world.Seed)

	if printStats {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			Seed int64 `json:"seed"`
			polymap.Stats
		}{world.Seed, world.Stats()}); err != nil {
			return fmt.Errorf("failed to print stats: %w", err)
		}
	}
	return nil
}
