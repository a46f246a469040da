package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/VoidMesh/polymap/internal/api"
	"github.com/VoidMesh/polymap/internal/atlas"
	"github.com/VoidMesh/polymap/internal/config"
	"github.com/VoidMesh/polymap/internal/db"
	"github.com/VoidMesh/polymap/internal/logging"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logging
	setupLogging(cfg.Logging)
	log.Debug("Configuration loaded", "server_port", cfg.Server.Port, "db_path", cfg.Database.Path, "log_level", cfg.Logging.Level)

	// Initialize database
	database, err := initializeDatabase(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}
	defer database.Close()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		log.Fatal("Failed to run database migrations", "error", err)
	}
	log.Info("Database migrations completed")

	mapManager := atlas.NewManager(database, cfg.Generator)
	log.Debug("Map manager initialized",
		"default_width", cfg.Generator.Width,
		"default_height", cfg.Generator.Height,
		"default_cells", cfg.Generator.Cells,
		"max_pixels", cfg.Generator.MaxPixels,
	)

	handler := api.NewHandler(mapManager)
	router := api.SetupRoutes(handler, cfg.Server.RequestTimeout)

	// Create HTTP server
	log.Debug("Creating HTTP server", "port", cfg.Server.Port, "read_timeout", cfg.Server.ReadTimeout, "write_timeout", cfg.Server.WriteTimeout, "idle_timeout", cfg.Server.IdleTimeout)
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Starting polymap server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", "error", err)
		}
		log.Debug("Server stopped listening")
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("Shutting down server...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	} else {
		log.Debug("Server shutdown completed gracefully")
	}

	log.Info("Server exited")
}

// setupLogging configures the package logger and makes it the default so
// code logging through the log package follows the same level and format.
func setupLogging(cfg config.LoggingConfig) {
	logger := logging.Configure(logging.Options{
		Level:  cfg.Level,
		Format: cfg.Format,
		Prefix: "polymap",
	})
	log.SetDefault(logger)
}

func initializeDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	database, err := db.Open(cfg.Path)
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	log.Debug("Configuring database connection pool", "max_open_conns", cfg.MaxOpenConns, "max_idle_conns", cfg.MaxIdleConns, "conn_max_lifetime", cfg.ConnMaxLifetime)
	database.SetMaxOpenConns(cfg.MaxOpenConns)
	database.SetMaxIdleConns(cfg.MaxIdleConns)
	database.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	log.Info("Database initialized", "path", cfg.Path)
	return database, nil
}
