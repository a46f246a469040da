package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var Logger *log.Logger

// LogLevel represents available log levels
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Options controls how the package logger is built.
type Options struct {
	Level  string
	Format string // "json", "logfmt" or "text"
	Prefix string
	Output io.Writer
}

// InitLogger initializes the global logger with configuration from environment variables
func InitLogger() {
	Configure(Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
	})
}

// Configure replaces the global logger using explicit options. It is what the
// binaries call after loading their config.
func Configure(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	Logger = log.New(out)

	level := parseLevel(opts.Level)
	setLogLevel(Logger, level)

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "json":
		Logger.SetFormatter(log.JSONFormatter)
	case "logfmt":
		Logger.SetFormatter(log.LogfmtFormatter)
	default:
		Logger.SetFormatter(log.TextFormatter)
		Logger.SetReportCaller(true)
	}
	Logger.SetReportTimestamp(true)

	if opts.Prefix != "" {
		Logger.SetPrefix(opts.Prefix)
	}

	Logger.Debug("Logger initialized successfully", "level", level)
	return Logger
}

// parseLevel maps a LOG_LEVEL style string onto a LogLevel
func parseLevel(raw string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// setLogLevel configures the logger with the specified level
func setLogLevel(logger *log.Logger, level LogLevel) {
	switch level {
	case DebugLevel:
		logger.SetLevel(log.DebugLevel)
	case InfoLevel:
		logger.SetLevel(log.InfoLevel)
	case WarnLevel:
		logger.SetLevel(log.WarnLevel)
	case ErrorLevel:
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// GetLogger returns the global logger instance
func GetLogger() *log.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}

// WithFields creates a logger with contextual fields
func WithFields(fields ...interface{}) *log.Logger {
	return GetLogger().With(fields...)
}

// WithMapID creates a logger with map_id context
func WithMapID(mapID string) *log.Logger {
	return WithFields("map_id", mapID)
}

// WithComponent creates a logger tagged with the emitting component
func WithComponent(name string) *log.Logger {
	return WithFields("component", name)
}

// WithDuration creates a logger tagged with an operation and how long it took
func WithDuration(operation string, duration time.Duration) *log.Logger {
	return WithFields("operation", operation, "duration", duration)
}
