// Package testutil provides common testing utilities for polymap tests: log
// silencing or capture, and a migrated throwaway SQLite database.
package testutil

import (
	"database/sql"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/polymap/internal/db"
	"github.com/VoidMesh/polymap/internal/logging"
)

// TestConfig holds configuration for test setup
type TestConfig struct {
	// EnableLogCapture routes log output to t.Log instead of discarding it
	EnableLogCapture bool
}

// DefaultTestConfig returns a default test configuration suitable for most tests
func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		EnableLogCapture: false, // Disable by default for cleaner test output
	}
}

// SetupTest initializes the test environment with the provided configuration.
//
// Usage:
//
//	func TestMyFunction(t *testing.T) {
//	    cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
//	    defer cleanup()
//	    // ... test code
//	}
func SetupTest(t *testing.T, config *TestConfig) func() {
	t.Helper()

	originalLogger := logging.Logger

	if config.EnableLogCapture {
		testLogger := log.New(testWriter{t: t})
		testLogger.SetLevel(log.DebugLevel)
		logging.Logger = testLogger
	} else {
		logging.Logger = log.New(io.Discard)
	}

	return func() {
		logging.Logger = originalLogger
	}
}

// testWriter adapts testing.T to implement io.Writer for log output
type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (n int, err error) {
	tw.t.Helper()
	tw.t.Log(string(p))
	return len(p), nil
}

// NewTestDB opens a SQLite database in the test's temp dir and applies every
// migration. The database is closed when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "polymap-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.Migrate(database))
	return database
}
