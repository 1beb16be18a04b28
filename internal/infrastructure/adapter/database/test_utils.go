package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/database/migration"
	timeprovider "github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for testing with a database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test database manager backed by a sqlite file in
// a temporary directory. TEST_DB_URL points the tests at another database.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider(nil)

	dbURL := os.Getenv("TEST_DB_URL")
	if dbURL == "" {
		dbURL = fmt.Sprintf("sqlite:///%s", filepath.Join(t.TempDir(), "ledger_test.db"))
	}

	config := &Config{
		URL:             dbURL,
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent", // Silent logging in tests by default
		RetryAttempts:   1,        // One attempt for tests to fail fast
		RetryDelay:      0,
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database and closes it when the test ends
func (m *TestDBManager) Connect(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := m.Manager.Connect(context.Background())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	t.Cleanup(func() {
		if err := m.Manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	return db
}

// SetupTestDB recreates the ledger table so each test starts empty
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()

	if err := db.Exec("DROP TABLE IF EXISTS transactions").Error; err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}

	if err := migration.NewSchemaManager(db, m.Logger).EnsureSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}
}

// TruncateAllTables removes every ledger row
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec("DELETE FROM transactions").Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// InsertRaw writes a row bypassing the typed boundary, used to simulate data
// written by other tools
func (m *TestDBManager) InsertRaw(t *testing.T, cheque, data string, valor, gerson, maneca float64) {
	t.Helper()

	err := m.Manager.DB().Exec(
		"INSERT INTO transactions (cheque, data, valor, valor_pago, juros, gerson, maneca) VALUES (?, ?, ?, 0, 0, ?, ?)",
		cheque, data, valor, gerson, maneca,
	).Error
	if err != nil {
		t.Fatalf("Failed to insert raw row: %v", err)
	}
}
