package migration

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// SchemaManager creates the ledger table on first start.
// There is a single schema version; existing tables are never altered.
type SchemaManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSchemaManager creates a new schema manager
func NewSchemaManager(db *gorm.DB, logger coreport.Logger) *SchemaManager {
	return &SchemaManager{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the transactions table when it is absent.
// Calling it again is a no-op, including against a table created by another tool.
func (m *SchemaManager) EnsureSchema(ctx context.Context) error {
	migrator := m.db.WithContext(ctx).Migrator()

	if migrator.HasTable(&model.Transaction{}) {
		m.logger.Debug("Ledger table already present", map[string]any{
			"table": model.Transaction{}.TableName(),
		})
		return nil
	}

	m.logger.Info("Creating ledger table", map[string]any{
		"table":   model.Transaction{}.TableName(),
		"columns": model.Columns,
	})

	if err := migrator.CreateTable(&model.Transaction{}); err != nil {
		// Another process may have created it between the check and the create
		if migrator.HasTable(&model.Transaction{}) {
			return nil
		}
		return fmt.Errorf("create table %s: %w", model.Transaction{}.TableName(), err)
	}

	return nil
}
