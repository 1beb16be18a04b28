package migration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "ledger.db")), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestSchemaManager_EnsureSchema(t *testing.T) {
	t.Run("Creates the table with the ledger columns", func(t *testing.T) {
		db := openTestDB(t)
		manager := NewSchemaManager(db, logger.NewNoopLogger())

		require.NoError(t, manager.EnsureSchema(context.Background()))

		migrator := db.Migrator()
		assert.True(t, migrator.HasTable(&model.Transaction{}))
		for _, column := range append([]string{"id"}, model.Columns...) {
			assert.True(t, migrator.HasColumn(&model.Transaction{}, column), column)
		}
	})

	t.Run("Is idempotent and keeps existing rows", func(t *testing.T) {
		db := openTestDB(t)
		manager := NewSchemaManager(db, logger.NewNoopLogger())
		ctx := context.Background()

		require.NoError(t, manager.EnsureSchema(ctx))
		cheque := "kept"
		require.NoError(t, db.Create(&model.Transaction{Cheque: &cheque}).Error)

		require.NoError(t, manager.EnsureSchema(ctx))

		var count int64
		require.NoError(t, db.Model(&model.Transaction{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Leaves a table created elsewhere untouched", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, db.Exec(`CREATE TABLE transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			cheque TEXT, data TEXT, valor REAL, valor_pago REAL,
			juros REAL, gerson REAL, maneca REAL)`).Error)

		manager := NewSchemaManager(db, logger.NewNoopLogger())

		assert.NoError(t, manager.EnsureSchema(context.Background()))
	})
}
