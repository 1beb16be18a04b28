package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cheque-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cheque-ledger/mocks/port/core"
	"github.com/amirhossein-jamali/cheque-ledger/mocks/port/persistence"
)

var fixedToday = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

func storedTx(id uint64, date string, amount, gerson, maneca string) *entity.Transaction {
	d, _ := entity.ParseDate(date)
	return entity.NewTransaction(id, entity.Fields{
		Cheque: "CH",
		Date:   d,
		Amount: decimal.RequireFromString(amount),
		Gerson: decimal.RequireFromString(gerson),
		Maneca: decimal.RequireFromString(maneca),
	})
}

func TestService_GetLedgerView(t *testing.T) {
	t.Run("should sort rows and compute running totals", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockRepo.On("ListAll", ctx).Return([]*entity.Transaction{
			storedTx(1, "2024-03-01", "1", "20", "0"),
			storedTx(2, "2024-01-15", "1", "10", "0"),
			storedTx(3, "2024-02-10", "1", "-5", "0"),
		}, nil)
		mockLogger.On("Debug", "Ledger view built", mock.Anything).Return()

		service := NewService(mockRepo, mockTimeProvider, mockLogger)

		// Act
		view, err := service.GetLedgerView(ctx)

		// Assert
		require.NoError(t, err)
		rows := view.Rows()
		require.Len(t, rows, 3)
		assert.Equal(t, []uint64{2, 3, 1}, []uint64{rows[0].ID, rows[1].ID, rows[2].ID})
		assert.Equal(t, "10.00", entity.FormatAmount(rows[0].TotalGerson))
		assert.Equal(t, "5.00", entity.FormatAmount(rows[1].TotalGerson))
		assert.Equal(t, "25.00", entity.FormatAmount(rows[2].TotalGerson))

		mockRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should return empty view when the store has no rows", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockRepo := new(persistence.MockTransactionRepository)
		mockLogger := new(core.MockLogger)

		mockRepo.On("ListAll", ctx).Return([]*entity.Transaction{}, nil)
		mockLogger.On("Debug", "Ledger view built", mock.Anything).Return()

		service := NewService(mockRepo, new(core.MockTimeProvider), mockLogger)

		// Act
		view, err := service.GetLedgerView(ctx)

		// Assert
		require.NoError(t, err)
		assert.True(t, view.Empty())
	})

	t.Run("should propagate storage errors", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockRepo := new(persistence.MockTransactionRepository)
		mockLogger := new(core.MockLogger)

		storageErr := errs.NewStorageError("list", errs.ErrDatabaseConnection)
		mockRepo.On("ListAll", ctx).Return(nil, storageErr)
		mockLogger.On("Error", "Failed to load ledger", mock.Anything).Return()

		service := NewService(mockRepo, new(core.MockTimeProvider), mockLogger)

		// Act
		view, err := service.GetLedgerView(ctx)

		// Assert
		assert.Nil(t, view)
		assert.True(t, errs.IsStorageError(err))
		mockLogger.AssertExpectations(t)
	})
}

func TestService_ListOptions(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(persistence.MockTransactionRepository)
	mockLogger := core.NewPermissiveMockLogger()

	mockRepo.On("ListAll", ctx).Return([]*entity.Transaction{
		storedTx(8, "2024-02-01", "99.5", "0", "0"),
		storedTx(3, "2024-01-01", "1500", "0", "0"),
	}, nil)

	service := NewService(mockRepo, new(core.MockTimeProvider), mockLogger)

	// Act
	options, err := service.ListOptions(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []entity.LedgerOption{
		{ID: 3, Label: "3 - CH (1500.00)"},
		{ID: 8, Label: "8 - CH (99.50)"},
	}, options)
}

func TestService_GetEditForm(t *testing.T) {
	t.Run("should return stored values", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		tx := storedTx(4, "2024-01-15", "10", "1", "2")
		mockRepo.On("GetByID", ctx, uint64(4)).Return(tx, nil)
		mockTimeProvider.On("Today").Return(fixedToday)

		service := NewService(mockRepo, mockTimeProvider, mockLogger)

		// Act
		form, err := service.GetEditForm(ctx, 4)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, uint64(4), form.ID)
		assert.False(t, form.DateFallback)
		assert.Equal(t, "2024-01-15", entity.FormatDate(form.Fields.Date))
	})

	t.Run("should fall back to today for a malformed stored date", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		tx := entity.NewTransaction(5, entity.Fields{Cheque: "broken"})
		tx.DateMalformed = true
		mockRepo.On("GetByID", ctx, uint64(5)).Return(tx, nil)
		mockTimeProvider.On("Today").Return(fixedToday)
		mockLogger.On("Warn", "Stored date unusable, pre-filling with today", mock.Anything).Return()

		service := NewService(mockRepo, mockTimeProvider, mockLogger)

		// Act
		form, err := service.GetEditForm(ctx, 5)

		// Assert
		require.NoError(t, err)
		assert.True(t, form.DateFallback)
		assert.Equal(t, fixedToday, form.Fields.Date)
		assert.Equal(t, "broken", form.Fields.Cheque)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should return not found without logging an error", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockRepo := new(persistence.MockTransactionRepository)
		mockLogger := new(core.MockLogger)

		mockRepo.On("GetByID", ctx, uint64(77)).Return(nil, errs.ErrTransactionNotFound)

		service := NewService(mockRepo, new(core.MockTimeProvider), mockLogger)

		// Act
		form, err := service.GetEditForm(ctx, 77)

		// Assert
		assert.Nil(t, form)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		mockLogger.AssertNotCalled(t, "Error", mock.Anything, mock.Anything)
	})

	t.Run("should reject a zero ID", func(t *testing.T) {
		service := NewService(new(persistence.MockTransactionRepository), new(core.MockTimeProvider), new(core.MockLogger))

		_, err := service.GetEditForm(context.Background(), 0)

		assert.ErrorIs(t, err, errs.ErrInvalidTransactionID)
	})
}

func TestService_CreateTransaction(t *testing.T) {
	t.Run("should coerce input and insert", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Today").Return(fixedToday)
		mockRepo.On("Insert", ctx, mock.MatchedBy(func(f entity.Fields) bool {
			return f.Cheque == " BB 1 " &&
				f.Date.Equal(fixedToday) &&
				f.Amount.Equal(decimal.RequireFromString("100.5")) &&
				f.AmountPaid.IsZero() &&
				f.Gerson.Equal(decimal.NewFromInt(-3))
		})).Return(func(_ context.Context, f entity.Fields) *entity.Transaction {
			return entity.NewTransaction(1, f)
		}, nil)
		mockLogger.On("Info", "Transaction saved", mock.Anything).Return()

		service := NewService(mockRepo, mockTimeProvider, mockLogger)

		// Act
		tx, err := service.CreateTransaction(ctx, usecase.TransactionInput{
			Cheque: " BB 1 ",
			Amount: "100.5",
			Gerson: "-3",
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.ID)
		mockRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should reject non-numeric amounts before touching the store", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Today").Return(fixedToday)
		mockLogger.On("Warn", "Rejected transaction input", mock.Anything).Return()

		service := NewService(mockRepo, mockTimeProvider, mockLogger)

		// Act
		tx, err := service.CreateTransaction(ctx, usecase.TransactionInput{Amount: "ten"})

		// Assert
		assert.Nil(t, tx)
		assert.True(t, errs.IsValidationError(err))
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("should surface storage failures", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Today").Return(fixedToday)
		mockRepo.On("Insert", ctx, mock.Anything).Return(nil, errs.NewStorageError("insert", errors.New("disk full")))
		mockLogger.On("Error", "Failed to save transaction", mock.Anything).Return()

		service := NewService(mockRepo, mockTimeProvider, mockLogger)

		// Act
		_, err := service.CreateTransaction(ctx, usecase.TransactionInput{Cheque: "X"})

		// Assert
		assert.ErrorIs(t, err, errs.ErrStorage)
		mockLogger.AssertExpectations(t)
	})
}

func TestService_UpdateTransaction(t *testing.T) {
	t.Run("should overwrite all fields", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Today").Return(fixedToday)
		mockRepo.On("Update", ctx, uint64(9), mock.MatchedBy(func(f entity.Fields) bool {
			return f.Cheque == "new" && entity.FormatDate(f.Date) == "2024-02-29" && f.Maneca.Equal(decimal.NewFromInt(7))
		})).Return(nil)
		mockLogger.On("Info", "Transaction updated", mock.Anything).Return()

		service := NewService(mockRepo, mockTimeProvider, mockLogger)

		// Act
		err := service.UpdateTransaction(ctx, 9, usecase.TransactionInput{
			Cheque: "new",
			Date:   "2024-02-29",
			Maneca: "7",
		})

		// Assert
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should reject a malformed date", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Today").Return(fixedToday)
		mockLogger.On("Warn", "Rejected transaction input", mock.Anything).Return()

		service := NewService(mockRepo, mockTimeProvider, mockLogger)

		// Act
		err := service.UpdateTransaction(ctx, 9, usecase.TransactionInput{Date: "29/02/2024"})

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidDate)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_DeleteTransaction(t *testing.T) {
	t.Run("should delete the row", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockRepo := new(persistence.MockTransactionRepository)
		mockLogger := new(core.MockLogger)

		mockRepo.On("Delete", ctx, uint64(3)).Return(nil)
		mockLogger.On("Info", "Transaction deleted", mock.Anything).Return()

		service := NewService(mockRepo, new(core.MockTimeProvider), mockLogger)

		// Act
		err := service.DeleteTransaction(ctx, 3)

		// Assert
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should log and return storage errors", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockRepo := new(persistence.MockTransactionRepository)
		mockLogger := new(core.MockLogger)

		mockRepo.On("Delete", ctx, uint64(3)).Return(errs.NewStorageError("delete", errs.ErrDatabaseConnection))
		mockLogger.On("Error", "Failed to delete transaction", mock.Anything).Return()

		service := NewService(mockRepo, new(core.MockTimeProvider), mockLogger)

		// Act
		err := service.DeleteTransaction(ctx, 3)

		// Assert
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		mockLogger.AssertExpectations(t)
	})
}

func TestService_EnsureSchema(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(persistence.MockTransactionRepository)
	mockLogger := new(core.MockLogger)

	mockRepo.On("EnsureSchema", ctx).Return(errs.NewStorageError("ensure_schema", errs.ErrDatabaseConnection))
	mockLogger.On("Error", "Failed to ensure ledger schema", mock.Anything).Return()

	service := NewService(mockRepo, new(core.MockTimeProvider), mockLogger)

	err := service.EnsureSchema(ctx)

	assert.True(t, errs.IsStorageError(err))
	mockLogger.AssertExpectations(t)
}
