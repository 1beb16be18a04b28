package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cheque-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/model"
)

// Store operation names, as reported in StorageError
const (
	OpEnsureSchema = "ensure_schema"
	OpListAll      = "list_all"
	OpGetByID      = "get_by_id"
	OpInsert       = "insert"
	OpUpdate       = "update"
	OpDelete       = "delete"
)

// TransactionRepository implements the ledger store using GORM.
// Every method issues a single statement bounded by the query timeout.
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	timeProvider    coreport.TimeProvider
	queryTimeout    time.Duration
	errorClassifier *ErrorClassifier
	metrics         *database.MetricsCollector
	schema          *migration.SchemaManager
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(
	db *gorm.DB,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	queryTimeout time.Duration,
	metrics *database.MetricsCollector,
) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		timeProvider:    timeProvider,
		queryTimeout:    queryTimeout,
		errorClassifier: NewErrorClassifier(),
		metrics:         metrics,
		schema:          migration.NewSchemaManager(db, logger),
	}
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// EnsureSchema creates the transactions table when absent
func (r *TransactionRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.run(ctx, OpEnsureSchema, func(ctx context.Context) (int64, error) {
		return 0, r.schema.EnsureSchema(ctx)
	})
	return err
}

// ListAll returns every row ordered by ID, so equal dates keep insertion order
func (r *TransactionRepository) ListAll(ctx context.Context) ([]*entity.Transaction, error) {
	var models []model.Transaction

	_, err := r.run(ctx, OpListAll, func(ctx context.Context) (int64, error) {
		result := r.db.WithContext(ctx).Order("id").Find(&models)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}

	r.logger.Debug("Ledger rows loaded", map[string]any{
		"rows": len(transactions),
	})

	return transactions, nil
}

// GetByID retrieves a single row
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction

	_, err := r.run(ctx, OpGetByID, func(ctx context.Context) (int64, error) {
		result := r.db.WithContext(ctx).Where("id = ?", id).Take(&transactionModel)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, err
	}

	return r.modelToEntity(&transactionModel), nil
}

// Insert appends one row and returns it with the assigned ID
func (r *TransactionRepository) Insert(ctx context.Context, fields entity.Fields) (*entity.Transaction, error) {
	transactionModel := r.fieldsToModel(fields)

	_, err := r.run(ctx, OpInsert, func(ctx context.Context) (int64, error) {
		result := r.db.WithContext(ctx).Create(&transactionModel)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Transaction row inserted", map[string]any{
		"transaction_id": transactionModel.ID,
	})

	return entity.NewTransaction(transactionModel.ID, fields), nil
}

// Update overwrites all seven value columns; an unknown ID affects nothing
func (r *TransactionRepository) Update(ctx context.Context, id uint64, fields entity.Fields) error {
	transactionModel := r.fieldsToModel(fields)

	rows, err := r.run(ctx, OpUpdate, func(ctx context.Context) (int64, error) {
		result := r.db.WithContext(ctx).Model(&model.Transaction{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"cheque":     transactionModel.Cheque,
				"data":       transactionModel.Data,
				"valor":      transactionModel.Valor,
				"valor_pago": transactionModel.ValorPago,
				"juros":      transactionModel.Juros,
				"gerson":     transactionModel.Gerson,
				"maneca":     transactionModel.Maneca,
			})
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return err
	}

	r.logger.Debug("Transaction row updated", map[string]any{
		"transaction_id": id,
		"rows_affected":  rows,
	})
	return nil
}

// Delete removes the row; an unknown ID affects nothing
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) error {
	rows, err := r.run(ctx, OpDelete, func(ctx context.Context) (int64, error) {
		result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Transaction{})
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return err
	}

	r.logger.Debug("Transaction row deleted", map[string]any{
		"transaction_id": id,
		"rows_affected":  rows,
	})
	return nil
}

// run bounds the statement by the query timeout, measures it and maps its error
func (r *TransactionRepository) run(ctx context.Context, operation string, fn func(ctx context.Context) (int64, error)) (int64, error) {
	if r.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = r.timeProvider.WithTimeout(ctx, coreport.Duration(r.queryTimeout))
		defer cancel()
	}

	var (
		rows int64
		err  error
	)
	if r.metrics != nil {
		var metrics *database.QueryMetrics
		metrics, err = r.metrics.MeasureQuery(ctx, operation, fn)
		rows = metrics.RowsAffected
	} else {
		rows, err = fn(ctx)
	}

	if err == nil {
		return rows, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	storageErr := r.errorClassifier.ToStorageError(operation, err)
	r.logger.Error("Ledger store operation failed", map[string]any{
		"operation":  operation,
		"error_type": string(r.errorClassifier.Classify(err)),
		"error":      err.Error(),
	})
	return 0, storageErr
}

// fieldsToModel converts typed fields into column values
func (r *TransactionRepository) fieldsToModel(fields entity.Fields) model.Transaction {
	cheque := fields.Cheque
	return model.Transaction{
		Cheque:    &cheque,
		Data:      model.NewStoredDate(entity.FormatDate(fields.Date)),
		Valor:     nullDecimal(fields.Amount),
		ValorPago: nullDecimal(fields.AmountPaid),
		Juros:     nullDecimal(fields.Interest),
		Gerson:    nullDecimal(fields.Gerson),
		Maneca:    nullDecimal(fields.Maneca),
	}
}

// modelToEntity converts a row into an entity.
// NULL numerics read as zero; an unusable date reads as the zero date and flags the row.
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	fields := entity.Fields{
		Amount:     m.Valor.Decimal,
		AmountPaid: m.ValorPago.Decimal,
		Interest:   m.Juros.Decimal,
		Gerson:     m.Gerson.Decimal,
		Maneca:     m.Maneca.Decimal,
	}
	if m.Cheque != nil {
		fields.Cheque = *m.Cheque
	}

	transaction := entity.NewTransaction(m.ID, fields)

	if !m.Data.Valid || m.Data.Raw == "" {
		transaction.DateMalformed = true
		return transaction
	}

	date, err := entity.ParseStoredDate(m.Data.Raw)
	if err != nil {
		r.logger.Warn("Stored date could not be parsed", map[string]any{
			"transaction_id": m.ID,
			"data":           m.Data.Raw,
		})
		transaction.DateMalformed = true
		return transaction
	}

	transaction.Date = date
	return transaction
}

func nullDecimal(value decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: value, Valid: true}
}
