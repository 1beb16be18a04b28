package ledger

import (
	"context"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cheque-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/usecase"
)

// Service implements the ledger business logic on top of the ledger store
type Service struct {
	repo         persistence.TransactionRepository
	validator    *InputValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new ledger service
func NewService(
	repo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		repo:         repo,
		validator:    NewInputValidator(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// EnsureSchema prepares the transactions table
func (s *Service) EnsureSchema(ctx context.Context) error {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		s.logger.Error("Failed to ensure ledger schema", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// GetLedgerView reloads the full row set and derives the running balances.
// Nothing is cached; every call sorts and sums from scratch.
func (s *Service) GetLedgerView(ctx context.Context) (*entity.LedgerView, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("Failed to load ledger", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	view := entity.BuildLedgerView(rows)

	s.logger.Debug("Ledger view built", map[string]any{
		"rows": view.Len(),
	})

	return view, nil
}

// ListOptions returns one select option per transaction, in date order
func (s *Service) ListOptions(ctx context.Context) ([]entity.LedgerOption, error) {
	view, err := s.GetLedgerView(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]entity.LedgerOption, 0, view.Len())
	for _, row := range view.All() {
		options = append(options, row.ToOption())
	}
	return options, nil
}

// GetEditForm returns the pre-fill values for a transaction.
// A stored date that cannot be parsed is replaced with today.
func (s *Service) GetEditForm(ctx context.Context, id uint64) (*usecase.EditForm, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return nil, err
	}

	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errs.IsNotFoundError(err) {
			s.logger.Error("Failed to load transaction for edit", map[string]any{
				"transaction_id": id,
				"error":          err.Error(),
			})
		}
		return nil, err
	}

	fields, fallback := tx.PrefillFields(s.timeProvider.Today())
	if fallback {
		s.logger.Warn("Stored date unusable, pre-filling with today", map[string]any{
			"transaction_id": id,
		})
	}

	return &usecase.EditForm{
		ID:           tx.ID,
		Fields:       fields,
		DateFallback: fallback,
	}, nil
}

// CreateTransaction coerces the form input and inserts a new row
func (s *Service) CreateTransaction(ctx context.Context, input usecase.TransactionInput) (*entity.Transaction, error) {
	fields, err := s.validator.ToFields(input, s.timeProvider.Today())
	if err != nil {
		s.logger.Warn("Rejected transaction input", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	tx, err := s.repo.Insert(ctx, fields)
	if err != nil {
		s.logger.Error("Failed to save transaction", map[string]any{
			"cheque": fields.Cheque,
			"error":  err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction saved", map[string]any{
		"transaction_id": tx.ID,
		"cheque":         tx.Cheque,
		"data":           entity.FormatDate(tx.Date),
	})

	return tx, nil
}

// UpdateTransaction overwrites all seven value fields of the row.
// An unknown ID is silently accepted, matching the store.
func (s *Service) UpdateTransaction(ctx context.Context, id uint64, input usecase.TransactionInput) error {
	if err := s.validator.ValidateID(id); err != nil {
		return err
	}

	fields, err := s.validator.ToFields(input, s.timeProvider.Today())
	if err != nil {
		s.logger.Warn("Rejected transaction input", map[string]any{
			"transaction_id": id,
			"error":          err.Error(),
		})
		return err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		s.logger.Error("Failed to update transaction", map[string]any{
			"transaction_id": id,
			"error":          err.Error(),
		})
		return err
	}

	s.logger.Info("Transaction updated", map[string]any{
		"transaction_id": id,
	})
	return nil
}

// DeleteTransaction removes the row; an unknown ID is silently accepted
func (s *Service) DeleteTransaction(ctx context.Context, id uint64) error {
	if err := s.validator.ValidateID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete transaction", map[string]any{
			"transaction_id": id,
			"error":          err.Error(),
		})
		return err
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"transaction_id": id,
	})
	return nil
}
