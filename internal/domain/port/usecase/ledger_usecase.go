package usecase

import (
	"context"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
)

// TransactionInput carries the raw values of the create/edit form.
// Every field is coerced at the typed boundary; blank numerics become zero
// and a blank date becomes today.
type TransactionInput struct {
	Cheque     string
	Date       string
	Amount     string
	AmountPaid string
	Interest   string
	Gerson     string
	Maneca     string
}

// EditForm holds the values used to pre-fill the edit panel
type EditForm struct {
	ID     uint64
	Fields entity.Fields
	// DateFallback is set when the stored date was unusable and today was substituted
	DateFallback bool
}

// LedgerUseCase defines the ledger business operations
type LedgerUseCase interface {
	// EnsureSchema prepares storage; called once on startup
	EnsureSchema(ctx context.Context) error

	// GetLedgerView loads every row and derives the running balances
	GetLedgerView(ctx context.Context) (*entity.LedgerView, error)

	// ListOptions returns the choices of the select-then-edit panel
	ListOptions(ctx context.Context) ([]entity.LedgerOption, error)

	// GetEditForm returns the pre-fill values for the given transaction
	GetEditForm(ctx context.Context, id uint64) (*EditForm, error)

	// CreateTransaction coerces the input and inserts a new row
	CreateTransaction(ctx context.Context, input TransactionInput) (*entity.Transaction, error)

	// UpdateTransaction coerces the input and overwrites the row; unknown IDs are a no-op
	UpdateTransaction(ctx context.Context, id uint64, input TransactionInput) error

	// DeleteTransaction removes the row; unknown IDs are a no-op
	DeleteTransaction(ctx context.Context, id uint64) error
}
