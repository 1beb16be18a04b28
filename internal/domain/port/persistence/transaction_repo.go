package persistence

import (
	"context"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
)

// TransactionRepository defines the ledger store operations.
// Each call runs exactly one statement; nothing spans more than one call.
type TransactionRepository interface {
	// EnsureSchema creates the transactions table if it does not exist.
	// Safe to call on every startup; an existing table is left untouched.
	//
	// Possible errors:
	// - StorageError: If the statement or connection fails
	EnsureSchema(ctx context.Context) error

	// ListAll returns every row of the ledger
	//
	// Possible errors:
	// - StorageError: If the connection cannot be established
	ListAll(ctx context.Context) ([]*entity.Transaction, error)

	// GetByID retrieves a single row, used to pre-fill the edit form
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no row has the given ID
	// - StorageError: If the connection cannot be established
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// Insert appends one row and returns it with its system-assigned ID
	//
	// Possible errors:
	// - StorageError: On constraint violation or connection failure
	Insert(ctx context.Context, fields entity.Fields) (*entity.Transaction, error)

	// Update overwrites all seven value fields of the row with the given ID.
	// An unknown ID affects zero rows and is not an error.
	//
	// Possible errors:
	// - StorageError: If the statement or connection fails
	Update(ctx context.Context, id uint64, fields entity.Fields) error

	// Delete removes the row with the given ID.
	// An unknown ID affects zero rows and is not an error.
	//
	// Possible errors:
	// - StorageError: If the statement or connection fails
	Delete(ctx context.Context, id uint64) error
}
