package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation           = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidTransactionID = 4003
	CodeInvalidDate          = 4004
	CodeInvalidRequest       = 4005
	CodeUnauthorized         = 4010
	CodeInvalidCredentials   = 4011
	CodeTransactionNotFound  = 4040
	CodeTooManyRequests      = 4290

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeStorage        = 5030
)

// Base error types
var (
	// ErrValidation is the root of every malformed-input error
	ErrValidation = errors.New("invalid input")

	// ErrInvalidAmount is returned when a monetary field cannot be read as a decimal number
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount format", ErrValidation)

	// ErrInvalidDate is returned when a date field cannot be read as a calendar date
	ErrInvalidDate = fmt.Errorf("%w: invalid date format", ErrValidation)

	// ErrInvalidTransactionID is returned when the transaction ID is not a positive integer
	ErrInvalidTransactionID = fmt.Errorf("%w: transaction ID must be a positive integer", ErrValidation)

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = fmt.Errorf("%w: invalid request", ErrValidation)

	// ErrTransactionNotFound is returned when a single transaction is requested and doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrStorage is the root of every failure reported by the ledger store
	ErrStorage = errors.New("storage error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = fmt.Errorf("%w: database connection error", ErrStorage)

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = fmt.Errorf("%w: database constraint violation", ErrStorage)

	// ErrUnauthorized is returned when a request carries no valid session
	ErrUnauthorized = errors.New("login required")

	// ErrInvalidCredentials is returned when the shared secret does not match
	ErrInvalidCredentials = errors.New("incorrect password")

	// ErrTooManyRequests is returned when login attempts exceed the configured rate
	ErrTooManyRequests = errors.New("too many requests")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidDate):
		return CodeInvalidDate
	case errors.Is(err, ErrInvalidTransactionID):
		return CodeInvalidTransactionID
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrTooManyRequests):
		return CodeTooManyRequests
	case errors.Is(err, ErrStorage):
		return CodeStorage
	default:
		return CodeInternalServer
	}
}

// StorageError represents a failed ledger store operation
type StorageError struct {
	Operation string
	Err       error
}

// Error implements the error interface for StorageError
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports every StorageError as an ErrStorage
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// LogFields returns a map of fields for structured logging
func (e *StorageError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "storage_error",
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": CodeStorage,
	}
}

// NewStorageError wraps err as a failure of the named store operation
func NewStorageError(operation string, err error) error {
	return &StorageError{
		Operation: operation,
		Err:       err,
	}
}

// ValidationError provides detailed information about a field that failed type coercion
type ValidationError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s: %v", e.Value, e.Field, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"value":      e.Value,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewValidationError creates a detailed validation error for a single field
func NewValidationError(field, value string, err error) error {
	return &ValidationError{
		Field: field,
		Value: value,
		Err:   err,
	}
}

// IsStorageError checks if the error came from the ledger store
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}

// IsValidationError checks if the error is caused by malformed input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound)
}

// IsUnauthorizedError checks if the error is related to the access gate
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidCredentials)
}
