package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/cheque-ledger/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	ConnectionError ErrorType = "connection"
	ConstraintError ErrorType = "constraint"
	LockError       ErrorType = "lock"
	TimeoutError    ErrorType = "timeout"
	SchemaError     ErrorType = "schema"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	switch {
	case c.IsTimeoutError(err):
		return TimeoutError
	case c.IsLockError(err):
		return LockError
	case c.IsConstraintError(err):
		return ConstraintError
	case c.IsSchemaError(err):
		return SchemaError
	case c.IsConnectionError(err):
		return ConnectionError
	}

	return ""
}

// ToStorageError wraps a driver error as a StorageError of the given operation.
// Connection-like failures also match ErrDatabaseConnection, constraint
// failures ErrConstraintViolation.
func (c *ErrorClassifier) ToStorageError(operation string, err error) error {
	if err == nil {
		return nil
	}

	switch c.Classify(err) {
	case ConnectionError, TimeoutError, LockError:
		err = fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	case ConstraintError:
		err = fmt.Errorf("%w: %v", errs.ErrConstraintViolation, err)
	}

	return errs.NewStorageError(operation, err)
}

// IsTimeoutError checks if the statement ran out of time
func (c *ErrorClassifier) IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		strings.Contains(err.Error(), "timeout")
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "SQLITE_BUSY") ||
		strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "could not serialize access")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "network") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "unable to open database") ||
		strings.Contains(msg, "database is closed") ||
		strings.Contains(msg, "EOF")
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "constraint") ||
		strings.Contains(msg, "violates") ||
		strings.Contains(msg, "duplicate key")
}

// IsSchemaError checks if the table or a column is missing
func (c *ErrorClassifier) IsSchemaError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "no such column") ||
		strings.Contains(msg, "does not exist")
}
