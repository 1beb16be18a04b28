package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Fields holds the seven user-supplied values of a ledger transaction
type Fields struct {
	Cheque     string          // Free-form label of the financial instrument
	Date       time.Time       // Transaction date (calendar day)
	Amount     decimal.Decimal // Original amount due (valor)
	AmountPaid decimal.Decimal // Amount actually paid (valor pago)
	Interest   decimal.Decimal // Interest amount (juros)
	Gerson     decimal.Decimal // Signed value attributed to Gerson
	Maneca     decimal.Decimal // Signed value attributed to Maneca
}

// WithDefaults fills the date with today when it was left empty.
// Numeric fields already default to zero.
func (f Fields) WithDefaults(today time.Time) Fields {
	if f.Date.IsZero() {
		f.Date = truncateToDay(today)
	}
	return f
}

// Transaction represents one row of the ledger
type Transaction struct {
	ID uint64 // System-assigned identifier, immutable once assigned
	Fields
	// DateMalformed is set when the stored date could not be parsed back
	DateMalformed bool
}

// NewTransaction creates a transaction entity for an already persisted row
func NewTransaction(id uint64, fields Fields) *Transaction {
	return &Transaction{
		ID:     id,
		Fields: fields,
	}
}

// LedgerOption is a structured choice in the select-then-edit panel
type LedgerOption struct {
	ID    uint64
	Label string
}

// OptionLabel returns the human-readable "id - cheque (amount)" label
func (t *Transaction) OptionLabel() string {
	return fmt.Sprintf("%d - %s (%s)", t.ID, t.Cheque, FormatAmount(t.Amount))
}

// ToOption converts the transaction to a select option carrying its ID directly
func (t *Transaction) ToOption() LedgerOption {
	return LedgerOption{
		ID:    t.ID,
		Label: t.OptionLabel(),
	}
}

// PrefillFields returns the values used to pre-fill the edit form.
// A malformed or missing date falls back to today; the boolean reports the fallback.
func (t *Transaction) PrefillFields(today time.Time) (Fields, bool) {
	fields := t.Fields
	if t.DateMalformed || fields.Date.IsZero() {
		fields.Date = truncateToDay(today)
		return fields, true
	}
	return fields, false
}
