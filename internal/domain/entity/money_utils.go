package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/cheque-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MoneyUtils contains utility functions for handling monetary values

// DisplayDecimalPlaces defines how many decimal places money amounts are rendered with
const DisplayDecimalPlaces = 2

// ParseAmount coerces a user-supplied string into a decimal amount.
// Blank input is the zero amount. Signed values are accepted, since the party
// columns carry signed balances; only "." is recognised as decimal separator.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, nil
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}

	return value, nil
}

// FormatAmount renders an amount with exactly two decimal places
// For example:
// - 10 becomes "10.00"
// - -5.5 becomes "-5.50"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayDecimalPlaces)
}
