package ledger

import (
	"strings"
	"time"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cheque-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// Form field names, as used on the wire and in the transactions table
const (
	FieldCheque     = "cheque"
	FieldDate       = "data"
	FieldAmount     = "valor"
	FieldAmountPaid = "valor_pago"
	FieldInterest   = "juros"
	FieldGerson     = "gerson"
	FieldManeca     = "maneca"
)

// InputValidator coerces raw form values into typed transaction fields.
// It performs type coercion only; ranges and signs are not checked.
type InputValidator struct{}

// NewInputValidator creates a new InputValidator
func NewInputValidator() *InputValidator {
	return &InputValidator{}
}

// ToFields converts the form input, defaulting a blank date to today
func (v *InputValidator) ToFields(input usecase.TransactionInput, today time.Time) (entity.Fields, error) {
	date, err := v.coerceDate(input.Date)
	if err != nil {
		return entity.Fields{}, err
	}

	fields := entity.Fields{
		Cheque: input.Cheque,
		Date:   date,
	}

	amounts := []struct {
		field  string
		value  string
		target *decimal.Decimal
	}{
		{FieldAmount, input.Amount, &fields.Amount},
		{FieldAmountPaid, input.AmountPaid, &fields.AmountPaid},
		{FieldInterest, input.Interest, &fields.Interest},
		{FieldGerson, input.Gerson, &fields.Gerson},
		{FieldManeca, input.Maneca, &fields.Maneca},
	}

	for _, a := range amounts {
		value, err := entity.ParseAmount(a.value)
		if err != nil {
			return entity.Fields{}, errs.NewValidationError(a.field, a.value, err)
		}
		*a.target = value
	}

	return fields.WithDefaults(today), nil
}

// ValidateID checks that a transaction ID was supplied
func (v *InputValidator) ValidateID(id uint64) error {
	if id == 0 {
		return errs.ErrInvalidTransactionID
	}
	return nil
}

// coerceDate parses the date field; blank means "use the default"
func (v *InputValidator) coerceDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}

	date, err := entity.ParseDate(value)
	if err != nil {
		return time.Time{}, errs.NewValidationError(FieldDate, value, err)
	}
	return date, nil
}
