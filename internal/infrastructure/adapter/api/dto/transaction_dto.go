package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/usecase"
)

// SavedMessage is returned after a successful create or update
const SavedMessage = "Saved!"

// FormValue accepts a JSON string, number or null and keeps its text.
// Coercion to a typed value happens in the use case.
type FormValue string

// UnmarshalJSON implements json.Unmarshaler
func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a number or string, got %s", data)
	}
	*v = FormValue(n.String())
	return nil
}

// TransactionRequest is the body of the create and edit panels
type TransactionRequest struct {
	Cheque    FormValue `json:"cheque"`
	Data      FormValue `json:"data"`
	Valor     FormValue `json:"valor"`
	ValorPago FormValue `json:"valor_pago"`
	Juros     FormValue `json:"juros"`
	Gerson    FormValue `json:"gerson"`
	Maneca    FormValue `json:"maneca"`
}

// ToInput converts the request into use case input
func (r TransactionRequest) ToInput() usecase.TransactionInput {
	return usecase.TransactionInput{
		Cheque:     string(r.Cheque),
		Date:       string(r.Data),
		Amount:     string(r.Valor),
		AmountPaid: string(r.ValorPago),
		Interest:   string(r.Juros),
		Gerson:     string(r.Gerson),
		Maneca:     string(r.Maneca),
	}
}

// TransactionResponse is one stored transaction
type TransactionResponse struct {
	ID            uint64 `json:"id"`
	Cheque        string `json:"cheque"`
	Data          string `json:"data"`
	Valor         string `json:"valor"`
	ValorPago     string `json:"valor_pago"`
	Juros         string `json:"juros"`
	Gerson        string `json:"gerson"`
	Maneca        string `json:"maneca"`
	DateMalformed bool   `json:"dateMalformed,omitempty"`
}

// NewTransactionResponse maps an entity to its wire form
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	resp := fieldsResponse(tx.ID, tx.Fields)
	resp.DateMalformed = tx.DateMalformed
	return resp
}

func fieldsResponse(id uint64, f entity.Fields) TransactionResponse {
	return TransactionResponse{
		ID:        id,
		Cheque:    f.Cheque,
		Data:      entity.FormatDate(f.Date),
		Valor:     entity.FormatAmount(f.Amount),
		ValorPago: entity.FormatAmount(f.AmountPaid),
		Juros:     entity.FormatAmount(f.Interest),
		Gerson:    entity.FormatAmount(f.Gerson),
		Maneca:    entity.FormatAmount(f.Maneca),
	}
}

// SaveResponse acknowledges a create or update
type SaveResponse struct {
	Message     string               `json:"message"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

// EditFormResponse pre-fills the edit panel
type EditFormResponse struct {
	TransactionResponse
	DateFallback bool `json:"dateFallback"`
}

// NewEditFormResponse maps the use case pre-fill values
func NewEditFormResponse(form *usecase.EditForm) EditFormResponse {
	return EditFormResponse{
		TransactionResponse: fieldsResponse(form.ID, form.Fields),
		DateFallback:        form.DateFallback,
	}
}

// OptionResponse is one entry of the select-then-edit panel
type OptionResponse struct {
	ID    uint64 `json:"id"`
	Label string `json:"label"`
}

// NewOptionResponses maps the select options
func NewOptionResponses(options []entity.LedgerOption) []OptionResponse {
	resp := make([]OptionResponse, 0, len(options))
	for _, option := range options {
		resp = append(resp, OptionResponse{ID: option.ID, Label: option.Label})
	}
	return resp
}
