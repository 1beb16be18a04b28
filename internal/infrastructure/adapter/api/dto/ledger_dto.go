package dto

import (
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
)

// EmptyLedgerMessage is shown when there is nothing to display
const EmptyLedgerMessage = "No data found. Add a transaction above."

// LedgerRowResponse is one displayed row with its running totals
type LedgerRowResponse struct {
	TransactionResponse
	TotalGerson string `json:"totalGerson"`
	TotalManeca string `json:"totalManeca"`
}

// LedgerViewResponse is the derived view; an empty store yields only the message
type LedgerViewResponse struct {
	Empty       bool                `json:"empty"`
	Message     string              `json:"message,omitempty"`
	Columns     []string            `json:"columns,omitempty"`
	Rows        []LedgerRowResponse `json:"rows,omitempty"`
	TotalGerson string              `json:"totalGerson,omitempty"`
	TotalManeca string              `json:"totalManeca,omitempty"`
}

// NewLedgerViewResponse walks the view once, in display order
func NewLedgerViewResponse(view *entity.LedgerView) LedgerViewResponse {
	if view == nil || view.Empty() {
		return LedgerViewResponse{
			Empty:   true,
			Message: EmptyLedgerMessage,
		}
	}

	resp := LedgerViewResponse{
		Columns: entity.LedgerColumns,
		Rows:    make([]LedgerRowResponse, 0, view.Len()),
	}

	for _, row := range view.All() {
		resp.Rows = append(resp.Rows, LedgerRowResponse{
			TransactionResponse: NewTransactionResponse(row.Transaction),
			TotalGerson:         entity.FormatAmount(row.TotalGerson),
			TotalManeca:         entity.FormatAmount(row.TotalManeca),
		})
	}

	gerson, maneca := view.Totals()
	resp.TotalGerson = entity.FormatAmount(gerson)
	resp.TotalManeca = entity.FormatAmount(maneca)

	return resp
}
