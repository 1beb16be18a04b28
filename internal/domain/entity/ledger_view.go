package entity

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// LedgerColumns is the display order of the ledger view
var LedgerColumns = []string{
	"cheque", "data", "valor", "valor_pago", "juros", "gerson", "maneca", "Total Gerson", "Total Maneca",
}

// LedgerRow is a transaction augmented with the running balances of both parties
type LedgerRow struct {
	*Transaction
	TotalGerson decimal.Decimal
	TotalManeca decimal.Decimal
}

// LedgerView is the display-ready ledger: rows sorted by date ascending
type LedgerView struct {
	rows []*Transaction
}

// BuildLedgerView sorts rows by date ascending. The sort is stable so rows
// sharing a date keep their retrieval order. The input slice is not modified.
func BuildLedgerView(rows []*Transaction) *LedgerView {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b *Transaction) int {
		return a.Date.Compare(b.Date)
	})
	return &LedgerView{rows: sorted}
}

// Empty reports the "no data" condition
func (v *LedgerView) Empty() bool {
	return len(v.rows) == 0
}

// Len returns the number of rows in the view
func (v *LedgerView) Len() int {
	return len(v.rows)
}

// All yields every row with its running totals. The prefix sums are computed
// while iterating, so stopping early costs nothing for the remaining rows.
func (v *LedgerView) All() iter.Seq2[int, LedgerRow] {
	return func(yield func(int, LedgerRow) bool) {
		totalGerson := decimal.Zero
		totalManeca := decimal.Zero
		for i, tx := range v.rows {
			totalGerson = totalGerson.Add(tx.Gerson)
			totalManeca = totalManeca.Add(tx.Maneca)
			if !yield(i, LedgerRow{
				Transaction: tx,
				TotalGerson: totalGerson,
				TotalManeca: totalManeca,
			}) {
				return
			}
		}
	}
}

// Rows materializes the view
func (v *LedgerView) Rows() []LedgerRow {
	rows := make([]LedgerRow, 0, len(v.rows))
	for _, row := range v.All() {
		rows = append(rows, row)
	}
	return rows
}

// Totals returns the final running balances, zero for an empty view
func (v *LedgerView) Totals() (gerson, maneca decimal.Decimal) {
	gerson, maneca = decimal.Zero, decimal.Zero
	for _, tx := range v.rows {
		gerson = gerson.Add(tx.Gerson)
		maneca = maneca.Add(tx.Maneca)
	}
	return gerson, maneca
}
