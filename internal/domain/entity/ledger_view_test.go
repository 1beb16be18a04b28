package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

func ledgerTx(id uint64, date string, gerson, maneca string) *Transaction {
	return NewTransaction(id, Fields{
		Cheque: "CH",
		Date:   day(date),
		Gerson: decimal.RequireFromString(gerson),
		Maneca: decimal.RequireFromString(maneca),
	})
}

func TestBuildLedgerView(t *testing.T) {
	t.Run("Rows are sorted by date ascending", func(t *testing.T) {
		rows := []*Transaction{
			ledgerTx(1, "2024-03-01", "0", "0"),
			ledgerTx(2, "2024-01-15", "0", "0"),
			ledgerTx(3, "2024-02-10", "0", "0"),
		}

		view := BuildLedgerView(rows)

		var dates []string
		for _, row := range view.All() {
			dates = append(dates, FormatDate(row.Date))
		}
		assert.Equal(t, []string{"2024-01-15", "2024-02-10", "2024-03-01"}, dates)

		// input order is untouched
		assert.Equal(t, uint64(1), rows[0].ID)
	})

	t.Run("Running totals are prefix sums in sorted order", func(t *testing.T) {
		rows := []*Transaction{
			ledgerTx(1, "2024-01-01", "10", "1.5"),
			ledgerTx(2, "2024-01-02", "-5", "-0.5"),
			ledgerTx(3, "2024-01-03", "20", "3"),
		}

		got := BuildLedgerView(rows).Rows()

		require.Len(t, got, 3)
		assert.Equal(t, "10.00", FormatAmount(got[0].TotalGerson))
		assert.Equal(t, "5.00", FormatAmount(got[1].TotalGerson))
		assert.Equal(t, "25.00", FormatAmount(got[2].TotalGerson))
		assert.Equal(t, "1.50", FormatAmount(got[0].TotalManeca))
		assert.Equal(t, "1.00", FormatAmount(got[1].TotalManeca))
		assert.Equal(t, "4.00", FormatAmount(got[2].TotalManeca))
	})

	t.Run("Totals follow the date order, not the retrieval order", func(t *testing.T) {
		rows := []*Transaction{
			ledgerTx(1, "2024-03-01", "20", "0"),
			ledgerTx(2, "2024-01-15", "10", "0"),
			ledgerTx(3, "2024-02-10", "-5", "0"),
		}

		got := BuildLedgerView(rows).Rows()

		assert.Equal(t, []uint64{2, 3, 1}, []uint64{got[0].ID, got[1].ID, got[2].ID})
		assert.Equal(t, "10.00", FormatAmount(got[0].TotalGerson))
		assert.Equal(t, "5.00", FormatAmount(got[1].TotalGerson))
		assert.Equal(t, "25.00", FormatAmount(got[2].TotalGerson))
	})

	t.Run("Ties keep retrieval order", func(t *testing.T) {
		rows := []*Transaction{
			ledgerTx(4, "2024-01-01", "1", "0"),
			ledgerTx(2, "2024-01-01", "2", "0"),
			ledgerTx(9, "2023-12-31", "3", "0"),
		}

		got := BuildLedgerView(rows).Rows()

		assert.Equal(t, []uint64{9, 4, 2}, []uint64{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("Malformed dates sort first", func(t *testing.T) {
		broken := NewTransaction(5, Fields{Cheque: "broken"})
		broken.DateMalformed = true
		rows := []*Transaction{ledgerTx(1, "2024-01-01", "1", "1"), broken}

		got := BuildLedgerView(rows).Rows()

		assert.Equal(t, uint64(5), got[0].ID)
	})

	t.Run("Early stop", func(t *testing.T) {
		rows := []*Transaction{
			ledgerTx(1, "2024-01-01", "1", "0"),
			ledgerTx(2, "2024-01-02", "1", "0"),
		}

		seen := 0
		for range BuildLedgerView(rows).All() {
			seen++
			break
		}
		assert.Equal(t, 1, seen)
	})
}

func TestLedgerViewEmpty(t *testing.T) {
	view := BuildLedgerView(nil)

	assert.True(t, view.Empty())
	assert.Equal(t, 0, view.Len())
	assert.Empty(t, view.Rows())

	gerson, maneca := view.Totals()
	assert.True(t, gerson.IsZero())
	assert.True(t, maneca.IsZero())
}

func TestLedgerViewTotals(t *testing.T) {
	view := BuildLedgerView([]*Transaction{
		ledgerTx(1, "2024-01-01", "10", "-2"),
		ledgerTx(2, "2024-01-02", "-5", "7"),
	})

	gerson, maneca := view.Totals()

	assert.False(t, view.Empty())
	assert.Equal(t, "5.00", FormatAmount(gerson))
	assert.Equal(t, "5.00", FormatAmount(maneca))
}
