package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/cheque-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		date, err := ParseDate("2024-03-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("Invalid dates", func(t *testing.T) {
		for _, input := range []string{"", "01/03/2024", "2024-13-01", "yesterday"} {
			t.Run(input, func(t *testing.T) {
				_, err := ParseDate(input)
				assert.ErrorIs(t, err, errs.ErrInvalidDate)
			})
		}
	})
}

func TestParseStoredDate(t *testing.T) {
	expected := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	testCases := []string{
		"2024-01-15",
		"2024-01-15 00:00:00",
		"2024-01-15 13:45:10.123456",
		"2024-01-15T13:45:10",
		"2024-01-15T13:45:10Z",
		" 2024-01-15 ",
	}

	for _, input := range testCases {
		t.Run(input, func(t *testing.T) {
			date, err := ParseStoredDate(input)
			require.NoError(t, err)
			assert.Equal(t, expected, date)
		})
	}

	t.Run("Malformed stored value", func(t *testing.T) {
		_, err := ParseStoredDate("15 de janeiro")
		assert.ErrorIs(t, err, errs.ErrInvalidDate)
	})
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-02-10", FormatDate(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDate(time.Time{}))
}
