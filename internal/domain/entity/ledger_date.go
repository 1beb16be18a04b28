package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/cheque-ledger/internal/domain/error"
)

// DateLayout is the layout dates are written to storage and rendered with
const DateLayout = "2006-01-02"

// storedDateLayouts lists every shape a date may have been written in by
// earlier versions of the ledger or by other database drivers.
var storedDateLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate parses a date supplied by the user in the YYYY-MM-DD layout
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s (expected YYYY-MM-DD)", errs.ErrInvalidDate, value)
	}
	return parsed, nil
}

// ParseStoredDate parses a date read back from storage, accepting any of the
// layouts the column may contain. The result is truncated to the calendar day.
func ParseStoredDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range storedDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return truncateToDay(parsed), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: stored value %q", errs.ErrInvalidDate, value)
}

// FormatDate renders a date in the storage layout; the zero date renders empty
func FormatDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayout)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
