package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// StoredDate is the raw content of the data column.
// Drivers may hand back text, bytes or, for date-typed columns, a time.Time.
type StoredDate struct {
	Raw   string
	Valid bool
}

// NewStoredDate wraps a formatted date for writing
func NewStoredDate(raw string) StoredDate {
	return StoredDate{Raw: raw, Valid: true}
}

// Scan implements sql.Scanner
func (d *StoredDate) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = StoredDate{}
	case string:
		*d = NewStoredDate(v)
	case []byte:
		*d = NewStoredDate(string(v))
	case time.Time:
		*d = NewStoredDate(v.Format(time.RFC3339))
	default:
		*d = NewStoredDate(fmt.Sprint(v))
	}
	return nil
}

// Value implements driver.Valuer
func (d StoredDate) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Raw, nil
}
