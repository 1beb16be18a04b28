package model

import (
	"github.com/shopspring/decimal"
)

// Transaction represents the database model for ledger rows.
// Every value column is nullable; tables created by earlier tools may hold NULLs.
type Transaction struct {
	ID        uint64              `gorm:"column:id;primaryKey;autoIncrement"`
	Cheque    *string             `gorm:"column:cheque;type:text"`
	Data      StoredDate          `gorm:"column:data;type:text"`
	Valor     decimal.NullDecimal `gorm:"column:valor;type:numeric"`
	ValorPago decimal.NullDecimal `gorm:"column:valor_pago;type:numeric"`
	Juros     decimal.NullDecimal `gorm:"column:juros;type:numeric"`
	Gerson    decimal.NullDecimal `gorm:"column:gerson;type:numeric"`
	Maneca    decimal.NullDecimal `gorm:"column:maneca;type:numeric"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// Columns lists the value columns in their display order
var Columns = []string{"cheque", "data", "valor", "valor_pago", "juros", "gerson", "maneca"}
