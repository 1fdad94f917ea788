package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the spending/income label attached to a bank movement.
type Category string

const (
	CategoryOwnTransferIncome Category = "Ingreso (Transf. Propia)"
	CategorySalesIncome       Category = "Ingreso (Ventas/Terceros)"
	CategoryCardPayment       Category = "Pago Tarjeta / Crédito"
	CategoryExpense           Category = "Egreso (Gasto)"
	CategoryOther             Category = "Otro"
)

// BankMovement is one row of an account statement. Amount keeps the sign
// from the statement: positive for credits, negative for debits. Zero
// amounts are valid.
type BankMovement struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source"`
	MonthKey    string          `json:"month_key"`
}

// MonthKey derives the "YYYY-MM" aggregation bucket for a date.
func MonthKey(date time.Time) string {
	return date.Format("2006-01")
}
