package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WireReceipt is one money-transfer receipt (Western Union). Always income;
// Description carries the sender identity ("WU <mtcn> - <sender>").
type WireReceipt struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source"`
	MonthKey    string          `json:"month_key"`
}
