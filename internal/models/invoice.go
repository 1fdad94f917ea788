package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a sale recognized by the tax authority (ARCA). Credit notes
// carry a negative amount. RecipientName and RecipientCUIT are optional;
// an empty string means the invoice PDF did not expose that field.
type Invoice struct {
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Source        string          `json:"source"`
	MonthKey      string          `json:"month_key"`
	RecipientName string          `json:"recipient_name,omitempty"`
	RecipientCUIT string          `json:"recipient_cuit,omitempty"`
}
