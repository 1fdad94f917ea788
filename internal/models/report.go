package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlySummary holds the running totals of one "YYYY-MM" bucket. ARCA is
// the invoiced figure for tax review; it never feeds Result. OwnTransfers
// and CreditCardPayments are tracked but excluded from Income/Expenses.
type MonthlySummary struct {
	Month              string          `json:"month"`
	ARCA               decimal.Decimal `json:"arca"`
	Income             decimal.Decimal `json:"income"`
	Expenses           decimal.Decimal `json:"expenses"`
	OwnTransfers       decimal.Decimal `json:"own_transfers"`
	CreditCardPayments decimal.Decimal `json:"credit_card_payments"`
	Result             decimal.Decimal `json:"result"`
}

// Totals sums arca/income/expenses/result across all months. Own transfers
// and card payments are deliberately left out.
type Totals struct {
	ARCA     decimal.Decimal `json:"arca"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Result   decimal.Decimal `json:"result"`
}

// TransactionDetail is one record inside a counterparty or concept group.
type TransactionDetail struct {
	Date         time.Time       `json:"date"`
	OriginalDesc string          `json:"original_desc"`
	Amount       decimal.Decimal `json:"amount"`
	Source       string          `json:"source"`
}

// ClientTransaction is a TransactionDetail annotated by the matcher.
type ClientTransaction struct {
	TransactionDetail
	IsInvoiced bool `json:"is_invoiced"`
}

// PotentialClient groups the income transactions of one counterparty. Name
// is the raw, non-normalized description the transactions arrived with;
// DisplayName is a best-effort human label extracted from it.
type PotentialClient struct {
	Name         string              `json:"name"`
	DisplayName  string              `json:"display_name"`
	Count        int                 `json:"count"`
	Total        decimal.Decimal     `json:"total"`
	Transactions []ClientTransaction `json:"details"`
}

// RecurringConcept groups real operating expenses under one normalized
// merchant label.
type RecurringConcept struct {
	Name    string              `json:"name"`
	Count   int                 `json:"count"`
	Total   decimal.Decimal     `json:"total"`
	Details []TransactionDetail `json:"details"`
}

// Report is the full output of one aggregation run. The presentation layer
// serializes it as-is.
type Report struct {
	ReportID          uuid.UUID           `json:"report_id"`
	GeneratedAt       time.Time           `json:"generated_at"`
	MonthlyHistory    []*MonthlySummary   `json:"monthly_history"`
	PotentialClients  []*PotentialClient  `json:"potential_clients"`
	RecurringExpenses []*RecurringConcept `json:"recurring_expenses"`
	Totals            Totals              `json:"totals"`
}
