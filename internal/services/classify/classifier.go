package classify

import (
	"strings"

	"github.com/shopspring/decimal"

	"cashflow-dashboard-backend/internal/models"
)

// DefaultOwnMarkers returns the built-in self-identity markers: the
// operator's name variants, the phrasing banks use for same-owner
// transfers, and the operator's CUIT.
func DefaultOwnMarkers() []string {
	return []string{"SELVAGGI", "ESTEBAN", "MISMO TITULAR", "PROPIA", "20433102593"}
}

// Classifier labels bank movements. The marker set decides which movements
// count as transfers between the operator's own accounts.
type Classifier struct {
	ownMarkers []string
}

func New(ownMarkers []string) *Classifier {
	if len(ownMarkers) == 0 {
		ownMarkers = DefaultOwnMarkers()
	}
	upper := make([]string, len(ownMarkers))
	for i, m := range ownMarkers {
		upper[i] = strings.ToUpper(m)
	}
	return &Classifier{ownMarkers: upper}
}

// Classify maps a movement to exactly one category. isOwnTransfer is
// independent of the sign: an outgoing transfer to the operator's other
// account still reports true.
//
// Card statement settlements ("PAGO TARJETA...", "PAGO ... VISA") are a debt
// payment, not a fresh operating cost: the expense was already counted when
// the card was used. "DEBITO" anywhere in the text vetoes that reading,
// since debit-card purchases are direct expenses.
func (c *Classifier) Classify(description string, amount decimal.Decimal, source string) (models.Category, bool) {
	desc := strings.ToUpper(description)

	isOwnTransfer := false
	for _, marker := range c.ownMarkers {
		if strings.Contains(desc, marker) {
			isOwnTransfer = true
			break
		}
	}

	if amount.IsPositive() {
		if isOwnTransfer {
			return models.CategoryOwnTransferIncome, true
		}
		return models.CategorySalesIncome, false
	}

	// Zero falls through here together with the negatives.
	if strings.Contains(desc, "PAGO") && !strings.Contains(desc, "DEBITO") {
		if strings.Contains(desc, "TARJETA") {
			return models.CategoryCardPayment, isOwnTransfer
		}
		if strings.Contains(desc, "VISA") || strings.Contains(desc, "MASTER") || strings.Contains(desc, "AMEX") {
			return models.CategoryCardPayment, isOwnTransfer
		}
	}
	return models.CategoryExpense, isOwnTransfer
}
