package extract

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cashflow-dashboard-backend/internal/models"
)

// MTCN, receiver, date sent, sender, date paid, ARS amount, then the
// origin/destination countries. Western Union dates are US-style
// MM/DD/YYYY.
var wuRowPattern = regexp.MustCompile(`^(\d{9,})\s+(.+?)\s+(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(\d{2}/\d{2}/\d{4})\s+ARS\s+([\d,\.]+)`)

// WesternUnion reads the receipt-summary PDF at path. Every row is an
// incoming payment; the receipt description keeps the MTCN and the sender
// so the reconciliation matcher can see the payer identity.
func (e *Extractor) WesternUnion(path string) ([]models.WireReceipt, error) {
	pages, err := pdfLines(path)
	if err != nil {
		return nil, err
	}

	var receipts []models.WireReceipt
	for _, lines := range pages {
		receipts = append(receipts, parseWesternUnionLines(lines)...)
	}
	e.log.Info().Int("count", len(receipts)).Str("file", path).Msg("Western Union receipts extracted")
	return receipts, nil
}

func parseWesternUnionLines(lines []string) []models.WireReceipt {
	var receipts []models.WireReceipt
	for _, line := range lines {
		m := wuRowPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		mtcn, sender, datePaid, amountText := m[1], m[4], m[5], m[6]

		date, err := time.Parse("01/02/2006", datePaid)
		if err != nil {
			continue
		}
		amount, err := decimal.NewFromString(strings.ReplaceAll(amountText, ",", ""))
		if err != nil {
			continue
		}

		receipts = append(receipts, models.WireReceipt{
			Date:        date,
			MonthKey:    models.MonthKey(date),
			Description: fmt.Sprintf("WU %s - %s", mtcn, strings.TrimSpace(sender)),
			Amount:      amount,
			Source:      "Western Union",
		})
	}
	return receipts
}
