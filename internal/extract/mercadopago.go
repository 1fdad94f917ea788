package extract

import (
	"regexp"
	"strings"
	"time"

	"cashflow-dashboard-backend/internal/models"
)

var (
	mpDatePattern = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4})`)
	// Movement and balance are the last two amounts on the row.
	mpAmountPairPattern = regexp.MustCompile(`(-?\$?\s?[\d\.,]+)\s+(-?\$?\s?[\d\.,]+)$`)
	mpLeadingIDPattern  = regexp.MustCompile(`^\s*\d+\s+`)
)

// MercadoPago reads every Mercado Pago account-summary PDF in dir. Rows
// start with a dd-mm-yyyy date and end with the movement/balance amount
// pair; the sender name often wraps to the following line.
func (e *Extractor) MercadoPago(dir string) ([]models.BankMovement, error) {
	files, err := listPDFs(dir)
	if err != nil {
		return nil, err
	}

	var movements []models.BankMovement
	for _, path := range files {
		pages, err := pdfLines(path)
		if err != nil {
			e.log.Warn().Err(err).Str("file", path).Msg("skipping Mercado Pago summary")
			continue
		}
		for _, lines := range pages {
			movements = append(movements, parseMercadoPagoLines(lines)...)
		}
	}
	e.log.Info().Int("count", len(movements)).Str("dir", dir).Msg("Mercado Pago movements extracted")
	return movements, nil
}

func parseMercadoPagoLines(lines []string) []models.BankMovement {
	var movements []models.BankMovement

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		// Cancelled payments net out to nothing.
		if strings.Contains(line, "Pago cancelado") {
			continue
		}

		dateMatch := mpDatePattern.FindStringSubmatch(line)
		amountMatch := mpAmountPairPattern.FindStringSubmatch(line)
		if dateMatch == nil || amountMatch == nil {
			continue
		}

		date, err := time.Parse("02-01-2006", dateMatch[1])
		if err != nil {
			continue
		}
		amount := ParseMoney(amountMatch[1])

		desc := strings.TrimSpace(strings.ReplaceAll(line[len(dateMatch[1]):], amountMatch[0], ""))
		desc = mpLeadingIDPattern.ReplaceAllString(desc, "")

		// A following line without a date prefix is the rest of this row,
		// usually the counterparty name.
		if i+1 < len(lines) {
			next := lines[i+1]
			if !mpDatePattern.MatchString(next) {
				if trimmed := strings.TrimSpace(next); len(trimmed) > 2 && !strings.Contains(next, "Página") {
					desc += " " + trimmed
					i++
				}
			}
		}

		movements = append(movements, models.BankMovement{
			Date:        date,
			MonthKey:    models.MonthKey(date),
			Description: desc,
			Amount:      amount,
			Source:      "MercadoPago",
		})
	}
	return movements
}
