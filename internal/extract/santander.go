package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cashflow-dashboard-backend/internal/models"
)

var (
	santanderDatePattern = regexp.MustCompile(`^(\d{2}/\d{2}/\d{2})\s+(.*)`)
	leadingDatePattern   = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}`)
	leadingRefPattern    = regexp.MustCompile(`^\d{6,}\s+`)
	dollarAmountPattern  = regexp.MustCompile(`-?\$\s?[\d\.,]+`)
	bareAmountPattern    = regexp.MustCompile(`-?[\d\.,]+`)
)

// cardSectionHeaders mark the start of the credit/debit card consumption
// sections of a Santander summary. Card consumptions are itemized debt, not
// account movements; capturing stops there.
var cardSectionHeaders = []string{
	"Tarjeta Santander", "Consumos del mes", "Tarjeta de débito", "Tarjeta de crédito",
}

// Santander reads every account-summary PDF in dir. Santander spreads one
// movement over several lines (date and amount first, sender detail after),
// so rows are accumulated until the next dated line.
func (e *Extractor) Santander(dir string) ([]models.BankMovement, error) {
	files, err := listPDFs(dir)
	if err != nil {
		return nil, err
	}

	var movements []models.BankMovement
	for _, path := range files {
		pages, err := pdfLines(path)
		if err != nil {
			e.log.Warn().Err(err).Str("file", path).Msg("skipping Santander summary")
			continue
		}
		movements = append(movements, parseSantanderPages(pages)...)
	}
	e.log.Info().Int("count", len(movements)).Str("dir", dir).Msg("Santander movements extracted")
	return movements, nil
}

type santanderTx struct {
	date      time.Time
	descParts []string
	amount    *decimal.Decimal
}

func parseSantanderPages(pages [][]string) []models.BankMovement {
	var movements []models.BankMovement

	// Files that are plain movement extracts have no section headers at
	// all, so capture is on until a card section shows up.
	capturing := true

	for _, lines := range pages {
		var current *santanderTx

		for _, line := range lines {
			clean := strings.TrimSpace(line)

			if strings.Contains(clean, "Movimientos en pesos") || strings.Contains(clean, "Movimientos en dólares") {
				capturing = true
				continue
			}
			if hasCardHeader(clean) {
				capturing = false
				continue
			}
			if !capturing {
				continue
			}
			if strings.Contains(clean, "Saldo Inicial") {
				continue
			}

			if m := santanderDatePattern.FindStringSubmatch(line); m != nil {
				if current != nil {
					movements = append(movements, finalizeSantanderTx(current))
				}
				date, err := time.Parse("02/01/06", m[1])
				if err != nil {
					current = nil
					continue
				}
				current = &santanderTx{date: date}
				parseSantanderLine(line, m[2], current)
				continue
			}

			if current != nil {
				// Continuation line: sender detail, reference noise.
				parseSantanderLine(line, line, current)
			}
		}

		if current != nil {
			movements = append(movements, finalizeSantanderTx(current))
		}
	}
	return movements
}

func hasCardHeader(line string) bool {
	for _, h := range cardSectionHeaders {
		if strings.Contains(line, h) {
			return true
		}
	}
	return false
}

// parseSantanderLine pulls amounts and descriptive text out of one line.
// Amounts with an explicit "$" take priority; that filters out voucher
// numbers and loose CUITs. The movement column comes before the balance
// column, so the first dollar amount is the movement.
func parseSantanderLine(fullLine, textContent string, tx *santanderTx) {
	cleanLine := strings.TrimSpace(leadingDatePattern.ReplaceAllString(fullLine, ""))

	moneyMatches := dollarAmountPattern.FindAllString(cleanLine, -1)
	if len(moneyMatches) == 0 {
		moneyMatches = bareAmountPattern.FindAllString(cleanLine, -1)
	}

	cleanText := strings.TrimSpace(textContent)
	for _, amt := range moneyMatches {
		cleanText = strings.TrimSpace(strings.ReplaceAll(cleanText, amt, ""))
	}

	if tx.amount == nil && len(moneyMatches) > 0 {
		for _, m := range moneyMatches {
			if !strings.Contains(m, "$") {
				continue
			}
			val := ParseMoney(m)
			if !val.IsZero() || len(moneyMatches) == 1 {
				tx.amount = &val
				break
			}
		}
		if tx.amount == nil {
			val := ParseMoney(moneyMatches[0])
			tx.amount = &val
		}
	}

	cleanText = leadingRefPattern.ReplaceAllString(cleanText, "")
	if cleanText != "" {
		tx.descParts = append(tx.descParts, cleanText)
	}
}

func finalizeSantanderTx(tx *santanderTx) models.BankMovement {
	amount := decimal.Zero
	if tx.amount != nil {
		amount = *tx.amount
	}
	return models.BankMovement{
		Date:        tx.date,
		MonthKey:    models.MonthKey(tx.date),
		Description: strings.Join(tx.descParts, " "),
		Amount:      amount,
		Source:      "Santander",
	}
}
