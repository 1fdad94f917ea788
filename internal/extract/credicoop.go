package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"cashflow-dashboard-backend/internal/models"
)

var (
	// dd/mm  description  amount  balance
	credicoopRowPattern  = regexp.MustCompile(`^(\d{2}/\d{2})\s+(.+?)\s+(-?[\d\.,]+)\s+(-?[\d\.,]+)$`)
	credicoopDatePrefix  = regexp.MustCompile(`^\d{2}/\d{2}`)
	credicoopYearPattern = regexp.MustCompile(`Del (\d{4})`)
)

// Credicoop reads every Credicoop account-summary PDF in dir. Rows carry
// only day/month; the year comes from the statement filename
// ("Del 2024...").
func (e *Extractor) Credicoop(dir string) ([]models.BankMovement, error) {
	files, err := listPDFs(dir)
	if err != nil {
		return nil, err
	}

	var movements []models.BankMovement
	for _, path := range files {
		year := "2020"
		if m := credicoopYearPattern.FindStringSubmatch(filepath.Base(path)); m != nil {
			year = m[1]
		}

		pages, err := pdfLines(path)
		if err != nil {
			e.log.Warn().Err(err).Str("file", path).Msg("skipping Credicoop summary")
			continue
		}
		for _, lines := range pages {
			movements = append(movements, parseCredicoopLines(lines, year)...)
		}
	}
	e.log.Info().Int("count", len(movements)).Str("dir", dir).Msg("Credicoop movements extracted")
	return movements, nil
}

func parseCredicoopLines(lines []string, year string) []models.BankMovement {
	var movements []models.BankMovement

	for i := 0; i < len(lines); i++ {
		m := credicoopRowPattern.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		dayMonth, desc, amountText := m[1], m[2], m[3]

		// Opening balance and page-carry rows are not movements.
		upper := strings.ToUpper(desc)
		if strings.Contains(upper, "SALDO") || strings.Contains(upper, "TRANSPORTE") {
			continue
		}

		date, err := time.Parse("02/01/2006", fmt.Sprintf("%s/%s", dayMonth, year))
		if err != nil {
			continue
		}
		desc = strings.TrimSpace(desc)

		if i+1 < len(lines) {
			next := lines[i+1]
			if !credicoopDatePrefix.MatchString(next) {
				if trimmed := strings.TrimSpace(next); len(trimmed) > 2 && !strings.Contains(next, "Hoja") {
					desc += " " + trimmed
					i++
				}
			}
		}

		movements = append(movements, models.BankMovement{
			Date:        date,
			MonthKey:    models.MonthKey(date),
			Description: desc,
			Amount:      ParseMoney(amountText),
			Source:      "Credicoop",
		})
	}
	return movements
}
