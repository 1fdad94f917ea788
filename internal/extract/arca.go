package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"cashflow-dashboard-backend/internal/models"
)

var (
	arcaDatePattern   = regexp.MustCompile(`Fecha de Emisión:\s*(\d{2}/\d{2}/\d{4})`)
	arcaAmountPattern = regexp.MustCompile(`Importe Total:\s*\$\s*([\d\.,]+)`)
	arcaCUITPattern   = regexp.MustCompile(`CUIT:\s*(\d{2}-\d{8}-\d)`)
	arcaNamePattern   = regexp.MustCompile(`Apellido y Nombre / Razón Social:\s*(.+)`)
)

// ARCAInvoices reads every issued-invoice PDF in dir. Credit notes (type 13
// documents, "_013_" in the filename, or "NOTA DE CRÉDITO" in the body)
// negate the amount.
func (e *Extractor) ARCAInvoices(dir string) ([]models.Invoice, error) {
	files, err := listPDFs(dir)
	if err != nil {
		return nil, err
	}

	var invoices []models.Invoice
	for _, path := range files {
		inv, err := e.parseARCAFile(path)
		if err != nil {
			e.log.Warn().Err(err).Str("file", path).Msg("skipping ARCA invoice")
			continue
		}
		invoices = append(invoices, inv)
	}
	e.log.Info().Int("count", len(invoices)).Str("dir", dir).Msg("ARCA invoices extracted")
	return invoices, nil
}

func (e *Extractor) parseARCAFile(path string) (models.Invoice, error) {
	pages, err := pdfLines(path)
	if err != nil {
		return models.Invoice{}, err
	}
	var sb strings.Builder
	for _, lines := range pages {
		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteString("\n")
	}
	return parseARCAText(sb.String(), filepath.Base(path))
}

func parseARCAText(text, filename string) (models.Invoice, error) {
	dateMatch := arcaDatePattern.FindStringSubmatch(text)
	amountMatch := arcaAmountPattern.FindStringSubmatch(text)
	if dateMatch == nil || amountMatch == nil {
		return models.Invoice{}, fmt.Errorf("%s: emission date or total not found", filename)
	}

	date, err := time.Parse("02/01/2006", dateMatch[1])
	if err != nil {
		return models.Invoice{}, fmt.Errorf("%s: bad emission date: %v", filename, err)
	}
	amount := ParseMoney(amountMatch[1])

	docLabel := "FC"
	if strings.Contains(strings.ToUpper(text), "NOTA DE CRÉDITO") || strings.Contains(filename, "_013_") {
		docLabel = "NC"
		amount = amount.Abs().Neg()
	}

	inv := models.Invoice{
		Date:        date,
		MonthKey:    models.MonthKey(date),
		Description: fmt.Sprintf("ARCA %s %s", docLabel, filename),
		Amount:      amount,
		Source:      "ARCA",
	}
	if m := arcaCUITPattern.FindStringSubmatch(text); m != nil {
		inv.RecipientCUIT = m[1]
	}
	if m := arcaNamePattern.FindStringSubmatch(text); m != nil {
		inv.RecipientName = strings.TrimSpace(m[1])
	}
	return inv, nil
}

// listPDFs returns the PDF files of a directory, sorted by name so the
// invoice pool construction order is reproducible across runs.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
