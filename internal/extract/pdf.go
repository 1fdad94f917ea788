// Package extract turns source-specific statement and invoice PDFs into the
// typed records the aggregation engine consumes. Each adapter knows one
// institution's layout; all of them parse line-by-line text so the parsing
// rules are testable without PDF fixtures.
package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

// Extractor bundles the source adapters with a logger. Per-file failures
// are logged and skipped; one unreadable statement must not sink the batch.
type Extractor struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Extractor {
	return &Extractor{log: log}
}

// pdfLines extracts the text of a PDF as one slice of lines per page,
// preserving row layout. The pdf library panics on some malformed files,
// so the call is fenced with a recover.
func pdfLines(path string) (pages [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader crashed on %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("%s: pdf has no pages", path)
	}

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, lines)
	}
	return pages, nil
}
