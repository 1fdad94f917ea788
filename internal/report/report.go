// Package report serializes an aggregation result for its consumers: raw
// JSON for API clients, and a self-contained HTML dashboard that renders
// the same JSON client-side.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"cashflow-dashboard-backend/internal/models"
)

// dataMarker is the placeholder in the dashboard template where the report
// JSON gets injected.
const dataMarker = "{{ data_json | safe }}"

// RenderHTML injects the report into the template. encoding/json escapes
// angle brackets by default, so a hostile transaction description cannot
// close the script tag.
func RenderHTML(r *models.Report, template []byte) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	payload := string(data)

	html := string(template)
	if !strings.Contains(html, dataMarker) {
		return nil, fmt.Errorf("template has no %q marker", dataMarker)
	}
	return []byte(strings.ReplaceAll(html, dataMarker, payload)), nil
}

// WriteHTML renders the dashboard from the template file and writes it out.
func WriteHTML(r *models.Report, templatePath, outputPath string) error {
	template, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}
	html, err := RenderHTML(r, template)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, html, 0o644)
}

// WriteJSON writes the raw report next to the dashboard for programmatic
// consumers.
func WriteJSON(r *models.Report, outputPath string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(outputPath, data, 0o644)
}
