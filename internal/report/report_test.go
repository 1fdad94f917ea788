package report

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cashflow-dashboard-backend/internal/models"
)

func sampleReport() *models.Report {
	return &models.Report{
		ReportID:    uuid.New(),
		GeneratedAt: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
		MonthlyHistory: []*models.MonthlySummary{
			{Month: "2024-03", Income: decimal.NewFromInt(1000), Result: decimal.NewFromInt(1000)},
		},
		PotentialClients: []*models.PotentialClient{
			{Name: "</script><script>alert(1)</script>", DisplayName: "CLIENTE", Count: 1, Total: decimal.NewFromInt(1000)},
		},
		Totals: models.Totals{Income: decimal.NewFromInt(1000), Result: decimal.NewFromInt(1000)},
	}
}

func TestRenderHTML(t *testing.T) {
	template := []byte("const REPORT_DATA = {{ data_json | safe }};")

	html, err := RenderHTML(sampleReport(), template)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}

	out := string(html)
	if strings.Contains(out, "{{ data_json | safe }}") {
		t.Error("marker was not replaced")
	}
	if !strings.Contains(out, `"2024-03"`) {
		t.Error("report data missing from the output")
	}
	// The hostile client name must not be able to break out of the page.
	if strings.Contains(out, "</script>") {
		t.Error("angle brackets in report data were not escaped")
	}
}

func TestRenderHTMLMissingMarker(t *testing.T) {
	if _, err := RenderHTML(sampleReport(), []byte("<html></html>")); err == nil {
		t.Fatal("expected an error for a template without the data marker")
	}
}
