package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cashflow-dashboard-backend/internal/services/aggregate"
	"cashflow-dashboard-backend/internal/services/classify"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReportHandler(aggregate.New(classify.New(nil)), nil, zerolog.Nop())

	r := gin.New()
	r.POST("/api/report", h.BuildReport)
	return r
}

func TestBuildReport(t *testing.T) {
	body := `{
		"movements": [
			{"date": "2024-03-05T00:00:00Z", "description": "Transferencia recibida De CLIENTE UNO", "amount": "1000", "source": "Santander"}
		],
		"invoices": [],
		"receipts": []
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var rep struct {
		ReportID       string            `json:"report_id"`
		MonthlyHistory []json.RawMessage `json:"monthly_history"`
		Totals         struct {
			Income string `json:"income"`
		} `json:"totals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if rep.ReportID == "" {
		t.Error("report_id missing")
	}
	if len(rep.MonthlyHistory) != 1 {
		t.Errorf("monthly_history: got %d entries, want 1", len(rep.MonthlyHistory))
	}
	if rep.Totals.Income != "1000" {
		t.Errorf("totals.income: got %q, want \"1000\"", rep.Totals.Income)
	}
}

func TestBuildReportRejectsMalformedPayload(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
}
