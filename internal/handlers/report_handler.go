package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"cashflow-dashboard-backend/internal/extract"
	"cashflow-dashboard-backend/internal/models"
	"cashflow-dashboard-backend/internal/services/aggregate"
)

// ReportHandler serves report builds. The service is stateless: every
// request carries its own records, nothing is stored between calls.
type ReportHandler struct {
	engine    *aggregate.Engine
	extractor *extract.Extractor
	log       zerolog.Logger
}

func NewReportHandler(engine *aggregate.Engine, extractor *extract.Extractor, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{engine: engine, extractor: extractor, log: log}
}

type reportRequest struct {
	Invoices  []models.Invoice      `json:"invoices"`
	Movements []models.BankMovement `json:"movements"`
	Receipts  []models.WireReceipt  `json:"receipts"`
}

// BuildReport takes the three already-parsed record lists and returns the
// aggregated report.
func (h *ReportHandler) BuildReport(c *gin.Context) {
	var payload reportRequest
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	rep := h.engine.Run(payload.Invoices, payload.Movements, payload.Receipts)

	h.log.Info().
		Str("report_id", rep.ReportID.String()).
		Int("invoices", len(payload.Invoices)).
		Int("movements", len(payload.Movements)).
		Int("receipts", len(payload.Receipts)).
		Msg("report built")

	c.JSON(http.StatusOK, rep)
}

// uploadFields maps multipart field names to the per-source temp subdirs
// the extraction adapters read from.
var uploadFields = []string{"arca", "santander", "mercadopago", "credicoop", "westernunion"}

// BuildReportFromFiles takes raw statement PDFs (multipart fields arca,
// santander, mercadopago, credicoop, westernunion), runs the extraction
// adapters over them and returns the aggregated report. Files only live in
// a temp directory for the duration of the request.
func (h *ReportHandler) BuildReportFromFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	tmpRoot, err := os.MkdirTemp("", "statements-")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer os.RemoveAll(tmpRoot)

	dirs := make(map[string]string, len(uploadFields))
	for _, field := range uploadFields {
		dir := filepath.Join(tmpRoot, field)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		dirs[field] = dir
		for _, file := range form.File[field] {
			dst := filepath.Join(dir, uuid.New().String()+".pdf")
			if err := c.SaveUploadedFile(file, dst); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
	}

	invoices, err := h.extractor.ARCAInvoices(dirs["arca"])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var movements []models.BankMovement
	santander, err := h.extractor.Santander(dirs["santander"])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	mp, err := h.extractor.MercadoPago(dirs["mercadopago"])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	credicoop, err := h.extractor.Credicoop(dirs["credicoop"])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	movements = append(movements, santander...)
	movements = append(movements, mp...)
	movements = append(movements, credicoop...)

	var receipts []models.WireReceipt
	wuFiles, err := os.ReadDir(dirs["westernunion"])
	if err == nil {
		for _, f := range wuFiles {
			rs, err := h.extractor.WesternUnion(filepath.Join(dirs["westernunion"], f.Name()))
			if err != nil {
				h.log.Warn().Err(err).Str("file", f.Name()).Msg("skipping Western Union upload")
				continue
			}
			receipts = append(receipts, rs...)
		}
	}

	rep := h.engine.Run(invoices, movements, receipts)

	h.log.Info().
		Str("report_id", rep.ReportID.String()).
		Int("invoices", len(invoices)).
		Int("movements", len(movements)).
		Int("receipts", len(receipts)).
		Msg("report built from uploaded statements")

	c.JSON(http.StatusOK, rep)
}
