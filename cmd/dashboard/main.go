// Command dashboard runs the full batch: extract every configured source,
// aggregate, and write the HTML dashboard (plus raw JSON if configured).
package main

import (
	"os"

	"github.com/joho/godotenv"

	"cashflow-dashboard-backend/internal/config"
	"cashflow-dashboard-backend/internal/extract"
	"cashflow-dashboard-backend/internal/logger"
	"cashflow-dashboard-backend/internal/models"
	"cashflow-dashboard-backend/internal/report"
	"cashflow-dashboard-backend/internal/services/aggregate"
	"cashflow-dashboard-backend/internal/services/classify"
)

func main() {
	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, relying on system env")
	}
	cfg := config.Load()

	extractor := extract.New(log)

	log.Info().Msg("phase 1: extracting source files")
	invoices, err := extractor.ARCAInvoices(cfg.ARCADir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.ARCADir).Msg("ARCA extraction failed")
	}

	var movements []models.BankMovement
	santander, err := extractor.Santander(cfg.SantanderDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.SantanderDir).Msg("Santander extraction failed")
	}
	mp, err := extractor.MercadoPago(cfg.MercadoPagoDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.MercadoPagoDir).Msg("Mercado Pago extraction failed")
	}
	credicoop, err := extractor.Credicoop(cfg.CredicoopDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.CredicoopDir).Msg("Credicoop extraction failed")
	}
	movements = append(movements, santander...)
	movements = append(movements, mp...)
	movements = append(movements, credicoop...)

	var receipts []models.WireReceipt
	if _, err := os.Stat(cfg.WesternUnionPDF); err == nil {
		receipts, err = extractor.WesternUnion(cfg.WesternUnionPDF)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.WesternUnionPDF).Msg("Western Union extraction failed")
		}
	} else {
		log.Info().Str("file", cfg.WesternUnionPDF).Msg("no Western Union summary, skipping")
	}

	log.Info().
		Int("invoices", len(invoices)).
		Int("movements", len(movements)).
		Int("receipts", len(receipts)).
		Msg("phase 2: aggregating")

	engine := aggregate.New(classify.New(cfg.OwnerKeywords))
	rep := engine.Run(invoices, movements, receipts)

	log.Info().Str("output", cfg.OutputPath).Msg("phase 3: writing report")
	if err := report.WriteHTML(rep, cfg.TemplatePath, cfg.OutputPath); err != nil {
		log.Fatal().Err(err).Msg("writing HTML report failed")
	}
	if cfg.JSONOutputPath != "" {
		if err := report.WriteJSON(rep, cfg.JSONOutputPath); err != nil {
			log.Fatal().Err(err).Msg("writing JSON report failed")
		}
	}

	log.Info().
		Str("report_id", rep.ReportID.String()).
		Int("months", len(rep.MonthlyHistory)).
		Int("potential_clients", len(rep.PotentialClients)).
		Msg("dashboard generated")
}
