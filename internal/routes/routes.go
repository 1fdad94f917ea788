package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cashflow-dashboard-backend/internal/extract"
	handler "cashflow-dashboard-backend/internal/handlers"
	"cashflow-dashboard-backend/internal/services/aggregate"
)

func RegisterRoutes(r *gin.Engine, engine *aggregate.Engine, extractor *extract.Extractor, log zerolog.Logger) {
	reportHandler := handler.NewReportHandler(engine, extractor, log)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	report := api.Group("/report")
	report.POST("", reportHandler.BuildReport)
	report.POST("/upload", reportHandler.BuildReportFromFiles)
}
