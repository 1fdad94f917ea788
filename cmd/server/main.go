package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cashflow-dashboard-backend/internal/config"
	"cashflow-dashboard-backend/internal/extract"
	"cashflow-dashboard-backend/internal/logger"
	"cashflow-dashboard-backend/internal/routes"
	"cashflow-dashboard-backend/internal/services/aggregate"
	"cashflow-dashboard-backend/internal/services/classify"
)

func main() {
	log := logger.New()

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, relying on system env")
	}

	cfg := config.Load()

	classifier := classify.New(cfg.OwnerKeywords)
	engine := aggregate.New(classifier)
	extractor := extract.New(log)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, engine, extractor, log)

	log.Info().Str("addr", cfg.ServerAddr).Msg("starting server")
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
