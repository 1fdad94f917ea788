package config

import (
	"os"
	"strings"
)

// Config holds everything read from the environment. Call godotenv.Load in
// main before Load so a local .env works.
type Config struct {
	ServerAddr   string
	AllowOrigins []string

	// OwnerKeywords are the self-identity markers for the classifier.
	// Empty means the built-in defaults.
	OwnerKeywords []string

	// Source directories for the batch dashboard build.
	ARCADir         string
	SantanderDir    string
	MercadoPagoDir  string
	CredicoopDir    string
	WesternUnionPDF string

	TemplatePath   string
	OutputPath     string
	JSONOutputPath string
}

func Load() Config {
	return Config{
		ServerAddr:      getEnv("SERVER_ADDR", ":8080"),
		AllowOrigins:    splitEnv("ALLOW_ORIGINS", "http://localhost:3000"),
		OwnerKeywords:   splitEnv("OWNER_KEYWORDS", ""),
		ARCADir:         getEnv("ARCA_DIR", "data/arca"),
		SantanderDir:    getEnv("SANTANDER_DIR", "data/santander"),
		MercadoPagoDir:  getEnv("MERCADOPAGO_DIR", "data/mercadopago"),
		CredicoopDir:    getEnv("CREDICOOP_DIR", "data/credicoop"),
		WesternUnionPDF: getEnv("WESTERN_UNION_PDF", "data/western_union.pdf"),
		TemplatePath:    getEnv("TEMPLATE_PATH", "web/templates/index.html"),
		OutputPath:      getEnv("OUTPUT_PATH", "index.html"),
		JSONOutputPath:  getEnv("JSON_OUTPUT_PATH", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitEnv reads a comma-separated list.
func splitEnv(key, fallback string) []string {
	raw := getEnv(key, fallback)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
