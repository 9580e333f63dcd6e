// Package config loads service configuration from the environment, with
// sensible defaults for local use. A .env file is honored when present.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Host string
	Port string

	TemplatePath       string
	CatalogPath        string
	OutputDir          string
	InspectionDataPath string

	ImageTimeout  time.Duration
	MaxImageBytes int64
	MaxWorkers    int
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Host:               envString("HOST", "127.0.0.1"),
		Port:               envString("PORT", "5000"),
		TemplatePath:       envString("TREC_TEMPLATE_PATH", "assets/TREC_Template_Blank.pdf"),
		CatalogPath:        envString("TREC_CATALOG_PATH", ""),
		OutputDir:          envString("OUTPUT_DIR", "output"),
		InspectionDataPath: envString("INSPECTION_DATA_PATH", "assets/inspection.json"),
		ImageTimeout:       time.Duration(envInt("IMAGE_DOWNLOAD_TIMEOUT", 30)) * time.Second,
		MaxImageBytes:      int64(envInt("MAX_IMAGE_SIZE_MB", 10)) << 20,
		MaxWorkers:         envInt("MAX_WORKERS", 4),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
