package config

import (
	"os"
)

// Config holds the application configuration, sourced from the
// environment.
type Config struct {
	Port        string
	DBPath      string
	CatalogPath string // optional override of the embedded catalog asset
	LogLevel    string
	MapsAPIKey  string // opaque map-provider credential, passed through to clients
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", ":8080"),
		DBPath:      getEnv("DB_PATH", "./data/visits.db"),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MapsAPIKey:  getEnv("GOOGLE_MAPS_API_KEY", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
