package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all app configuration
type Config struct {
	// Server
	Env      string
	HTTPPort string

	// Store (SQLite file written by the external simulation)
	DBPath string

	// Simulation launcher
	SimExecutable string
	DataDir       string
	SimTimeout    int // seconds

	// Live feed
	StreamInterval int // milliseconds

	// CORS: empty list means wildcard mode (credentials disabled),
	// explicit origins enable credentialed requests
	CORSOrigins []string

	// App settings
	Debug bool
}

// LoadConfig loads configuration from environment variables, with optional .env file
func LoadConfig() *Config {
	// Load .env file if it exists; env vars alone are fine too
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := &Config{
		// Server
		Env:      getEnv("ENV", "local"),
		HTTPPort: getEnv("HTTP_PORT", "8080"),

		// Store
		DBPath: getEnv("DB_PATH", "database/assembly_line.db"),

		// Simulation launcher
		SimExecutable: getEnv("SIM_EXECUTABLE", "build/assembly_line"),
		DataDir:       getEnv("DATA_DIR", "data"),
		SimTimeout:    getEnvAsInt("SIM_TIMEOUT", 120),

		// Live feed
		StreamInterval: getEnvAsInt("STREAM_INTERVAL_MS", 1000),

		// CORS
		CORSOrigins: getEnvAsSlice("CORS_ORIGINS", nil, ","),

		// App settings
		Debug: getEnvAsBool("DEBUG", false),
	}

	return cfg
}

// WildcardCORS reports whether the service runs in wildcard CORS mode.
// Wildcard mode forbids credentialed requests per browser rules.
func (c *Config) WildcardCORS() bool {
	return len(c.CORSOrigins) == 0
}

// Helper functions for parsing environment variables
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsSlice(key string, defaultVal []string, sep string) []string {
	valStr := getEnv(key, "")
	if strings.TrimSpace(valStr) == "" {
		return defaultVal
	}
	parts := strings.Split(valStr, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
