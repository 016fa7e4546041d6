package common

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Batch BatchConfig
	Log   LogConfig
}

// BatchConfig holds batch-run configuration
type BatchConfig struct {
	IncludeExts  []string
	OutputName   string
	ProfilesPath string
	MaxPages     int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Batch: BatchConfig{
			IncludeExts:  getEnvAsList("STMT_INCLUDE_EXTS", []string{"pdf"}),
			OutputName:   getEnv("STMT_OUTPUT_NAME", "Statement_Summary.xlsx"),
			ProfilesPath: getEnv("STMT_PROFILES_PATH", ""),
			MaxPages:     getEnvAsInt("STMT_MAX_PAGES", 0),
		},
		Log: LogConfig{
			Level:  getEnv("STMT_LOG_LEVEL", "info"),
			Format: getEnv("STMT_LOG_FORMAT", "json"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		var out []string
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
