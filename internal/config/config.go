package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	DataFile     string
	BackupSuffix string
	AppVersion   string
	LogLevel     string
	LogFormat    string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		DataFile:     getEnv("SGMS_DATA_FILE", "grades_data.json"),
		BackupSuffix: getEnv("SGMS_BACKUP_SUFFIX", ".backup"),
		AppVersion:   getEnv("SGMS_APP_VERSION", "SGMS v1.0"),
		LogLevel:     getEnv("LOG_LEVEL", "warn"),
		LogFormat:    getEnv("LOG_FORMAT", "pretty"),
	}
}

// BackupFile returns the path the previous data file is rotated to on save.
func (c *Config) BackupFile() string {
	return c.DataFile + c.BackupSuffix
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
