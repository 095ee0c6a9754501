package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/smart-agroconnect/api/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	TokenExpiry time.Duration
	AppBaseURL  string
	UploadRoot  string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		TokenExpiry: time.Hour * time.Duration(getEnvAsInt("TOKEN_EXPIRY_HOURS", 720)), // 30 days
		AppBaseURL:  getEnv("APP_BASE_URL", "http://localhost:8080"),
		UploadRoot:  getEnv("UPLOAD_ROOT", "uploads"),
	}
}

// GetTokenExpiry returns the bearer token lifetime.
func (c *Config) GetTokenExpiry() time.Duration {
	return c.TokenExpiry
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetUploadRoot returns the directory uploaded files live under.
func (c *Config) GetUploadRoot() string {
	return c.UploadRoot
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
