package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	API         APIConfig
	Stub        StubConfig
	LogLevel    string
}

type APIConfig struct {
	BaseURL string
	CDNURL  string
	Timeout time.Duration
}

type StubConfig struct {
	Port        string
	FixturePath string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("API_TIMEOUT_SECONDS", "30")
	viper.SetDefault("STUB_PORT", "8081")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	timeoutSeconds := viper.GetInt("API_TIMEOUT_SECONDS")
	if timeoutSeconds <= 0 {
		timeoutSeconds = 30
	}

	cfg := &Config{
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		API: APIConfig{
			BaseURL: getEnvOrViper("API_URL", "http://localhost:8081/api"),
			CDNURL:  getEnvOrViper("CDN_URL", "http://localhost:8081/content"),
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		Stub: StubConfig{
			Port:        getEnvOrViper("STUB_PORT", "8081"),
			FixturePath: getEnvOrViper("STUB_FIXTURES", ""),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("API_URL is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
