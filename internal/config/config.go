// Package config holds the resolved client configuration.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Viper keys
const (
	KeyAPIURL         = "api.url"
	KeyAPITimeout     = "api.timeout"
	KeyAPIRate        = "api.rate"
	KeySearchCategory = "search.category"
	defaultAPIURL     = "http://localhost:8000"
	defaultRatePerSec = 2.0
	defaultCategory   = ""
)

// Global configuration variables
var (
	// APIURL is the root of the book service
	APIURL string
	// Timeout bounds each request; zero means wait indefinitely
	Timeout time.Duration
	// RequestsPerSecond caps outgoing requests; zero disables the guard
	RequestsPerSecond float64
	// DefaultCategory pre-selects a search category
	DefaultCategory string
)

// SetDefaults registers default values with viper.
func SetDefaults() {
	viper.SetDefault(KeyAPIURL, defaultAPIURL)
	viper.SetDefault(KeyAPITimeout, "0s")
	viper.SetDefault(KeyAPIRate, defaultRatePerSec)
	viper.SetDefault(KeySearchCategory, defaultCategory)
}

// InitConfig initializes the global configuration from viper.
func InitConfig() {
	SetDefaults()

	APIURL = viper.GetString(KeyAPIURL)
	Timeout = viper.GetDuration(KeyAPITimeout)
	RequestsPerSecond = viper.GetFloat64(KeyAPIRate)
	DefaultCategory = viper.GetString(KeySearchCategory)
}

// LoadEnvFiles loads dotenv files in order. Missing files are skipped and
// variables already present in the environment are never overwritten.
func LoadEnvFiles(files ...string) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Failed to load env file", "file", file, "error", err)
		}
	}
}

// SetAPIURL overrides the book service URL
func SetAPIURL(url string) {
	if url != "" {
		APIURL = url
		viper.Set(KeyAPIURL, url)
	}
}

// SetTimeout overrides the request timeout
func SetTimeout(d time.Duration) {
	Timeout = d
	viper.Set(KeyAPITimeout, d.String())
}

// SetRequestsPerSecond overrides the outgoing request guard
func SetRequestsPerSecond(rate float64) {
	RequestsPerSecond = rate
	viper.Set(KeyAPIRate, rate)
}
