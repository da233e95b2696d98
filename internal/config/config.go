package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"watchface-monitor/internal/modules/fetcher"
	"watchface-monitor/internal/modules/persistence"

	"github.com/joho/godotenv"
)

// DefaultTargets is the device list monitored when TARGET_TYPES is unset or empty.
const DefaultTargets = "p65,o66,n67"

// Config holds all configuration for the application
type Config struct {
	Targets     []string      // Device identifiers to monitor, in report order
	Endpoint    string        // Catalog listing URL
	Timeout     time.Duration // Per-request timeout
	OutputPath  string        // Email body written on every run
	DevicesFile string        // Optional YAML device table
	Timezone    string        // Zone for report dates; empty means local time
	LogLevel    string
	LogFile     string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (optional)
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("FETCH_TIMEOUT", fetcher.DefaultTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: must be positive, got %s", timeout)
	}

	cfg := &Config{
		Targets:     ParseTargets(os.Getenv("TARGET_TYPES")),
		Endpoint:    getEnv("CATALOG_URL", fetcher.DefaultEndpoint),
		Timeout:     timeout,
		OutputPath:  getEnv("OUTPUT_PATH", persistence.DefaultOutputPath),
		DevicesFile: getEnv("DEVICES_FILE", ""),
		Timezone:    getEnv("REPORT_TIMEZONE", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", ""),
	}

	return cfg, nil
}

// ParseTargets splits a comma-separated device list, trimming blanks.
// An empty list falls back to DefaultTargets.
func ParseTargets(s string) []string {
	targets := splitTargets(s)
	if len(targets) == 0 {
		return splitTargets(DefaultTargets)
	}
	return targets
}

func splitTargets(s string) []string {
	var targets []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			targets = append(targets, t)
		}
	}
	return targets
}

// Location resolves the configured report time zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
