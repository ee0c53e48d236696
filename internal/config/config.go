// Package config loads process configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration for the document engine.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string

	// HTTP
	Addr            string
	ShutdownTimeout time.Duration

	// Database
	DatabaseDSN string

	// Tracing
	TracingEnabled   bool
	TracingEndpoint  string
	TracingProtocol  string
	TracingSampling  float64

	// Rendering. When RenderEndpoint is empty, documents are rendered
	// in-process as HTML.
	RenderEndpoint string
	RenderTimeout  time.Duration

	// Caching
	AnalysisCacheTTL time.Duration

	// Bootstrap
	SeedDefaultTemplates bool
}

// Load reads configuration from environment variables, applying defaults
// for anything unset.
func Load() Config {
	cfg := Config{
		ServiceName:          envString("DOCSTUDIO_SERVICE_NAME", "docstudio"),
		ServiceVersion:       envString("DOCSTUDIO_SERVICE_VERSION", "dev"),
		Environment:          envString("DOCSTUDIO_ENVIRONMENT", "development"),
		Addr:                 envString("DOCSTUDIO_ADDR", ":8080"),
		ShutdownTimeout:      envDuration("DOCSTUDIO_SHUTDOWN_TIMEOUT", 10*time.Second),
		DatabaseDSN:          envString("DOCSTUDIO_DATABASE_DSN", "file:docstudio.db?_pragma=busy_timeout(5000)"),
		TracingEnabled:       envBool("DOCSTUDIO_TRACING_ENABLED", false),
		TracingEndpoint:      envString("DOCSTUDIO_TRACING_ENDPOINT", "localhost:4317"),
		TracingProtocol:      envString("DOCSTUDIO_TRACING_PROTOCOL", "grpc"),
		TracingSampling:      envFloat("DOCSTUDIO_TRACING_SAMPLING", 1.0),
		RenderEndpoint:       envString("DOCSTUDIO_RENDER_ENDPOINT", ""),
		RenderTimeout:        envDuration("DOCSTUDIO_RENDER_TIMEOUT", 30*time.Second),
		AnalysisCacheTTL:     envDuration("DOCSTUDIO_ANALYSIS_CACHE_TTL", 5*time.Minute),
		SeedDefaultTemplates: envBool("DOCSTUDIO_SEED_DEFAULT_TEMPLATES", true),
	}
	return cfg.withDefaults()
}

func (c Config) withDefaults() Config {
	if strings.TrimSpace(c.ServiceName) == "" {
		c.ServiceName = "docstudio"
	}
	if strings.TrimSpace(c.Addr) == "" {
		c.Addr = ":8080"
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.AnalysisCacheTTL <= 0 {
		c.AnalysisCacheTTL = 5 * time.Minute
	}
	return c
}

// IsProduction reports whether the process runs in the production environment.
func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envFloat(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
