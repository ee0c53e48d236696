package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServiceName != "docstudio" {
		t.Fatalf("expected default service name, got %q", cfg.ServiceName)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.AnalysisCacheTTL != 5*time.Minute {
		t.Fatalf("expected default cache TTL, got %v", cfg.AnalysisCacheTTL)
	}
	if !cfg.SeedDefaultTemplates {
		t.Fatalf("expected seeding enabled by default")
	}
	if cfg.RenderEndpoint != "" {
		t.Fatalf("expected in-process rendering by default, got %q", cfg.RenderEndpoint)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DOCSTUDIO_ADDR", ":9090")
	t.Setenv("DOCSTUDIO_ENVIRONMENT", "production")
	t.Setenv("DOCSTUDIO_ANALYSIS_CACHE_TTL", "90s")
	t.Setenv("DOCSTUDIO_SEED_DEFAULT_TEMPLATES", "false")
	t.Setenv("DOCSTUDIO_RENDER_ENDPOINT", "http://renderer:3000/render")

	cfg := Load()
	if cfg.Addr != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.Addr)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production environment")
	}
	if cfg.AnalysisCacheTTL != 90*time.Second {
		t.Fatalf("expected 90s TTL, got %v", cfg.AnalysisCacheTTL)
	}
	if cfg.SeedDefaultTemplates {
		t.Fatalf("expected seeding disabled")
	}
	if cfg.RenderEndpoint != "http://renderer:3000/render" {
		t.Fatalf("unexpected render endpoint %q", cfg.RenderEndpoint)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DOCSTUDIO_SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("DOCSTUDIO_TRACING_SAMPLING", "lots")

	cfg := Load()
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected fallback timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.TracingSampling != 1.0 {
		t.Fatalf("expected fallback sampling, got %v", cfg.TracingSampling)
	}
}
