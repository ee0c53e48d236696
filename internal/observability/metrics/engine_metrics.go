package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EngineMetrics captures recommendation and document-generation metrics.
type EngineMetrics struct {
	recommendations    *prometheus.CounterVec
	documentsGenerated *prometheus.CounterVec
	generationDuration prometheus.Histogram
	analysisCacheHits  *prometheus.CounterVec
}

var (
	engineMetricsOnce sync.Once
	engineMetrics     *EngineMetrics
)

// Engine returns the process-wide engine metrics.
func Engine() *EngineMetrics {
	return EngineWithConfig(Config{})
}

// EngineWithConfig returns the process-wide engine metrics, registering
// them on first use.
func EngineWithConfig(cfg Config) *EngineMetrics {
	engineMetricsOnce.Do(func() {
		engineMetrics = newEngineMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return engineMetrics
}

// ResetEngineMetricsForTest clears the singleton between tests.
func ResetEngineMetricsForTest() {
	engineMetricsOnce = sync.Once{}
	engineMetrics = nil
}

func newEngineMetrics(registerer prometheus.Registerer, cfg Config) *EngineMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "docstudio"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}

	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	recommendations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "docstudio_recommendations_total",
			Help:        "Total template recommendation requests served.",
			ConstLabels: constLabels,
		},
		[]string{"result"}, // success | invalid | failed
	)

	documentsGenerated := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "docstudio_documents_generated_total",
			Help:        "Total documents generated through the render pipeline.",
			ConstLabels: constLabels,
		},
		[]string{"result"}, // success | render_failed | invalid
	)

	generationDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:        "docstudio_generation_duration_seconds",
			Help:        "End-to-end duration of recommend, personalize, analyze and render.",
			Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			ConstLabels: constLabels,
		},
	)

	analysisCacheHits := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "docstudio_analysis_cache_total",
			Help:        "Optimization analysis cache lookups by outcome.",
			ConstLabels: constLabels,
		},
		[]string{"outcome"}, // hit | miss
	)

	registerer.MustRegister(
		recommendations,
		documentsGenerated,
		generationDuration,
		analysisCacheHits,
	)

	return &EngineMetrics{
		recommendations:    recommendations,
		documentsGenerated: documentsGenerated,
		generationDuration: generationDuration,
		analysisCacheHits:  analysisCacheHits,
	}
}

// IncRecommendation counts a recommendation request outcome.
func (m *EngineMetrics) IncRecommendation(result string) {
	if m == nil {
		return
	}
	m.recommendations.WithLabelValues(result).Inc()
}

// IncDocumentGenerated counts a generation pipeline outcome.
func (m *EngineMetrics) IncDocumentGenerated(result string) {
	if m == nil {
		return
	}
	m.documentsGenerated.WithLabelValues(result).Inc()
}

// ObserveGenerationDuration records the full pipeline duration.
func (m *EngineMetrics) ObserveGenerationDuration(d time.Duration) {
	if m == nil {
		return
	}
	seconds := d.Seconds()
	if seconds < 0 {
		seconds = 0
	}
	m.generationDuration.Observe(seconds)
}

// IncAnalysisCache counts an analysis cache lookup outcome.
func (m *EngineMetrics) IncAnalysisCache(outcome string) {
	if m == nil {
		return
	}
	m.analysisCacheHits.WithLabelValues(outcome).Inc()
}
