package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bizgenius_generations_active",
		Help: "Report generations currently running",
	})

	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bizgenius_generations_total",
		Help: "Finished report generations by terminal status",
	}, []string{"status"})

	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bizgenius_generation_duration_seconds",
		Help:    "Wall-clock time of a full 12-section run",
		Buckets: []float64{30, 60, 120, 180, 300, 450, 600, 900, 1200},
	})

	SectionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bizgenius_section_duration_seconds",
		Help:    "Per-section latency including retries and failover",
		Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"section"})

	SectionRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bizgenius_section_retries_total",
		Help: "Section retry attempts by backoff class",
	}, []string{"section", "reason"})

	ProviderCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bizgenius_provider_calls_total",
		Help: "LLM provider calls by outcome",
	}, []string{"provider", "outcome"})

	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bizgenius_provider_latency_seconds",
		Help:    "LLM provider call latency",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"provider"})

	RateLimitWait = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bizgenius_rate_limit_wait_seconds",
		Help:    "Time spent waiting on the per-provider call spacing",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 1.5, 2, 4, 8},
	}, []string{"provider"})

	TokensTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bizgenius_llm_tokens_total",
		Help: "Tokens consumed by provider and direction",
	}, []string{"provider", "direction"})

	CostUSD = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bizgenius_llm_cost_usd_total",
		Help: "Dollar cost of successful section generations",
	}, []string{"provider"})

	EventPublishErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bizgenius_event_publish_errors_total",
		Help: "Session event deliveries that failed by sink",
	}, []string{"sink"})

	StreamClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bizgenius_stream_clients",
		Help: "Open progress stream websocket connections",
	})
)

// Provider call outcomes.
const (
	OutcomeSuccess    = "success"
	OutcomeFailure    = "failure"
	OutcomeError      = "error"
	OutcomeParseError = "parse_error"
)
