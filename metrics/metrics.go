// Package metrics registers the advisor's Prometheus instrumentation:
// Ask latency by category/source, rate-limit denials by kind, and LLM token
// usage by provider. Registration happens once, lazily, the first time a
// recorder function is called - callers never need to wire a registry.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	askLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "advisor",
		Name:      "ask_latency_seconds",
		Help:      "Latency of Ask calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"category", "source"})

	askTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "advisor",
		Name:      "ask_total",
		Help:      "Count of Ask calls by category and source.",
	}, []string{"category", "source"})

	rateLimitDenied = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "advisor",
		Name:      "rate_limit_denied_total",
		Help:      "Count of rate-limit denials by error kind.",
	}, []string{"kind"})

	llmTokens = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "advisor",
		Name:      "llm_tokens_total",
		Help:      "LLM tokens consumed by provider and direction (in/out).",
	}, []string{"provider", "direction"})

	registerOnce sync.Once
)

func ensureRegistered() {
	registerOnce.Do(func() {
		prometheus.MustRegister(askLatency, askTotal, rateLimitDenied, llmTokens)
	})
}

// RecordAsk records one Ask call's latency and outcome.
func RecordAsk(category, source string, elapsed time.Duration) {
	ensureRegistered()
	askLatency.WithLabelValues(category, source).Observe(elapsed.Seconds())
	askTotal.WithLabelValues(category, source).Inc()
}

// RecordRateLimitDenied records one rate-limit denial.
func RecordRateLimitDenied(kind string) {
	ensureRegistered()
	rateLimitDenied.WithLabelValues(kind).Inc()
}

// RecordLLMTokens records token usage for one LLM call.
func RecordLLMTokens(provider string, tokensIn, tokensOut int) {
	ensureRegistered()
	llmTokens.WithLabelValues(provider, "in").Add(float64(tokensIn))
	llmTokens.WithLabelValues(provider, "out").Add(float64(tokensOut))
}
