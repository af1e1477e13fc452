package bytex

import (
	"log/slog"

	"github.com/hengadev/bytex/internal/monitoring"
)

// ObservabilityHook receives Codec operations as they start and complete.
type ObservabilityHook = monitoring.ObservabilityHook

// MetricsCollector receives counters and timings from a metrics hook.
type MetricsCollector = monitoring.MetricsCollector

// InMemoryMetricsCollector is a concurrency-safe in-process MetricsCollector.
type InMemoryMetricsCollector = monitoring.InMemoryMetricsCollector

// NewInMemoryMetricsCollector creates an empty in-memory collector.
func NewInMemoryMetricsCollector() *InMemoryMetricsCollector {
	return monitoring.NewInMemoryMetricsCollector()
}

// NewLoggingHook returns a hook that logs operations through logger.
func NewLoggingHook(logger *slog.Logger) ObservabilityHook {
	return monitoring.NewLoggingObservabilityHook(logger)
}

// NewMetricsHook returns a hook that reports operations to collector.
func NewMetricsHook(collector MetricsCollector) ObservabilityHook {
	return monitoring.NewMetricsObservabilityHook(collector)
}

// NewCompositeHook fans every event out to hooks in order.
func NewCompositeHook(hooks ...ObservabilityHook) ObservabilityHook {
	return monitoring.NewCompositeObservabilityHook(hooks...)
}
