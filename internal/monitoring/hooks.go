package monitoring

import (
	"fmt"
	"log/slog"
	"time"
)

// ObservabilityHook receives codec operations as they start and finish.
// Implementations must be safe for concurrent use; the codecs are.
type ObservabilityHook interface {
	// Called before the operation touches its input
	OnOperationStart(operation string, metadata map[string]any)

	// Called after the operation completes (success or failure)
	OnOperationComplete(operation string, duration time.Duration, err error, metadata map[string]any)
}

// NoOpObservabilityHook is a no-op implementation of ObservabilityHook
type NoOpObservabilityHook struct{}

func (n *NoOpObservabilityHook) OnOperationStart(operation string, metadata map[string]any) {}
func (n *NoOpObservabilityHook) OnOperationComplete(operation string, duration time.Duration, err error, metadata map[string]any) {
}

// LoggingObservabilityHook logs all operations through slog.
type LoggingObservabilityHook struct {
	logger *slog.Logger
}

// NewLoggingObservabilityHook creates a new logging observability hook.
// A nil logger falls back to slog.Default().
func NewLoggingObservabilityHook(logger *slog.Logger) *LoggingObservabilityHook {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObservabilityHook{logger: logger}
}

func (l *LoggingObservabilityHook) OnOperationStart(operation string, metadata map[string]any) {
	l.logger.Debug("operation started", "operation", operation, "metadata", metadata)
}

func (l *LoggingObservabilityHook) OnOperationComplete(operation string, duration time.Duration, err error, metadata map[string]any) {
	if err != nil {
		l.logger.Error("operation failed",
			"operation", operation,
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
			"error_type", fmt.Sprintf("%T", err),
			"metadata", metadata,
		)
		return
	}
	l.logger.Debug("operation completed",
		"operation", operation,
		"duration_ms", duration.Milliseconds(),
		"metadata", metadata,
	)
}

// MetricsObservabilityHook collects metrics for operations
type MetricsObservabilityHook struct {
	collector MetricsCollector
}

// NewMetricsObservabilityHook creates a new metrics observability hook
func NewMetricsObservabilityHook(collector MetricsCollector) *MetricsObservabilityHook {
	if collector == nil {
		collector = &NoOpMetricsCollector{}
	}
	return &MetricsObservabilityHook{collector: collector}
}

func (m *MetricsObservabilityHook) OnOperationStart(operation string, metadata map[string]any) {
	m.collector.IncrementCounter("bytex.operation.started", operationTags(operation, metadata))
}

func (m *MetricsObservabilityHook) OnOperationComplete(operation string, duration time.Duration, err error, metadata map[string]any) {
	tags := operationTags(operation, metadata)
	if err != nil {
		tags["status"] = "error"
		m.collector.IncrementCounter("bytex.operation.failed", tags)
	} else {
		tags["status"] = "success"
		m.collector.IncrementCounter("bytex.operation.succeeded", tags)
		if n, ok := metadata["bytes"].(int); ok {
			m.collector.IncrementCounterBy("bytex.bytes", int64(n), operationTags(operation, metadata))
		}
	}
	m.collector.RecordTiming("bytex.operation.duration", duration, tags)
}

func operationTags(operation string, metadata map[string]any) map[string]string {
	tags := map[string]string{"operation": operation}
	if endian, ok := metadata["endian"].(string); ok {
		tags["endian"] = endian
	}
	return tags
}

// CompositeObservabilityHook combines multiple hooks
type CompositeObservabilityHook struct {
	hooks []ObservabilityHook
}

// NewCompositeObservabilityHook creates a new composite hook
func NewCompositeObservabilityHook(hooks ...ObservabilityHook) *CompositeObservabilityHook {
	return &CompositeObservabilityHook{hooks: hooks}
}

func (c *CompositeObservabilityHook) OnOperationStart(operation string, metadata map[string]any) {
	for _, hook := range c.hooks {
		hook.OnOperationStart(operation, metadata)
	}
}

func (c *CompositeObservabilityHook) OnOperationComplete(operation string, duration time.Duration, err error, metadata map[string]any) {
	for _, hook := range c.hooks {
		hook.OnOperationComplete(operation, duration, err, metadata)
	}
}
