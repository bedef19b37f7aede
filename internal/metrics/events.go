package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Event outcomes recorded by EventMetrics.
const (
	EventPublished = "published"
	EventDropped   = "dropped"
	EventFailed    = "failed"
)

// EventMetrics counts audit events by topic and delivery outcome.
type EventMetrics interface {
	RecordEvent(ctx context.Context, topic, outcome string)
}

type eventMetrics struct {
	counter metric.Int64Counter
}

// NewEventMetrics creates an EventMetrics implementation on top of the given meter provider.
func NewEventMetrics(meterProvider metric.MeterProvider, namespace string) (EventMetrics, error) {
	meter := meterProvider.Meter(namespace)

	counter, err := meter.Int64Counter(
		fmt.Sprintf("%s_events_total", namespace),
		metric.WithDescription("Total number of audit events by outcome"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create event counter: %w", err)
	}

	return &eventMetrics{counter: counter}, nil
}

func (e *eventMetrics) RecordEvent(ctx context.Context, topic, outcome string) {
	e.counter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("topic", topic),
			attribute.String("outcome", outcome),
		),
	)
}

// NoOpEventMetrics is used when metrics are disabled.
type NoOpEventMetrics struct{}

// NewNoOpEventMetrics creates a no-op EventMetrics implementation.
func NewNoOpEventMetrics() EventMetrics {
	return &NoOpEventMetrics{}
}

func (n *NoOpEventMetrics) RecordEvent(ctx context.Context, topic, outcome string) {}
