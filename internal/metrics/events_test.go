package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventMetrics(t *testing.T) {
	provider, err := NewProvider("events_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	em, err := NewEventMetrics(provider.MeterProvider(), "events_test")
	require.NoError(t, err)

	ctx := context.Background()
	em.RecordEvent(ctx, "create", EventPublished)
	em.RecordEvent(ctx, "create", EventPublished)
	em.RecordEvent(ctx, "error", EventDropped)
	em.RecordEvent(ctx, "read", EventFailed)

	output := scrape(t, provider)

	assertMetricLine(t, output, `events_test_events_total`, `outcome="published".*topic="create"`, `2`)
	assertMetricLine(t, output, `events_test_events_total`, `outcome="dropped".*topic="error"`, `1`)
	assertMetricLine(t, output, `events_test_events_total`, `outcome="failed".*topic="read"`, `1`)
}

func TestNewNoOpEventMetrics(t *testing.T) {
	noOp := NewNoOpEventMetrics()

	assert.IsType(t, &NoOpEventMetrics{}, noOp)
	assert.NotPanics(t, func() {
		noOp.RecordEvent(context.Background(), "delete", EventPublished)
	})
}
