package usecase

import (
	"context"
	"time"

	"github.com/allisson/resourceapi/internal/metrics"
	resourceDomain "github.com/allisson/resourceapi/internal/resource/domain"
)

// resourceAdapterWithMetrics decorates ResourceAdapter with metrics instrumentation.
// Operations are named "<type>_<action>", e.g. "products_create".
type resourceAdapterWithMetrics struct {
	next    ResourceAdapter
	metrics metrics.BusinessMetrics
}

// NewResourceAdapterWithMetrics wraps a ResourceAdapter with metrics recording.
func NewResourceAdapterWithMetrics(adapter ResourceAdapter, m metrics.BusinessMetrics) ResourceAdapter {
	return &resourceAdapterWithMetrics{
		next:    adapter,
		metrics: m,
	}
}

func (r *resourceAdapterWithMetrics) record(ctx context.Context, action string, start time.Time, err error) {
	metrics.Observe(ctx, r.metrics, "resource", r.next.Name()+"_"+action, start, err)
}

func (r *resourceAdapterWithMetrics) Name() string {
	return r.next.Name()
}

// List records metrics for collection reads.
func (r *resourceAdapterWithMetrics) List(ctx context.Context) ([]*resourceDomain.Record, error) {
	start := time.Now()
	records, err := r.next.List(ctx)
	r.record(ctx, "list", start, err)
	return records, err
}

// Get records metrics for single record reads.
func (r *resourceAdapterWithMetrics) Get(ctx context.Context, id string) (*resourceDomain.Record, error) {
	start := time.Now()
	record, err := r.next.Get(ctx, id)
	r.record(ctx, "get", start, err)
	return record, err
}

// Create records metrics for record creation.
func (r *resourceAdapterWithMetrics) Create(
	ctx context.Context,
	fields map[string]any,
) (*resourceDomain.Record, error) {
	start := time.Now()
	record, err := r.next.Create(ctx, fields)
	r.record(ctx, "create", start, err)
	return record, err
}

// Update records metrics for record updates.
func (r *resourceAdapterWithMetrics) Update(
	ctx context.Context,
	id string,
	partial map[string]any,
) (*resourceDomain.Record, error) {
	start := time.Now()
	record, err := r.next.Update(ctx, id, partial)
	r.record(ctx, "update", start, err)
	return record, err
}

// Delete records metrics for record deletion.
func (r *resourceAdapterWithMetrics) Delete(ctx context.Context, id string) (*resourceDomain.Record, error) {
	start := time.Now()
	record, err := r.next.Delete(ctx, id)
	r.record(ctx, "delete", start, err)
	return record, err
}
