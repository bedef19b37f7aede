package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	resourceDomain "github.com/allisson/resourceapi/internal/resource/domain"
)

// mockTxManager runs fn inline unless an error is configured.
type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

type mockRecordRepository struct {
	mock.Mock
}

func (m *mockRecordRepository) Create(ctx context.Context, record *resourceDomain.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockRecordRepository) List(ctx context.Context, resourceType string) ([]*resourceDomain.Record, error) {
	args := m.Called(ctx, resourceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*resourceDomain.Record), args.Error(1)
}

func (m *mockRecordRepository) Get(
	ctx context.Context,
	resourceType string,
	id uuid.UUID,
) (*resourceDomain.Record, error) {
	args := m.Called(ctx, resourceType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resourceDomain.Record), args.Error(1)
}

func (m *mockRecordRepository) GetForUpdate(
	ctx context.Context,
	resourceType string,
	id uuid.UUID,
) (*resourceDomain.Record, error) {
	args := m.Called(ctx, resourceType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resourceDomain.Record), args.Error(1)
}

func (m *mockRecordRepository) Update(ctx context.Context, record *resourceDomain.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockRecordRepository) Delete(ctx context.Context, resourceType string, id uuid.UUID) error {
	args := m.Called(ctx, resourceType, id)
	return args.Error(0)
}

// recordingPublisher keeps every published event in order.
type recordingPublisher struct {
	events []publishedEvent
}

type publishedEvent struct {
	channel string
	topic   string
	payload any
}

func (p *recordingPublisher) Publish(ctx context.Context, channel, topic string, payload any) {
	p.events = append(p.events, publishedEvent{channel: channel, topic: topic, payload: payload})
}

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}
