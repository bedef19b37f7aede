// Package usecase implements the generic resource adapter shared by every registered
// resource type and the registry that resolves a type name to its adapter.
package usecase

import (
	"context"

	"github.com/google/uuid"

	resourceDomain "github.com/allisson/resourceapi/internal/resource/domain"
)

// RecordRepository defines the interface for record persistence operations.
type RecordRepository interface {
	Create(ctx context.Context, record *resourceDomain.Record) error
	List(ctx context.Context, resourceType string) ([]*resourceDomain.Record, error)
	Get(ctx context.Context, resourceType string, id uuid.UUID) (*resourceDomain.Record, error)
	GetForUpdate(ctx context.Context, resourceType string, id uuid.UUID) (*resourceDomain.Record, error)
	Update(ctx context.Context, record *resourceDomain.Record) error
	Delete(ctx context.Context, resourceType string, id uuid.UUID) error
}

// EventPublisher announces data operations. Publishing never fails the caller.
type EventPublisher interface {
	Publish(ctx context.Context, channel, topic string, payload any)
}

// ResourceAdapter performs CRUD for one resource type and publishes an event after each
// operation. Get, Update and Delete return (nil, nil) when no record matches the id.
type ResourceAdapter interface {
	Name() string
	List(ctx context.Context) ([]*resourceDomain.Record, error)
	Get(ctx context.Context, id string) (*resourceDomain.Record, error)
	Create(ctx context.Context, fields map[string]any) (*resourceDomain.Record, error)
	Update(ctx context.Context, id string, partial map[string]any) (*resourceDomain.Record, error)
	Delete(ctx context.Context, id string) (*resourceDomain.Record, error)
}
