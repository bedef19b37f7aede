package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/resourceapi/internal/database"
	eventDomain "github.com/allisson/resourceapi/internal/event/domain"
	resourceDomain "github.com/allisson/resourceapi/internal/resource/domain"
)

// resourceAdapter implements ResourceAdapter on top of a schema and the shared record table.
type resourceAdapter struct {
	schema    *resourceDomain.Schema
	txManager database.TxManager
	repo      RecordRepository
	publisher EventPublisher
	now       func() time.Time
}

func (a *resourceAdapter) Name() string {
	return a.schema.Name
}

func (a *resourceAdapter) List(ctx context.Context) ([]*resourceDomain.Record, error) {
	records, err := a.repo.List(ctx, a.schema.Name)
	if err != nil {
		return nil, err
	}

	a.publish(ctx, eventDomain.TopicRead, "all")
	return records, nil
}

func (a *resourceAdapter) Get(ctx context.Context, id string) (*resourceDomain.Record, error) {
	recordID, ok := parseID(id)

	var record *resourceDomain.Record
	if ok {
		var err error
		record, err = a.repo.Get(ctx, a.schema.Name, recordID)
		if err != nil && !errors.Is(err, resourceDomain.ErrRecordNotFound) {
			return nil, err
		}
	}

	a.publish(ctx, eventDomain.TopicRead, map[string]string{"id": id})
	return record, nil
}

// Create keeps only the declared fields and validates them before storing.
func (a *resourceAdapter) Create(ctx context.Context, fields map[string]any) (*resourceDomain.Record, error) {
	sanitized := a.schema.Sanitize(fields)
	if err := a.schema.Validate(sanitized); err != nil {
		return nil, err
	}

	now := a.now().UTC()
	record := &resourceDomain.Record{
		ID:        uuid.Must(uuid.NewV7()),
		Type:      a.schema.Name,
		Fields:    sanitized,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := a.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	a.publish(ctx, eventDomain.TopicCreate, map[string]any{"record": a.schema.Identify(sanitized)})
	return record, nil
}

// Update merges partial into the stored fields. A null value removes the field.
func (a *resourceAdapter) Update(
	ctx context.Context,
	id string,
	partial map[string]any,
) (*resourceDomain.Record, error) {
	patch := a.schema.Sanitize(partial)

	var updated *resourceDomain.Record
	if recordID, ok := parseID(id); ok {
		err := a.txManager.WithTx(ctx, func(txCtx context.Context) error {
			current, err := a.repo.GetForUpdate(txCtx, a.schema.Name, recordID)
			if err != nil {
				return err
			}

			next := current.Clone()
			for name, value := range patch {
				if value == nil {
					delete(next.Fields, name)
					continue
				}
				next.Fields[name] = value
			}
			if err := a.schema.Validate(next.Fields); err != nil {
				return err
			}
			next.UpdatedAt = a.now().UTC()

			if err := a.repo.Update(txCtx, next); err != nil {
				return err
			}
			updated = next
			return nil
		})
		if err != nil && !errors.Is(err, resourceDomain.ErrRecordNotFound) {
			return nil, err
		}
	}

	a.publish(ctx, eventDomain.TopicUpdate, map[string]any{"id": id, "record": patch})
	return updated, nil
}

// Delete returns the record as it was before removal.
func (a *resourceAdapter) Delete(ctx context.Context, id string) (*resourceDomain.Record, error) {
	var deleted *resourceDomain.Record
	if recordID, ok := parseID(id); ok {
		err := a.txManager.WithTx(ctx, func(txCtx context.Context) error {
			current, err := a.repo.GetForUpdate(txCtx, a.schema.Name, recordID)
			if err != nil {
				return err
			}
			if err := a.repo.Delete(txCtx, a.schema.Name, recordID); err != nil {
				return err
			}
			deleted = current
			return nil
		})
		if err != nil && !errors.Is(err, resourceDomain.ErrRecordNotFound) {
			return nil, err
		}
	}

	a.publish(ctx, eventDomain.TopicDelete, map[string]string{"id": id})
	return deleted, nil
}

func (a *resourceAdapter) publish(ctx context.Context, topic string, payload any) {
	a.publisher.Publish(ctx, eventDomain.ChannelDatabase, topic, payload)
}

// parseID reports whether id is a well-formed record identifier. Malformed ids cannot
// match any record.
func parseID(id string) (uuid.UUID, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, false
	}
	return parsed, true
}

// NewResourceAdapter creates a ResourceAdapter for the given schema.
func NewResourceAdapter(
	schema *resourceDomain.Schema,
	txManager database.TxManager,
	repo RecordRepository,
	publisher EventPublisher,
) ResourceAdapter {
	return &resourceAdapter{
		schema:    schema,
		txManager: txManager,
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}
