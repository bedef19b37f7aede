// Package repository provides PostgreSQL and MySQL persistence for resource records.
// Every resource type shares one table; the record fields are stored as a JSON document.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/resourceapi/internal/database"
	apperrors "github.com/allisson/resourceapi/internal/errors"
	resourceDomain "github.com/allisson/resourceapi/internal/resource/domain"
)

// PostgreSQLRecordRepository handles record persistence for PostgreSQL.
type PostgreSQLRecordRepository struct {
	db *sql.DB
}

// NewPostgreSQLRecordRepository creates a new PostgreSQLRecordRepository.
func NewPostgreSQLRecordRepository(db *sql.DB) *PostgreSQLRecordRepository {
	return &PostgreSQLRecordRepository{
		db: db,
	}
}

// Create inserts a new record.
func (r *PostgreSQLRecordRepository) Create(ctx context.Context, record *resourceDomain.Record) error {
	querier := database.GetTx(ctx, r.db)

	data, err := json.Marshal(record.Fields)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode record fields")
	}

	query := `INSERT INTO resources (id, type, data, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err = querier.ExecContext(
		ctx,
		query,
		record.ID,
		record.Type,
		data,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create record")
	}
	return nil
}

// List returns every record of the given type in insertion order.
func (r *PostgreSQLRecordRepository) List(
	ctx context.Context,
	resourceType string,
) ([]*resourceDomain.Record, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, type, data, created_at, updated_at
			  FROM resources WHERE type = $1 ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, resourceType)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list records")
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*resourceDomain.Record, 0)
	for rows.Next() {
		var record resourceDomain.Record
		var data []byte
		if err := rows.Scan(&record.ID, &record.Type, &data, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan record")
		}
		if err := decodeFields(&record, data); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate records")
	}
	return records, nil
}

// Get retrieves a record by type and id.
func (r *PostgreSQLRecordRepository) Get(
	ctx context.Context,
	resourceType string,
	id uuid.UUID,
) (*resourceDomain.Record, error) {
	query := `SELECT id, type, data, created_at, updated_at
			  FROM resources WHERE type = $1 AND id = $2`

	return r.getOne(ctx, query, resourceType, id)
}

// GetForUpdate retrieves a record and locks its row until the surrounding transaction ends.
func (r *PostgreSQLRecordRepository) GetForUpdate(
	ctx context.Context,
	resourceType string,
	id uuid.UUID,
) (*resourceDomain.Record, error) {
	query := `SELECT id, type, data, created_at, updated_at
			  FROM resources WHERE type = $1 AND id = $2 FOR UPDATE`

	return r.getOne(ctx, query, resourceType, id)
}

func (r *PostgreSQLRecordRepository) getOne(
	ctx context.Context,
	query string,
	resourceType string,
	id uuid.UUID,
) (*resourceDomain.Record, error) {
	var record resourceDomain.Record
	var data []byte
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx, query, resourceType, id).Scan(
		&record.ID, &record.Type, &data, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resourceDomain.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get record")
	}

	if err := decodeFields(&record, data); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update replaces the stored fields of an existing record.
func (r *PostgreSQLRecordRepository) Update(ctx context.Context, record *resourceDomain.Record) error {
	querier := database.GetTx(ctx, r.db)

	data, err := json.Marshal(record.Fields)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode record fields")
	}

	query := `UPDATE resources SET data = $1, updated_at = $2 WHERE type = $3 AND id = $4`

	result, err := querier.ExecContext(ctx, query, data, record.UpdatedAt, record.Type, record.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update record")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return resourceDomain.ErrRecordNotFound
	}
	return nil
}

// Delete removes a record by type and id.
func (r *PostgreSQLRecordRepository) Delete(ctx context.Context, resourceType string, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM resources WHERE type = $1 AND id = $2`

	result, err := querier.ExecContext(ctx, query, resourceType, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete record")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return resourceDomain.ErrRecordNotFound
	}
	return nil
}

func decodeFields(record *resourceDomain.Record, data []byte) error {
	record.Fields = map[string]any{}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &record.Fields); err != nil {
		return apperrors.Wrap(err, "failed to decode record fields")
	}
	return nil
}
