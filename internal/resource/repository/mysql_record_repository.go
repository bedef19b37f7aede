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

// MySQLRecordRepository handles record persistence for MySQL.
// UUIDs are stored as BINARY(16).
type MySQLRecordRepository struct {
	db *sql.DB
}

// NewMySQLRecordRepository creates a new MySQLRecordRepository.
func NewMySQLRecordRepository(db *sql.DB) *MySQLRecordRepository {
	return &MySQLRecordRepository{
		db: db,
	}
}

// Create inserts a new record.
func (r *MySQLRecordRepository) Create(ctx context.Context, record *resourceDomain.Record) error {
	querier := database.GetTx(ctx, r.db)

	uuidBytes, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	data, err := json.Marshal(record.Fields)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode record fields")
	}

	query := `INSERT INTO resources (id, type, data, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		uuidBytes,
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
func (r *MySQLRecordRepository) List(ctx context.Context, resourceType string) ([]*resourceDomain.Record, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, type, data, created_at, updated_at
			  FROM resources WHERE type = ? ORDER BY id`

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
		var idBytes, data []byte
		if err := rows.Scan(&idBytes, &record.Type, &data, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan record")
		}
		if err := record.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
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
func (r *MySQLRecordRepository) Get(
	ctx context.Context,
	resourceType string,
	id uuid.UUID,
) (*resourceDomain.Record, error) {
	query := `SELECT id, type, data, created_at, updated_at
			  FROM resources WHERE type = ? AND id = ?`

	return r.getOne(ctx, query, resourceType, id)
}

// GetForUpdate retrieves a record and locks its row until the surrounding transaction ends.
func (r *MySQLRecordRepository) GetForUpdate(
	ctx context.Context,
	resourceType string,
	id uuid.UUID,
) (*resourceDomain.Record, error) {
	query := `SELECT id, type, data, created_at, updated_at
			  FROM resources WHERE type = ? AND id = ? FOR UPDATE`

	return r.getOne(ctx, query, resourceType, id)
}

func (r *MySQLRecordRepository) getOne(
	ctx context.Context,
	query string,
	resourceType string,
	id uuid.UUID,
) (*resourceDomain.Record, error) {
	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	var record resourceDomain.Record
	var idBytes, data []byte
	querier := database.GetTx(ctx, r.db)

	err = querier.QueryRowContext(ctx, query, resourceType, uuidBytes).Scan(
		&idBytes, &record.Type, &data, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resourceDomain.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get record")
	}

	if err := record.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := decodeFields(&record, data); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update replaces the stored fields of an existing record. Callers lock the row with
// GetForUpdate first; MySQL reports zero affected rows for an unchanged row, so the
// affected count is not checked here.
func (r *MySQLRecordRepository) Update(ctx context.Context, record *resourceDomain.Record) error {
	querier := database.GetTx(ctx, r.db)

	uuidBytes, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	data, err := json.Marshal(record.Fields)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode record fields")
	}

	query := `UPDATE resources SET data = ?, updated_at = ? WHERE type = ? AND id = ?`

	if _, err := querier.ExecContext(ctx, query, data, record.UpdatedAt, record.Type, uuidBytes); err != nil {
		return apperrors.Wrap(err, "failed to update record")
	}
	return nil
}

// Delete removes a record by type and id.
func (r *MySQLRecordRepository) Delete(ctx context.Context, resourceType string, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `DELETE FROM resources WHERE type = ? AND id = ?`

	result, err := querier.ExecContext(ctx, query, resourceType, uuidBytes)
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
