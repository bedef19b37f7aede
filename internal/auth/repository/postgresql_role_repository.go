package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
	"github.com/allisson/resourceapi/internal/database"
	apperrors "github.com/allisson/resourceapi/internal/errors"
)

// PostgreSQLRoleRepository handles role persistence for PostgreSQL.
// Capabilities are stored as a JSONB array of action names.
type PostgreSQLRoleRepository struct {
	db *sql.DB
}

// NewPostgreSQLRoleRepository creates a new PostgreSQLRoleRepository.
func NewPostgreSQLRoleRepository(db *sql.DB) *PostgreSQLRoleRepository {
	return &PostgreSQLRoleRepository{db: db}
}

// Create inserts a new role.
func (r *PostgreSQLRoleRepository) Create(ctx context.Context, role *authDomain.Role) error {
	querier := database.GetTx(ctx, r.db)

	capabilitiesJSON, err := json.Marshal(role.Capabilities)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role capabilities")
	}

	query := `INSERT INTO roles (name, capabilities, created_at, updated_at) VALUES ($1, $2, $3, $4)`

	_, err = querier.ExecContext(ctx, query, role.Name, capabilitiesJSON, role.CreatedAt, role.UpdatedAt)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return authDomain.ErrRoleAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create role")
	}
	return nil
}

// Get retrieves a role by name.
func (r *PostgreSQLRoleRepository) Get(ctx context.Context, name string) (*authDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT name, capabilities, created_at, updated_at FROM roles WHERE name = $1`

	role, err := scanRole(querier.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrRoleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get role")
	}
	return role, nil
}

// List retrieves all roles ordered by name.
func (r *PostgreSQLRoleRepository) List(ctx context.Context) ([]*authDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, `SELECT name, capabilities, created_at, updated_at FROM roles ORDER BY name`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list roles")
	}
	defer func() {
		_ = rows.Close()
	}()

	return collectRoles(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRole reads a role row shared by both drivers.
func scanRole(row rowScanner) (*authDomain.Role, error) {
	var role authDomain.Role
	var capabilitiesJSON []byte

	if err := row.Scan(&role.Name, &capabilitiesJSON, &role.CreatedAt, &role.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(capabilitiesJSON, &role.Capabilities); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal role capabilities")
	}
	return &role, nil
}

func collectRoles(rows *sql.Rows) ([]*authDomain.Role, error) {
	roles := make([]*authDomain.Role, 0)
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan role")
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate roles")
	}
	return roles, nil
}
