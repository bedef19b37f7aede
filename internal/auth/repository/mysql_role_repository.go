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

// MySQLRoleRepository handles role persistence for MySQL.
type MySQLRoleRepository struct {
	db *sql.DB
}

// NewMySQLRoleRepository creates a new MySQLRoleRepository.
func NewMySQLRoleRepository(db *sql.DB) *MySQLRoleRepository {
	return &MySQLRoleRepository{db: db}
}

// Create inserts a new role.
func (r *MySQLRoleRepository) Create(ctx context.Context, role *authDomain.Role) error {
	querier := database.GetTx(ctx, r.db)

	capabilitiesJSON, err := json.Marshal(role.Capabilities)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role capabilities")
	}

	query := `INSERT INTO roles (name, capabilities, created_at, updated_at) VALUES (?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, role.Name, capabilitiesJSON, role.CreatedAt, role.UpdatedAt)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return authDomain.ErrRoleAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create role")
	}
	return nil
}

// Get retrieves a role by name.
func (r *MySQLRoleRepository) Get(ctx context.Context, name string) (*authDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT name, capabilities, created_at, updated_at FROM roles WHERE name = ?`

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
func (r *MySQLRoleRepository) List(ctx context.Context) ([]*authDomain.Role, error) {
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
