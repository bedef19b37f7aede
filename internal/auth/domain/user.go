package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account able to sign in.
type User struct {
	ID        uuid.UUID // UUIDv7
	Username  string
	Password  string //nolint:gosec // argon2id hash, never plaintext
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SignUpInput holds the data needed to register a user.
// Role is honored only where role selection is allowed; otherwise the default role applies.
type SignUpInput struct {
	Username string
	Password string //nolint:gosec // plaintext input, hashed before storage
	Role     string
}
