// Package usecase defines business logic interfaces for authentication and authorization operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create stores a new user. Returns ErrUserAlreadyExists when the username is taken.
	Create(ctx context.Context, user *authDomain.User) error

	// GetByID retrieves a user by ID. Returns ErrUserNotFound if not found.
	GetByID(ctx context.Context, id uuid.UUID) (*authDomain.User, error)

	// GetByUsername retrieves a user by username. Returns ErrUserNotFound if not found.
	GetByUsername(ctx context.Context, username string) (*authDomain.User, error)

	// UpdateRole assigns a role to the named user. Returns ErrUserNotFound if not found.
	UpdateRole(ctx context.Context, username, role string) error
}

// RoleRepository defines persistence operations for roles.
type RoleRepository interface {
	// Create stores a new role. Returns ErrRoleAlreadyExists when the name is taken.
	Create(ctx context.Context, role *authDomain.Role) error

	// Get retrieves a role by name. Returns ErrRoleNotFound if not found.
	Get(ctx context.Context, name string) (*authDomain.Role, error)

	List(ctx context.Context) ([]*authDomain.Role, error)
}

// EventPublisher announces role and user changes and authorization failures.
type EventPublisher interface {
	Publish(ctx context.Context, channel, topic string, payload any)
}

// RoleUseCase is the capability directory: it resolves role names to the actions they grant.
type RoleUseCase interface {
	// Capabilities returns a fresh copy of the role's action set. An unknown role grants nothing.
	Capabilities(ctx context.Context, role string) (authDomain.Capabilities, error)

	// Create stores a new role.
	Create(ctx context.Context, role *authDomain.Role) error

	// List returns every role ordered by name.
	List(ctx context.Context) ([]*authDomain.Role, error)
}

// IdentityUseCase turns presented credentials into a principal.
type IdentityUseCase interface {
	// AuthenticateBasic verifies a username and password, looks up the user's current role
	// and returns the principal together with a freshly signed token.
	//
	// Returns ErrInvalidCredentials for both unknown users and wrong passwords.
	AuthenticateBasic(ctx context.Context, username, password string) (*authDomain.Principal, string, error)

	// AuthenticateBearer verifies a signed token. Returns ErrInvalidToken on any failure.
	AuthenticateBearer(ctx context.Context, token string) (*authDomain.Principal, error)

	// Reissue signs a new token carrying the principal's existing capability snapshot.
	Reissue(ctx context.Context, principal *authDomain.Principal) (string, error)

	// IssueKey signs a non-expiring token for the principal.
	IssueKey(ctx context.Context, principal *authDomain.Principal) (string, error)
}

// UserUseCase manages user accounts.
type UserUseCase interface {
	// SignUp registers a user and returns it together with a signed token.
	SignUp(ctx context.Context, input *authDomain.SignUpInput) (*authDomain.User, string, error)

	// SetRole changes the role of the named user. Only callers holding the elevated role,
	// checked against the store rather than the token, may do this.
	SetRole(ctx context.Context, caller *authDomain.Principal, username, role string) error

	// Create registers a user with any existing role. Used by the CLI.
	Create(ctx context.Context, input *authDomain.SignUpInput) (*authDomain.User, error)

	// OAuthSignIn exchanges an OAuth authorization code, finds or creates the matching user
	// and returns a signed token.
	OAuthSignIn(ctx context.Context, code string) (string, error)
}

// AuthorizationUseCase decides whether a principal may perform an action.
type AuthorizationUseCase interface {
	// Authorize returns a Forbidden error when the principal lacks the action. The failure is
	// published on the database channel before it is returned.
	Authorize(ctx context.Context, principal *authDomain.Principal, action authDomain.Action) error
}
