package domain

import (
	"fmt"

	"github.com/allisson/resourceapi/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrUnauthenticated indicates no usable credential was presented.
	ErrUnauthenticated = errors.WithMessage(errors.ErrUnauthorized, "Invalid Login")

	// ErrInvalidCredentials indicates an unknown username or a wrong password.
	ErrInvalidCredentials = errors.WithMessage(errors.ErrUnauthorized, "Invalid User ID/Password")

	// ErrInvalidToken indicates a token with a bad signature, a bad format or past its expiry.
	ErrInvalidToken = errors.WithMessage(errors.ErrUnauthorized, "Invalid Token")

	// ErrElevatedRoleRequired indicates the caller may not change roles.
	ErrElevatedRoleRequired = errors.WithMessage(errors.ErrUnauthorized, "I'm sorry, I can't let you do that.")

	// ErrUserNotFound indicates a user with the given username or id does not exist.
	ErrUserNotFound = errors.WithMessage(errors.ErrNotFound, "User not found")

	// ErrUserAlreadyExists indicates the username is taken.
	ErrUserAlreadyExists = errors.WithMessage(errors.ErrConflict, "Username already exists")

	// ErrRoleNotFound indicates the role is missing from the directory.
	ErrRoleNotFound = errors.Wrap(errors.ErrNotFound, "role not found")

	// ErrUnknownRole indicates a request named a role that does not exist.
	ErrUnknownRole = errors.WithMessage(errors.ErrInvalidInput, "Unknown role")

	// ErrRoleAlreadyExists indicates a role with the same name exists.
	ErrRoleAlreadyExists = errors.WithMessage(errors.ErrConflict, "Role already exists")

	// ErrOAuthNotConfigured indicates the OAuth provider credentials are missing.
	ErrOAuthNotConfigured = errors.New("oauth provider is not configured")

	// ErrOAuthExchange indicates the provider rejected the code or the profile lookup failed.
	ErrOAuthExchange = errors.WithMessage(errors.ErrUnauthorized, "OAuth sign in failed")
)

// NewForbiddenError reports a principal lacking the action required by the request.
func NewForbiddenError(action Action) error {
	return errors.WithMessage(
		errors.ErrForbidden,
		fmt.Sprintf("You don't have permission to %s that resource", action),
	)
}
