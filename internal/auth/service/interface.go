// Package service provides technical services for authentication: password hashing,
// signed token issuance and verification, signing secret loading, and the OAuth exchange.
package service

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
)

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	// Hash returns the Argon2id PHC string for the plain password.
	Hash(plainPassword string) (string, error)

	// Compare reports whether the plain password matches the hash. Runs in constant time.
	Compare(plainPassword, hashedPassword string) bool
}

// TokenService issues and verifies signed tokens carrying a capability snapshot.
type TokenService interface {
	// Issue signs a token for the subject that expires after the configured lifetime.
	Issue(subjectID uuid.UUID, capabilities authDomain.Capabilities) (string, error)

	// IssueKey signs a token for the subject that never expires.
	IssueKey(subjectID uuid.UUID, capabilities authDomain.Capabilities) (string, error)

	// Verify checks the signature and expiry and returns the embedded principal.
	// Any failure is reported as authDomain.ErrInvalidToken.
	Verify(token string) (*authDomain.Principal, error)
}

// OAuthProfile is the identity returned by the OAuth provider.
type OAuthProfile struct {
	Subject string
	Email   string
}

// OAuthService exchanges an authorization code for the caller's provider profile.
type OAuthService interface {
	Exchange(ctx context.Context, code string) (*OAuthProfile, error)
}
