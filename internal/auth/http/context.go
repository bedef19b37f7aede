// Package http provides HTTP middleware and handlers for authentication and authorization.
package http

import (
	"context"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
)

// principalKey is a context key type for storing the authenticated principal.
type principalKey struct{}

// issuedTokenKey is a context key type for the token minted while resolving Basic credentials.
type issuedTokenKey struct{}

// WithPrincipal stores an authenticated principal in the context.
// This is typically called by the authentication middleware after credentials are verified.
func WithPrincipal(ctx context.Context, principal *authDomain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the authenticated principal from the context.
// Returns (principal, true) if a principal is present, or (nil, false) if none was set.
func GetPrincipal(ctx context.Context) (*authDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*authDomain.Principal)
	return principal, ok && principal != nil
}

// WithIssuedToken stores the token signed during Basic authentication.
func WithIssuedToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, issuedTokenKey{}, token)
}

// GetIssuedToken returns the token signed during Basic authentication, if any.
func GetIssuedToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(issuedTokenKey{}).(string)
	return token, ok && token != ""
}
