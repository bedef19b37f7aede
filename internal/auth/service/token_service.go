package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
	apperrors "github.com/allisson/resourceapi/internal/errors"
)

// tokenClaims is the JWT payload. "id" mirrors "sub" for clients that read the subject
// from the id claim.
type tokenClaims struct {
	jwt.RegisteredClaims
	SubjectID    string   `json:"id"`
	Capabilities []string `json:"capabilities"`
}

// tokenService implements TokenService with HS256 signed JWTs.
type tokenService struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewTokenService creates a TokenService signing with the process-wide secret.
// An expiration of zero issues tokens without an exp claim.
func NewTokenService(secret []byte, expiration time.Duration) TokenService {
	return &tokenService{
		secret:     secret,
		expiration: expiration,
		now:        time.Now,
	}
}

// Issue signs a token that expires after the configured lifetime.
func (t *tokenService) Issue(subjectID uuid.UUID, capabilities authDomain.Capabilities) (string, error) {
	return t.sign(subjectID, capabilities, t.expiration)
}

// IssueKey signs a token without an expiry.
func (t *tokenService) IssueKey(subjectID uuid.UUID, capabilities authDomain.Capabilities) (string, error) {
	return t.sign(subjectID, capabilities, 0)
}

func (t *tokenService) sign(
	subjectID uuid.UUID,
	capabilities authDomain.Capabilities,
	lifetime time.Duration,
) (string, error) {
	now := t.now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  subjectID.String(),
			IssuedAt: jwt.NewNumericDate(now),
		},
		SubjectID:    subjectID.String(),
		Capabilities: capabilities.Strings(),
	}
	if lifetime > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(lifetime))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Verify parses the token, checks its HS256 signature and expiry, and rebuilds the principal.
func (t *tokenService) Verify(token string) (*authDomain.Principal, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", authDomain.ErrInvalidToken, err)
	}

	rawID := claims.SubjectID
	if rawID == "" {
		rawID = claims.Subject
	}
	subjectID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apperrors.Wrap(authDomain.ErrInvalidToken, "invalid subject claim")
	}

	capabilities, err := authDomain.ParseCapabilities(claims.Capabilities)
	if err != nil {
		return nil, apperrors.Wrap(authDomain.ErrInvalidToken, err.Error())
	}

	return authDomain.NewPrincipal(subjectID, capabilities), nil
}
