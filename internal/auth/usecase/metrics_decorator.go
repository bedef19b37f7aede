package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
	"github.com/allisson/resourceapi/internal/metrics"
)

// identityUseCaseWithMetrics decorates IdentityUseCase with metrics instrumentation.
type identityUseCaseWithMetrics struct {
	next    IdentityUseCase
	metrics metrics.BusinessMetrics
}

// NewIdentityUseCaseWithMetrics wraps an IdentityUseCase with metrics recording.
func NewIdentityUseCaseWithMetrics(useCase IdentityUseCase, m metrics.BusinessMetrics) IdentityUseCase {
	return &identityUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (i *identityUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, i.metrics, "auth", operation, start, err)
}

// AuthenticateBasic records metrics for password authentication.
func (i *identityUseCaseWithMetrics) AuthenticateBasic(
	ctx context.Context,
	username, password string,
) (*authDomain.Principal, string, error) {
	start := time.Now()
	principal, token, err := i.next.AuthenticateBasic(ctx, username, password)
	i.record(ctx, "authenticate_basic", start, err)
	return principal, token, err
}

// AuthenticateBearer records metrics for token authentication.
func (i *identityUseCaseWithMetrics) AuthenticateBearer(
	ctx context.Context,
	token string,
) (*authDomain.Principal, error) {
	start := time.Now()
	principal, err := i.next.AuthenticateBearer(ctx, token)
	i.record(ctx, "authenticate_bearer", start, err)
	return principal, err
}

// Reissue records metrics for token re-issuance.
func (i *identityUseCaseWithMetrics) Reissue(ctx context.Context, principal *authDomain.Principal) (string, error) {
	start := time.Now()
	token, err := i.next.Reissue(ctx, principal)
	i.record(ctx, "token_reissue", start, err)
	return token, err
}

// IssueKey records metrics for key issuance.
func (i *identityUseCaseWithMetrics) IssueKey(ctx context.Context, principal *authDomain.Principal) (string, error) {
	start := time.Now()
	key, err := i.next.IssueKey(ctx, principal)
	i.record(ctx, "key_issue", start, err)
	return key, err
}

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, u.metrics, "auth", operation, start, err)
}

// SignUp records metrics for user registration.
func (u *userUseCaseWithMetrics) SignUp(
	ctx context.Context,
	input *authDomain.SignUpInput,
) (*authDomain.User, string, error) {
	start := time.Now()
	user, token, err := u.next.SignUp(ctx, input)
	u.record(ctx, "signup", start, err)
	return user, token, err
}

// SetRole records metrics for role changes.
func (u *userUseCaseWithMetrics) SetRole(
	ctx context.Context,
	caller *authDomain.Principal,
	username, role string,
) error {
	start := time.Now()
	err := u.next.SetRole(ctx, caller, username, role)
	u.record(ctx, "set_role", start, err)
	return err
}

// Create records metrics for administrative user creation.
func (u *userUseCaseWithMetrics) Create(
	ctx context.Context,
	input *authDomain.SignUpInput,
) (*authDomain.User, error) {
	start := time.Now()
	user, err := u.next.Create(ctx, input)
	u.record(ctx, "user_create", start, err)
	return user, err
}

// OAuthSignIn records metrics for OAuth sign in.
func (u *userUseCaseWithMetrics) OAuthSignIn(ctx context.Context, code string) (string, error) {
	start := time.Now()
	token, err := u.next.OAuthSignIn(ctx, code)
	u.record(ctx, "oauth_signin", start, err)
	return token, err
}
