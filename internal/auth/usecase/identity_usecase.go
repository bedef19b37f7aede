package usecase

import (
	"context"
	"errors"
	"sync"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
	authService "github.com/allisson/resourceapi/internal/auth/service"
)

// dummyPassword is hashed once and compared against when the username is unknown, so both
// failure paths spend the same time in Argon2id.
const dummyPassword = "resourceapi-dummy-password"

type identityUseCase struct {
	userRepo        UserRepository
	roles           RoleUseCase
	passwordService authService.PasswordService
	tokenService    authService.TokenService

	dummyOnce sync.Once
	dummyHash string
}

// AuthenticateBasic verifies the password and mints a token from the user's current role.
//
// Security Notes:
//   - Returns ErrInvalidCredentials for both unknown users and wrong passwords to prevent
//     user enumeration
//   - The role is looked up on every call, so Basic credentials always carry fresh capabilities
func (i *identityUseCase) AuthenticateBasic(
	ctx context.Context,
	username, password string,
) (*authDomain.Principal, string, error) {
	user, err := i.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, authDomain.ErrUserNotFound) {
			i.passwordService.Compare(password, i.dummy())
			return nil, "", authDomain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !i.passwordService.Compare(password, user.Password) {
		return nil, "", authDomain.ErrInvalidCredentials
	}

	capabilities, err := i.roles.Capabilities(ctx, user.Role)
	if err != nil {
		return nil, "", err
	}

	token, err := i.tokenService.Issue(user.ID, capabilities)
	if err != nil {
		return nil, "", err
	}

	return authDomain.NewPrincipal(user.ID, capabilities), token, nil
}

func (i *identityUseCase) AuthenticateBearer(ctx context.Context, token string) (*authDomain.Principal, error) {
	return i.tokenService.Verify(token)
}

// Reissue keeps the snapshot of the presented token. A role changed after that token was
// issued is only picked up by a Basic sign in.
func (i *identityUseCase) Reissue(ctx context.Context, principal *authDomain.Principal) (string, error) {
	return i.tokenService.Issue(principal.SubjectID, principal.Capabilities)
}

func (i *identityUseCase) IssueKey(ctx context.Context, principal *authDomain.Principal) (string, error) {
	return i.tokenService.IssueKey(principal.SubjectID, principal.Capabilities)
}

func (i *identityUseCase) dummy() string {
	i.dummyOnce.Do(func() {
		hash, err := i.passwordService.Hash(dummyPassword)
		if err == nil {
			i.dummyHash = hash
		}
	})
	return i.dummyHash
}

// NewIdentityUseCase creates a new IdentityUseCase with the provided dependencies.
func NewIdentityUseCase(
	userRepo UserRepository,
	roles RoleUseCase,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
) IdentityUseCase {
	return &identityUseCase{
		userRepo:        userRepo,
		roles:           roles,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}
