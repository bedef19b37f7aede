package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
	authService "github.com/allisson/resourceapi/internal/auth/service"
	"github.com/allisson/resourceapi/internal/config"
	eventDomain "github.com/allisson/resourceapi/internal/event/domain"
)

type userUseCase struct {
	config          *config.Config
	userRepo        UserRepository
	roleRepo        RoleRepository
	roles           RoleUseCase
	passwordService authService.PasswordService
	tokenService    authService.TokenService
	oauthService    authService.OAuthService
	publisher       EventPublisher
	logger          *slog.Logger
}

// SignUp registers the user under the default role unless role selection is enabled and the
// input names one, then signs a token from that role's capabilities.
func (u *userUseCase) SignUp(
	ctx context.Context,
	input *authDomain.SignUpInput,
) (*authDomain.User, string, error) {
	role := u.config.AuthDefaultRole
	if u.config.AuthSignupRoleSelection && input.Role != "" {
		role = input.Role
	}

	user, err := u.create(ctx, input.Username, input.Password, role)
	if err != nil {
		return nil, "", err
	}

	token, err := u.issue(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (u *userUseCase) Create(ctx context.Context, input *authDomain.SignUpInput) (*authDomain.User, error) {
	role := input.Role
	if role == "" {
		role = u.config.AuthDefaultRole
	}
	return u.create(ctx, input.Username, input.Password, role)
}

// SetRole checks the caller's stored role, not the capabilities in the presented token.
func (u *userUseCase) SetRole(
	ctx context.Context,
	caller *authDomain.Principal,
	username, role string,
) error {
	if caller == nil {
		return authDomain.ErrElevatedRoleRequired
	}

	callerUser, err := u.userRepo.GetByID(ctx, caller.SubjectID)
	if err != nil {
		if errors.Is(err, authDomain.ErrUserNotFound) {
			return authDomain.ErrElevatedRoleRequired
		}
		return err
	}
	if callerUser.Role != u.config.AuthElevatedRole {
		return authDomain.ErrElevatedRoleRequired
	}

	if err := u.ensureRole(ctx, role); err != nil {
		return err
	}

	if err := u.userRepo.UpdateRole(ctx, username, role); err != nil {
		return err
	}

	u.publisher.Publish(ctx, eventDomain.ChannelDatabase, eventDomain.TopicUpdate, map[string]string{
		"model":    "users",
		"username": username,
		"role":     role,
	})
	return nil
}

// OAuthSignIn finds the user by the provider email (or subject when the provider hides the
// email) and creates one with the default role and a random password on first sign in.
func (u *userUseCase) OAuthSignIn(ctx context.Context, code string) (string, error) {
	profile, err := u.oauthService.Exchange(ctx, code)
	if err != nil {
		return "", err
	}

	username := profile.Email
	if username == "" {
		username = "google:" + profile.Subject
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, authDomain.ErrUserNotFound) {
			return "", err
		}

		user, err = u.create(ctx, username, rand.Text(), u.config.AuthDefaultRole)
		if errors.Is(err, authDomain.ErrUserAlreadyExists) {
			// Lost a race with a concurrent first sign in.
			user, err = u.userRepo.GetByUsername(ctx, username)
		}
		if err != nil {
			return "", err
		}
		u.logger.Info("created user from oauth profile", slog.String("username", username))
	}

	return u.issue(ctx, user)
}

func (u *userUseCase) create(ctx context.Context, username, password, role string) (*authDomain.User, error) {
	if err := u.ensureRole(ctx, role); err != nil {
		return nil, err
	}

	hash, err := u.passwordService.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &authDomain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Username:  username,
		Password:  hash,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	u.publisher.Publish(ctx, eventDomain.ChannelDatabase, eventDomain.TopicCreate, map[string]string{
		"model":  "users",
		"record": user.Username,
	})
	return user, nil
}

func (u *userUseCase) ensureRole(ctx context.Context, role string) error {
	if _, err := u.roleRepo.Get(ctx, role); err != nil {
		if errors.Is(err, authDomain.ErrRoleNotFound) {
			return authDomain.ErrUnknownRole
		}
		return err
	}
	return nil
}

func (u *userUseCase) issue(ctx context.Context, user *authDomain.User) (string, error) {
	capabilities, err := u.roles.Capabilities(ctx, user.Role)
	if err != nil {
		return "", err
	}
	return u.tokenService.Issue(user.ID, capabilities)
}

// NewUserUseCase creates a new UserUseCase with the provided dependencies.
func NewUserUseCase(
	config *config.Config,
	userRepo UserRepository,
	roleRepo RoleRepository,
	roles RoleUseCase,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
	oauthService authService.OAuthService,
	publisher EventPublisher,
	logger *slog.Logger,
) UserUseCase {
	return &userUseCase{
		config:          config,
		userRepo:        userRepo,
		roleRepo:        roleRepo,
		roles:           roles,
		passwordService: passwordService,
		tokenService:    tokenService,
		oauthService:    oauthService,
		publisher:       publisher,
		logger:          logger,
	}
}
