package app

import (
	"fmt"
	"sync"

	authHTTP "github.com/allisson/resourceapi/internal/auth/http"
	authRepository "github.com/allisson/resourceapi/internal/auth/repository"
	authService "github.com/allisson/resourceapi/internal/auth/service"
	authUseCase "github.com/allisson/resourceapi/internal/auth/usecase"
	"github.com/allisson/resourceapi/internal/database"
)

type authComponents struct {
	passwordService      authService.PasswordService
	tokenService         authService.TokenService
	oauthService         authService.OAuthService
	userRepository       authUseCase.UserRepository
	roleRepository       authUseCase.RoleRepository
	roleUseCase          authUseCase.RoleUseCase
	identityUseCase      authUseCase.IdentityUseCase
	userUseCase          authUseCase.UserUseCase
	authorizationUseCase authUseCase.AuthorizationUseCase
	authHandler          *authHTTP.AuthHandler

	passwordServiceInit      sync.Once
	tokenServiceInit         sync.Once
	oauthServiceInit         sync.Once
	userRepositoryInit       sync.Once
	roleRepositoryInit       sync.Once
	roleUseCaseInit          sync.Once
	identityUseCaseInit      sync.Once
	userUseCaseInit          sync.Once
	authorizationUseCaseInit sync.Once
	authHandlerInit          sync.Once
}

// PasswordService returns the Argon2id password hasher.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// TokenService returns the token signer. The signing secret is decrypted through KMS when
// KMS_KEY_URI is set.
func (c *Container) TokenService() (authService.TokenService, error) {
	return lazy(c, &c.tokenServiceInit, "tokenService", &c.tokenService, c.initTokenService)
}

// OAuthService returns the Google OAuth code exchanger.
func (c *Container) OAuthService() authService.OAuthService {
	c.oauthServiceInit.Do(func() {
		c.oauthService = authService.NewOAuthService(authService.OAuthConfig{
			ClientID:     c.config.OAuthGoogleClientID,
			ClientSecret: c.config.OAuthGoogleClientSecret,
			RedirectURL:  c.config.OAuthGoogleRedirectURL,
		})
	})
	return c.oauthService
}

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (authUseCase.UserRepository, error) {
	return lazy(c, &c.userRepositoryInit, "userRepository", &c.userRepository, c.initUserRepository)
}

// RoleRepository returns the role repository based on database driver.
func (c *Container) RoleRepository() (authUseCase.RoleRepository, error) {
	return lazy(c, &c.roleRepositoryInit, "roleRepository", &c.roleRepository, c.initRoleRepository)
}

// RoleUseCase returns the capability directory.
func (c *Container) RoleUseCase() (authUseCase.RoleUseCase, error) {
	return lazy(c, &c.roleUseCaseInit, "roleUseCase", &c.roleUseCase, c.initRoleUseCase)
}

// IdentityUseCase returns the credential verifier.
func (c *Container) IdentityUseCase() (authUseCase.IdentityUseCase, error) {
	return lazy(c, &c.identityUseCaseInit, "identityUseCase", &c.identityUseCase, c.initIdentityUseCase)
}

// UserUseCase returns the account management use case.
func (c *Container) UserUseCase() (authUseCase.UserUseCase, error) {
	return lazy(c, &c.userUseCaseInit, "userUseCase", &c.userUseCase, c.initUserUseCase)
}

// AuthorizationUseCase returns the capability check.
func (c *Container) AuthorizationUseCase() (authUseCase.AuthorizationUseCase, error) {
	return lazy(
		c,
		&c.authorizationUseCaseInit,
		"authorizationUseCase",
		&c.authorizationUseCase,
		c.initAuthorizationUseCase,
	)
}

// AuthHandler returns the HTTP handler for the account endpoints.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	return lazy(c, &c.authHandlerInit, "authHandler", &c.authHandler, c.initAuthHandler)
}

func (c *Container) initTokenService() (authService.TokenService, error) {
	secret, err := authService.LoadSigningSecret(c.ctx, c.config.AuthTokenSecret, c.config.KMSKeyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to load token signing secret: %w", err)
	}
	return authService.NewTokenService(secret, c.config.AuthTokenExpiration), nil
}

// initUserRepository creates the user repository based on the database driver.
func (c *Container) initUserRepository() (authUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return authRepository.NewPostgreSQLUserRepository(db), nil
	case database.DriverMySQL:
		return authRepository.NewMySQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initRoleRepository creates the role repository based on the database driver.
func (c *Container) initRoleRepository() (authUseCase.RoleRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for role repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return authRepository.NewPostgreSQLRoleRepository(db), nil
	case database.DriverMySQL:
		return authRepository.NewMySQLRoleRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initRoleUseCase() (authUseCase.RoleUseCase, error) {
	roleRepository, err := c.RoleRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get role repository for role use case: %w", err)
	}

	publisher, err := c.EventPublisher()
	if err != nil {
		return nil, fmt.Errorf("failed to get event publisher for role use case: %w", err)
	}

	return authUseCase.NewRoleUseCase(roleRepository, publisher, c.Logger()), nil
}

func (c *Container) initIdentityUseCase() (authUseCase.IdentityUseCase, error) {
	userRepository, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for identity use case: %w", err)
	}

	roleUseCase, err := c.RoleUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get role use case for identity use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, err
	}

	baseUseCase := authUseCase.NewIdentityUseCase(userRepository, roleUseCase, c.PasswordService(), tokenService)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for identity use case: %w", err)
		}
		return authUseCase.NewIdentityUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initUserUseCase() (authUseCase.UserUseCase, error) {
	userRepository, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	roleRepository, err := c.RoleRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get role repository for user use case: %w", err)
	}

	roleUseCase, err := c.RoleUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get role use case for user use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, err
	}

	publisher, err := c.EventPublisher()
	if err != nil {
		return nil, fmt.Errorf("failed to get event publisher for user use case: %w", err)
	}

	baseUseCase := authUseCase.NewUserUseCase(
		c.config,
		userRepository,
		roleRepository,
		roleUseCase,
		c.PasswordService(),
		tokenService,
		c.OAuthService(),
		publisher,
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
		}
		return authUseCase.NewUserUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initAuthorizationUseCase() (authUseCase.AuthorizationUseCase, error) {
	publisher, err := c.EventPublisher()
	if err != nil {
		return nil, fmt.Errorf("failed to get event publisher for authorization use case: %w", err)
	}
	return authUseCase.NewAuthorizationUseCase(publisher), nil
}

func (c *Container) initAuthHandler() (*authHTTP.AuthHandler, error) {
	identityUseCase, err := c.IdentityUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity use case for auth handler: %w", err)
	}

	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for auth handler: %w", err)
	}

	return authHTTP.NewAuthHandler(identityUseCase, userUseCase, c.Logger()), nil
}
