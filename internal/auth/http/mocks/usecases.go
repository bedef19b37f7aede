// Package mocks provides mock implementations of the auth use cases for testing HTTP handlers
// and CLI commands.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
)

// MockIdentityUseCase is a mock implementation of IdentityUseCase for testing.
type MockIdentityUseCase struct {
	mock.Mock
}

// AuthenticateBasic mocks the AuthenticateBasic method of IdentityUseCase.
func (m *MockIdentityUseCase) AuthenticateBasic(
	ctx context.Context,
	username, password string,
) (*authDomain.Principal, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*authDomain.Principal), args.String(1), args.Error(2)
}

// AuthenticateBearer mocks the AuthenticateBearer method of IdentityUseCase.
func (m *MockIdentityUseCase) AuthenticateBearer(ctx context.Context, token string) (*authDomain.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Principal), args.Error(1)
}

// Reissue mocks the Reissue method of IdentityUseCase.
func (m *MockIdentityUseCase) Reissue(ctx context.Context, principal *authDomain.Principal) (string, error) {
	args := m.Called(ctx, principal)
	return args.String(0), args.Error(1)
}

// IssueKey mocks the IssueKey method of IdentityUseCase.
func (m *MockIdentityUseCase) IssueKey(ctx context.Context, principal *authDomain.Principal) (string, error) {
	args := m.Called(ctx, principal)
	return args.String(0), args.Error(1)
}

// MockUserUseCase is a mock implementation of UserUseCase for testing.
type MockUserUseCase struct {
	mock.Mock
}

// SignUp mocks the SignUp method of UserUseCase.
func (m *MockUserUseCase) SignUp(
	ctx context.Context,
	input *authDomain.SignUpInput,
) (*authDomain.User, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*authDomain.User), args.String(1), args.Error(2)
}

// SetRole mocks the SetRole method of UserUseCase.
func (m *MockUserUseCase) SetRole(
	ctx context.Context,
	caller *authDomain.Principal,
	username, role string,
) error {
	args := m.Called(ctx, caller, username, role)
	return args.Error(0)
}

// Create mocks the Create method of UserUseCase.
func (m *MockUserUseCase) Create(ctx context.Context, input *authDomain.SignUpInput) (*authDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

// OAuthSignIn mocks the OAuthSignIn method of UserUseCase.
func (m *MockUserUseCase) OAuthSignIn(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

// MockAuthorizationUseCase is a mock implementation of AuthorizationUseCase for testing.
type MockAuthorizationUseCase struct {
	mock.Mock
}

// Authorize mocks the Authorize method of AuthorizationUseCase.
func (m *MockAuthorizationUseCase) Authorize(
	ctx context.Context,
	principal *authDomain.Principal,
	action authDomain.Action,
) error {
	args := m.Called(ctx, principal, action)
	return args.Error(0)
}

// MockRoleUseCase is a mock implementation of RoleUseCase for testing.
type MockRoleUseCase struct {
	mock.Mock
}

// Capabilities mocks the Capabilities method of RoleUseCase.
func (m *MockRoleUseCase) Capabilities(ctx context.Context, role string) (authDomain.Capabilities, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(authDomain.Capabilities), args.Error(1)
}

// Create mocks the Create method of RoleUseCase.
func (m *MockRoleUseCase) Create(ctx context.Context, role *authDomain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

// List mocks the List method of RoleUseCase.
func (m *MockRoleUseCase) List(ctx context.Context) ([]*authDomain.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*authDomain.Role), args.Error(1)
}
