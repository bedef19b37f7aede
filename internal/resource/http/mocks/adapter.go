// Package mocks provides testify mocks for the resource use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	resourceDomain "github.com/allisson/resourceapi/internal/resource/domain"
)

// MockResourceAdapter is a mock implementation of usecase.ResourceAdapter.
type MockResourceAdapter struct {
	mock.Mock
	ResourceName string
}

func (m *MockResourceAdapter) Name() string {
	return m.ResourceName
}

func (m *MockResourceAdapter) List(ctx context.Context) ([]*resourceDomain.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*resourceDomain.Record), args.Error(1)
}

func (m *MockResourceAdapter) Get(ctx context.Context, id string) (*resourceDomain.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resourceDomain.Record), args.Error(1)
}

func (m *MockResourceAdapter) Create(ctx context.Context, fields map[string]any) (*resourceDomain.Record, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resourceDomain.Record), args.Error(1)
}

func (m *MockResourceAdapter) Update(
	ctx context.Context,
	id string,
	partial map[string]any,
) (*resourceDomain.Record, error) {
	args := m.Called(ctx, id, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resourceDomain.Record), args.Error(1)
}

func (m *MockResourceAdapter) Delete(ctx context.Context, id string) (*resourceDomain.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resourceDomain.Record), args.Error(1)
}
