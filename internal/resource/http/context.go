// Package http provides the generic CRUD handlers for registered resource types.
package http

import (
	"context"

	resourceUseCase "github.com/allisson/resourceapi/internal/resource/usecase"
)

// adapterKey is a context key type for the adapter resolved from the :model path parameter.
type adapterKey struct{}

// WithAdapter stores the resolved adapter in the context.
func WithAdapter(ctx context.Context, adapter resourceUseCase.ResourceAdapter) context.Context {
	return context.WithValue(ctx, adapterKey{}, adapter)
}

// GetAdapter returns the adapter resolved by ResourceTypeMiddleware.
func GetAdapter(ctx context.Context) (resourceUseCase.ResourceAdapter, bool) {
	adapter, ok := ctx.Value(adapterKey{}).(resourceUseCase.ResourceAdapter)
	return adapter, ok && adapter != nil
}
