package usecase

import (
	"strings"

	resourceDomain "github.com/allisson/resourceapi/internal/resource/domain"
)

// Registry resolves resource type names to adapters. It is built once at startup and is
// read-only afterwards.
type Registry struct {
	adapters map[string]ResourceAdapter
}

// NewRegistry indexes the adapters by lower-cased name.
func NewRegistry(adapters ...ResourceAdapter) *Registry {
	index := make(map[string]ResourceAdapter, len(adapters))
	for _, adapter := range adapters {
		index[strings.ToLower(adapter.Name())] = adapter
	}
	return &Registry{adapters: index}
}

// Resolve matches name case-insensitively.
func (r *Registry) Resolve(name string) (ResourceAdapter, error) {
	adapter, ok := r.adapters[strings.ToLower(name)]
	if !ok {
		return nil, resourceDomain.NewUnknownResourceTypeError(name)
	}
	return adapter, nil
}
