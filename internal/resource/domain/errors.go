package domain

import (
	"fmt"

	"github.com/allisson/resourceapi/internal/errors"
)

// ErrRecordNotFound is returned by repositories when no record matches the id and type.
var ErrRecordNotFound = errors.Wrap(errors.ErrNotFound, "record not found")

// NewUnknownResourceTypeError reports a resource type name missing from the registry.
func NewUnknownResourceTypeError(name string) error {
	return errors.WithMessage(errors.ErrNotFound, fmt.Sprintf("No data-model exists for \"%s\"", name))
}

// NewRecordNotFoundError reports an id with no matching record of the requested type.
func NewRecordNotFoundError(id string) error {
	return errors.WithMessage(errors.ErrNotFound, fmt.Sprintf("No item exists with id %s", id))
}
