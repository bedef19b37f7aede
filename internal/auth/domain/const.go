// Package domain defines authentication and authorization domain models.
// Users hold a role, roles grant a flat set of actions, and signed tokens carry a snapshot
// of those actions for the lifetime of the token.
package domain

import (
	"fmt"
	"strings"
)

// Action is an operation a principal may perform on a resource.
type Action string

const (
	// CreateAction allows creating records.
	CreateAction Action = "create"

	// ReadAction allows listing and fetching records.
	ReadAction Action = "read"

	// UpdateAction allows modifying records.
	UpdateAction Action = "update"

	// DeleteAction allows removing records.
	DeleteAction Action = "delete"
)

// allActions lists every action in canonical order.
var allActions = []Action{CreateAction, ReadAction, UpdateAction, DeleteAction}

// AllActions returns every known action in canonical order.
func AllActions() []Action {
	return append([]Action(nil), allActions...)
}

// ParseAction converts a string into an Action, case-insensitively.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allActions {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", s)
}
